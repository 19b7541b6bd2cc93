package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
)

// ImagesAPI defines the image upload operation the import loop relies on.
type ImagesAPI interface {
	// UploadPath uploads the file at path into the given dataset under the
	// given name and returns the stored image's attributes.
	UploadPath(ctx context.Context, datasetID DatasetID, name string, path string) (*ImageInfo, error)
}

var _ ImagesAPI = (*ImagesService)(nil)

// ImagesService implements ImagesAPI via the HTTP API.
type ImagesService struct {
	client *Client
}

func (s *ImagesService) UploadPath(ctx context.Context, datasetID DatasetID, name string, path string) (*ImageInfo, error) {
	if datasetID <= 0 {
		return nil, ErrEmptyDatasetID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if path == "" {
		return nil, ErrEmptyPath
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, NewFileAccessError(path, err)
	}
	defer fd.Close()

	if err := validateImageFile(fd, name, path); err != nil {
		return nil, err
	}

	// Create pipe for multipart data
	pipeReader, pipeWriter := io.Pipe()
	defer pipeReader.Close()

	mpartWriter := multipart.NewWriter(pipeWriter)

	go streamImageToPipe(pipeWriter, mpartWriter, name, fd)

	// Load body bytes into memory so go can determine the Content-Length
	// and not send the request chunked
	bts, err := io.ReadAll(pipeReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload image request: %w", err)
	}

	url := s.client.endpoint("/datasets/%d/images", datasetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bts))
	if err != nil {
		return nil, fmt.Errorf("failed to create upload image request: %w", err)
	}
	req.Header.Set(ContentType, mpartWriter.FormDataContentType())

	res, err := s.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making upload image request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		return nil, handleUnexpectedStatusCodes(res.Body, res.StatusCode, res.Status, "upload image")
	}

	var info ImageInfo
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode upload image response: %w", err)
	}

	s.client.logger.Debug().Int("imageId", info.ID).Str("name", info.Name).Msg("uploaded image")
	return &info, nil
}

// GetLimits returns the upload Limits defined in the low level client.
func (s *ImagesService) GetLimits() Limits {
	return Limits{
		ImageSizeLimit:  imageSizeLimit,
		NameLengthLimit: nameLengthLimit,
	}
}

// streamImageToPipe writes the name field and the image content to the multipart form.
func streamImageToPipe(pipeWriter *io.PipeWriter, mpartWriter *multipart.Writer, name string, fd *os.File) {
	var streamError error
	defer func() {
		if closeErr := mpartWriter.Close(); closeErr != nil && streamError == nil {
			streamError = closeErr
		}
		pipeWriter.CloseWithError(streamError)
	}()

	if err := mpartWriter.WriteField("name", name); err != nil {
		streamError = NewMultipartError(name, err)
		return
	}

	part, err := mpartWriter.CreateFormFile("image", name)
	if err != nil {
		streamError = NewMultipartError(name, err)
		return
	}

	if _, err := io.Copy(part, fd); err != nil {
		streamError = fmt.Errorf("failed to copy image content for %s: %w", name, err)
		return
	}
}

// validateImageFile validates the file before upload.
func validateImageFile(fd *os.File, name string, path string) error {
	if len(name) > nameLengthLimit {
		return NewNameLengthLimitError(name, len(name), nameLengthLimit)
	}

	fileInfo, err := fd.Stat()
	if err != nil {
		return NewFileAccessError(path, err)
	}

	if !fileInfo.Mode().IsRegular() {
		return NewSpecialFileError(path, fileInfo.Mode())
	}

	if fileInfo.Size() > imageSizeLimit {
		return NewImageSizeLimitError(path, fileInfo.Size(), imageSizeLimit)
	}

	return nil
}
