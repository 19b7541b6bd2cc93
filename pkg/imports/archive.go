package imports

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// extractArchive unpacks the archive at archivePath into destDir. Supported
// formats are zip, tar and gzip-compressed tar. Entries that would escape
// destDir are skipped.
func extractArchive(archivePath, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", destDir, err)
	}

	switch {
	case strings.HasSuffix(archivePath, ".zip"):
		return extractZip(archivePath, destDir)
	case strings.HasSuffix(archivePath, ".tar"):
		return extractTar(archivePath, destDir, false)
	case strings.HasSuffix(archivePath, ".tar.gz"), strings.HasSuffix(archivePath, ".tgz"):
		return extractTar(archivePath, destDir, true)
	default:
		return NewUnsupportedArchiveError(archivePath)
	}
}

// archiveStem returns the archive's base name without its format extension,
// used as the extraction directory name.
func archiveStem(archivePath string) string {
	base := filepath.Base(archivePath)
	for _, suffix := range []string{".tar.gz", ".tgz", ".tar", ".zip"} {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func extractZip(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return NewCorruptArchiveError(archivePath, err)
	}
	defer reader.Close()

	for _, entry := range reader.File {
		target, ok := entryTarget(destDir, entry.Name)
		if !ok {
			continue
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", target, err)
			}
			continue
		}

		content, err := entry.Open()
		if err != nil {
			return NewCorruptArchiveError(archivePath, err)
		}

		if err := writeEntry(target, content); err != nil {
			content.Close()
			return err
		}
		content.Close()
	}

	return nil
}

func extractTar(archivePath, destDir string, compressed bool) error {
	fd, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", archivePath, err)
	}
	defer fd.Close()

	var content io.Reader = fd
	if compressed {
		gzipReader, err := gzip.NewReader(fd)
		if err != nil {
			return NewCorruptArchiveError(archivePath, err)
		}
		defer gzipReader.Close()
		content = gzipReader
	}

	tarReader := tar.NewReader(content)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return NewCorruptArchiveError(archivePath, err)
		}

		target, ok := entryTarget(destDir, header.Name)
		if !ok {
			continue
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := writeEntry(target, tarReader); err != nil {
				return err
			}
		default:
			// symlinks, devices etc. are not importable content
			continue
		}
	}
}

// entryTarget resolves an archive entry name below destDir and rejects
// entries that would escape it.
func entryTarget(destDir, name string) (string, bool) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", false
	}
	return target, true
}

func writeEntry(target string, content io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
	}

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}

	if _, err := io.Copy(out, content); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	return out.Close()
}
