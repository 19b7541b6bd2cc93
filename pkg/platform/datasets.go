package platform

import (
	"context"
	"fmt"
	"net/http"

	cache "github.com/patrickmn/go-cache"
)

// DatasetsAPI defines the dataset operations import apps rely on.
type DatasetsAPI interface {
	// Create creates a dataset in the given project. With
	// changeNameIfConflict the platform resolves name collisions by
	// suffixing the name instead of failing.
	Create(ctx context.Context, projectID ProjectID, name string, changeNameIfConflict bool) (*DatasetInfo, error)
	// Get returns the dataset with the given id.
	Get(ctx context.Context, id DatasetID) (*DatasetInfo, error)
}

var _ DatasetsAPI = (*DatasetsService)(nil)

// DatasetsService implements DatasetsAPI via the HTTP API.
type DatasetsService struct {
	client *Client
}

func (s *DatasetsService) Create(ctx context.Context, projectID ProjectID, name string, changeNameIfConflict bool) (*DatasetInfo, error) {
	if projectID <= 0 {
		return nil, ErrEmptyProjectID
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	body := createDatasetRequest{
		ProjectID:            projectID,
		Name:                 name,
		ChangeNameIfConflict: changeNameIfConflict,
	}

	var info DatasetInfo
	err := s.client.postJSON(ctx, s.client.endpoint("/datasets"), body, http.StatusCreated, "create dataset", &info)
	if err != nil {
		return nil, err
	}

	s.client.logger.Debug().Int("datasetId", info.ID).Str("name", info.Name).Msg("created dataset")
	s.client.lookup.Set(datasetCacheKey(info.ID), &info, cache.DefaultExpiration)
	return &info, nil
}

func (s *DatasetsService) Get(ctx context.Context, id DatasetID) (*DatasetInfo, error) {
	if id <= 0 {
		return nil, ErrEmptyDatasetID
	}

	if cached, found := s.client.lookup.Get(datasetCacheKey(id)); found {
		if info, ok := cached.(*DatasetInfo); ok {
			return info, nil
		}
	}

	var info DatasetInfo
	err := s.client.getJSON(ctx, s.client.endpoint("/datasets/%d", id), "get dataset", &info)
	if err != nil {
		return nil, err
	}

	s.client.lookup.Set(datasetCacheKey(id), &info, cache.DefaultExpiration)
	return &info, nil
}

func datasetCacheKey(id DatasetID) string {
	return fmt.Sprintf("dataset/%d", id)
}
