package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/filestorages"
	"usage-analytics/internal/shared/ulid"
)

// RequestEventStore archives every tracked request as an immutable JSON
// document, keyed by server name and a ULID so keys sort in arrival order.
//
//go:generate mockgen -source=request_event_store.go -destination=./mocks/request_event_store_mock.go -package=mocks
type RequestEventStore interface {
	Save(ctx context.Context, event *models.RequestEvent) (string, error)
}

type requestEventStore struct {
	storage filestorages.FileStorage
}

func NewRequestEventStore(storage filestorages.FileStorage) RequestEventStore {
	return &requestEventStore{storage: storage}
}

func (s *requestEventStore) Save(ctx context.Context, event *models.RequestEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request event: %w", err)
	}

	server := event.ServerName
	if server == "" {
		server = "unknown"
	}
	key := fmt.Sprintf("events/%s/%s.json", server, ulid.NewULID())

	result, err := s.storage.Put(ctx, key, bytes.NewReader(data), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		return "", fmt.Errorf("failed to store request event: %w", err)
	}

	return result.FileKey, nil
}
