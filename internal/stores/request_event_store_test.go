package stores

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/filestorages"
	"usage-analytics/internal/shared/filestorages/mocks"
)

func TestRequestEventStore_Save(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockFileStorage(ctrl)
	store := NewRequestEventStore(storage)

	event := &models.RequestEvent{
		Url:           "https://example.com/pricing",
		RemoteAddr:    "203.0.113.7",
		ServerName:    "web-1",
		ContentLength: 512,
		OccurredAt:    time.Date(2026, 3, 17, 9, 42, 31, 0, time.UTC),
	}

	var storedKey string
	storage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(_ context.Context, key string, r io.Reader, _ filestorages.PutOptions) (*filestorages.PutResult, error) {
			storedKey = key

			data, err := io.ReadAll(r)
			require.NoError(t, err)
			var decoded models.RequestEvent
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, event.Url, decoded.Url)
			assert.Equal(t, event.ContentLength, decoded.ContentLength)

			return &filestorages.PutResult{FileKey: key}, nil
		})

	key, err := store.Save(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, storedKey, key)
	assert.Regexp(t, `^events/web-1/[0-9A-Z]{26}\.json$`, key)
}

func TestRequestEventStore_Save_UnknownServer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockFileStorage(ctrl)
	store := NewRequestEventStore(storage)

	storage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ filestorages.PutOptions) (*filestorages.PutResult, error) {
			return &filestorages.PutResult{FileKey: key}, nil
		})

	key, err := store.Save(context.Background(), &models.RequestEvent{Url: "https://example.com/"})
	require.NoError(t, err)
	assert.Regexp(t, `^events/unknown/`, key)
}

func TestRequestEventStore_Save_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockFileStorage(ctrl)
	store := NewRequestEventStore(storage)

	storageErr := errors.New("disk full")
	storage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storageErr)

	_, err := store.Save(context.Background(), &models.RequestEvent{Url: "https://example.com/", ServerName: "web-1"})
	assert.ErrorIs(t, err, storageErr)
}
