package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/filestorages"
)

// FileCounterStore keeps summary counters on the file storage layer. The
// backend has no native increment, so each row is a chain of immutable
// version files and an upsert is an optimistic compare-and-swap: read the
// latest version, write the successor with an atomic create-if-not-exists
// put, retry on collision. A bounded number of lost races surfaces as
// ErrUpdateConflict.
//
// Key layout for table usage_url_hourly:
//
//	tables/usage_url_hourly/.table.json                     provisioning marker
//	tables/usage_url_hourly/<bucketUnix>_<value>/v<n>.json  row version files
type FileCounterStore struct {
	storage filestorages.FileStorage
	prefix  string

	mu     sync.Mutex
	tables map[string]struct{}
}

const (
	tableDir         = "tables"
	tableMarkerFile  = ".table.json"
	maxUpsertRetries = 5
)

type tableMarker struct {
	Dimension models.Dimension `json:"dimension"`
	Period    models.Period    `json:"period"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NewFileCounterStore creates the store and reflects already provisioned
// tables from their on-disk markers.
func NewFileCounterStore(ctx context.Context, storage filestorages.FileStorage, prefix string) (*FileCounterStore, error) {
	store := &FileCounterStore{
		storage: storage,
		prefix:  prefix,
		tables:  make(map[string]struct{}),
	}

	keys, err := storage.List(ctx, tableDir)
	if err != nil {
		return nil, fmt.Errorf("failed to reflect provisioned tables: %w", err)
	}
	for _, key := range keys {
		parts := strings.Split(key, "/")
		if len(parts) == 3 && parts[2] == tableMarkerFile {
			store.tables[parts[1]] = struct{}{}
		}
	}

	return store, nil
}

func (s *FileCounterStore) Provision(ctx context.Context, dimension models.Dimension, period models.Period) error {
	table := TableName(s.prefix, dimension, period)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[table]; ok {
		return nil
	}

	marker, err := json.Marshal(tableMarker{
		Dimension: dimension,
		Period:    period,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal table marker: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%s", tableDir, table, tableMarkerFile)
	_, err = s.storage.Put(ctx, key, bytes.NewReader(marker), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil && !errors.Is(err, filestorages.ErrFileAlreadyExists) {
		return fmt.Errorf("failed to provision table %s: %w", table, err)
	}

	s.tables[table] = struct{}{}
	return nil
}

func (s *FileCounterStore) Increment(ctx context.Context, dimension models.Dimension, period models.Period, bucketTime time.Time, dimensionValue string, deltaTransfer int64) error {
	table := TableName(s.prefix, dimension, period)
	if !s.isProvisioned(table) {
		return fmt.Errorf("table %s: %w", table, ErrNotProvisioned)
	}

	bucket := bucketTime.UTC()
	rowDir := s.rowDir(table, bucket.Unix(), dimensionValue)

	for attempt := 0; attempt < maxUpsertRetries; attempt++ {
		version, current, err := s.readLatestVersion(ctx, rowDir)
		if err != nil {
			if errors.Is(err, filestorages.ErrFileNotFound) {
				// Lost a race against a writer that compacted the version we
				// listed. Start over.
				continue
			}
			return fmt.Errorf("failed to read %s row: %w", table, err)
		}

		next := models.CounterRow{
			BucketTime:     bucket,
			DimensionValue: dimensionValue,
			Hits:           current.Hits + 1,
			Transfer:       current.Transfer + deltaTransfer,
		}
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to marshal %s row: %w", table, err)
		}

		key := versionKey(rowDir, version+1)
		_, err = s.storage.Put(ctx, key, bytes.NewReader(data), filestorages.PutOptions{AllowOverwrite: false})
		if err != nil {
			if errors.Is(err, filestorages.ErrFileAlreadyExists) {
				// Another writer claimed this version first.
				continue
			}
			return fmt.Errorf("failed to write %s row: %w", table, err)
		}

		// Compact the superseded version; losing this cleanup is harmless.
		if version > 0 {
			_ = s.storage.Delete(ctx, versionKey(rowDir, version))
		}
		return nil
	}

	return fmt.Errorf("table %s row %d_%s: %w", table, bucket.Unix(), dimensionValue, ErrUpdateConflict)
}

func (s *FileCounterStore) Query(ctx context.Context, dimension models.Dimension, period models.Period, query CounterQuery) ([]models.CounterRow, error) {
	table := TableName(s.prefix, dimension, period)
	if !s.isProvisioned(table) {
		return nil, fmt.Errorf("table %s: %w", table, ErrNotProvisioned)
	}

	q := query.normalized()

	keys, err := s.storage.List(ctx, tableDir+"/"+table)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s rows: %w", table, err)
	}

	type rowRef struct {
		bucketUnix int64
		value      string
		dir        string
	}
	seen := make(map[string]struct{})
	refs := []rowRef{}
	for _, key := range keys {
		parts := strings.Split(key, "/")
		if len(parts) != 4 {
			continue
		}
		rowPart := parts[2]
		if _, ok := seen[rowPart]; ok {
			continue
		}
		seen[rowPart] = struct{}{}

		bucketUnix, value, err := parseRowDirName(rowPart)
		if err != nil {
			return nil, fmt.Errorf("corrupt %s row directory %q: %w", table, rowPart, err)
		}
		if bucketUnix < q.Start.UTC().Unix() || bucketUnix > q.End.UTC().Unix() {
			continue
		}
		if q.Target != nil && value != *q.Target {
			continue
		}
		refs = append(refs, rowRef{bucketUnix: bucketUnix, value: value, dir: strings.Join(parts[:3], "/")})
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].bucketUnix != refs[j].bucketUnix {
			return refs[i].bucketUnix > refs[j].bucketUnix
		}
		return refs[i].value < refs[j].value
	})

	offset := q.offset()
	if offset >= len(refs) {
		return []models.CounterRow{}, nil
	}
	end := offset + q.Limit
	if end > len(refs) {
		end = len(refs)
	}
	refs = refs[offset:end]

	rows := make([]models.CounterRow, 0, len(refs))
	for _, ref := range refs {
		row, err := s.readRow(ctx, ref.dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s row %q: %w", table, ref.dir, err)
		}
		row.BucketTime = time.Unix(ref.bucketUnix, 0).UTC()
		row.DimensionValue = ref.value
		rows = append(rows, row)
	}

	return rows, nil
}

// readRow reads the latest version of a row, retrying when a concurrent
// increment compacts the version out from under us.
func (s *FileCounterStore) readRow(ctx context.Context, rowDir string) (models.CounterRow, error) {
	var lastErr error
	for attempt := 0; attempt < maxUpsertRetries; attempt++ {
		_, row, err := s.readLatestVersion(ctx, rowDir)
		if err == nil {
			return row, nil
		}
		lastErr = err
		if !errors.Is(err, filestorages.ErrFileNotFound) {
			break
		}
	}
	return models.CounterRow{}, lastErr
}

// readLatestVersion returns the highest row version and its contents, or
// version 0 and a zero row when the row does not exist yet.
func (s *FileCounterStore) readLatestVersion(ctx context.Context, rowDir string) (int64, models.CounterRow, error) {
	keys, err := s.storage.List(ctx, rowDir)
	if err != nil {
		return 0, models.CounterRow{}, err
	}

	var latest int64
	var latestKey string
	for _, key := range keys {
		version, ok := parseVersionKey(key)
		if ok && version > latest {
			latest = version
			latestKey = key
		}
	}
	if latest == 0 {
		return 0, models.CounterRow{}, nil
	}

	rc, err := s.storage.Get(ctx, latestKey)
	if err != nil {
		return 0, models.CounterRow{}, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return 0, models.CounterRow{}, err
	}
	var row models.CounterRow
	if err := json.Unmarshal(data, &row); err != nil {
		return 0, models.CounterRow{}, err
	}
	return latest, row, nil
}

func (s *FileCounterStore) isProvisioned(table string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tables[table]
	return ok
}

func (s *FileCounterStore) rowDir(table string, bucketUnix int64, dimensionValue string) string {
	return fmt.Sprintf("%s/%s/%d_%s", tableDir, table, bucketUnix, url.QueryEscape(dimensionValue))
}

func versionKey(rowDir string, version int64) string {
	return fmt.Sprintf("%s/v%010d.json", rowDir, version)
}

func parseVersionKey(key string) (int64, bool) {
	base := key[strings.LastIndex(key, "/")+1:]
	if !strings.HasPrefix(base, "v") || !strings.HasSuffix(base, ".json") {
		return 0, false
	}
	version, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(base, "v"), ".json"), 10, 64)
	if err != nil {
		return 0, false
	}
	return version, true
}

func parseRowDirName(name string) (int64, string, error) {
	bucketPart, valuePart, ok := strings.Cut(name, "_")
	if !ok {
		return 0, "", fmt.Errorf("missing separator")
	}
	bucketUnix, err := strconv.ParseInt(bucketPart, 10, 64)
	if err != nil {
		return 0, "", err
	}
	value, err := url.QueryUnescape(valuePart)
	if err != nil {
		return 0, "", err
	}
	return bucketUnix, value, nil
}
