package stores

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"usage-analytics/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisCounterStore keeps summary counters in Redis. Each table owns a sorted
// set indexing its rows by bucket time plus one hash per row holding the
// hits/transfer totals. Increments are HINCRBY operations, so the upsert is
// atomic on the server and concurrent writers can never lose updates.
//
// Key layout for table usage_url_hourly:
//
//	usage:tables                          set of provisioned table names
//	usage_url_hourly:index                zset, member "<bucketUnix>|<value>", score bucketUnix
//	usage_url_hourly:row:<bucketUnix>|<value>   hash {hits, transfer}
type RedisCounterStore struct {
	client *redis.Client
	prefix string

	mu     sync.RWMutex
	tables map[string]struct{}
}

const (
	rowFieldHits     = "hits"
	rowFieldTransfer = "transfer"
)

// NewRedisCounterStore creates the store and reflects the set of already
// provisioned tables from the registry key, so a restart sees the schema it
// left behind instead of recreating it.
func NewRedisCounterStore(ctx context.Context, client *redis.Client, prefix string) (*RedisCounterStore, error) {
	store := &RedisCounterStore{
		client: client,
		prefix: prefix,
		tables: make(map[string]struct{}),
	}

	existing, err := client.SMembers(ctx, store.registryKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to reflect provisioned tables: %w", err)
	}
	for _, table := range existing {
		store.tables[table] = struct{}{}
	}

	return store, nil
}

func (s *RedisCounterStore) Provision(ctx context.Context, dimension models.Dimension, period models.Period) error {
	table := TableName(s.prefix, dimension, period)

	if err := s.client.SAdd(ctx, s.registryKey(), table).Err(); err != nil {
		return fmt.Errorf("failed to provision table %s: %w", table, err)
	}

	s.mu.Lock()
	s.tables[table] = struct{}{}
	s.mu.Unlock()

	return nil
}

func (s *RedisCounterStore) Increment(ctx context.Context, dimension models.Dimension, period models.Period, bucketTime time.Time, dimensionValue string, deltaTransfer int64) error {
	table := TableName(s.prefix, dimension, period)
	if !s.isProvisioned(table) {
		return fmt.Errorf("table %s: %w", table, ErrNotProvisioned)
	}

	bucketUnix := bucketTime.UTC().Unix()
	member := rowMember(bucketUnix, dimensionValue)

	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, s.indexKey(table), redis.Z{Score: float64(bucketUnix), Member: member})
	pipe.HIncrBy(ctx, s.rowKey(table, member), rowFieldHits, 1)
	pipe.HIncrBy(ctx, s.rowKey(table, member), rowFieldTransfer, deltaTransfer)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment %s row %s: %w", table, member, err)
	}

	return nil
}

func (s *RedisCounterStore) Query(ctx context.Context, dimension models.Dimension, period models.Period, query CounterQuery) ([]models.CounterRow, error) {
	table := TableName(s.prefix, dimension, period)
	if !s.isProvisioned(table) {
		return nil, fmt.Errorf("table %s: %w", table, ErrNotProvisioned)
	}

	q := query.normalized()
	rangeBy := &redis.ZRangeBy{
		Min: strconv.FormatInt(q.Start.UTC().Unix(), 10),
		Max: strconv.FormatInt(q.End.UTC().Unix(), 10),
	}
	if q.Target == nil {
		// No row filter: let Redis paginate.
		rangeBy.Offset = int64(q.offset())
		rangeBy.Count = int64(q.Limit)
	}

	members, err := s.client.ZRevRangeByScore(ctx, s.indexKey(table), rangeBy).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s index: %w", table, err)
	}

	if q.Target != nil {
		members = filterMembersByValue(members, *q.Target)
		members = paginateMembers(members, q.offset(), q.Limit)
	}

	return s.readRows(ctx, table, members)
}

func (s *RedisCounterStore) readRows(ctx context.Context, table string, members []string) ([]models.CounterRow, error) {
	rows := make([]models.CounterRow, 0, len(members))
	if len(members) == 0 {
		return rows, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(members))
	for i, member := range members {
		cmds[i] = pipe.HGetAll(ctx, s.rowKey(table, member))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", table, err)
	}

	for i, member := range members {
		bucketUnix, value, err := parseRowMember(member)
		if err != nil {
			return nil, fmt.Errorf("corrupt %s index member %q: %w", table, member, err)
		}

		fields := cmds[i].Val()
		hits, _ := strconv.ParseInt(fields[rowFieldHits], 10, 64)
		transfer, _ := strconv.ParseInt(fields[rowFieldTransfer], 10, 64)

		rows = append(rows, models.CounterRow{
			BucketTime:     time.Unix(bucketUnix, 0).UTC(),
			DimensionValue: value,
			Hits:           hits,
			Transfer:       transfer,
		})
	}

	return rows, nil
}

func (s *RedisCounterStore) isProvisioned(table string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tables[table]
	return ok
}

func (s *RedisCounterStore) registryKey() string {
	return s.prefix + ":tables"
}

func (s *RedisCounterStore) indexKey(table string) string {
	return table + ":index"
}

func (s *RedisCounterStore) rowKey(table, member string) string {
	return table + ":row:" + member
}

// rowMember encodes a (bucket, value) row identity as a zset member. The
// value is escaped so the separator stays unambiguous.
func rowMember(bucketUnix int64, dimensionValue string) string {
	return strconv.FormatInt(bucketUnix, 10) + "|" + url.QueryEscape(dimensionValue)
}

func parseRowMember(member string) (int64, string, error) {
	bucketPart, valuePart, ok := strings.Cut(member, "|")
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

func filterMembersByValue(members []string, target string) []string {
	escaped := url.QueryEscape(target)
	filtered := members[:0]
	for _, member := range members {
		if _, valuePart, ok := strings.Cut(member, "|"); ok && valuePart == escaped {
			filtered = append(filtered, member)
		}
	}
	return filtered
}

func paginateMembers(members []string, offset, limit int) []string {
	if offset >= len(members) {
		return nil
	}
	end := offset + limit
	if end > len(members) {
		end = len(members)
	}
	return members[offset:end]
}
