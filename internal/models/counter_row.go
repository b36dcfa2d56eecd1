package models

import (
	"encoding/json"
	"time"
)

// CounterRow is one aggregate bucket: the unique (bucket time, dimension
// value) pair of a summary table, with its accumulated totals. Hits and
// Transfer only ever grow.
type CounterRow struct {
	BucketTime     time.Time `json:"bucketTime"`
	DimensionValue string    `json:"dimensionValue"`
	Hits           int64     `json:"hits"`
	Transfer       int64     `json:"transfer"`
}

// SummaryRow is a CounterRow shaped for the public summary API, where the
// dimension value is reported under a per-dimension field name (url,
// remote_addr, user_agent_string, language, server_name).
type SummaryRow struct {
	Dimension Dimension
	Row       CounterRow
}

func (r SummaryRow) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"bucket_time": r.Row.BucketTime,
		"hits":        r.Row.Hits,
		"transfer":    r.Row.Transfer,
	}
	out[r.Dimension.ValueField()] = r.Row.DimensionValue
	return json.Marshal(out)
}

// SummaryResult maps each period name to its summary rows, bucket time
// descending.
type SummaryResult map[Period][]SummaryRow
