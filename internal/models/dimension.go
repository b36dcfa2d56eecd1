package models

import (
	"fmt"
	"strings"
)

// Dimension is an axis of summarization. Each enabled dimension gets its own
// set of counter tables, one per period.
type Dimension string

const (
	DimensionUrl       Dimension = "url"
	DimensionRemote    Dimension = "remote"
	DimensionUserAgent Dimension = "useragent"
	DimensionLanguage  Dimension = "language"
	DimensionServer    Dimension = "server"
)

// LanguageNone is recorded when an event carries no user agent language.
const LanguageNone = "none"

// AllDimensions returns the full fixed dimension set.
func AllDimensions() []Dimension {
	return []Dimension{DimensionUrl, DimensionRemote, DimensionUserAgent, DimensionLanguage, DimensionServer}
}

// NewDimensionFromString resolves a dimension name. Both plain names ("url")
// and the legacy summarization hook names ("sumUrl") are accepted,
// case-insensitively.
func NewDimensionFromString(s string) (Dimension, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "sum")

	switch Dimension(name) {
	case DimensionUrl, DimensionRemote, DimensionUserAgent, DimensionLanguage, DimensionServer:
		return Dimension(name), nil
	}
	return "", fmt.Errorf("unknown dimension: %q", s)
}

// ValueField returns the public field name the dimension value is reported
// under in summary rows.
func (d Dimension) ValueField() string {
	switch d {
	case DimensionUrl:
		return "url"
	case DimensionRemote:
		return "remote_addr"
	case DimensionUserAgent:
		return "user_agent_string"
	case DimensionLanguage:
		return "language"
	case DimensionServer:
		return "server_name"
	default:
		panic(fmt.Sprintf("invalid Dimension: %q", d))
	}
}

// Extract returns the event's value along this dimension. Every dimension has
// a defined value for every event; only Language substitutes a default when
// the event carries none.
func (d Dimension) Extract(event *RequestEvent) string {
	switch d {
	case DimensionUrl:
		return event.Url
	case DimensionRemote:
		return event.RemoteAddr
	case DimensionUserAgent:
		return event.UserAgentString
	case DimensionLanguage:
		if event.UserAgentLanguage == "" {
			return LanguageNone
		}
		return event.UserAgentLanguage
	case DimensionServer:
		return event.ServerName
	default:
		panic(fmt.Sprintf("invalid Dimension: %q", d))
	}
}
