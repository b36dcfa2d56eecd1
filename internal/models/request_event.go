package models

import "time"

// RequestEvent is one completed HTTP request as reported by a collector hook.
// It is immutable once tracked: the tracker persists it verbatim and fans it
// out into summary counter increments.
type RequestEvent struct {
	Url               string    `json:"url"`
	RemoteAddr        string    `json:"remoteAddr"`
	UserAgentString   string    `json:"userAgentString"`
	UserAgentBrowser  string    `json:"userAgentBrowser,omitempty"`
	UserAgentPlatform string    `json:"userAgentPlatform,omitempty"`
	UserAgentLanguage string    `json:"userAgentLanguage,omitempty"`
	ServerName        string    `json:"serverName"`
	Status            int       `json:"status"`
	ContentLength     int64     `json:"contentLength"`
	OccurredAt        time.Time `json:"occurredAt"`
}
