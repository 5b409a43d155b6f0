package types

import "time"

// LogEntry is the in-flight form of an HTTP log row before the async
// logger persists it.
type LogEntry struct {
	Method          string
	URL             string
	RequestBody     string
	RequestHeaders  string
	ResponseBody    string
	ResponseHeaders string
	StatusCode      int
	ActorUuid       string
	CreatedAt       time.Time
}
