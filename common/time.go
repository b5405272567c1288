package common

import (
	"time"
)

const logTimeFormat = "2006-01-02 15:04:05.000"

// UtcTimeFormat returns the log timestamp of `t` converted to UTC.
func UtcTimeFormat(t time.Time) string {
	return t.UTC().Format(logTimeFormat) + " UTC"
}
