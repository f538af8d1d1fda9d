// Package cachekeys centralizes the Redis key formats shared with the
// external ETL pipeline. Any change here is a wire-format change.
package cachekeys

import "fmt"

// CurrentWeek caches the current academic week number.
const CurrentWeek = "system:current_week"

// Schedule returns the cache key for a schedule document.
// kind is "group" or "employee"; identifier is the group number or the
// employee's canonical url id.
func Schedule(kind, identifier string) string {
	return fmt.Sprintf("schedule:%s:%s", kind, identifier)
}
