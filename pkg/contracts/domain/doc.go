// Package domain holds the serializable summaries exchanged with callers of
// pymudata. The types carry json and validate tags and no behavior beyond
// simple derived values.
package domain
