// internal/models/status.go
package models

import "strings"

// Status is the normalized lifecycle state of an application or bid.
// Upstream records carry the status as a free-form string with inconsistent
// casing ("pending", "Accepted", "Rejected"); every comparison in this
// service goes through Parse so the inconsistency stops at the boundary.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusUnknown  Status = "unknown"
)

// ParseStatus normalizes an upstream status string. An absent status stays
// empty; unrecognized values map to StatusUnknown. Both are excluded from
// the accepted/rejected/pending buckets.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ""
	case "pending":
		return StatusPending
	case "accepted":
		return StatusAccepted
	case "rejected":
		return StatusRejected
	default:
		return StatusUnknown
	}
}
