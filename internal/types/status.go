package types

import (
	"fmt"

	"github.com/samber/lo"
)

// Status is the lifecycle state of a persisted resource. Archived is the
// terminal soft-delete state: archived rows are never physically removed and
// are excluded from default lookups.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Validate() error {
	allowed := []Status{StatusActive, StatusInactive, StatusArchived}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid status: %s", s)
	}
	return nil
}
