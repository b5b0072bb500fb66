// Package sections turns raw extracted records into validated draft items.
// Builders are pure with respect to persisted state: callers pass the current
// per-section record count and the builders continue display ordering from it.
package sections

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/careerdock/resume-import/constants"
)

// DraftItem is one extracted record that passed mandatory-field validation.
// Warnings here are record-scoped; section-scoped warnings live on Result.
type DraftItem[T any] struct {
	ID       uuid.UUID `json:"id"`
	Request  T         `json:"request"`
	Warnings []string  `json:"warnings,omitempty"`
}

// Result is the per-section build outcome. A record can be dropped entirely
// and still be represented through a section-level warning.
type Result[T any] struct {
	Items    []DraftItem[T] `json:"items"`
	Warnings []string       `json:"warnings,omitempty"`
}

func newItem[T any](req T, warnings []string) DraftItem[T] {
	return DraftItem[T]{ID: uuid.New(), Request: req, Warnings: warnings}
}

// dropWarning formats the warning for a dropped record. n is the record's
// 1-based position in the raw input, kept stable so users can find the record
// in their document.
func dropWarning(section constants.Section, n int, reasons []string) string {
	return fmt.Sprintf("%s #%d: %s", section.Label(), n, strings.Join(reasons, ", "))
}
