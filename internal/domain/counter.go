package domain

import (
	"fmt"
	"strings"
)

// Reconciliation outcomes, one per row of the classification table
// plus the post-pass deleted cleanup.
const (
	OutcomeScheduled   = "scheduled"
	OutcomeRescheduled = "rescheduled"
	OutcomeUnscheduled = "unscheduled"
	OutcomeCompleted   = "completed"
	OutcomeUnchanged   = "unchanged"
	OutcomeIgnored     = "ignored"
	OutcomeDeleted     = "deleted"
)

// reportOrder fixes the rendering order so reports are deterministic.
var reportOrder = []string{
	OutcomeScheduled,
	OutcomeRescheduled,
	OutcomeUnscheduled,
	OutcomeCompleted,
	OutcomeUnchanged,
	OutcomeIgnored,
	OutcomeDeleted,
}

// Counter accumulates per-outcome card counts over a reconciliation
// pass.
type Counter map[string]int

// Add increments the count for an outcome.
func (c Counter) Add(outcome string) {
	c[outcome]++
}

// Merge folds another counter into this one.
func (c Counter) Merge(other Counter) {
	for k, v := range other {
		c[k] += v
	}
}

// Report renders the counter as a comma-joined summary, e.g.
// "2 cards scheduled, 5 cards unchanged". Zero outcomes are omitted.
func (c Counter) Report() string {
	var parts []string
	for _, outcome := range reportOrder {
		if n, ok := c[outcome]; ok && n > 0 {
			parts = append(parts, fmt.Sprintf("%d cards %s", n, outcome))
		}
	}
	if len(parts) == 0 {
		return "no cards"
	}
	return strings.Join(parts, ", ")
}
