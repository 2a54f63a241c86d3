package model

import (
	"github.com/charmbracelet/lipgloss"
)

// Status is the three-state compliance verdict. The constant values double
// as the export wire values, so a result marshals without translation.
//
// The enum is deliberately not reducible to IsAffected: "no" (in scope but
// exempted) and "not_applicable" (out of scope entirely) are both
// unaffected, yet legally distinct, and must stay distinguishable.
type Status string

const (
	// StatusApplicable means the aircraft is in scope and must comply.
	StatusApplicable Status = "yes"
	// StatusNotAffected means the aircraft is in scope but exempted: an
	// excluding modification is present, or a required one is absent.
	StatusNotAffected Status = "no"
	// StatusNotApplicable means the aircraft is out of scope entirely.
	StatusNotApplicable Status = "not_applicable"
)

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Icon returns the Unicode glyph for the status.
func (s Status) Icon() string {
	switch s {
	case StatusApplicable:
		return "🔴"
	case StatusNotAffected:
		return "🟢"
	case StatusNotApplicable:
		return "⚪"
	default:
		return "❓"
	}
}

// IconFallback returns an ASCII glyph for terminals without Unicode support.
func (s Status) IconFallback() string {
	switch s {
	case StatusApplicable:
		return "[AD]"
	case StatusNotAffected:
		return "[OK]"
	case StatusNotApplicable:
		return "[--]"
	default:
		return "[??]"
	}
}

// Color returns the lipgloss color used when rendering the status.
func (s Status) Color() lipgloss.Color {
	switch s {
	case StatusApplicable:
		return lipgloss.Color("196") // red: action required
	case StatusNotAffected:
		return lipgloss.Color("42") // green
	case StatusNotApplicable:
		return lipgloss.Color("250") // light gray
	default:
		return lipgloss.Color("226")
	}
}

// ComplianceResult is the outcome of evaluating one directive against one
// aircraft. It is a value object: produced fresh per evaluation, never
// mutated, and free of timestamps so repeated evaluations of the same pair
// are bit-identical.
type ComplianceResult struct {
	DirectiveID   string `json:"directive_id"`
	AircraftModel string `json:"aircraft_model"`
	MSN           int    `json:"msn"`
	Status        Status `json:"status"`
	IsAffected    bool   `json:"is_affected"`
	// Reason lists, in order, the outcome of each evaluation stage that
	// actually executed, joined with "; ".
	Reason string `json:"reason"`
}
