package model

import (
	"time"

	"github.com/google/uuid"
)

// FleetReport is the exportable outcome of a full fleet evaluation. Report
// metadata (id, timestamp) lives here and never inside ComplianceResult, so
// individual results stay deterministic.
type FleetReport struct {
	ReportID    string           `json:"report_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	RulesFile   string           `json:"rules_file"`
	Aircraft    []AircraftReport `json:"aircraft"`
}

// AircraftReport holds one aircraft's results, per-directive evaluation
// failures, and the aggregated summary.
type AircraftReport struct {
	AircraftModel string             `json:"aircraft_model"`
	MSN           int                `json:"msn"`
	Results       []ComplianceResult `json:"results"`
	Errors        []DirectiveError   `json:"errors,omitempty"`
	Summary       Summary            `json:"summary"`
}

// DirectiveError is the flat export form of a per-directive evaluation
// failure.
type DirectiveError struct {
	DirectiveID string `json:"directive_id"`
	Error       string `json:"error"`
}

// NewFleetReport creates an empty report with a fresh id and timestamp.
func NewFleetReport(rulesFile string) *FleetReport {
	return &FleetReport{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		RulesFile:   rulesFile,
	}
}
