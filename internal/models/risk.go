package models

import "strings"

// RiskLevel is the service's severity classification of conversation content.
// Levels the client does not know about are kept verbatim.
type RiskLevel string

const (
	RiskUnknown         RiskLevel = "unknown"
	RiskLow             RiskLevel = "low"
	RiskModerate        RiskLevel = "moderate"
	RiskHigh            RiskLevel = "high"
	RiskImmediateDanger RiskLevel = "immediate_danger"
)

// riskOrder lists the known levels from least to most severe.
var riskOrder = []RiskLevel{
	RiskUnknown,
	RiskLow,
	RiskModerate,
	RiskHigh,
	RiskImmediateDanger,
}

// Label returns the level with separators replaced by spaces.
func (r RiskLevel) Label() string {
	return strings.ReplaceAll(string(r), "_", " ")
}

// IsUrgent reports whether the level is the highest-severity one.
func (r RiskLevel) IsUrgent() bool {
	return r == RiskImmediateDanger
}

// Severity returns the level's rank; unrecognised levels rank as unknown (0).
func (r RiskLevel) Severity() int {
	for i, level := range riskOrder {
		if level == r {
			return i
		}
	}
	return 0
}

// KnownRiskLevels returns the recognised levels in severity order
func KnownRiskLevels() []RiskLevel {
	levels := make([]RiskLevel, len(riskOrder))
	copy(levels, riskOrder)
	return levels
}
