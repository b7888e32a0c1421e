package domain

// RiskLevel grades how dangerous a generated script looks.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskAssessment is the advisory result of matching a script against the
// guardrail rules. It warns; it never blocks.
type RiskAssessment struct {
	Level   RiskLevel
	Reasons []string
}

// Elevated reports whether the assessment warrants a warning line.
func (r RiskAssessment) Elevated() bool {
	return r.Level == RiskHigh || r.Level == RiskCritical
}
