package metadata

// AlertType classifies an alert row. LOW_STOCK is the only type the
// reconciler produces today.
type AlertType string

const (
	AlertTypeLowStock AlertType = "LOW_STOCK"
)

func (t AlertType) String() string {
	return string(t)
}

// Severity grades a low-stock alert at creation time.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityWarning  Severity = "warning"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityFor derives the severity for a low-stock condition. The half
// threshold uses integer division, so min_threshold 15 escalates to high
// at quantity 7, not 8.
func SeverityFor(quantity int, minThreshold int) Severity {
	switch {
	case quantity == 0:
		return SeverityCritical
	case quantity <= minThreshold/2:
		return SeverityHigh
	default:
		return SeverityWarning
	}
}
