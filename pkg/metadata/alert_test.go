package metadata

import (
	"testing"
)

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		minThreshold int
		expected     Severity
	}{
		{"zero quantity is critical", 0, 10, SeverityCritical},
		{"at half threshold is high", 5, 10, SeverityHigh},
		{"below half threshold is high", 3, 10, SeverityHigh},
		{"above half threshold is warning", 6, 10, SeverityWarning},
		{"at threshold is warning", 10, 10, SeverityWarning},
		{"integer division, 7 of 15 is high", 7, 15, SeverityHigh},
		{"integer division, 8 of 15 is warning", 8, 15, SeverityWarning},
		{"odd threshold of 1, quantity 0 is critical", 0, 1, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeverityFor(tt.quantity, tt.minThreshold); got != tt.expected {
				t.Errorf("SeverityFor(%d, %d) = %v, want %v", tt.quantity, tt.minThreshold, got, tt.expected)
			}
		})
	}
}
