package assessment

import (
	"testing"

	"risk-assessor/internal/models"
)

func TestClassifyTimeHorizon(t *testing.T) {
	tests := []struct {
		name  string
		goals string
		age   int
		want  models.TimeHorizon
	}{
		{"short keyword", "saving for a wedding next year", 28, models.HorizonShort},
		{"long keyword", "retirement planning", 35, models.HorizonLong},
		{"short beats long", "wedding and retirement", 35, models.HorizonShort},
		{"case insensitive", "RETIREMENT savings", 40, models.HorizonLong},
		{"child education", "child education fund", 38, models.HorizonLong},
		{"unmatched defaults medium", "general wealth building", 40, models.HorizonMedium},
		{"unmatched older also medium", "general wealth building", 58, models.HorizonMedium},
		{"empty goals", "", 30, models.HorizonMedium},
		{"car purchase", "buying a car", 30, models.HorizonShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTimeHorizon(tt.goals, tt.age); got != tt.want {
				t.Errorf("ClassifyTimeHorizon(%q, %d) = %s, want %s", tt.goals, tt.age, got, tt.want)
			}
		})
	}
}

func TestLumpsumAvailable(t *testing.T) {
	tests := []struct {
		name     string
		savings  float64
		expenses float64
		want     bool
	}{
		{"well above emergency fund", 120000, 4000, true},
		{"exactly at boundary", 24000, 4000, false},
		{"just above boundary", 24001, 4000, true},
		{"below emergency fund", 10000, 4000, false},
		{"zero savings zero expenses", 0, 0, false},
		{"positive savings zero expenses", 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LumpsumAvailable(tt.savings, tt.expenses); got != tt.want {
				t.Errorf("LumpsumAvailable(%.0f, %.0f) = %t, want %t", tt.savings, tt.expenses, got, tt.want)
			}
		})
	}
}

func TestEmergencyFund(t *testing.T) {
	if got := EmergencyFund(4000); got != 24000 {
		t.Errorf("EmergencyFund(4000) = %.0f, want 24000", got)
	}
}
