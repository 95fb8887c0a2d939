package metrics

import (
	"math"
	"testing"

	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
)

func TestFundingPercent(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{"half funded", 500, 1000, 50},
		{"fully funded", 80000, 80000, 100},
		{"unfunded", 0, 40000, 0},
		{"zero target", 500, 0, 0},
		{"negative target", 500, -10, 0},
		{"over funded", 1500, 1000, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.Project{CurrentAmount: tt.current, TargetAmount: tt.target}
			got := FundingPercent(p)
			if got != tt.want {
				t.Errorf("FundingPercent() = %v, want %v", got, tt.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("FundingPercent() = %v, must be finite", got)
			}
		})
	}
}

func TestExpectedGain(t *testing.T) {
	tests := []struct {
		invested float64
		pct      float64
		want     float64
	}{
		{25000, 22, 5500},
		{30000, 28, 8400},
		{0, 20, 0},
		{1000, 0, 0},
	}

	for _, tt := range tests {
		if got := ExpectedGain(tt.invested, tt.pct); got != tt.want {
			t.Errorf("ExpectedGain(%v, %v) = %v, want %v", tt.invested, tt.pct, got, tt.want)
		}
	}
}

func TestAverageReturn(t *testing.T) {
	if got := AverageReturn(nil); got != 0 {
		t.Errorf("AverageReturn(nil) = %v, want 0", got)
	}
	if got := AverageReturn([]model.Investment{}); got != 0 {
		t.Errorf("AverageReturn(empty) = %v, want 0", got)
	}

	records := []model.Investment{
		{ExpectedReturn: 22},
		{ExpectedReturn: 28},
		{ExpectedReturn: 18},
	}
	want := (22.0 + 28.0 + 18.0) / 3
	if got := AverageReturn(records); got != want {
		t.Errorf("AverageReturn() = %v, want %v", got, want)
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status model.ProjectStatus
		want   string
	}{
		{model.ProjectStatusActive, "En cours"},
		{model.ProjectStatusCompleted, "Terminé"},
		{model.ProjectStatusPending, "En attente"},
		{model.ProjectStatusCancelled, "Annulé"},
		{model.ProjectStatus("archived"), "Inconnu"},
		{model.ProjectStatus(""), "Inconnu"},
	}

	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.want {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestRiskLabel(t *testing.T) {
	tests := []struct {
		level model.RiskLevel
		want  string
	}{
		{model.RiskLevelLow, "Faible"},
		{model.RiskLevelMedium, "Moyen"},
		{model.RiskLevelHigh, "Élevé"},
		{model.RiskLevel("extreme"), "Inconnu"},
	}

	for _, tt := range tests {
		if got := RiskLabel(tt.level); got != tt.want {
			t.Errorf("RiskLabel(%q) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestScoreBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "excellent"},
		{90, "excellent"},
		{88, "bon"},
		{75, "moyen"},
		{42, "faible"},
	}

	for _, tt := range tests {
		if got := ScoreBand(tt.score); got != tt.want {
			t.Errorf("ScoreBand(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
