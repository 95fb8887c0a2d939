package ledger

import (
	"testing"

	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
)

func TestAggregatesEmpty(t *testing.T) {
	if got := TotalInvested(nil); got != 0 {
		t.Errorf("TotalInvested(nil) = %v, want 0", got)
	}
	if got := TotalExpectedReturn(nil); got != 0 {
		t.Errorf("TotalExpectedReturn(nil) = %v, want 0", got)
	}
	if got := ActiveCount(nil); got != 0 {
		t.Errorf("ActiveCount(nil) = %v, want 0", got)
	}
}

func TestAggregatesSeed(t *testing.T) {
	records := SeedInvestments()

	if got := TotalInvested(records); got != 70000 {
		t.Errorf("TotalInvested() = %v, want 70000", got)
	}
	// 25000*22% + 30000*28% + 15000*18%
	if got := TotalExpectedReturn(records); got != 16600 {
		t.Errorf("TotalExpectedReturn() = %v, want 16600", got)
	}
	if got := ActiveCount(records); got != 2 {
		t.Errorf("ActiveCount() = %v, want 2", got)
	}
}

func TestRecord(t *testing.T) {
	l := New()
	before := len(l.List())

	project := &model.Project{
		Id:             "p1",
		Title:          "Culture de Mil Bio - Thiès",
		FarmerName:     "Aminata Diallo",
		Location:       "Thiès, Sénégal",
		Culture:        "Mil",
		TargetAmount:   60000,
		CurrentAmount:  30000,
		Duration:       8,
		ExpectedReturn: 20,
		Status:         model.ProjectStatusActive,
		Images:         []string{"https://example.test/mil.jpeg"},
	}
	investor := &model.Investor{Id: "i1", Name: "Mamadou Sow", Amount: 5000}

	inv := l.Record(project, investor)

	if inv.Id == "" {
		t.Error("Record() returned empty id")
	}
	if inv.ProjectId != project.Id {
		t.Errorf("ProjectId = %q, want %q", inv.ProjectId, project.Id)
	}
	if inv.InvestedAmount != 5000 {
		t.Errorf("InvestedAmount = %v, want 5000", inv.InvestedAmount)
	}
	if inv.TotalProjectAmount != 60000 {
		t.Errorf("TotalProjectAmount = %v, want 60000", inv.TotalProjectAmount)
	}
	if inv.Progress != 0 {
		t.Errorf("Progress = %v, want 0", inv.Progress)
	}
	if inv.RiskLevel != model.RiskLevelLow {
		t.Errorf("RiskLevel = %q, want %q", inv.RiskLevel, model.RiskLevelLow)
	}
	if inv.EndDate.Before(inv.StartDate) {
		t.Error("EndDate before StartDate")
	}

	after := l.List()
	if len(after) != before+1 {
		t.Fatalf("got %d records, want %d", len(after), before+1)
	}
	if after[len(after)-1].Id != inv.Id {
		t.Error("recorded investment not appended to list")
	}
}

func TestDeriveRiskLevel(t *testing.T) {
	tests := []struct {
		expectedReturn float64
		want           model.RiskLevel
	}{
		{18, model.RiskLevelLow},
		{24.9, model.RiskLevelLow},
		{25, model.RiskLevelMedium},
		{34, model.RiskLevelMedium},
		{35, model.RiskLevelHigh},
		{50, model.RiskLevelHigh},
	}

	for _, tt := range tests {
		if got := deriveRiskLevel(tt.expectedReturn); got != tt.want {
			t.Errorf("deriveRiskLevel(%v) = %q, want %q", tt.expectedReturn, got, tt.want)
		}
	}
}

func TestDeriveAIScore(t *testing.T) {
	fullyFunded := &model.Project{TargetAmount: 100, CurrentAmount: 100}
	if got := deriveAIScore(fullyFunded); got != 100 {
		t.Errorf("deriveAIScore(fully funded) = %d, want 100", got)
	}

	unfunded := &model.Project{TargetAmount: 100, CurrentAmount: 0}
	if got := deriveAIScore(unfunded); got != 75 {
		t.Errorf("deriveAIScore(unfunded) = %d, want 75", got)
	}

	zeroTarget := &model.Project{TargetAmount: 0, CurrentAmount: 0}
	if got := deriveAIScore(zeroTarget); got != 75 {
		t.Errorf("deriveAIScore(zero target) = %d, want 75", got)
	}
}
