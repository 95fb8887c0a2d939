package details

import (
	"math"
	"reflect"
	"testing"

	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
	"github.com/Angiecode225/TerraNobis-sub001/internal/store"
)

func fixture() *model.Project {
	projects := store.SeedProjects()
	return &projects[0]
}

func TestProjectDeterministic(t *testing.T) {
	record := fixture()

	first := Project(record)
	second := Project(record)
	if !reflect.DeepEqual(first, second) {
		t.Error("projection of the same record produced different results")
	}
}

func TestProjectDoesNotMutateRecord(t *testing.T) {
	record := fixture()
	before := *record

	Project(record)

	if record.Title != before.Title || record.CurrentAmount != before.CurrentAmount ||
		len(record.Investors) != len(before.Investors) {
		t.Error("projection mutated the source record")
	}
}

func TestBudgetBreakdown(t *testing.T) {
	record := fixture()
	view := Project(record)

	var pctSum, amountSum float64
	for _, line := range view.FinancialPlan.BudgetBreakdown {
		pctSum += line.Percentage
		amountSum += line.Amount
	}

	if math.Abs(pctSum-100) > 0.5 {
		t.Errorf("budget percentages sum to %v, want 100 ± 0.5", pctSum)
	}
	if math.Abs(amountSum-record.TargetAmount) > record.TargetAmount*0.01 {
		t.Errorf("budget amounts sum to %v, want ≈ %v", amountSum, record.TargetAmount)
	}
}

func TestRevenueProjections(t *testing.T) {
	record := fixture()
	view := Project(record)

	if got := len(view.FinancialPlan.RevenueProjections); got != record.Duration {
		t.Fatalf("got %d projections, want %d", got, record.Duration)
	}

	// 前两个月无产出
	if view.FinancialPlan.RevenueProjections[0].ProjectedRevenue != 0 {
		t.Error("month 1 revenue should be 0")
	}
	if view.FinancialPlan.RevenueProjections[1].ProjectedRevenue != 0 {
		t.Error("month 2 revenue should be 0")
	}

	last := view.FinancialPlan.RevenueProjections[record.Duration-1]
	wantTotal := record.TargetAmount * (1 + record.ExpectedReturn/100)
	if math.Abs(last.ProjectedRevenue-wantTotal) > 0.01 {
		t.Errorf("final month revenue = %v, want %v", last.ProjectedRevenue, wantTotal)
	}
}

func TestRevenueProjectionsShortDuration(t *testing.T) {
	record := fixture()
	record.Duration = 1

	view := Project(record)
	if got := len(view.FinancialPlan.RevenueProjections); got != 1 {
		t.Fatalf("got %d projections, want 1", got)
	}
	if view.FinancialPlan.RevenueProjections[0].ProjectedRevenue == 0 {
		t.Error("single-month projection should carry the full revenue")
	}
}

func TestDerivedFieldsConsistent(t *testing.T) {
	record := fixture()
	view := Project(record)

	if view.InvestorCount != len(record.Investors) {
		t.Errorf("InvestorCount = %d, want %d", view.InvestorCount, len(record.Investors))
	}
	wantPct := record.CurrentAmount / record.TargetAmount * 100
	if view.FundingPercent != wantPct {
		t.Errorf("FundingPercent = %v, want %v", view.FundingPercent, wantPct)
	}

	// 派生数值跟随记录变化
	record.CurrentAmount = record.TargetAmount
	view = Project(record)
	if view.FundingPercent != 100 {
		t.Errorf("FundingPercent = %v, want 100", view.FundingPercent)
	}
}

func TestRisksTemplate(t *testing.T) {
	view := Project(fixture())

	if len(view.Risks) == 0 {
		t.Fatal("projection has no risks")
	}
	for i, risk := range view.Risks {
		if risk.Risk == "" || risk.Mitigation == "" {
			t.Errorf("risk %d incomplete: %+v", i, risk)
		}
	}
}
