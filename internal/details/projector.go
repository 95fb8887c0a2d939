package details

import (
	"fmt"

	"github.com/Angiecode225/TerraNobis-sub001/internal/metrics"
	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
)

// 详情投影：把最小化的项目记录扩展为完整的详情视图模型。
// 同一输入总是产生相同输出，不修改记录存储，结果不做持久化。

// budgetTemplate 预算分解模板，percentage 合计为100
var budgetTemplate = []struct {
	category   string
	percentage float64
}{
	{"Semences et plants", 25},
	{"Équipements", 33.3},
	{"Irrigation", 20},
	{"Main d'œuvre", 13.3},
	{"Marketing", 8.4},
}

// Project 将项目记录投影为详情视图模型
func Project(record *model.Project) *model.ProjectDetails {
	return &model.ProjectDetails{
		Project: *record,

		FarmerAvatar: "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=1",
		FarmerBio:    "Agriculteur expérimenté avec 15 ans d'expérience dans l'agriculture biologique et durable.",

		FinancialPlan: model.FinancialPlan{
			BudgetBreakdown:    budgetBreakdown(record.TargetAmount),
			RevenueProjections: revenueProjections(record),
		},
		TechnicalDetails: model.TechnicalDetails{
			SoilType:          "Argilo-limoneux",
			IrrigationSystem:  "Goutte-à-goutte",
			FarmingTechniques: []string{"Agriculture biologique", "Rotation des cultures", "Association de cultures"},
			Equipment:         []string{"Tracteur", "Système d'irrigation", "Outils manuels"},
			Certifications:    []string{"Certification Bio", "HACCP", "ISO 22000"},
		},
		MarketAnalysis: model.MarketAnalysis{
			TargetMarket:         "Marché local et export",
			Competition:          "Modérée",
			PricingStrategy:      "Prix premium pour produits bio",
			DistributionChannels: []string{"Marchés locaux", "Supermarchés", "Export"},
		},
		Risks:     riskTemplate(),
		Documents: []string{},

		FundingPercent: metrics.FundingPercent(record),
		InvestorCount:  len(record.Investors),
	}
}

// budgetBreakdown 按模板比例从目标金额派生预算明细
func budgetBreakdown(targetAmount float64) []model.BudgetLine {
	lines := make([]model.BudgetLine, 0, len(budgetTemplate))
	for _, tpl := range budgetTemplate {
		lines = append(lines, model.BudgetLine{
			Category:   tpl.category,
			Amount:     targetAmount * tpl.percentage / 100,
			Percentage: tpl.percentage,
		})
	}
	return lines
}

// revenueProjections 生成逐月营收预测：前两个月无产出，
// 之后线性爬升，最后一个月达到按预期回报调整后的目标金额
func revenueProjections(record *model.Project) []model.RevenueProjection {
	months := record.Duration
	if months <= 0 {
		return []model.RevenueProjection{}
	}

	total := record.TargetAmount * (1 + record.ExpectedReturn/100)
	rampStart := 2
	if months <= rampStart {
		rampStart = 0
	}

	out := make([]model.RevenueProjection, 0, months)
	for m := 1; m <= months; m++ {
		revenue := float64(0)
		if m > rampStart {
			revenue = total * float64(m-rampStart) / float64(months-rampStart)
		}
		out = append(out, model.RevenueProjection{
			Month:            fmt.Sprintf("Mois %d", m),
			ProjectedRevenue: revenue,
		})
	}
	return out
}

func riskTemplate() []model.Risk {
	return []model.Risk{
		{
			Risk:        "Sécheresse",
			Probability: model.RiskLevelMedium,
			Impact:      model.RiskLevelHigh,
			Mitigation:  "Système d'irrigation de secours et variétés résistantes",
		},
		{
			Risk:        "Fluctuation des prix",
			Probability: model.RiskLevelHigh,
			Impact:      model.RiskLevelMedium,
			Mitigation:  "Contrats d'achat à terme et diversification",
		},
		{
			Risk:        "Maladies des plantes",
			Probability: model.RiskLevelLow,
			Impact:      model.RiskLevelMedium,
			Mitigation:  "Surveillance régulière et traitements préventifs",
		},
	}
}
