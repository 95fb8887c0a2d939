package model

// ProjectDetails 项目详情视图模型，在读取时合成，不做持久化
type ProjectDetails struct {
	Project

	// 农户补充信息
	FarmerAvatar string `json:"farmerAvatar"`
	FarmerBio    string `json:"farmerBio"`

	// 补充章节
	FinancialPlan    FinancialPlan    `json:"financialPlan"`
	TechnicalDetails TechnicalDetails `json:"technicalDetails"`
	MarketAnalysis   MarketAnalysis   `json:"marketAnalysis"`
	Risks            []Risk           `json:"risks"`
	Documents        []string         `json:"documents"`

	// 派生数值，与源记录在调用时刻保持一致
	FundingPercent float64 `json:"fundingPercent"`
	InvestorCount  int     `json:"investorCount"`
}

// FinancialPlan 财务计划
type FinancialPlan struct {
	BudgetBreakdown    []BudgetLine        `json:"budgetBreakdown"`
	RevenueProjections []RevenueProjection `json:"revenueProjections"`
}

// BudgetLine 预算明细行，全部行的 percentage 合计应为 100（允许舍入误差）
type BudgetLine struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// RevenueProjection 月度营收预测
type RevenueProjection struct {
	Month            string  `json:"month"`
	ProjectedRevenue float64 `json:"projectedRevenue"`
}

// TechnicalDetails 技术方案
type TechnicalDetails struct {
	SoilType          string   `json:"soilType"`
	IrrigationSystem  string   `json:"irrigationSystem"`
	FarmingTechniques []string `json:"farmingTechniques"`
	Equipment         []string `json:"equipment"`
	Certifications    []string `json:"certifications"`
}

// MarketAnalysis 市场分析
type MarketAnalysis struct {
	TargetMarket         string   `json:"targetMarket"`
	Competition          string   `json:"competition"`
	PricingStrategy      string   `json:"pricingStrategy"`
	DistributionChannels []string `json:"distributionChannels"`
}

// Risk 风险条目
type Risk struct {
	Risk        string    `json:"risk"`
	Probability RiskLevel `json:"probability"`
	Impact      RiskLevel `json:"impact"`
	Mitigation  string    `json:"mitigation"`
}
