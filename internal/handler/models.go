package handler

import (
	"time"

	"github.com/Angiecode225/TerraNobis-sub001/internal/metrics"
	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
)

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// 项目相关响应模型

// ProjectResponse 项目响应模型
type ProjectResponse struct {
	Id             string                `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	FarmerId       string                `json:"farmerId"`
	FarmerName     string                `json:"farmerName"`
	Location       string                `json:"location"`
	Culture        string                `json:"culture"`
	TargetAmount   float64               `json:"targetAmount"`
	CurrentAmount  float64               `json:"currentAmount"`
	Duration       int                   `json:"duration"`
	ExpectedReturn float64               `json:"expectedReturn"`
	Status         string                `json:"status"`
	StatusLabel    string                `json:"statusLabel"`
	FundingPercent float64               `json:"fundingPercent"`
	InvestorCount  int                   `json:"investorCount"`
	Images         []string              `json:"images"`
	Investors      []model.Investor      `json:"investors"`
	Updates        []model.ProjectUpdate `json:"updates"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// InvestmentResponse 投资台账响应模型
type InvestmentResponse struct {
	Id                 string    `json:"id"`
	ProjectId          string    `json:"projectId"`
	ProjectTitle       string    `json:"projectTitle"`
	FarmerName         string    `json:"farmerName"`
	Location           string    `json:"location"`
	Culture            string    `json:"culture"`
	Image              string    `json:"image"`
	Description        string    `json:"description"`
	InvestedAmount     float64   `json:"investedAmount"`
	TotalProjectAmount float64   `json:"totalProjectAmount"`
	ExpectedReturn     float64   `json:"expectedReturn"`
	ExpectedGain       float64   `json:"expectedGain"`
	Duration           int       `json:"duration"`
	Status             string    `json:"status"`
	StatusLabel        string    `json:"statusLabel"`
	Progress           float64   `json:"progress"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	Updates            []string  `json:"updates"`
	RiskLevel          string    `json:"riskLevel"`
	RiskLabel          string    `json:"riskLabel"`
	AIScore            int       `json:"aiScore"`
	ScoreBand          string    `json:"scoreBand"`
}

// 转换函数

// ToProjectResponse 将项目记录转换为响应模型
func ToProjectResponse(project *model.Project) ProjectResponse {
	return ProjectResponse{
		Id:             project.Id,
		Title:          project.Title,
		Description:    project.Description,
		FarmerId:       project.FarmerId,
		FarmerName:     project.FarmerName,
		Location:       project.Location,
		Culture:        project.Culture,
		TargetAmount:   project.TargetAmount,
		CurrentAmount:  project.CurrentAmount,
		Duration:       project.Duration,
		ExpectedReturn: project.ExpectedReturn,
		Status:         string(project.Status),
		StatusLabel:    metrics.StatusLabel(project.Status),
		FundingPercent: metrics.FundingPercent(project),
		InvestorCount:  len(project.Investors),
		Images:         project.Images,
		Investors:      project.Investors,
		Updates:        project.Updates,
		CreatedAt:      project.CreatedAt,
	}
}

// ToProjectResponseList 将项目记录列表转换为响应模型列表
func ToProjectResponseList(projects []model.Project) []ProjectResponse {
	result := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		result[i] = ToProjectResponse(&project)
	}
	return result
}

// ToInvestmentResponse 将投资台账记录转换为响应模型
func ToInvestmentResponse(inv *model.Investment) InvestmentResponse {
	return InvestmentResponse{
		Id:                 inv.Id,
		ProjectId:          inv.ProjectId,
		ProjectTitle:       inv.ProjectTitle,
		FarmerName:         inv.FarmerName,
		Location:           inv.Location,
		Culture:            inv.Culture,
		Image:              inv.Image,
		Description:        inv.Description,
		InvestedAmount:     inv.InvestedAmount,
		TotalProjectAmount: inv.TotalProjectAmount,
		ExpectedReturn:     inv.ExpectedReturn,
		ExpectedGain:       metrics.ExpectedGain(inv.InvestedAmount, inv.ExpectedReturn),
		Duration:           inv.Duration,
		Status:             string(inv.Status),
		StatusLabel:        metrics.StatusLabel(inv.Status),
		Progress:           inv.Progress,
		StartDate:          inv.StartDate,
		EndDate:            inv.EndDate,
		Updates:            inv.Updates,
		RiskLevel:          string(inv.RiskLevel),
		RiskLabel:          metrics.RiskLabel(inv.RiskLevel),
		AIScore:            inv.AIScore,
		ScoreBand:          metrics.ScoreBand(inv.AIScore),
	}
}

// ToInvestmentResponseList 将投资台账列表转换为响应模型列表
func ToInvestmentResponseList(investments []model.Investment) []InvestmentResponse {
	result := make([]InvestmentResponse, len(investments))
	for i, inv := range investments {
		result[i] = ToInvestmentResponse(&inv)
	}
	return result
}
