package model

import (
	"time"
)

// Investment 投资台账记录，创建后在本服务内只读
type Investment struct {
	Id        string `json:"id"`
	ProjectId string `json:"projectId"`

	// 项目信息快照
	ProjectTitle string `json:"projectTitle"`
	FarmerName   string `json:"farmerName"`
	Location     string `json:"location"`
	Culture      string `json:"culture"`
	Image        string `json:"image"`
	Description  string `json:"description"`

	// 投资信息
	InvestedAmount     float64 `json:"investedAmount"`
	TotalProjectAmount float64 `json:"totalProjectAmount"`
	ExpectedReturn     float64 `json:"expectedReturn"` // 百分比
	Duration           int     `json:"duration"`       // 月

	// 状态与进度，progress 表示项目执行进度，与筹款比例无关
	Status   ProjectStatus `json:"status"`
	Progress float64       `json:"progress"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	Updates []string `json:"updates"`

	// 风险评估
	RiskLevel RiskLevel `json:"riskLevel"`
	AIScore   int       `json:"aiScore"` // 0-100
}

// RiskLevel 风险等级
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"    // 低
	RiskLevelMedium RiskLevel = "medium" // 中
	RiskLevelHigh   RiskLevel = "high"   // 高
)
