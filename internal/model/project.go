package model

import (
	"time"
)

// Project 农业众筹项目模型
type Project struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	// 基本信息
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Culture     string `json:"culture"` // 作物/类别

	// 农户信息
	FarmerId   string `json:"farmerId"`
	FarmerName string `json:"farmerName"`

	// 众筹信息
	TargetAmount   float64 `json:"targetAmount" binding:"required,min=0"`
	CurrentAmount  float64 `json:"currentAmount"`
	Duration       int     `json:"duration"`       // 月
	ExpectedReturn float64 `json:"expectedReturn"` // 百分比

	// 状态
	Status ProjectStatus `json:"status"`

	// 关联
	Images    []string        `json:"images"`
	Investors []Investor      `json:"investors"`
	Updates   []ProjectUpdate `json:"updates"`
}

// Investor 项目投资人记录，percentage 在投资时刻快照，之后不再重算
type Investor struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	Percentage float64   `json:"percentage"`
	InvestedAt time.Time `json:"investedAt"`
}

// ProjectUpdate 项目进展更新
type ProjectUpdate struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InvestedTotal 已投资总额
func (p *Project) InvestedTotal() float64 {
	var total float64
	for _, inv := range p.Investors {
		total += inv.Amount
	}
	return total
}

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusPending   ProjectStatus = "pending"   // 待开始
	ProjectStatusActive    ProjectStatus = "active"    // 进行中
	ProjectStatusCompleted ProjectStatus = "completed" // 已完成
	ProjectStatusCancelled ProjectStatus = "cancelled" // 已取消
)

// IsValid 检查状态是否合法
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPending, ProjectStatusActive, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}
