package metrics

import (
	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
)

// 本包只包含对单条记录或记录集合的纯函数计算，不持有任何状态

// FundingPercent 计算筹款完成百分比。targetAmount 为0时返回0而不是NaN
func FundingPercent(p *model.Project) float64 {
	if p.TargetAmount <= 0 {
		return 0
	}
	return p.CurrentAmount / p.TargetAmount * 100
}

// ExpectedGain 计算预期收益金额
func ExpectedGain(investedAmount, expectedReturnPercent float64) float64 {
	return investedAmount * expectedReturnPercent / 100
}

// AverageReturn 计算平均预期回报率，空集合返回0
func AverageReturn(records []model.Investment) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, inv := range records {
		sum += inv.ExpectedReturn
	}
	return sum / float64(len(records))
}

// StatusLabel 状态显示标签，未知状态映射到固定兜底值
func StatusLabel(status model.ProjectStatus) string {
	switch status {
	case model.ProjectStatusActive:
		return "En cours"
	case model.ProjectStatusCompleted:
		return "Terminé"
	case model.ProjectStatusPending:
		return "En attente"
	case model.ProjectStatusCancelled:
		return "Annulé"
	default:
		return "Inconnu"
	}
}

// RiskLabel 风险等级显示标签
func RiskLabel(level model.RiskLevel) string {
	switch level {
	case model.RiskLevelLow:
		return "Faible"
	case model.RiskLevelMedium:
		return "Moyen"
	case model.RiskLevelHigh:
		return "Élevé"
	default:
		return "Inconnu"
	}
}

// ScoreBand AI评分档位
func ScoreBand(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 80:
		return "bon"
	case score >= 70:
		return "moyen"
	default:
		return "faible"
	}
}
