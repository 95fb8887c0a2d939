package logic

import (
	"github.com/Angiecode225/TerraNobis-sub001/internal/ledger"
	"github.com/Angiecode225/TerraNobis-sub001/internal/metrics"
	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
	"github.com/Angiecode225/TerraNobis-sub001/internal/query"
)

// InvestmentLogic 投资台账业务逻辑，只读侧聚合
type InvestmentLogic struct {
	ledger *ledger.Ledger
}

// NewInvestmentLogic 创建投资台账业务逻辑
func NewInvestmentLogic(ld *ledger.Ledger) *InvestmentLogic {
	return &InvestmentLogic{ledger: ld}
}

// GetInvestments 按搜索词与筛选标签获取投资列表
func (l *InvestmentLogic) GetInvestments(term string, filter query.Filter) []model.Investment {
	return query.Investments(l.ledger.List(), term, filter)
}

// GetInvestmentStats 获取投资台账统计信息
func (l *InvestmentLogic) GetInvestmentStats() map[string]interface{} {
	records := l.ledger.List()

	return map[string]interface{}{
		"totalInvestments":    len(records),
		"totalInvested":       ledger.TotalInvested(records),
		"totalExpectedReturn": ledger.TotalExpectedReturn(records),
		"activeInvestments":   ledger.ActiveCount(records),
		"averageReturn":       metrics.AverageReturn(records),
	}
}
