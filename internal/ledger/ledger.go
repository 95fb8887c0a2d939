package ledger

import (
	"sync"
	"time"

	"github.com/Angiecode225/TerraNobis-sub001/internal/metrics"
	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
	"github.com/google/uuid"
)

// Ledger 投资台账。记录在投入资金时创建，之后只读，
// 本服务不提供修改或删除操作
type Ledger struct {
	mu          sync.Mutex
	investments []model.Investment
}

// New 创建台账并装入内置记录
func New() *Ledger {
	return &Ledger{investments: SeedInvestments()}
}

// List 返回台账记录，保持插入顺序
func (l *Ledger) List() []model.Investment {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Investment, len(l.investments))
	copy(out, l.investments)
	return out
}

// Record 在用户向项目投入资金时追加一条台账记录。
// 风险等级与AI评分由项目字段确定性派生
func (l *Ledger) Record(p *model.Project, investor *model.Investor) *model.Investment {
	now := time.Now()
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}

	inv := model.Investment{
		Id:                 uuid.NewString(),
		ProjectId:          p.Id,
		ProjectTitle:       p.Title,
		FarmerName:         p.FarmerName,
		Location:           p.Location,
		Culture:            p.Culture,
		Image:              image,
		Description:        p.Description,
		InvestedAmount:     investor.Amount,
		TotalProjectAmount: p.TargetAmount,
		ExpectedReturn:     p.ExpectedReturn,
		Duration:           p.Duration,
		Status:             p.Status,
		Progress:           0,
		StartDate:          now,
		EndDate:            now.AddDate(0, p.Duration, 0),
		Updates:            []string{},
		RiskLevel:          deriveRiskLevel(p.ExpectedReturn),
		AIScore:            deriveAIScore(p),
	}

	l.mu.Lock()
	l.investments = append(l.investments, inv)
	l.mu.Unlock()

	return &inv
}

// TotalInvested 已投资总额
func TotalInvested(records []model.Investment) float64 {
	var total float64
	for _, inv := range records {
		total += inv.InvestedAmount
	}
	return total
}

// TotalExpectedReturn 预期收益总额
func TotalExpectedReturn(records []model.Investment) float64 {
	var total float64
	for _, inv := range records {
		total += metrics.ExpectedGain(inv.InvestedAmount, inv.ExpectedReturn)
	}
	return total
}

// ActiveCount 进行中的投资数量
func ActiveCount(records []model.Investment) int {
	count := 0
	for _, inv := range records {
		if inv.Status == model.ProjectStatusActive {
			count++
		}
	}
	return count
}

// deriveRiskLevel 按预期回报率划分风险等级，回报越高风险越高
func deriveRiskLevel(expectedReturn float64) model.RiskLevel {
	switch {
	case expectedReturn >= 35:
		return model.RiskLevelHigh
	case expectedReturn >= 25:
		return model.RiskLevelMedium
	default:
		return model.RiskLevelLow
	}
}

// deriveAIScore 由筹款进度派生置信评分，上限100
func deriveAIScore(p *model.Project) int {
	score := 75 + int(metrics.FundingPercent(p))/4
	if score > 100 {
		score = 100
	}
	return score
}
