package query

import (
	"strings"

	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
)

// Filter 筛选词汇表。筛选不限于状态枚举，也允许语义谓词，
// 比如 high-return 表示预期回报不低于阈值
type Filter string

const (
	FilterAll        Filter = "all"
	FilterPending    Filter = "pending"
	FilterActive     Filter = "active"
	FilterCompleted  Filter = "completed"
	FilterCancelled  Filter = "cancelled"
	FilterHighReturn Filter = "high-return"
)

// 高回报谓词的阈值（百分比）
const highReturnThreshold = 25

// IsValid 检查筛选标签是否在词汇表内
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterPending, FilterActive, FilterCompleted, FilterCancelled, FilterHighReturn:
		return true
	}
	return false
}

// projectPredicates 每个筛选标签对应一个求值函数，新增标签不影响调用点
var projectPredicates = map[Filter]func(*model.Project) bool{
	FilterAll:        func(*model.Project) bool { return true },
	FilterPending:    func(p *model.Project) bool { return p.Status == model.ProjectStatusPending },
	FilterActive:     func(p *model.Project) bool { return p.Status == model.ProjectStatusActive },
	FilterCompleted:  func(p *model.Project) bool { return p.Status == model.ProjectStatusCompleted },
	FilterCancelled:  func(p *model.Project) bool { return p.Status == model.ProjectStatusCancelled },
	FilterHighReturn: func(p *model.Project) bool { return p.ExpectedReturn >= highReturnThreshold },
}

var investmentPredicates = map[Filter]func(*model.Investment) bool{
	FilterAll:        func(*model.Investment) bool { return true },
	FilterPending:    func(i *model.Investment) bool { return i.Status == model.ProjectStatusPending },
	FilterActive:     func(i *model.Investment) bool { return i.Status == model.ProjectStatusActive },
	FilterCompleted:  func(i *model.Investment) bool { return i.Status == model.ProjectStatusCompleted },
	FilterCancelled:  func(i *model.Investment) bool { return i.Status == model.ProjectStatusCancelled },
	FilterHighReturn: func(i *model.Investment) bool { return i.ExpectedReturn >= highReturnThreshold },
}

// Projects 按搜索词与筛选标签过滤项目集合。两个谓词按与关系组合，
// 输出保持输入顺序，空结果是正常返回而非错误。
// 词汇表之外的标签不匹配任何记录。
func Projects(records []model.Project, term string, filter Filter) []model.Project {
	pred, ok := projectPredicates[filter]
	if !ok {
		return []model.Project{}
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]model.Project, 0, len(records))
	for i := range records {
		p := &records[i]
		if !matchTerm(needle, p.Title, p.FarmerName, p.Location) {
			continue
		}
		if !pred(p) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

// Investments 按搜索词与筛选标签过滤投资台账
func Investments(records []model.Investment, term string, filter Filter) []model.Investment {
	pred, ok := investmentPredicates[filter]
	if !ok {
		return []model.Investment{}
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]model.Investment, 0, len(records))
	for i := range records {
		inv := &records[i]
		if !matchTerm(needle, inv.ProjectTitle, inv.FarmerName, inv.Location) {
			continue
		}
		if !pred(inv) {
			continue
		}
		out = append(out, *inv)
	}
	return out
}

// matchTerm 大小写不敏感的子串匹配，任一字段命中即可
func matchTerm(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
