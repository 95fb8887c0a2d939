package logic

import (
	"errors"

	"github.com/Angiecode225/TerraNobis-sub001/internal/details"
	"github.com/Angiecode225/TerraNobis-sub001/internal/ledger"
	"github.com/Angiecode225/TerraNobis-sub001/internal/metrics"
	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
	"github.com/Angiecode225/TerraNobis-sub001/internal/notify"
	"github.com/Angiecode225/TerraNobis-sub001/internal/query"
	"github.com/Angiecode225/TerraNobis-sub001/internal/store"
)

// UserProvider 返回当前用户，用于新建项目与投资的归属
type UserProvider func() model.User

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	store       *store.Store
	ledger      *ledger.Ledger
	notifier    *notify.Notifier
	currentUser UserProvider
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(st *store.Store, ld *ledger.Ledger, notifier *notify.Notifier, currentUser UserProvider) *ProjectLogic {
	return &ProjectLogic{
		store:       st,
		ledger:      ld,
		notifier:    notifier,
		currentUser: currentUser,
	}
}

// GetProjects 按搜索词与筛选标签获取项目列表
func (p *ProjectLogic) GetProjects(term string, filter query.Filter) []model.Project {
	return query.Projects(p.store.List(), term, filter)
}

// GetProjectDetails 获取项目详情视图
func (p *ProjectLogic) GetProjectDetails(id string) (*model.ProjectDetails, error) {
	record, err := p.store.Get(id)
	if err != nil {
		return nil, err
	}
	return details.Project(record), nil
}

// CreateProject 创建项目。未提供农户信息时归属到当前用户
func (p *ProjectLogic) CreateProject(input store.CreateProjectInput) (*model.Project, error) {
	if input.FarmerId == "" {
		user := p.currentUser()
		input.FarmerId = user.Id
		if input.FarmerName == "" {
			input.FarmerName = user.Name
		}
	}

	project, err := p.store.Create(input)
	if err != nil {
		if !p.degradedPersistence(err) {
			return nil, err
		}
	}

	p.notifier.Success("Projet ajouté", "Votre projet a été ajouté à la liste !")
	return project, nil
}

// UpdateProject 更新项目
func (p *ProjectLogic) UpdateProject(id string, patch store.ProjectPatch) (*model.Project, error) {
	project, err := p.store.Update(id, patch)
	if err != nil {
		if !p.degradedPersistence(err) {
			return nil, err
		}
	}

	p.notifier.Success("Projet modifié", "Le projet a été modifié.")
	return project, nil
}

// DeleteProject 删除项目
func (p *ProjectLogic) DeleteProject(id string) error {
	if err := p.store.Delete(id); err != nil {
		if !p.degradedPersistence(err) {
			return err
		}
	}

	p.notifier.Success("Projet supprimé", "Le projet a été supprimé.")
	return nil
}

// Invest 向项目投入资金并登记台账
func (p *ProjectLogic) Invest(id string, investorName string, amount float64) (*model.Investment, error) {
	if investorName == "" {
		investorName = p.currentUser().Name
	}

	project, investor, err := p.store.Invest(id, investorName, amount)
	if err != nil {
		if !p.degradedPersistence(err) {
			return nil, err
		}
	}

	investment := p.ledger.Record(project, investor)

	p.notifier.Success(
		"Investissement enregistré",
		"Votre demande d'investissement a été enregistrée avec succès. Vous recevrez une confirmation par email.",
	)
	return investment, nil
}

// ContactFarmer 联系项目农户
func (p *ProjectLogic) ContactFarmer(id string) error {
	if _, err := p.store.Get(id); err != nil {
		return err
	}

	p.notifier.Success("Contact initié", "Un message a été envoyé à l'agriculteur. Vous recevrez une réponse dans les plus brefs délais.")
	return nil
}

// AddProjectUpdate 追加项目进展更新
func (p *ProjectLogic) AddProjectUpdate(id string, title, description string, images []string) (*model.Project, error) {
	project, err := p.store.AddUpdate(id, title, description, images)
	if err != nil {
		if !p.degradedPersistence(err) {
			return nil, err
		}
	}

	p.notifier.Success("Mise à jour publiée", "La mise à jour du projet a été publiée.")
	return project, nil
}

// GetProjectStats 获取项目集合的统计信息
func (p *ProjectLogic) GetProjectStats() map[string]interface{} {
	projects := p.store.List()

	var totalRaised, totalTarget float64
	statusCounts := map[model.ProjectStatus]int{}
	investorNames := map[string]struct{}{}
	var fundingSum float64

	for i := range projects {
		project := &projects[i]
		totalRaised += project.CurrentAmount
		totalTarget += project.TargetAmount
		statusCounts[project.Status]++
		fundingSum += metrics.FundingPercent(project)
		for _, inv := range project.Investors {
			investorNames[inv.Name] = struct{}{}
		}
	}

	averageFunding := float64(0)
	if len(projects) > 0 {
		averageFunding = fundingSum / float64(len(projects))
	}

	return map[string]interface{}{
		"totalProjects":     len(projects),
		"pendingProjects":   statusCounts[model.ProjectStatusPending],
		"activeProjects":    statusCounts[model.ProjectStatusActive],
		"completedProjects": statusCounts[model.ProjectStatusCompleted],
		"cancelledProjects": statusCounts[model.ProjectStatusCancelled],
		"totalRaised":       totalRaised,
		"totalGoal":         totalTarget,
		"totalInvestors":    len(investorNames),
		"averageFunding":    averageFunding,
	}
}

// degradedPersistence 判断错误是否只是持久化降级。
// 写失败不回滚内存变更，这里通知用户持久化状态不确定并继续
func (p *ProjectLogic) degradedPersistence(err error) bool {
	var perr *store.PersistenceError
	if !errors.As(err, &perr) {
		return false
	}
	p.notifier.Error("Sauvegarde incertaine", "L'action a été appliquée mais n'a pas pu être sauvegardée durablement.")
	return true
}
