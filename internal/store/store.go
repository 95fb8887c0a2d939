package store

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Angiecode225/TerraNobis-sub001/internal/logger"
	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store 项目记录存储。内存中的集合是唯一权威数据，
// 每次成功变更都会在返回前把整个集合写入持久化槽位。
// 所有读写经由互斥锁在单个实例上线性化。
type Store struct {
	mu       sync.Mutex
	db       *gorm.DB
	slot     string
	projects []model.Project
}

// New 创建记录存储并从持久化槽位恢复。槽位缺失或不可解析时
// 回退到种子数据，任何情况下都不返回错误。
func New(db *gorm.DB, slot string) *Store {
	s := &Store{db: db, slot: slot}
	s.load()
	return s
}

// load 从持久化槽位加载项目集合
func (s *Store) load() {
	var snap model.SnapshotModel
	err := s.db.First(&snap, "slot = ?", s.slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info("No snapshot found for slot %s, seeding store", s.slot)
		} else {
			logger.Warn("Failed to read snapshot for slot %s, falling back to seed data: %v", s.slot, err)
		}
		s.projects = SeedProjects()
		return
	}

	var projects []model.Project
	if err := json.Unmarshal([]byte(snap.Payload), &projects); err != nil {
		// 槽位损坏与首次运行不同，需要在日志中区分
		logger.Warn("Snapshot for slot %s is unparsable, falling back to seed data: %v", s.slot, err)
		s.projects = SeedProjects()
		return
	}

	logger.Info("Loaded %d projects from slot %s", len(projects), s.slot)
	s.projects = projects
}

// persistLocked 把当前集合整体写入槽位，调用方必须持有锁
func (s *Store) persistLocked(op string) error {
	payload, err := json.Marshal(s.projects)
	if err != nil {
		return &PersistenceError{Op: op, Err: err}
	}

	snap := model.SnapshotModel{
		Slot:      s.slot,
		Payload:   datatypes.JSON(payload),
		UpdatedAt: time.Now(),
	}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&snap).Error; err != nil {
		logger.Error("Failed to persist snapshot for slot %s: %v", s.slot, err)
		return &PersistenceError{Op: op, Err: err}
	}

	return nil
}

// List 返回当前集合，保持插入顺序，新建的记录排在最前
func (s *Store) List() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Get 获取单个项目
func (s *Store) Get(id string) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, &NotFoundError{Id: id}
	}
	p := s.projects[idx]
	return &p, nil
}

// CreateProjectInput 创建项目的输入字段
type CreateProjectInput struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Culture        string   `json:"culture"`
	TargetAmount   float64  `json:"targetAmount"`
	Duration       int      `json:"duration"`
	ExpectedReturn float64  `json:"expectedReturn"`
	FarmerId       string   `json:"farmerId"`
	FarmerName     string   `json:"farmerName"`
	Images         []string `json:"images"`
}

// Create 创建项目。新记录插入到集合头部，状态从 pending 开始。
// 持久化失败时内存变更保留，记录与 PersistenceError 一起返回。
func (s *Store) Create(input CreateProjectInput) (*model.Project, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project := model.Project{
		Id:             uuid.NewString(),
		Title:          input.Title,
		Description:    input.Description,
		Location:       input.Location,
		Culture:        input.Culture,
		TargetAmount:   input.TargetAmount,
		CurrentAmount:  0,
		Duration:       input.Duration,
		ExpectedReturn: input.ExpectedReturn,
		Status:         model.ProjectStatusPending,
		FarmerId:       input.FarmerId,
		FarmerName:     input.FarmerName,
		Images:         input.Images,
		Investors:      []model.Investor{},
		Updates:        []model.ProjectUpdate{},
		CreatedAt:      time.Now(),
	}

	s.projects = append([]model.Project{project}, s.projects...)

	err := s.persistLocked("create")
	return &project, err
}

// ProjectPatch 部分更新。非nil字段替换原值，nil字段保持不变
type ProjectPatch struct {
	Title          *string              `json:"title"`
	Description    *string              `json:"description"`
	Location       *string              `json:"location"`
	Culture        *string              `json:"culture"`
	TargetAmount   *float64             `json:"targetAmount"`
	CurrentAmount  *float64             `json:"currentAmount"`
	Duration       *int                 `json:"duration"`
	ExpectedReturn *float64             `json:"expectedReturn"`
	Status         *model.ProjectStatus `json:"status"`
	FarmerName     *string              `json:"farmerName"`
	Images         *[]string            `json:"images"`
}

// Update 浅合并更新项目字段
func (s *Store) Update(id string, patch ProjectPatch) (*model.Project, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, &NotFoundError{Id: id}
	}

	p := &s.projects[idx]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Culture != nil {
		p.Culture = *patch.Culture
	}
	if patch.TargetAmount != nil {
		p.TargetAmount = *patch.TargetAmount
	}
	if patch.CurrentAmount != nil {
		p.CurrentAmount = *patch.CurrentAmount
	}
	if patch.Duration != nil {
		p.Duration = *patch.Duration
	}
	if patch.ExpectedReturn != nil {
		p.ExpectedReturn = *patch.ExpectedReturn
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.FarmerName != nil {
		p.FarmerName = *patch.FarmerName
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}

	err := s.persistLocked("update")
	updated := *p
	return &updated, err
}

// Delete 删除项目。删除不具备幂等性，对同一id的第二次删除返回 NotFoundError
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return &NotFoundError{Id: id}
	}

	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)

	return s.persistLocked("delete")
}

// Invest 向项目追加一笔投资。投资人的 percentage 以投资时刻的
// targetAmount 为基数快照，之后不再重算
func (s *Store) Invest(id string, investorName string, amount float64) (*model.Project, *model.Investor, error) {
	if amount <= 0 {
		return nil, nil, &ValidationError{Field: "amount", Reason: "必须大于0"}
	}
	if strings.TrimSpace(investorName) == "" {
		return nil, nil, &ValidationError{Field: "investorName", Reason: "不能为空"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, nil, &NotFoundError{Id: id}
	}

	p := &s.projects[idx]
	if p.InvestedTotal()+amount > p.TargetAmount {
		return nil, nil, &ValidationError{Field: "amount", Reason: "投资总额不能超过目标金额"}
	}

	percentage := float64(0)
	if p.TargetAmount > 0 {
		percentage = amount / p.TargetAmount * 100
	}

	investor := model.Investor{
		Id:         uuid.NewString(),
		Name:       investorName,
		Amount:     amount,
		Percentage: percentage,
		InvestedAt: time.Now(),
	}

	p.Investors = append(p.Investors, investor)
	p.CurrentAmount += amount

	err := s.persistLocked("invest")
	updated := *p
	return &updated, &investor, err
}

// AddUpdate 追加一条项目进展更新
func (s *Store) AddUpdate(id string, title, description string, images []string) (*model.Project, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "不能为空"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, &NotFoundError{Id: id}
	}

	p := &s.projects[idx]
	p.Updates = append(p.Updates, model.ProjectUpdate{
		Id:          uuid.NewString(),
		Title:       title,
		Description: description,
		Images:      images,
		CreatedAt:   time.Now(),
	})

	err := s.persistLocked("add_update")
	updated := *p
	return &updated, err
}

// indexLocked 查找项目下标，调用方必须持有锁
func (s *Store) indexLocked(id string) int {
	for i := range s.projects {
		if s.projects[i].Id == id {
			return i
		}
	}
	return -1
}

// validateCreate 校验创建输入
func validateCreate(input CreateProjectInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return &ValidationError{Field: "title", Reason: "不能为空"}
	}
	if strings.TrimSpace(input.Location) == "" {
		return &ValidationError{Field: "location", Reason: "不能为空"}
	}
	if strings.TrimSpace(input.Culture) == "" {
		return &ValidationError{Field: "culture", Reason: "不能为空"}
	}
	if strings.TrimSpace(input.FarmerName) == "" {
		return &ValidationError{Field: "farmerName", Reason: "不能为空"}
	}
	if input.TargetAmount <= 0 {
		return &ValidationError{Field: "targetAmount", Reason: "必须大于0"}
	}
	if input.Duration <= 0 {
		return &ValidationError{Field: "duration", Reason: "必须大于0"}
	}
	if input.ExpectedReturn < 0 {
		return &ValidationError{Field: "expectedReturn", Reason: "不能为负数"}
	}
	return nil
}

// validatePatch 校验更新输入
func validatePatch(patch ProjectPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return &ValidationError{Field: "title", Reason: "不能为空"}
	}
	if patch.TargetAmount != nil && *patch.TargetAmount <= 0 {
		return &ValidationError{Field: "targetAmount", Reason: "必须大于0"}
	}
	if patch.CurrentAmount != nil && *patch.CurrentAmount < 0 {
		return &ValidationError{Field: "currentAmount", Reason: "不能为负数"}
	}
	if patch.Duration != nil && *patch.Duration <= 0 {
		return &ValidationError{Field: "duration", Reason: "必须大于0"}
	}
	if patch.ExpectedReturn != nil && *patch.ExpectedReturn < 0 {
		return &ValidationError{Field: "expectedReturn", Reason: "不能为负数"}
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return &ValidationError{Field: "status", Reason: "状态不合法"}
	}
	return nil
}
