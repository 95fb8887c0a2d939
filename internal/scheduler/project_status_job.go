package scheduler

import (
	"time"

	"github.com/Angiecode225/TerraNobis-sub001/internal/config"
	"github.com/Angiecode225/TerraNobis-sub001/internal/logger"
	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
	"github.com/Angiecode225/TerraNobis-sub001/internal/store"
	"github.com/go-co-op/gocron/v2"
)

// ProjectStatusJob 项目状态更新任务。状态推进走记录存储，
// 与其他写入者在同一个实例上线性化
type ProjectStatusJob struct {
	store  *store.Store
	config *config.Config
}

// NewProjectStatusJob 创建项目状态更新任务
func NewProjectStatusJob(st *store.Store, cfg *config.Config) *ProjectStatusJob {
	return &ProjectStatusJob{
		store:  st,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *ProjectStatusJob) GetName() string {
	return "project_status_updater"
}

// GetSchedule 获取调度配置
func (j *ProjectStatusJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *ProjectStatusJob) Execute() {
	logger.Debug("Starting project status update task")

	updatedCount := 0

	for _, project := range j.store.List() {
		var newStatus model.ProjectStatus
		shouldUpdate := false

		switch project.Status {
		case model.ProjectStatusPending:
			// 有资金进入后项目进入进行中
			if project.CurrentAmount > 0 {
				newStatus = model.ProjectStatusActive
				shouldUpdate = true
			}

		case model.ProjectStatusActive:
			// 达到目标金额后项目完成
			if project.CurrentAmount >= project.TargetAmount {
				newStatus = model.ProjectStatusCompleted
				shouldUpdate = true
			}
		}

		if shouldUpdate {
			if _, err := j.store.Update(project.Id, store.ProjectPatch{Status: &newStatus}); err != nil {
				logger.Error("Failed to update project %s status: %v", project.Id, err)
				continue
			}

			logger.Info("Updated project %s status from %s to %s",
				project.Id, project.Status, newStatus)
			updatedCount++
		}
	}

	if updatedCount > 0 {
		logger.Info("Project status update completed. Updated %d projects", updatedCount)
	}
}
