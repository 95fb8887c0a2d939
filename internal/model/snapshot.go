package model

import (
	"time"

	"gorm.io/datatypes"
)

// SnapshotModel 持久化快照，单行存放整个项目集合的JSON文档
type SnapshotModel struct {
	Slot      string         `json:"slot" gorm:"primaryKey"`
	Payload   datatypes.JSON `json:"payload"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName 自定义表名
func (SnapshotModel) TableName() string {
	return "store_snapshot"
}
