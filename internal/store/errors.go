package store

import (
	"fmt"
)

// ValidationError 输入校验错误，由直接调用方决定如何呈现
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("参数校验失败: %s %s", e.Field, e.Reason)
}

// NotFoundError 目标记录不存在
type NotFoundError struct {
	Id string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("项目不存在: %s", e.Id)
}

// PersistenceError 持久化槽位不可写。写失败不回滚内存中的变更，
// 调用方需要向用户提示持久化状态不确定
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("持久化失败 (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
