package notify

import (
	"time"

	"github.com/Angiecode225/TerraNobis-sub001/internal/logger"
	"github.com/panjf2000/ants/v2"
)

// Kind 通知类型
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification 一条面向用户的通知
type Notification struct {
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sink 通知接收端，由UI层协作方实现
type Sink interface {
	Deliver(n Notification)
}

// LogSink 把通知写入日志的默认接收端
type LogSink struct{}

func (LogSink) Deliver(n Notification) {
	switch n.Kind {
	case KindError:
		logger.Warn("notification [%s] %s: %s", n.Kind, n.Title, n.Message)
	default:
		logger.Info("notification [%s] %s: %s", n.Kind, n.Title, n.Message)
	}
}

// Notifier 异步通知分发器。投递经由协程池执行，
// 调用方从不阻塞，投递失败只记日志
type Notifier struct {
	pool *ants.Pool
	sink Sink
}

// NewNotifier 创建通知分发器
func NewNotifier(poolSize int, sink Sink) (*Notifier, error) {
	if poolSize <= 0 {
		poolSize = 4
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	return &Notifier{pool: pool, sink: sink}, nil
}

// Push 发出一条通知，即发即忘
func (n *Notifier) Push(kind Kind, title, message string) {
	notification := Notification{
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}

	err := n.pool.Submit(func() {
		n.sink.Deliver(notification)
	})
	if err != nil {
		logger.Error("Failed to submit notification to pool: %v", err)
	}
}

// Success 成功通知
func (n *Notifier) Success(title, message string) {
	n.Push(KindSuccess, title, message)
}

// Error 失败通知
func (n *Notifier) Error(title, message string) {
	n.Push(KindError, title, message)
}

// Close 释放协程池
func (n *Notifier) Close() {
	n.pool.Release()
}
