package main

import (
	"log"

	"github.com/Angiecode225/TerraNobis-sub001/internal/config"
	"github.com/Angiecode225/TerraNobis-sub001/internal/database"
	"github.com/Angiecode225/TerraNobis-sub001/internal/ledger"
	"github.com/Angiecode225/TerraNobis-sub001/internal/logger"
	"github.com/Angiecode225/TerraNobis-sub001/internal/logic"
	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
	"github.com/Angiecode225/TerraNobis-sub001/internal/notify"
	"github.com/Angiecode225/TerraNobis-sub001/internal/router"
	"github.com/Angiecode225/TerraNobis-sub001/internal/scheduler"
	"github.com/Angiecode225/TerraNobis-sub001/internal/store"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志器
	level := logger.ParseLogLevel(cfg.Log.Level)
	if cfg.Log.Output == "file" {
		l, err := logger.NewWithFileRotation(level, cfg.Log.File)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		logger.SetDefaultLogger(l)
	}

	// 初始化数据库
	db, err := database.Init(cfg.Store)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化记录存储与投资台账
	st := store.New(db, cfg.Store.Slot)
	ld := ledger.New()

	// 初始化通知分发器
	notifier, err := notify.NewNotifier(cfg.Notify.PoolSize, notify.LogSink{})
	if err != nil {
		log.Fatalf("Failed to initialize notifier: %v", err)
	}
	defer notifier.Close()

	// 当前用户由配置提供
	currentUser := func() model.User {
		return model.User{Id: cfg.User.Id, Name: cfg.User.Name, Role: cfg.User.Role}
	}

	projectLogic := logic.NewProjectLogic(st, ld, notifier, currentUser)
	investmentLogic := logic.NewInvestmentLogic(ld)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(projectLogic, investmentLogic)

	// 启动定时任务
	manager := scheduler.Start(st, cfg)
	defer manager.Stop()

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
