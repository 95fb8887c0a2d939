package router

import (
	"github.com/Angiecode225/TerraNobis-sub001/internal/handler"
	"github.com/Angiecode225/TerraNobis-sub001/internal/logic"
	"github.com/gin-gonic/gin"
)

func Setup(projectLogic *logic.ProjectLogic, investmentLogic *logic.InvestmentLogic) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "terranobis-funding-service",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 项目相关路由
		projectHandler := handler.NewProjectHandler(projectLogic)
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/stats", projectHandler.GetProjectStats)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/invest", projectHandler.InvestProject)
			projects.POST("/:id/contact", projectHandler.ContactFarmer)
			projects.POST("/:id/updates", projectHandler.AddProjectUpdate)
		}

		// 投资台账相关路由
		investmentHandler := handler.NewInvestmentHandler(investmentLogic)
		investments := v1.Group("/investments")
		{
			investments.GET("", investmentHandler.GetInvestments)
			investments.GET("/stats", investmentHandler.GetInvestmentStats)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
