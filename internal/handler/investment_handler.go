package handler

import (
	"net/http"

	"github.com/Angiecode225/TerraNobis-sub001/internal/logic"
	"github.com/Angiecode225/TerraNobis-sub001/internal/query"
	"github.com/gin-gonic/gin"
)

type InvestmentHandler struct {
	investmentLogic *logic.InvestmentLogic
}

func NewInvestmentHandler(investmentLogic *logic.InvestmentLogic) *InvestmentHandler {
	return &InvestmentHandler{
		investmentLogic: investmentLogic,
	}
}

// GetInvestments 获取投资列表，支持搜索词与筛选标签
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
	term := c.Query("q")
	filter := query.Filter(c.DefaultQuery("filter", string(query.FilterAll)))

	investments := h.investmentLogic.GetInvestments(term, filter)

	SuccessResponse(c, http.StatusOK, "获取投资列表成功", gin.H{
		"investments": ToInvestmentResponseList(investments),
		"total":       len(investments),
	})
}

// GetInvestmentStats 获取投资统计信息
func (h *InvestmentHandler) GetInvestmentStats(c *gin.Context) {
	stats := h.investmentLogic.GetInvestmentStats()

	SuccessResponse(c, http.StatusOK, "获取投资统计成功", stats)
}
