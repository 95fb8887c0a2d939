package handler

import (
	"net/http"

	"github.com/Angiecode225/TerraNobis-sub001/internal/logic"
	"github.com/Angiecode225/TerraNobis-sub001/internal/query"
	"github.com/Angiecode225/TerraNobis-sub001/internal/store"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(projectLogic *logic.ProjectLogic) *ProjectHandler {
	return &ProjectHandler{
		projectLogic: projectLogic,
	}
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input store.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 调用logic层创建项目
	project, err := h.projectLogic.CreateProject(input)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "项目创建成功",
		"project": ToProjectResponse(project),
	})
}

// GetProjects 获取项目列表，支持搜索词与筛选标签
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	term := c.Query("q")
	filter := query.Filter(c.DefaultQuery("filter", string(query.FilterAll)))

	projects := h.projectLogic.GetProjects(term, filter)

	c.JSON(http.StatusOK, gin.H{
		"projects": ToProjectResponseList(projects),
		"total":    len(projects),
	})
}

// GetProject 获取单个项目详情视图
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id := c.Param("id")

	// 调用logic层获取项目详情投影
	detailsView, err := h.projectLogic.GetProjectDetails(id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": detailsView})
}

// UpdateProject 更新项目
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id := c.Param("id")

	var patch store.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 调用logic层更新项目
	project, err := h.projectLogic.UpdateProject(id, patch)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "项目更新成功",
		"project": ToProjectResponse(project),
	})
}

// DeleteProject 删除项目
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id := c.Param("id")

	if err := h.projectLogic.DeleteProject(id); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "项目已删除"})
}

// InvestProject 向项目投入资金
func (h *ProjectHandler) InvestProject(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		InvestorName string  `json:"investorName"`
		Amount       float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	investment, err := h.projectLogic.Invest(id, body.InvestorName, body.Amount)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "投资成功",
		"investment": ToInvestmentResponse(investment),
	})
}

// ContactFarmer 联系项目农户
func (h *ProjectHandler) ContactFarmer(c *gin.Context) {
	id := c.Param("id")

	if err := h.projectLogic.ContactFarmer(id); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "联系请求已发送"})
}

// AddProjectUpdate 追加项目进展更新
func (h *ProjectHandler) AddProjectUpdate(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description"`
		Images      []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectLogic.AddProjectUpdate(id, body.Title, body.Description, body.Images)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "项目更新发布成功",
		"project": ToProjectResponse(project),
	})
}

// GetProjectStats 获取项目统计信息
func (h *ProjectHandler) GetProjectStats(c *gin.Context) {
	stats := h.projectLogic.GetProjectStats()

	c.JSON(http.StatusOK, gin.H{
		"data": stats,
	})
}
