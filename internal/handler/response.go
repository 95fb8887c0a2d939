package handler

import (
	"errors"
	"net/http"

	"github.com/Angiecode225/TerraNobis-sub001/internal/store"
	"github.com/gin-gonic/gin"
)

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// statusFromError 按错误分类映射HTTP状态码
func statusFromError(err error) int {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	var nferr *store.NotFoundError
	if errors.As(err, &nferr) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
