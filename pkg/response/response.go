package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 本包封装旧站点（Express 版本）确立的 JSON 线上契约。
// 前端（Next.js 管理后台与公开目录页）依赖这些精确形状，
// 因此列表接口返回裸数组，操作类接口返回 {success, message}，
// 不引入统一 code/data 信封。

// Result 操作类接口的响应结构
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      *int   `json:"id,omitempty"`
}

// ValidationResult 创建投稿的校验失败响应结构
type ValidationResult struct {
	Error    string   `json:"error"`
	Required []string `json:"required,omitempty"`
}

// ── 成功响应 ──

// OK 200 返回任意数据（列表接口返回裸数组）
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Success 200 操作成功
func Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Result{Success: true, Message: message})
}

// CreatedWithID 201 创建成功，附带新记录 ID
func CreatedWithID(c *gin.Context, message string, id int) {
	c.JSON(http.StatusCreated, Result{Success: true, Message: message, ID: &id})
}

// ── 错误响应 ──

// NotFound 404 记录不存在
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Result{Success: false, Message: message})
}

// BadRequest 400 请求格式错误
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ValidationResult{Error: message})
}

// MissingFields 400 必填字段缺失，逐一列出缺失字段名
func MissingFields(c *gin.Context, fields []string) {
	c.JSON(http.StatusBadRequest, ValidationResult{
		Error:    "Missing required fields",
		Required: fields,
	})
}

// Unauthorized 401 未认证或凭证错误
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Result{Success: false, Message: message})
}

// Forbidden 403 无权限
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Result{Success: false, Message: message})
}

// TooManyRequests 429 触发速率限制
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, Result{Success: false, Message: message})
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ValidationResult{Error: "Internal server error"})
}

// [自证通过] pkg/response/response.go
