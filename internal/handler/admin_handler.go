package handler

import (
	"github.com/gin-gonic/gin"
	"mathew.com/nurserydirectory/internal/dto"
	"mathew.com/nurserydirectory/internal/service"
	"mathew.com/nurserydirectory/pkg/response"
)

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	users, err := h.service.ListUsers(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, users)
}

func (h *AdminHandler) ListOwners(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	owners, err := h.service.ListOwners(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, owners)
}

func (h *AdminHandler) ListPendingUsers(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	users, err := h.service.ListPendingUsers(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, users)
}

func (h *AdminHandler) ApproveUser(c *gin.Context) {
	user, err := h.service.ApproveUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, user)
}

func (h *AdminHandler) RejectUser(c *gin.Context) {
	if err := h.service.RejectUser(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "user rejected"})
}

func (h *AdminHandler) ListGroups(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	groups, err := h.service.ListGroups(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, groups)
}

func (h *AdminHandler) UpdateGroup(c *gin.Context) {
	var input dto.AdminUpdateGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	group, err := h.service.UpdateGroup(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, group)
}

func (h *AdminHandler) ToggleGroupActive(c *gin.Context) {
	group, err := h.service.ToggleGroupActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, group)
}

func (h *AdminHandler) DeleteGroup(c *gin.Context) {
	if err := h.service.DeleteGroup(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "group deleted"})
}

func (h *AdminHandler) ListNurseries(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	nurseries, err := h.service.ListNurseries(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, nurseries)
}

func (h *AdminHandler) ToggleNurseryApproved(c *gin.Context) {
	nursery, err := h.service.ToggleNurseryApproved(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, nursery)
}

func (h *AdminHandler) DeleteNursery(c *gin.Context) {
	if err := h.service.DeleteNursery(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "nursery deleted"})
}

func (h *AdminHandler) ListReviews(c *gin.Context) {
	var query dto.ReviewListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	result, err := h.service.ListReviews(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AdminHandler) ApproveReview(c *gin.Context) {
	review, err := h.service.ApproveReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, review)
}

func (h *AdminHandler) RejectReview(c *gin.Context) {
	var input dto.RejectReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	review, err := h.service.RejectReview(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, review)
}

func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, stats)
}

func (h *AdminHandler) MonthlyUserStats(c *gin.Context) {
	stats, err := h.service.MonthlyUserStats(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, stats)
}

func (h *AdminHandler) MonthlyReviewStats(c *gin.Context) {
	stats, err := h.service.MonthlyReviewStats(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, stats)
}
