package handler

import (
	"github.com/gin-gonic/gin"
	"mathew.com/nurserydirectory/internal/dto"
	"mathew.com/nurserydirectory/internal/service"
	"mathew.com/nurserydirectory/pkg/response"
)

type GroupHandler struct {
	service service.GroupService
}

func NewGroupHandler(service service.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

func (h *GroupHandler) ListPublic(c *gin.Context) {
	groups, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, groups)
}

func (h *GroupHandler) GetBySlug(c *gin.Context) {
	group, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, group)
}

func (h *GroupHandler) MyGroup(c *gin.Context) {
	ownerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	group, err := h.service.MyGroup(c.Request.Context(), ownerID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, group)
}

func (h *GroupHandler) SaveMyGroup(c *gin.Context) {
	ownerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.SaveGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	group, err := h.service.SaveMyGroup(c.Request.Context(), ownerID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, group)
}
