package handler

import (
	"github.com/gin-gonic/gin"
	"mathew.com/nurserydirectory/internal/dto"
	"mathew.com/nurserydirectory/internal/service"
	"mathew.com/nurserydirectory/pkg/response"
)

type NurseryHandler struct {
	service service.NurseryService
}

func NewNurseryHandler(service service.NurseryService) *NurseryHandler {
	return &NurseryHandler{service: service}
}

func (h *NurseryHandler) ListPublic(c *gin.Context) {
	var query dto.PublicNurseryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	nurseries, meta, err := h.service.ListPublic(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, gin.H{"nurseries": nurseries, "pagination": meta})
}

func (h *NurseryHandler) GetBySlug(c *gin.Context) {
	nursery, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, nursery)
}

func (h *NurseryHandler) Preview(c *gin.Context) {
	ownerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	nursery, err := h.service.PreviewBySlug(c.Request.Context(), c.Param("slug"), ownerID, response.GetRole(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, nursery)
}

func (h *NurseryHandler) MyNurseries(c *gin.Context) {
	ownerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	nurseries, err := h.service.MyNurseries(c.Request.Context(), ownerID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, nurseries)
}

func (h *NurseryHandler) Create(c *gin.Context) {
	ownerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.CreateNurseryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	nursery, err := h.service.Create(c.Request.Context(), ownerID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, nursery)
}

func (h *NurseryHandler) Update(c *gin.Context) {
	actorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.UpdateNurseryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	nursery, err := h.service.Update(c.Request.Context(), actorID, response.GetRole(c), c.Param("id"), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, nursery)
}

func (h *NurseryHandler) Delete(c *gin.Context) {
	actorID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, response.GetRole(c), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "nursery deleted"})
}
