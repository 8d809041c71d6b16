package handler

import (
	"github.com/gin-gonic/gin"
	"mathew.com/nurserydirectory/internal/service"
	"mathew.com/nurserydirectory/pkg/apperror"
	"mathew.com/nurserydirectory/pkg/response"
)

type SearchHandler struct {
	service service.SearchService
}

func NewSearchHandler(service service.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) Autocomplete(c *gin.Context) {
	result, err := h.service.Autocomplete(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *SearchHandler) SearchByCity(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		response.ResponseError(c, apperror.ErrBadRequest)
		return
	}

	result, err := h.service.SearchByCity(c.Request.Context(), city)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, result)
}
