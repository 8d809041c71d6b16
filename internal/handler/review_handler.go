package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"mathew.com/nurserydirectory/internal/dto"
	"mathew.com/nurserydirectory/internal/service"
	"mathew.com/nurserydirectory/pkg/response"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(service service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Submit accepts reviews from anyone. Signed-in submitters get their
// account attached; anonymous ones are rate limited by client IP.
func (h *ReviewHandler) Submit(c *gin.Context) {
	var input dto.SubmitReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	var userID *uuid.UUID
	callerKey := "ip:" + c.ClientIP()
	if id, err := response.GetUserID(c); err == nil {
		userID = &id
		callerKey = "user:" + id.String()
	}

	review, err := h.service.Submit(c.Request.Context(), callerKey, userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, review)
}

func (h *ReviewHandler) MyNurseryReviews(c *gin.Context) {
	ownerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	result, err := h.service.MyNurseryReviews(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, result)
}
