package handler

import (
	"github.com/gin-gonic/gin"
	"mathew.com/nurserydirectory/internal/service"
	"mathew.com/nurserydirectory/pkg/response"
)

type PresenceHandler struct {
	service service.PresenceService
}

func NewPresenceHandler(service service.PresenceService) *PresenceHandler {
	return &PresenceHandler{service: service}
}

func (h *PresenceHandler) Heartbeat(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Heartbeat(c.Request.Context(), userID); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "ok"})
}
