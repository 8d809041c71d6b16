package handler

import (
	"github.com/gin-gonic/gin"
	"mathew.com/nurserydirectory/internal/dto"
	"mathew.com/nurserydirectory/internal/service"
	"mathew.com/nurserydirectory/pkg/response"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var input dto.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	result, err := h.service.Signup(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, result)
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var input dto.SigninInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	result, err := h.service.Signin(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	user, err := h.service.Me(c.Request.Context(), userID.String())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, user)
}
