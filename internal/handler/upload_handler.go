package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"mathew.com/nurserydirectory/pkg/apperror"
	"mathew.com/nurserydirectory/pkg/response"
	"mathew.com/nurserydirectory/pkg/storage"
)

// uploadFolders maps the client-facing folder name to the storage
// prefix. Anything else is rejected.
var uploadFolders = map[string]string{
	"logos":       "logos",
	"card-images": "card_images",
	"gallery":     "gallery",
}

type UploadHandler struct {
	imageStorage storage.ImageStorage
}

func NewUploadHandler(imageStorage storage.ImageStorage) *UploadHandler {
	return &UploadHandler{imageStorage: imageStorage}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	if h.imageStorage == nil {
		response.ResponseError(c, apperror.New(http.StatusServiceUnavailable, "image storage is not configured", apperror.ErrInternal))
		return
	}

	folder, ok := uploadFolders[c.PostForm("folder")]
	if !ok {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "unknown upload folder", apperror.ErrBadRequest))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "image file is required", apperror.ErrBadRequest))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	defer file.Close()

	url, err := h.imageStorage.UploadImage(c.Request.Context(), file, folder, fileHeader.Filename)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, gin.H{"url": url})
}

func (h *UploadHandler) Delete(c *gin.Context) {
	if h.imageStorage == nil {
		response.ResponseError(c, apperror.New(http.StatusServiceUnavailable, "image storage is not configured", apperror.ErrInternal))
		return
	}

	var input struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, bindError(err))
		return
	}

	if err := h.imageStorage.DeleteImage(c.Request.Context(), input.URL); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "image deleted"})
}
