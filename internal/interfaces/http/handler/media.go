package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/dicky/portfolio/internal/application/media"
	"github.com/gin-gonic/gin"
)

// MediaHandler accepts image uploads from the admin screens
type MediaHandler struct {
	BaseHandler
	media *media.Service
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(svc *media.Service) *MediaHandler {
	return &MediaHandler{media: svc}
}

// Upload stores the multipart "file" field under the optional "folder"
//
// @ID           uploadMedia
// @Summary      Upload an image
// @Tags         admin-media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file    formData  file    true   "Image file"
// @Param        folder  formData  string  false  "Target folder"
// @Success      201 {object} dto.Response{data=media.UploadResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/media [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "multipart field \"file\" is required")
		return
	}
	if limit := h.media.MaxSize(); limit > 0 && fh.Size > limit {
		h.HandleError(c, media.ErrFileTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.HandleError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()

	var r io.Reader = f
	if limit := h.media.MaxSize(); limit > 0 {
		r = io.LimitReader(f, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		h.HandleError(c, fmt.Errorf("read upload: %w", err))
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	resp, err := h.media.Upload(c.Request.Context(), media.UploadRequest{
		Folder:      c.PostForm("folder"),
		Filename:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Delete removes the stored file named by the "key" query parameter
//
// @ID           deleteMedia
// @Summary      Delete an uploaded file
// @Tags         admin-media
// @Produce      json
// @Param        key  query  string  true  "Storage key returned by upload"
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/media [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		h.BadRequest(c, "query parameter \"key\" is required")
		return
	}
	if err := h.media.Delete(c.Request.Context(), key); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
