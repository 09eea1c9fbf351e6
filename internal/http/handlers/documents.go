package handlers

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"dashkit/internal/domain"
	"dashkit/internal/domain/models"
	"dashkit/internal/http/middleware"
)

// GET /api/collections/:name/:id/documents
func (h *Handler) ListDocuments(c *gin.Context) {
	name, id := c.Param("name"), c.Param("id")
	docs, err := h.Docs.List(c.Request.Context(), name, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs, "limits": h.Docs.Limits(name)})
}

// POST /api/collections/:name/:id/documents (multipart, field "files")
func (h *Handler) UploadDocuments(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "files", Msg: "multipart form expected", Err: err})
		return
	}
	files := form.File["files"]
	uploads := make([]models.Upload, 0, len(files))
	for _, f := range files {
		ct := f.Header.Get("Content-Type")
		if ct == "" || ct == "application/octet-stream" {
			if byExt := mime.TypeByExtension(filepath.Ext(f.Filename)); byExt != "" {
				ct = byExt
			}
		}
		uploads = append(uploads, models.Upload{Name: f.Filename, ContentType: ct, Size: f.Size})
	}
	rc := middleware.CurrentUser(c)
	added, err := h.Docs.Add(c.Request.Context(), c.Param("name"), c.Param("id"), uploads, rc.Username)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"documents": added})
}

// DELETE /api/collections/:name/:id/documents/:docID
func (h *Handler) DeleteDocument(c *gin.Context) {
	if err := h.Docs.Remove(c.Request.Context(), c.Param("name"), c.Param("id"), c.Param("docID")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
