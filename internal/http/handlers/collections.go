package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dashkit/internal/catalog"
	"dashkit/internal/domain"
	lq "dashkit/internal/listquery"
	"dashkit/internal/services"
)

type listResponse struct {
	Collection string   `json:"collection"`
	Query      lq.Query `json:"query"`
	lq.PageResult[any]
}

func (h *Handler) lister(c *gin.Context) (catalog.Lister, bool) {
	l, err := h.Catalog.Registry.Get(c.Param("name"))
	if err != nil {
		RespondDomainError(c, err)
		return nil, false
	}
	return l, true
}

func parseQuery(c *gin.Context) (lq.Query, bool) {
	q, err := lq.ParseValues(c.Request.URL.Query())
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "query", Msg: err.Error(), Err: err})
		return lq.Query{}, false
	}
	return q, true
}

// GET /api/collections
func (h *Handler) Collections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": h.Catalog.Registry.Descriptors()})
}

// GET /api/collections/:name
func (h *Handler) ListCollection(c *gin.Context) {
	l, ok := h.lister(c)
	if !ok {
		return
	}
	q, ok := parseQuery(c)
	if !ok {
		return
	}
	res, err := l.List(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Collection: l.Name(), Query: q, PageResult: res})
}

// GET /api/collections/:name/schema
func (h *Handler) CollectionSchema(c *gin.Context) {
	l, ok := h.lister(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, l.Describe())
}

// GET /api/collections/:name/stats
func (h *Handler) CollectionStats(c *gin.Context) {
	l, ok := h.lister(c)
	if !ok {
		return
	}
	cards, err := l.Stats(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": cards})
}

// GET /api/collections/:name/:id
func (h *Handler) GetRecord(c *gin.Context) {
	l, ok := h.lister(c)
	if !ok {
		return
	}
	rec, err := l.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GET /api/collections/:name/export.pdf?mode=results|all
func (h *Handler) ExportCollection(c *gin.Context) {
	mode := services.ExportMode(c.DefaultQuery("mode", string(services.ExportResults)))
	if !mode.Valid() {
		RespondDomainError(c, domain.ValidationError{Field: "mode", Msg: "mode must be results or all"})
		return
	}
	q, ok := parseQuery(c)
	if !ok {
		return
	}
	pdf, filename, err := h.export(c).PDF(c.Request.Context(), c.Param("name"), mode, q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(pdf)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// POST /api/collections/:name/refresh
func (h *Handler) RefreshCollection(c *gin.Context) {
	l, ok := h.lister(c)
	if !ok {
		return
	}
	if err := l.Refresh(c.Request.Context()); err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "refresh " + l.Name(), Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": l.Name(), "version": l.Version()})
}
