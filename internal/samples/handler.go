package samples

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/server/respond"
)

// Handler serves the sample catalog.
type Handler struct {
	Catalog *Catalog
}

// NewHandler constructs a Handler.
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{Catalog: catalog}
}

// RegisterRoutes attaches sample routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/samples", h.list)
	rg.GET("/samples/jobs/:id", h.job)
	rg.GET("/samples/resumes/:id", h.resume)
}

type listResponse struct {
	Jobs    []Job    `json:"jobs"`
	Resumes []Resume `json:"resumes"`
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, listResponse{Jobs: h.Catalog.Jobs(), Resumes: h.Catalog.Resumes()})
}

func (h *Handler) job(c *gin.Context) {
	job, err := h.Catalog.Job(c.Param("id"))
	if err != nil {
		writeLookupError(c, err)
		return
	}
	respond.OK(c, job)
}

func (h *Handler) resume(c *gin.Context) {
	resume, err := h.Catalog.Resume(c.Param("id"))
	if err != nil {
		writeLookupError(c, err)
		return
	}
	respond.OK(c, resume)
}

func writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", err.Error(), gin.H{"id": c.Param("id")})
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
}
