package analyses

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/extract"
	"resume-matcher/internal/matching"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

const (
	defaultMaxBodyBytes   = 1 << 20
	defaultMaxUploadBytes = 10 << 20
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc            *Service
	MaxBodyBytes   int64
	MaxUploadBytes int64
}

// NewHandler constructs a Handler. Non-positive limits fall back to 1 MiB
// for JSON bodies and 10 MiB for uploads.
func NewHandler(svc *Service, maxBodyBytes, maxUploadBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxBodyBytes: maxBodyBytes, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", middleware.BodyLimit(h.MaxBodyBytes), h.analyze)
	rg.POST("/analyses/upload", middleware.BodyLimit(h.MaxUploadBytes), h.analyzeUpload)
	rg.POST("/resumes/extract", middleware.BodyLimit(h.MaxUploadBytes), h.extract)
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isTooLarge(err) {
			h.tooLarge(c, h.MaxBodyBytes)
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}
	if err := getValidator().Struct(req); err != nil {
		issues := validationIssues(err)
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, validationMessage(issues), issues)
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	analysis, err := h.Svc.Analyze(ctx, req.JobDescription, req.ResumeText)
	if err != nil {
		h.analysisError(c, err)
		return
	}

	c.Set(middleware.AnalysisIDKey, analysis.ID)
	c.Set(middleware.CachedKey, analysis.Cached)
	respond.OK(c, analysis)
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	if _, err := c.MultipartForm(); err != nil && isTooLarge(err) {
		h.tooLarge(c, h.MaxUploadBytes)
		return
	}
	jobDescription := c.PostForm("jobDescription")
	if strings.TrimSpace(jobDescription) == "" {
		h.analysisError(c, &matching.InvalidInputError{Field: matching.FieldJobDescription})
		return
	}
	fileName, data, ok := h.readUpload(c)
	if !ok {
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	analysis, err := h.Svc.AnalyzeUpload(ctx, jobDescription, fileName, data)
	if err != nil {
		h.analysisError(c, err)
		return
	}

	c.Set(middleware.AnalysisIDKey, analysis.ID)
	c.Set(middleware.CachedKey, analysis.Cached)
	respond.OK(c, analysis)
}

func (h *Handler) extract(c *gin.Context) {
	fileName, data, ok := h.readUpload(c)
	if !ok {
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	doc, err := h.Svc.Extract(ctx, fileName, data)
	if err != nil {
		h.analysisError(c, err)
		return
	}
	respond.OK(c, doc)
}

// readUpload reads the multipart "file" field. It writes the error response
// itself and reports false when the request cannot proceed.
func (h *Handler) readUpload(c *gin.Context) (string, []byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			h.tooLarge(c, h.MaxUploadBytes)
			return "", nil, false
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file is required", []fieldIssue{{Field: "file", Issue: "required"}})
		return "", nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return "", nil, false
	}
	return fileHeader.Filename, data, true
}

func (h *Handler) analysisError(c *gin.Context, err error) {
	var invalid *matching.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, invalid.Error(), []fieldIssue{{Field: invalid.Field, Issue: "required"}})
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusUnsupportedMediaType, ErrorCodeUnsupportedMedia, "Only PDF, DOCX and plain text resumes are supported", gin.H{"reason": err.Error()})
	case errors.Is(err, extract.ErrEmptyText):
		respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeEmptyText, "No text could be extracted from the file", nil)
	case errors.Is(err, extract.ErrParse):
		respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeExtraction, "The file could not be parsed", gin.H{"reason": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusServiceUnavailable, ErrorCodeUnavailable, "request canceled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to analyze resume", nil)
	}
}

func (h *Handler) tooLarge(c *gin.Context, limit int64) {
	respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodePayloadTooLarge, "payload too large", gin.H{"maxBytes": limit})
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "request body too large")
}

func validationMessage(issues []fieldIssue) string {
	if len(issues) == 0 {
		return "invalid request"
	}
	names := make([]string, 0, len(issues))
	for _, i := range issues {
		names = append(names, i.Field)
	}
	return strings.Join(names, ", ") + " is required"
}
