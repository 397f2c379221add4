package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-matcher/internal/cache"
	"resume-matcher/internal/extract"
	"resume-matcher/internal/matching"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/telemetry"
	"resume-matcher/internal/shared/util"
)

// cacheKeyVersion changes whenever the cached result layout changes.
const cacheKeyVersion = "v1"

// Engine computes a compatibility report for two texts.
type Engine interface {
	Analyze(jobDescription, resumeText string) (matching.Result, error)
}

// Service runs analyses, caching results by input hash.
type Service struct {
	Engine   Engine
	Cache    cache.Cache
	CacheTTL time.Duration
	Now      func() time.Time
	NewID    func() string
}

// NewService constructs a Service. A nil cache disables caching.
func NewService(engine Engine, c cache.Cache, ttl time.Duration) *Service {
	if c == nil {
		c = cache.Noop{}
	}
	return &Service{
		Engine:   engine,
		Cache:    c,
		CacheTTL: ttl,
		Now:      func() time.Time { return time.Now().UTC() },
		NewID:    uuid.NewString,
	}
}

// Analyze compares a job description with resume text. Blank inputs yield an
// error matching matching.ErrInvalidInput.
func (s *Service) Analyze(ctx context.Context, jobDescription, resumeText string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	job := strings.TrimSpace(jobDescription)
	resume := strings.TrimSpace(resumeText)
	key := util.HashParts(cacheKeyVersion, job, resume)

	if job != "" && resume != "" {
		if res, ok := s.lookup(ctx, key); ok {
			analysis := toAnalysis(s.NewID(), res, true, s.Now())
			s.logCompleted(ctx, analysis, 0)
			return analysis, nil
		}
	}

	metrics.IncAnalysisStarted()
	start := time.Now()
	res, err := s.Engine.Analyze(job, resume)
	elapsed := time.Since(start)
	if err != nil {
		reason := failureEngine
		if errors.Is(err, matching.ErrInvalidInput) {
			reason = failureInvalidInput
		}
		metrics.IncAnalysisFailed(reason)
		return Analysis{}, err
	}
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDuration(elapsed)
	metrics.ObserveScore(res.Score)

	s.store(ctx, key, res)

	analysis := toAnalysis(s.NewID(), res, false, s.Now())
	s.logCompleted(ctx, analysis, elapsed)
	return analysis, nil
}

// Extract pulls resume text out of an uploaded file.
func (s *Service) Extract(ctx context.Context, fileName string, data []byte) (extract.Document, error) {
	doc, err := extract.Extract(ctx, data, fileName)
	if err != nil {
		mime := extract.DetectMIME(data, fileName)
		metrics.IncExtraction(mime, extractionOutcome(err))
		telemetry.Warn("resume.extract_failed", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"file_name":  fileName,
			"mime":       mime,
			"size_bytes": len(data),
			"error":      err.Error(),
		})
		return extract.Document{}, err
	}
	metrics.IncExtraction(doc.MIMEType, "ok")
	return doc, nil
}

// AnalyzeUpload extracts the resume file and analyzes it against the job
// description. The job description is checked first so a blank one fails
// before any parsing work.
func (s *Service) AnalyzeUpload(ctx context.Context, jobDescription, fileName string, data []byte) (Analysis, error) {
	if strings.TrimSpace(jobDescription) == "" {
		metrics.IncAnalysisFailed(failureInvalidInput)
		return Analysis{}, &matching.InvalidInputError{Field: matching.FieldJobDescription}
	}
	doc, err := s.Extract(ctx, fileName, data)
	if err != nil {
		return Analysis{}, err
	}
	analysis, err := s.Analyze(ctx, jobDescription, doc.Text)
	if err != nil {
		return Analysis{}, err
	}
	analysis.ResumeText = doc.Text
	return analysis, nil
}

// Ping reports whether the cache backend is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.Cache.Ping(ctx)
}

// CacheName identifies the cache backend.
func (s *Service) CacheName() string {
	return s.Cache.Name()
}

func (s *Service) lookup(ctx context.Context, key string) (matching.Result, bool) {
	raw, err := s.Cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			metrics.IncCache("miss")
		} else {
			metrics.IncCache("error")
			telemetry.Warn("analysis.cache_get_failed", map[string]any{
				"request_id": requestIDFromContext(ctx),
				"backend":    s.Cache.Name(),
				"error":      err.Error(),
			})
		}
		return matching.Result{}, false
	}

	var res matching.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		metrics.IncCache("error")
		telemetry.Warn("analysis.cache_decode_failed", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"error":      err.Error(),
		})
		return matching.Result{}, false
	}
	metrics.IncCache("hit")
	return res, true
}

func (s *Service) store(ctx context.Context, key string, res matching.Result) {
	raw, err := json.Marshal(res)
	if err != nil {
		telemetry.Error("analysis.cache_encode_failed", map[string]any{"error": err.Error()})
		return
	}
	if err := s.Cache.Set(ctx, key, raw, s.CacheTTL); err != nil {
		telemetry.Warn("analysis.cache_set_failed", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"backend":    s.Cache.Name(),
			"error":      err.Error(),
		})
	}
}

func (s *Service) logCompleted(ctx context.Context, a Analysis, elapsed time.Duration) {
	telemetry.Info("analysis.completed", map[string]any{
		"request_id":  requestIDFromContext(ctx),
		"analysis_id": a.ID,
		"score":       a.Score,
		"matched":     len(a.MatchedSkills),
		"missing":     len(a.MissingSkills),
		"cached":      a.Cached,
		"duration_ms": float64(elapsed.Microseconds()) / 1000.0,
	})
}

func extractionOutcome(err error) string {
	switch {
	case errors.Is(err, extract.ErrUnsupportedType):
		return "unsupported"
	case errors.Is(err, extract.ErrEmptyText):
		return "empty"
	default:
		return "failed"
	}
}
