package analyses

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postFile(r http.Handler, path, fileName string, data []byte, fields map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if fileName != "" {
		fw, _ := mw.CreateFormFile("file", fileName)
		_, _ = fw.Write(data)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) respond.ErrorBody {
	t.Helper()
	var env respond.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error envelope: %v (body=%s)", err, w.Body.String())
	}
	return env.Error
}

func TestAnalyzeHandlerSuccess(t *testing.T) {
	h := NewHandler(newTestService(&countingEngine{}, nil), 0, 0)
	r := newTestRouter(h)

	w := postJSON(r, "/api/v1/analyses", map[string]string{
		"jobDescription": testJob,
		"resumeText":     testResume,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Score != 94 {
		t.Fatalf("expected score 94, got %d", got.Score)
	}
	if got.Rating.Label != "Excellent Match" {
		t.Fatalf("expected Excellent Match, got %q", got.Rating.Label)
	}
	if got.MissingSkills == nil || len(got.MissingSkills) != 0 {
		t.Fatalf("expected empty missing skills, got %#v", got.MissingSkills)
	}
	if !strings.Contains(w.Body.String(), `"missingSkills":[]`) {
		t.Fatalf("expected missingSkills to render as [], body=%s", w.Body.String())
	}
}

func TestAnalyzeHandlerValidation(t *testing.T) {
	h := NewHandler(newTestService(&countingEngine{}, nil), 0, 0)
	r := newTestRouter(h)

	cases := []struct {
		name    string
		body    any
		message string
	}{
		{"blank resume", map[string]string{"jobDescription": testJob, "resumeText": "  \n"}, "resumeText is required"},
		{"missing job", map[string]string{"resumeText": testResume}, "jobDescription is required"},
		{"both blank", map[string]string{}, "jobDescription, resumeText is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/api/v1/analyses", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			body := decodeError(t, w)
			if body.Code != ErrorCodeValidation {
				t.Fatalf("expected %s, got %s", ErrorCodeValidation, body.Code)
			}
			if body.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, body.Message)
			}
		})
	}
}

func TestAnalyzeHandlerMalformedJSON(t *testing.T) {
	r := newTestRouter(NewHandler(newTestService(&countingEngine{}, nil), 0, 0))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAnalyzeHandlerBodyTooLarge(t *testing.T) {
	r := newTestRouter(NewHandler(newTestService(&countingEngine{}, nil), 64, 0))

	w := postJSON(r, "/api/v1/analyses", map[string]string{
		"jobDescription": strings.Repeat("python ", 50),
		"resumeText":     testResume,
	})
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeError(t, w); body.Code != ErrorCodePayloadTooLarge {
		t.Fatalf("expected %s, got %s", ErrorCodePayloadTooLarge, body.Code)
	}
}

func TestAnalyzeUploadHandler(t *testing.T) {
	r := newTestRouter(NewHandler(newTestService(&countingEngine{}, nil), 0, 0))

	w := postFile(r, "/api/v1/analyses/upload", "resume.txt", []byte(testResume), map[string]string{
		"jobDescription": testJob,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ResumeText != testResume {
		t.Fatalf("expected resume text echoed, got %q", got.ResumeText)
	}
}

func TestAnalyzeUploadHandlerErrors(t *testing.T) {
	r := newTestRouter(NewHandler(newTestService(&countingEngine{}, nil), 0, 0))
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	cases := []struct {
		name     string
		fileName string
		data     []byte
		fields   map[string]string
		status   int
		code     string
	}{
		{"no file", "", nil, map[string]string{"jobDescription": testJob}, http.StatusBadRequest, ErrorCodeValidation},
		{"blank job", "resume.txt", []byte(testResume), nil, http.StatusBadRequest, ErrorCodeValidation},
		{"unsupported", "resume.png", png, map[string]string{"jobDescription": testJob}, http.StatusUnsupportedMediaType, ErrorCodeUnsupportedMedia},
		{"empty text", "resume.txt", []byte(" \n "), map[string]string{"jobDescription": testJob}, http.StatusUnprocessableEntity, ErrorCodeEmptyText},
		{"broken pdf", "resume.pdf", []byte("%PDF-1.4\nbroken"), map[string]string{"jobDescription": testJob}, http.StatusUnprocessableEntity, ErrorCodeExtraction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postFile(r, "/api/v1/analyses/upload", tc.fileName, tc.data, tc.fields)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if body := decodeError(t, w); body.Code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, body.Code)
			}
		})
	}
}

func TestAnalyzeUploadHandlerChecksJobBeforeFile(t *testing.T) {
	r := newTestRouter(NewHandler(newTestService(&countingEngine{}, nil), 0, 0))

	w := postFile(r, "/api/v1/analyses/upload", "", nil, map[string]string{"jobDescription": "  "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeError(t, w)
	if body.Code != ErrorCodeValidation || !strings.Contains(body.Message, "jobDescription") {
		t.Fatalf("expected jobDescription validation error, got %+v", body)
	}
}

func TestAnalyzeUploadHandlerTooLarge(t *testing.T) {
	r := newTestRouter(NewHandler(newTestService(&countingEngine{}, nil), 0, 256))

	w := postFile(r, "/api/v1/analyses/upload", "resume.txt", bytes.Repeat([]byte("python "), 200), map[string]string{
		"jobDescription": testJob,
	})
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", w.Code, w.Body.String())
	}
}

func TestExtractHandler(t *testing.T) {
	r := newTestRouter(NewHandler(newTestService(&countingEngine{}, nil), 0, 0))

	w := postFile(r, "/api/v1/resumes/extract", "resume.txt", []byte("Jane Smith\nGo developer"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var doc struct {
		FileName  string `json:"fileName"`
		MIMEType  string `json:"mimeType"`
		Text      string `json:"text"`
		WordCount int    `json:"wordCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.MIMEType != "text/plain" || doc.WordCount != 4 || doc.FileName != "resume.txt" {
		t.Fatalf("unexpected document %+v", doc)
	}
}
