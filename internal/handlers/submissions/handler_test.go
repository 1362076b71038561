package submissions_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codearena-2025.net/internal/config"
	"gitlab.com/codearena-2025.net/internal/core/services/submission"
	"gitlab.com/codearena-2025.net/internal/domain"
	"gitlab.com/codearena-2025.net/internal/handlers/submissions"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeSubmissionService struct {
	report  *domain.JudgeReport
	err     error
	timeout time.Duration
}

func (f *fakeSubmissionService) ExecuteSubmission(ctx context.Context, userID string, problemID uuid.UUID, source []byte, timeout time.Duration) (*domain.JudgeReport, error) {
	f.timeout = timeout
	return f.report, f.err
}

func (f *fakeSubmissionService) GetReport(ctx context.Context, submissionID uuid.UUID) (*domain.JudgeReport, error) {
	return f.report, f.err
}

func testJudgeConfig() *config.JudgeConfig {
	return &config.JudgeConfig{
		InterpreterPath: "python3",
		DefaultTimeout:  5 * time.Second,
		MaxTimeout:      20 * time.Second,
		MaxProgramBytes: 1 << 20,
	}
}

func newRouter(svc submission.ISubmissionService) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	submissions.NewSubmissionHandler(svc, testJudgeConfig(), nopLogger{}).RegisterRoutes(api)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, programSource string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if programSource != "" {
		part, err := writer.CreateFormFile("program", "solution.py")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte(programSource)); err != nil {
			t.Fatal(err)
		}
	}
	for k, v := range fields {
		_ = writer.WriteField(k, v)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return body, writer.FormDataContentType()
}

func TestSubmitProgram_ReturnsReport(t *testing.T) {
	report := domain.NewJudgeReport(uuid.New(), []domain.TestCaseResult{
		{TestCaseID: uuid.New(), Passed: true},
		{TestCaseID: uuid.New(), Passed: false, Kind: domain.FailureWrongAnswer},
	})
	svc := &fakeSubmissionService{report: report}
	router := newRouter(svc)

	body, contentType := multipartBody(t, nil, "print(input())")
	url := fmt.Sprintf("/api/problems/%s/submissions", uuid.New())
	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	// Judging ran: 200 even though a test case failed.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var got domain.JudgeReport
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.PassedCount != 1 || got.TotalCount != 2 || got.Score != "1/2" {
		t.Errorf("report = %d/%d score %q, want 1/2", got.PassedCount, got.TotalCount, got.Score)
	}
	if svc.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want the 5s default", svc.timeout)
	}
}

func TestSubmitProgram_TimeoutClamped(t *testing.T) {
	svc := &fakeSubmissionService{report: domain.NewJudgeReport(uuid.New(), nil)}
	router := newRouter(svc)

	body, contentType := multipartBody(t, map[string]string{"timeoutMs": "999999"}, "pass")
	url := fmt.Sprintf("/api/problems/%s/submissions", uuid.New())
	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if svc.timeout != 20*time.Second {
		t.Errorf("timeout = %v, want clamped to 20s", svc.timeout)
	}
}

func TestSubmitProgram_MissingFile(t *testing.T) {
	router := newRouter(&fakeSubmissionService{})

	body, contentType := multipartBody(t, map[string]string{"userId": "u"}, "")
	url := fmt.Sprintf("/api/problems/%s/submissions", uuid.New())
	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitProgram_InvalidProblemID(t *testing.T) {
	router := newRouter(&fakeSubmissionService{})

	body, contentType := multipartBody(t, nil, "pass")
	req := httptest.NewRequest(http.MethodPost, "/api/problems/not-a-uuid/submissions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitProgram_ProblemNotFound(t *testing.T) {
	router := newRouter(&fakeSubmissionService{err: submission.ErrProblemNotFound})

	body, contentType := multipartBody(t, nil, "pass")
	url := fmt.Sprintf("/api/problems/%s/submissions", uuid.New())
	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetReport_NotFound(t *testing.T) {
	router := newRouter(&fakeSubmissionService{err: submission.ErrReportNotFound})

	url := fmt.Sprintf("/api/submissions/%s/report", uuid.New())
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
