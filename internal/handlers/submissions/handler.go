package submissions

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codearena-2025.net/internal/config"
	"gitlab.com/codearena-2025.net/internal/core/ports/primary"
	"gitlab.com/codearena-2025.net/internal/core/services/submission"
	"gitlab.com/codearena-2025.net/internal/handlers/response"
)

// SubmissionHandler handles judging API requests
type SubmissionHandler struct {
	submissionService submission.ISubmissionService
	judgeCfg          *config.JudgeConfig
	logger            primary.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService submission.ISubmissionService, judgeCfg *config.JudgeConfig, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		judgeCfg:          judgeCfg,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler. Paths are
// relative to the /api subrouter.
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/problems/{problemId}/submissions", h.SubmitProgram).Methods("POST")
	router.HandleFunc("/submissions/{submissionId}/report", h.GetReport).Methods("GET")
}

// SubmitProgram judges an uploaded program against a problem's test cases.
// The response is always 200 with the report when judging ran, even if every
// test case failed; non-2xx is reserved for request-level failures.
func (h *SubmissionHandler) SubmitProgram(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	problemID, err := uuid.Parse(vars["problemId"])
	if err != nil {
		h.logger.Error("Invalid problem ID", "id", vars["problemId"])
		response.WriteError(w, response.ErrorMessage{Message: "Invalid problem ID", StatusCode: http.StatusBadRequest})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.judgeCfg.MaxProgramBytes)
	if err := r.ParseMultipartForm(h.judgeCfg.MaxProgramBytes); err != nil {
		h.logger.Error("Failed to parse multipart form", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid multipart request", StatusCode: http.StatusBadRequest})
		return
	}

	file, _, err := r.FormFile("program")
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Program file missing", StatusCode: http.StatusBadRequest})
		return
	}
	defer file.Close()

	source, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read program file", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Failed to read program file", StatusCode: http.StatusBadRequest})
		return
	}

	timeout := parseTimeout(r.FormValue("timeoutMs"), h.judgeCfg)
	userID := r.FormValue("userId")

	report, err := h.submissionService.ExecuteSubmission(r.Context(), userID, problemID, source, timeout)
	if err != nil {
		switch {
		case errors.Is(err, submission.ErrProblemNotFound):
			response.WriteError(w, response.ErrorMessage{Message: "Problem not found", StatusCode: http.StatusNotFound})
		case errors.Is(err, submission.ErrNoTestCases):
			response.WriteError(w, response.ErrorMessage{Message: "Problem has no test cases", StatusCode: http.StatusNotFound})
		default:
			h.logger.Error("Failed to judge submission", "problemId", problemID, "error", err)
			response.WriteError(w, response.ErrorMessage{Message: "Failed to judge submission", StatusCode: http.StatusInternalServerError})
		}
		return
	}

	response.WriteSuccess(w, report)
}

// GetReport retrieves the recorded report for a submission
func (h *SubmissionHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	submissionID, err := uuid.Parse(vars["submissionId"])
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid submission ID", StatusCode: http.StatusBadRequest})
		return
	}

	report, err := h.submissionService.GetReport(r.Context(), submissionID)
	if err != nil {
		if errors.Is(err, submission.ErrReportNotFound) {
			response.WriteError(w, response.ErrorMessage{Message: "Report not found", StatusCode: http.StatusNotFound})
			return
		}
		h.logger.Error("Failed to get report", "submissionId", submissionID, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Failed to get report", StatusCode: http.StatusInternalServerError})
		return
	}

	response.WriteSuccess(w, report)
}

// parseTimeout clamps a client-supplied timeout to the configured ceiling.
func parseTimeout(raw string, cfg *config.JudgeConfig) time.Duration {
	if raw == "" {
		return cfg.DefaultTimeout
	}
	ms, err := parsePositiveInt(raw)
	if err != nil {
		return cfg.DefaultTimeout
	}
	timeout := time.Duration(ms) * time.Millisecond
	if timeout > cfg.MaxTimeout {
		return cfg.MaxTimeout
	}
	return timeout
}
