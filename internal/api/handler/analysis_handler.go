package handler

import (
	"encoding/json"
	"net/http"

	"code_mentor/internal/api/middleware"
	"code_mentor/internal/app/service"
	"code_mentor/internal/common"

	"github.com/go-chi/chi/v5"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

func (h *AnalysisHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Identity)
	r.Post("/", h.analyze)
	r.Get("/my-submissions", h.mySubmissions)
	r.Get("/stats", h.stats)
	r.Get("/recommendations", h.recommendations)
}

func (h *AnalysisHandler) analyze(w http.ResponseWriter, r *http.Request) {
	var req service.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.Email == "" {
		if email, ok := middleware.GetUserEmailFromContext(r.Context()); ok {
			req.Email = email
		}
	}

	resp, err := h.analysisService.Analyze(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AnalysisHandler) mySubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.analysisService.ListSubmissions(r.Context(), h.callerEmail(r))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, subs)
}

func (h *AnalysisHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analysisService.Stats(r.Context(), h.callerEmail(r))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, stats)
}

func (h *AnalysisHandler) recommendations(w http.ResponseWriter, r *http.Request) {
	result, err := h.analysisService.Recommendations(r.Context(), h.callerEmail(r))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"result": result})
}

// callerEmail prefers the explicit query parameter and falls back to the
// email claim of a verified token.
func (h *AnalysisHandler) callerEmail(r *http.Request) string {
	if email := r.URL.Query().Get("email"); email != "" {
		return email
	}
	if email, ok := middleware.GetUserEmailFromContext(r.Context()); ok {
		return email
	}
	return ""
}
