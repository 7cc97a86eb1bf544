package handler

import (
	"net/http"

	"code_mentor/internal/app/service"
	"code_mentor/internal/common"

	"github.com/go-chi/chi/v5"
)

type ProblemHandler struct {
	problemService *service.ProblemService
}

func NewProblemHandler(problemService *service.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: problemService}
}

func (h *ProblemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/fetch", h.fetch)
}

// fetch accepts either a full problem URL or a bare slug in ?input=.
func (h *ProblemHandler) fetch(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")
	if input == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Query parameter 'input' is required")
		return
	}

	problem, err := h.problemService.Fetch(r.Context(), input)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problem)
}
