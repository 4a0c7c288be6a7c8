package http

import (
	"encoding/json"
	"net/http"

	"github.com/clientdesk/clientdesk/internal/report/domain"
	"github.com/clientdesk/clientdesk/internal/report/service"
	"github.com/clientdesk/clientdesk/pkg/httpx"
	"github.com/clientdesk/clientdesk/pkg/slogx"
)

// ProjectsHandler handles project management and the admin overview.
type ProjectsHandler struct {
	LedgerService *service.LedgerService
}

// HandleCreate handles POST /v1/projects.
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	project, err := h.LedgerService.CreateProject(
		r.Context(),
		req.ClientID,
		req.Name,
		req.Budget,
		domain.ProjectStatus(req.Status),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, projectResponse(project, h.LedgerService.Currency))
}

// HandleList handles GET /v1/projects.
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	projects, err := h.LedgerService.ListProjects(ctx)
	if err != nil {
		log.Error("failed to list projects", "error", err)
		writeServiceError(w, err)
		return
	}

	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = projectResponse(p, h.LedgerService.Currency)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSetStatus handles PATCH /v1/projects/{id}: the explicit close
// override and reopen.
func (h *ProjectsHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")

	var req SetProjectStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	project, err := h.LedgerService.SetProjectStatus(r.Context(), projectID, domain.ProjectStatus(req.Status))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, projectResponse(project, h.LedgerService.Currency))
}

// HandleOverview handles GET /v1/overview.
func (h *ProjectsHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	summary, err := h.LedgerService.Overview(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, summaryResponse(summary, h.LedgerService.Currency))
}
