package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/infra/http/middleware"
	"github.com/varunbhx/coachdesk/internal/store"
	"github.com/varunbhx/coachdesk/internal/usecase"
)

type LeadHandler struct {
	Store    *store.Memory
	CreateUC *usecase.CreateLeadUseCase
	MoveUC   *usecase.MoveLeadUseCase
}

func NewLeadHandler(s *store.Memory, createUC *usecase.CreateLeadUseCase, moveUC *usecase.MoveLeadUseCase) *LeadHandler {
	return &LeadHandler{
		Store:    s,
		CreateUC: createUC,
		MoveUC:   moveUC,
	}
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordEntityCreated(string(entity.KindLead))
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Leads())
}

type moveLeadRequest struct {
	Stage string `json:"stage"`
}

// Move is the drag-and-drop endpoint: the view tells us which column the
// card landed in and the state machine decides whether anything changes.
func (h *LeadHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be a number"})
		return
	}

	var req moveLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	out, err := h.MoveUC.Execute(r.Context(), id, entity.Stage(req.Stage))
	if err != nil {
		writeError(w, err)
		return
	}

	if out.Changed {
		middleware.RecordLeadMove(out.Stage)
	}
	writeJSON(w, http.StatusOK, out)
}
