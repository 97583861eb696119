package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/infra/http/middleware"
	"github.com/varunbhx/coachdesk/internal/store"
	"github.com/varunbhx/coachdesk/internal/usecase"
)

type SessionHandler struct {
	Store    *store.Memory
	Resolver *store.ClientResolver
	CreateUC *usecase.CreateSessionUseCase
}

func NewSessionHandler(s *store.Memory, resolver *store.ClientResolver, createUC *usecase.CreateSessionUseCase) *SessionHandler {
	return &SessionHandler{
		Store:    s,
		Resolver: resolver,
		CreateUC: createUC,
	}
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateSessionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	session, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordEntityCreated(string(entity.KindSession))
	writeJSON(w, http.StatusCreated, session)
}

type sessionView struct {
	entity.Session
	ClientName string `json:"client_name"`
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions := h.Store.Sessions()
	views := make([]sessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, sessionView{
			Session:    s,
			ClientName: h.Resolver.Resolve(s.ClientID).Name,
		})
	}
	writeJSON(w, http.StatusOK, views)
}
