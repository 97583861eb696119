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

type ClientHandler struct {
	Store    *store.Memory
	CreateUC *usecase.CreateClientUseCase
	DeleteUC *usecase.DeleteEntityUseCase
}

func NewClientHandler(s *store.Memory, createUC *usecase.CreateClientUseCase, deleteUC *usecase.DeleteEntityUseCase) *ClientHandler {
	return &ClientHandler{
		Store:    s,
		CreateUC: createUC,
		DeleteUC: deleteUC,
	}
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	client, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordEntityCreated(string(entity.KindClient))
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Clients())
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be a number"})
		return
	}

	client, ok := h.Store.ClientByID(id)
	if !ok {
		writeError(w, usecase.NotFoundError("client", id))
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be a number"})
		return
	}

	if err := h.DeleteUC.Execute(r.Context(), entity.KindClient, id); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordEntityDeleted(string(entity.KindClient))
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
