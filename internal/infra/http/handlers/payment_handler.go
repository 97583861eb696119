package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/infra/http/middleware"
	"github.com/varunbhx/coachdesk/internal/store"
	"github.com/varunbhx/coachdesk/internal/usecase"
)

type PaymentHandler struct {
	Store    *store.Memory
	Resolver *store.ClientResolver
	CreateUC *usecase.CreatePaymentUseCase
}

func NewPaymentHandler(s *store.Memory, resolver *store.ClientResolver, createUC *usecase.CreatePaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		Store:    s,
		Resolver: resolver,
		CreateUC: createUC,
	}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreatePaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	payment, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordEntityCreated(string(entity.KindPayment))
	writeJSON(w, http.StatusCreated, payment)
}

type paymentView struct {
	entity.Payment
	ClientName string `json:"client_name"`
}

// List joins each payment to its client through the resolver, so rows for
// deleted clients still render with the sentinel name.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	payments := h.Store.Payments()
	views := make([]paymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, paymentView{
			Payment:    p,
			ClientName: h.Resolver.Resolve(p.ClientID).Name,
		})
	}
	writeJSON(w, http.StatusOK, views)
}
