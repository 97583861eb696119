package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/varunbhx/coachdesk/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the use-case error taxonomy onto HTTP statuses:
// validation 400, not found 404, unsupported 405, terminal stage 409,
// anything technical 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := ""

	if usecase.IsDomainError(err) {
		code = usecase.DomainErrorCode(err)
		switch code {
		case usecase.CodeValidation:
			status = http.StatusBadRequest
		case usecase.CodeNotFound:
			status = http.StatusNotFound
		case usecase.CodeUnsupported:
			status = http.StatusMethodNotAllowed
		case usecase.CodeStageFinal:
			status = http.StatusConflict
		default:
			status = http.StatusUnprocessableEntity
		}
	}

	writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}
