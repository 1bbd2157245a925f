package urlcheck

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

const (
	msgNoURL          = "No URL provided"
	msgInvalidURL     = "Invalid URL format"
	msgCheckFailedErr = "URL check service temporarily unavailable"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) HandleCheckURL(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msgNoURL})
		return
	}

	res, err := h.svc.Check(r.Context(), req.URL)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, ErrInvalidFormat):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msgInvalidURL})
	default:
		log.Println("[urlcheck] check failed:", err)
		writeJSON(w, http.StatusInternalServerError, failureBody{
			Verdict: VerdictUnknown,
			Error:   msgCheckFailedErr,
			Details: err.Error(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
