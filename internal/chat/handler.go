package chat

import (
	"encoding/json"
	"log"
	"net/http"
)

const (
	msgNoMessage    = "No message provided"
	msgUpstreamFail = "OpenAI request failed"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msgNoMessage})
		return
	}

	reply, err := h.svc.Reply(r.Context(), req.Message)
	if err != nil {
		log.Println("[chat] upstream error:", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: msgUpstreamFail})
		return
	}

	writeJSON(w, http.StatusOK, Reply{Reply: reply})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
