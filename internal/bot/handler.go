package bot

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	svc     Service
	limiter *ChatLimiter
}

func NewHandler(svc Service, limiter *ChatLimiter) *Handler {
	return &Handler{svc: svc, limiter: limiter}
}

// HandleWebhook — вхід від месенджера. The transport does not wait for the
// answer: we ACK and push the reply through the outbound channel.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ChatID string `json:"chat_id"`
		Text   string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if payload.ChatID == "" || payload.Text == "" {
		http.Error(w, "missing chat_id or text", http.StatusBadRequest)
		return
	}
	if !h.limiter.Allow(payload.ChatID) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
		return
	}

	msg := &Message{ChatID: payload.ChatID, Text: payload.Text}
	if err := h.svc.HandleIncoming(r.Context(), msg); err != nil {
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleChat — синхронний режим для веб-чату: відповідь прямо у response.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if payload.Message == "" {
		http.Error(w, "missing message", http.StatusBadRequest)
		return
	}
	if payload.SessionID == "" {
		payload.SessionID = "default"
	}
	if !h.limiter.Allow(payload.SessionID) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
		return
	}

	reply := h.svc.Answer(r.Context(), payload.Message)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"reply": reply})
}
