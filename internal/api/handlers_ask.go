package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/kenwpond/chatbot-backend/internal/assistant"
	"github.com/kenwpond/chatbot-backend/internal/llm"
)

const maxAskBodyBytes = 1 << 20 // 1MB is plenty for a question plus history

type askRequest struct {
	Question string        `json:"question"`
	History  []llm.Message `json:"history,omitempty"`
}

type askResponse struct {
	Answer string        `json:"answer"`
	Steps  []stepPayload `json:"steps"`
}

type stepPayload struct {
	Step     int    `json:"step"`
	Guidance string `json:"guidance"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAskBodyBytes)

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.As(err, new(*http.MaxBytesError)) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		jsonError(w, "question is required", http.StatusBadRequest)
		return
	}

	reply, err := s.assistant.Answer(r.Context(), req.Question, req.History)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyQuestion) {
			jsonError(w, "question is required", http.StatusBadRequest)
			return
		}
		// Completion API failures are not recoverable here; surface them
		// as an upstream error.
		s.log.Error("answer failed", "error", err)
		jsonError(w, "failed to answer question", http.StatusBadGateway)
		return
	}

	steps := make([]stepPayload, 0, len(reply.Steps))
	for _, st := range reply.Steps {
		steps = append(steps, stepPayload{Step: st.Step, Guidance: st.Guidance})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(askResponse{
		Answer: reply.Answer,
		Steps:  steps,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
