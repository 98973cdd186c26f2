package api

import (
	"encoding/json"
	"net/http"
)

// handleListSteps serves the loaded step collection. The front-end uses it
// to build the #step-N anchor targets the answer formatter links to.
func (s *Server) handleListSteps(w http.ResponseWriter, r *http.Request) {
	steps := s.library.Steps()

	payload := make([]stepPayload, 0, len(steps))
	for _, st := range steps {
		payload = append(payload, stepPayload{Step: st.Step, Guidance: st.Guidance})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"steps": payload})
}
