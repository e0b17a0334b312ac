package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bakerhub/automation/engine"
	"github.com/bakerhub/automation/logger"
	"github.com/bakerhub/automation/model"
	"go.uber.org/zap"
)

func (s *Server) HandleExecute(w http.ResponseWriter, r *http.Request) {
	var event model.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid event payload")
		return
	}
	defer r.Body.Close()
	report, err := s.engine.ProcessEvent(r.Context(), event)
	if err != nil {
		if errors.Is(err, engine.ErrMissingEventType) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("error processing event", zap.String("eventType", event.Type()), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error processing event")
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

func (s *Server) HandleListExecutions(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{"executions": s.engine.History().All()})
}
