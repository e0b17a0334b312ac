package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bakerhub/automation/logger"
	"github.com/bakerhub/automation/model"
	"github.com/bakerhub/automation/rule"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func (s *Server) HandleCreateRule(w http.ResponseWriter, r *http.Request) {
	var spec model.RuleSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid rule payload")
		return
	}
	defer r.Body.Close()
	created, err := s.store.Register(spec)
	if err != nil {
		logger.Error("error registering rule", zap.String("name", spec.Name), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error registering rule")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"success": true, "rule": created})
}

func (s *Server) HandleListRules(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{"rules": s.store.List()})
}

func (s *Server) HandleGetRule(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	found, err := s.store.Get(id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "rule not found")
		return
	}
	respondWithJSON(w, http.StatusOK, found)
}

func (s *Server) HandleUpdateRule(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var spec model.RuleSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid rule payload")
		return
	}
	defer r.Body.Close()
	updated, err := s.store.Update(id, spec)
	if err != nil {
		if errors.Is(err, rule.ErrRuleNotFound) {
			respondWithError(w, http.StatusNotFound, "rule not found")
			return
		}
		logger.Error("error updating rule", zap.String("id", id), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error updating rule")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"success": true, "rule": updated})
}

func (s *Server) HandleDeleteRule(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.Delete(id); err != nil {
		respondWithError(w, http.StatusNotFound, "rule not found")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}
