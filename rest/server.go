package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bakerhub/automation/engine"
	"github.com/bakerhub/automation/logger"
	"github.com/bakerhub/automation/rule"
	"github.com/gorilla/mux"
)

type Server struct {
	http.Server
	Port   int
	store  rule.Store
	engine *engine.WorkflowEngine
}

func NewServer(httpPort int, store rule.Store, eng *engine.WorkflowEngine) (*Server, error) {
	s := &Server{
		Server: http.Server{
			Addr:        fmt.Sprintf(":%d", httpPort),
			IdleTimeout: 2 * time.Second,
		},
		Port:   httpPort,
		store:  store,
		engine: eng,
	}

	router := mux.NewRouter()
	router.HandleFunc("/automation/rules", s.HandleCreateRule).Methods(http.MethodPost)
	router.HandleFunc("/automation/rules", s.HandleListRules).Methods(http.MethodGet)
	router.HandleFunc("/automation/rules/{id}", s.HandleGetRule).Methods(http.MethodGet)
	router.HandleFunc("/automation/rules/{id}", s.HandleUpdateRule).Methods(http.MethodPut)
	router.HandleFunc("/automation/rules/{id}", s.HandleDeleteRule).Methods(http.MethodDelete)

	router.HandleFunc("/automation/execute", s.HandleExecute).Methods(http.MethodPost)
	router.HandleFunc("/automation/executions", s.HandleListExecutions).Methods(http.MethodGet)

	router.Use(loggingMiddleware)
	s.Handler = router
	return s, nil
}

func (s *Server) Start() error {
	logger.Info(fmt.Sprintf("starting http server on port %d", s.Port))
	if err := s.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	logger.Info("stopping http server")
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Error("error shutting down http server")
		return err
	}
	return nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.Method + " " + r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
