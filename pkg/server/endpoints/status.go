package endpoints

import (
	"net/http"

	"github.com/atelier-web/atelier/pkg/server"
)

// StatusResponse is returned by the unauthenticated status endpoint.
type StatusResponse struct {
	Status string `json:"status"`
}

// RegisterStatusEndpoint registers the liveness route
func RegisterStatusEndpoint(s *server.Server) {
	db := s.DB

	// GET /status - Liveness plus a database connectivity check
	s.Router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: "degraded"})
			return
		}
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	}).Methods("GET")
}
