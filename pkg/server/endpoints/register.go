package endpoints

import (
	"github.com/atelier-web/atelier/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthEndpoints(srv)
	RegisterArticlesEndpoints(srv)
	RegisterTagsEndpoints(srv)
	RegisterProjectsEndpoints(srv)
	RegisterClientsEndpoints(srv)
	RegisterCompanyEndpoints(srv)
	RegisterContactsEndpoints(srv)
	RegisterUploadsEndpoints(srv)
	RegisterStatusEndpoint(srv)
}
