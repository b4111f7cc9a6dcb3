package endpoints

import (
	"errors"
	"net/http"

	"github.com/atelier-web/atelier/pkg/identity"
	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server"
	"github.com/atelier-web/atelier/pkg/server/middleware"
	"github.com/atelier-web/atelier/pkg/server/store"
)

// RegisterClientsEndpoints registers the client routes. Admins manage the
// roster; a signed-in client can only see its own record via /me.
func RegisterClientsEndpoints(s *server.Server) {
	clientsRouter := s.Router.PathPrefix("/api/clients").Subrouter()
	clientsRouter.Use(s.Authenticator.Middleware)

	// GET /api/clients/me - The client record owned by the signed-in user.
	// Registered before /{id} so the literal path wins.
	clientsRouter.Handle("/me",
		middleware.RequireRole(model.RoleClient)(handleFetchOwnClient(s.Clients)),
	).Methods("GET")

	admin := middleware.RequireRole(model.RoleAdmin)
	clientsRouter.Handle("", admin(handleListClients(s.Clients))).Methods("GET")
	clientsRouter.Handle("", admin(handleCreateClient(s.Clients))).Methods("POST")
	clientsRouter.Handle("/{id:[0-9]+}", admin(handleFetchClient(s.Clients))).Methods("GET")
	clientsRouter.Handle("/{id:[0-9]+}", admin(handleUpdateClient(s.Clients))).Methods("PUT")
	clientsRouter.Handle("/{id:[0-9]+}", admin(handleDeleteClient(s.Clients))).Methods("DELETE")
}

func handleFetchOwnClient(clientsStore store.ClientsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		client, err := clientsStore.FetchClientByUser(principal.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "No client record for this account")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch client")
			return
		}
		respondWithJSON(w, http.StatusOK, client)
	}
}

func handleListClients(clientsStore store.ClientsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := clientsStore.ListClients()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list clients")
			return
		}
		respondWithJSON(w, http.StatusOK, clients)
	}
}

func handleCreateClient(clientsStore store.ClientsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var client model.Client
		if !decodeJSON(w, r, &client) {
			return
		}
		if client.Email == "" {
			respondWithError(w, http.StatusBadRequest, "Email is required")
			return
		}
		client.ID = 0

		if err := clientsStore.CreateClient(&client); err != nil {
			if errors.Is(err, store.ErrConflict) {
				respondWithError(w, http.StatusConflict, "Client already exists")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to create client")
			return
		}
		respondWithJSON(w, http.StatusCreated, client)
	}
}

func handleFetchClient(clientsStore store.ClientsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid client id")
			return
		}

		client, err := clientsStore.FetchClient(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Client not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch client")
			return
		}
		respondWithJSON(w, http.StatusOK, client)
	}
}

func handleUpdateClient(clientsStore store.ClientsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid client id")
			return
		}

		var client model.Client
		if !decodeJSON(w, r, &client) {
			return
		}
		client.ID = id

		if err := clientsStore.UpdateClient(&client); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Client not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to update client")
			return
		}

		updated, err := clientsStore.FetchClient(id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch client")
			return
		}
		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleDeleteClient(clientsStore store.ClientsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid client id")
			return
		}

		if err := clientsStore.DeleteClient(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Client not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete client")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Client deleted"})
	}
}
