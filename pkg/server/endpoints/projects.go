package endpoints

import (
	"errors"
	"net/http"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server"
	"github.com/atelier-web/atelier/pkg/server/middleware"
	"github.com/atelier-web/atelier/pkg/server/store"
)

// RegisterProjectsEndpoints registers the project CRUD routes (admin only)
func RegisterProjectsEndpoints(s *server.Server) {
	projectsRouter := s.Router.PathPrefix("/api/projects").Subrouter()
	projectsRouter.Use(s.Authenticator.Middleware, middleware.RequireRole(model.RoleAdmin))

	projectsRouter.HandleFunc("", handleListProjects(s.Projects)).Methods("GET")
	projectsRouter.HandleFunc("", handleCreateProject(s.Projects)).Methods("POST")
	projectsRouter.HandleFunc("/{id:[0-9]+}", handleFetchProject(s.Projects)).Methods("GET")
	projectsRouter.HandleFunc("/{id:[0-9]+}", handleUpdateProject(s.Projects)).Methods("PUT")
	projectsRouter.HandleFunc("/{id:[0-9]+}", handleDeleteProject(s.Projects)).Methods("DELETE")
}

func handleListProjects(projectsStore store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := projectsStore.ListProjects()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list projects")
			return
		}
		respondWithJSON(w, http.StatusOK, projects)
	}
}

func handleCreateProject(projectsStore store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project model.Project
		if !decodeJSON(w, r, &project) {
			return
		}
		if project.Name == "" {
			respondWithError(w, http.StatusBadRequest, "Name is required")
			return
		}
		project.ID = 0

		if err := projectsStore.CreateProject(&project); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create project")
			return
		}
		respondWithJSON(w, http.StatusCreated, project)
	}
}

func handleFetchProject(projectsStore store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid project id")
			return
		}

		project, err := projectsStore.FetchProject(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Project not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch project")
			return
		}
		respondWithJSON(w, http.StatusOK, project)
	}
}

func handleUpdateProject(projectsStore store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid project id")
			return
		}

		var project model.Project
		if !decodeJSON(w, r, &project) {
			return
		}
		project.ID = id

		if err := projectsStore.UpdateProject(&project); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Project not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to update project")
			return
		}

		updated, err := projectsStore.FetchProject(id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch project")
			return
		}
		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleDeleteProject(projectsStore store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid project id")
			return
		}

		if err := projectsStore.DeleteProject(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Project not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete project")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
	}
}
