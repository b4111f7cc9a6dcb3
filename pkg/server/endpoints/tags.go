package endpoints

import (
	"errors"
	"net/http"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server"
	"github.com/atelier-web/atelier/pkg/server/middleware"
	"github.com/atelier-web/atelier/pkg/server/store"
)

type tagRequest struct {
	Name string `json:"name"`
}

// RegisterTagsEndpoints registers the tag routes. Reads are open to any
// principal; writes are admin-only.
func RegisterTagsEndpoints(s *server.Server) {
	tagsRouter := s.Router.PathPrefix("/api/tags").Subrouter()
	tagsRouter.Use(s.Authenticator.Middleware)

	// GET /api/tags - List all tags
	tagsRouter.HandleFunc("", handleListTags(s.Tags)).Methods("GET")

	// GET /api/tags/{articleId} - List tags attached to an article
	tagsRouter.HandleFunc("/{articleId:[0-9]+}", handleListTagsByArticle(s.Tags)).Methods("GET")

	admin := middleware.RequireRole(model.RoleAdmin)

	// POST /api/tags - Create a tag explicitly
	tagsRouter.Handle("", admin(handleCreateTag(s.Tags))).Methods("POST")

	// DELETE /api/tags/{id} - Delete a tag and its associations
	tagsRouter.Handle("/{id:[0-9]+}", admin(handleDeleteTag(s.Tags))).Methods("DELETE")
}

func handleListTags(tagsStore store.TagsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := tagsStore.ListTags()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list tags")
			return
		}
		respondWithJSON(w, http.StatusOK, tags)
	}
}

func handleListTagsByArticle(tagsStore store.TagsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, ok := pathID(r, "articleId")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid article id")
			return
		}

		tags, err := tagsStore.ListTagsByArticle(articleID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list tags")
			return
		}
		respondWithJSON(w, http.StatusOK, tags)
	}
}

func handleCreateTag(tagsStore store.TagsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tagRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "Name is required")
			return
		}

		tag, err := tagsStore.CreateTag(req.Name)
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				respondWithError(w, http.StatusConflict, "Tag already exists")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to create tag")
			return
		}
		respondWithJSON(w, http.StatusCreated, tag)
	}
}

func handleDeleteTag(tagsStore store.TagsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid tag id")
			return
		}

		if err := tagsStore.DeleteTag(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Tag not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete tag")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Tag deleted"})
	}
}
