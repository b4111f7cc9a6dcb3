package endpoints

import (
	"errors"
	"net/http"

	"github.com/atelier-web/atelier/pkg/identity"
	"github.com/atelier-web/atelier/pkg/markdown"
	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server"
	"github.com/atelier-web/atelier/pkg/server/middleware"
	"github.com/atelier-web/atelier/pkg/server/store"
)

type articleRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Picture   string   `json:"picture"`
	Published bool     `json:"published"`
	Tags      []string `json:"tags"`
}

// RegisterArticlesEndpoints registers the article CRUD routes
func RegisterArticlesEndpoints(s *server.Server) {
	articlesRouter := s.Router.PathPrefix("/api/articles").Subrouter()
	articlesRouter.Use(s.Authenticator.Middleware, middleware.RequireRole(model.RoleAdmin))

	// GET /api/articles - List articles with their tags
	articlesRouter.HandleFunc("", handleListArticles(s.Articles)).Methods("GET")

	// POST /api/articles - Create an article; labels become tags on first use
	articlesRouter.HandleFunc("", handleCreateArticle(s.Articles)).Methods("POST")

	// GET /api/articles/{id} - Fetch one article
	articlesRouter.HandleFunc("/{id:[0-9]+}", handleFetchArticle(s.Articles)).Methods("GET")

	// GET /api/articles/{id}/html - Render the article body as HTML
	articlesRouter.HandleFunc("/{id:[0-9]+}/html", handleRenderArticle(s.Articles)).Methods("GET")

	// PUT /api/articles/{id} - Update an article (author only)
	articlesRouter.HandleFunc("/{id:[0-9]+}", handleUpdateArticle(s.Articles)).Methods("PUT")

	// DELETE /api/articles/{id} - Delete an article (author only)
	articlesRouter.HandleFunc("/{id:[0-9]+}", handleDeleteArticle(s.Articles)).Methods("DELETE")
}

func handleListArticles(articlesStore store.ArticlesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := articlesStore.ListArticles()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list articles")
			return
		}
		respondWithJSON(w, http.StatusOK, articles)
	}
}

func handleCreateArticle(articlesStore store.ArticlesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req articleRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "Title is required")
			return
		}

		article := &model.Article{
			Title:     req.Title,
			Content:   req.Content,
			Picture:   req.Picture,
			Published: req.Published,
			UserID:    principal.UserID,
		}
		if err := articlesStore.CreateArticle(article, req.Tags); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create article")
			return
		}

		respondWithJSON(w, http.StatusCreated, article)
	}
}

func handleFetchArticle(articlesStore store.ArticlesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid article id")
			return
		}

		article, err := articlesStore.FetchArticle(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch article")
			return
		}
		respondWithJSON(w, http.StatusOK, article)
	}
}

func handleRenderArticle(articlesStore store.ArticlesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid article id")
			return
		}

		article, err := articlesStore.FetchArticle(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch article")
			return
		}

		html, err := markdown.Render(article.Content)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to render article")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}

func handleUpdateArticle(articlesStore store.ArticlesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid article id")
			return
		}

		author, err := articlesStore.ArticleAuthor(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch article")
			return
		}
		if !identity.IsOwner(principal, author) {
			respondWithError(w, http.StatusForbidden, "You can only modify your own articles")
			return
		}

		var req articleRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		article := &model.Article{
			ID:        id,
			Title:     req.Title,
			Content:   req.Content,
			Picture:   req.Picture,
			Published: req.Published,
		}
		if err := articlesStore.UpdateArticle(article, req.Tags); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to update article")
			return
		}

		updated, err := articlesStore.FetchArticle(id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch article")
			return
		}
		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleDeleteArticle(articlesStore store.ArticlesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid article id")
			return
		}

		author, err := articlesStore.ArticleAuthor(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch article")
			return
		}
		if !identity.IsOwner(principal, author) {
			respondWithError(w, http.StatusForbidden, "You can only delete your own articles")
			return
		}

		if err := articlesStore.DeleteArticle(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete article")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Article deleted"})
	}
}
