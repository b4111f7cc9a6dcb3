package endpoints

import (
	"errors"
	"net/http"

	"github.com/atelier-web/atelier/pkg/server"
	"github.com/atelier-web/atelier/pkg/server/store"
	"github.com/atelier-web/atelier/pkg/uploads"
)

// multipartSlack covers multipart framing overhead on top of the file cap.
const multipartSlack = 1 << 20

// RegisterUploadsEndpoints registers the image upload and file routes
func RegisterUploadsEndpoints(s *server.Server) {
	uploadsRouter := s.Router.PathPrefix("/api/imageUpload").Subrouter()
	uploadsRouter.Use(s.Authenticator.Middleware)

	maxBytes := s.Config.MaxUploadBytes

	// POST /api/imageUpload/upload - Store a multipart "image" file
	uploadsRouter.HandleFunc("/upload", handleUpload(s.Uploads, maxBytes)).Methods("POST")

	// GET /api/imageUpload/files - List stored file names
	uploadsRouter.HandleFunc("/files", handleListFiles(s.Uploads)).Methods("GET")

	// GET /api/imageUpload/files/{filename} - Serve a stored file
	uploadsRouter.HandleFunc("/files/{filename}", handleServeFile(s.Uploads)).Methods("GET")

	// DELETE /api/imageUpload/files/{filename} - Remove a stored file
	uploadsRouter.HandleFunc("/files/{filename}", handleDeleteFile(s.Uploads)).Methods("DELETE")

	// PUT /api/imageUpload/articles/{id}/upload - Upload and attach to an article
	uploadsRouter.HandleFunc("/articles/{id:[0-9]+}/upload", handleAttachArticlePicture(s.Uploads, s.Articles, maxBytes)).Methods("PUT")

	// PUT /api/imageUpload/projects/{id}/upload - Upload and attach to a project
	uploadsRouter.HandleFunc("/projects/{id:[0-9]+}/upload", handleAttachProjectPicture(s.Uploads, s.Projects, maxBytes)).Methods("PUT")
}

// saveUploadedImage pulls the "image" part out of the multipart body and
// writes it to the uploads store. It writes the error response itself and
// returns ok=false when the caller should bail.
func saveUploadedImage(w http.ResponseWriter, r *http.Request, uploadStore *uploads.Store, maxBytes int64) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartSlack)

	file, header, err := r.FormFile("image")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "No file uploaded")
		return "", false
	}
	defer func() { _ = file.Close() }()

	name, err := uploadStore.Save(header.Filename, file)
	if err != nil {
		if errors.Is(err, uploads.ErrTooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "File exceeds maximum upload size")
			return "", false
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to store file")
		return "", false
	}
	return name, true
}

func handleUpload(uploadStore *uploads.Store, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := saveUploadedImage(w, r, uploadStore, maxBytes)
		if !ok {
			return
		}
		respondWithJSON(w, http.StatusCreated, map[string]string{"filename": name})
	}
}

func handleListFiles(uploadStore *uploads.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string][]string{"files": uploadStore.List()})
	}
}

func handleServeFile(uploadStore *uploads.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := pathFilename(r)

		path, err := uploadStore.Path(name)
		if err != nil {
			if errors.Is(err, uploads.ErrBadName) {
				respondWithError(w, http.StatusBadRequest, "Invalid file name")
				return
			}
			respondWithError(w, http.StatusNotFound, "File not found")
			return
		}
		http.ServeFile(w, r, path)
	}
}

func handleDeleteFile(uploadStore *uploads.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := pathFilename(r)

		if err := uploadStore.Remove(name); err != nil {
			if errors.Is(err, uploads.ErrBadName) {
				respondWithError(w, http.StatusBadRequest, "Invalid file name")
				return
			}
			if errors.Is(err, uploads.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "File not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete file")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "File deleted"})
	}
}

func handleAttachArticlePicture(uploadStore *uploads.Store, articlesStore store.ArticlesStore, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid article id")
			return
		}

		name, ok := saveUploadedImage(w, r, uploadStore, maxBytes)
		if !ok {
			return
		}

		article, err := articlesStore.SetArticlePicture(id, name)
		if err != nil {
			_ = uploadStore.Remove(name)
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to attach file")
			return
		}
		respondWithJSON(w, http.StatusOK, article)
	}
}

func handleAttachProjectPicture(uploadStore *uploads.Store, projectsStore store.ProjectsStore, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid project id")
			return
		}

		name, ok := saveUploadedImage(w, r, uploadStore, maxBytes)
		if !ok {
			return
		}

		project, err := projectsStore.SetProjectPicture(id, name)
		if err != nil {
			_ = uploadStore.Remove(name)
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Project not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to attach file")
			return
		}
		respondWithJSON(w, http.StatusOK, project)
	}
}
