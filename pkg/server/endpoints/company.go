package endpoints

import (
	"errors"
	"net/http"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server"
	"github.com/atelier-web/atelier/pkg/server/store"
)

// RegisterCompanyEndpoints registers the company profile routes, open to
// any authenticated principal
func RegisterCompanyEndpoints(s *server.Server) {
	companyRouter := s.Router.PathPrefix("/api/companyData").Subrouter()
	companyRouter.Use(s.Authenticator.Middleware)

	companyRouter.HandleFunc("", handleListCompanyData(s.Company)).Methods("GET")
	companyRouter.HandleFunc("", handleCreateCompanyData(s.Company)).Methods("POST")
	companyRouter.HandleFunc("/{id:[0-9]+}", handleFetchCompanyData(s.Company)).Methods("GET")
	companyRouter.HandleFunc("/{id:[0-9]+}", handleUpdateCompanyData(s.Company)).Methods("PUT")
	companyRouter.HandleFunc("/{id:[0-9]+}", handleDeleteCompanyData(s.Company)).Methods("DELETE")
}

func handleListCompanyData(companyStore store.CompanyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := companyStore.ListCompanyData()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list company data")
			return
		}
		respondWithJSON(w, http.StatusOK, records)
	}
}

func handleCreateCompanyData(companyStore store.CompanyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data model.CompanyData
		if !decodeJSON(w, r, &data) {
			return
		}
		if data.CompanyName == "" {
			respondWithError(w, http.StatusBadRequest, "Company name is required")
			return
		}
		data.ID = 0

		if err := companyStore.CreateCompanyData(&data); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create company data")
			return
		}
		respondWithJSON(w, http.StatusCreated, data)
	}
}

func handleFetchCompanyData(companyStore store.CompanyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid company data id")
			return
		}

		data, err := companyStore.FetchCompanyData(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Company data not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch company data")
			return
		}
		respondWithJSON(w, http.StatusOK, data)
	}
}

func handleUpdateCompanyData(companyStore store.CompanyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid company data id")
			return
		}

		var data model.CompanyData
		if !decodeJSON(w, r, &data) {
			return
		}
		data.ID = id

		if err := companyStore.UpdateCompanyData(&data); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Company data not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to update company data")
			return
		}

		updated, err := companyStore.FetchCompanyData(id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch company data")
			return
		}
		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleDeleteCompanyData(companyStore store.CompanyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid company data id")
			return
		}

		if err := companyStore.DeleteCompanyData(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Company data not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete company data")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Company data deleted"})
	}
}
