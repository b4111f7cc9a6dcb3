package endpoints

import (
	"errors"
	"net/http"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server"
	"github.com/atelier-web/atelier/pkg/server/store"
)

type contactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// RegisterContactsEndpoints registers the public contact form and the
// authenticated follow-up routes
func RegisterContactsEndpoints(s *server.Server) {
	// POST /contactForm - Public submission, no token required
	s.Router.HandleFunc("/contactForm", handleSubmitContactForm(s.Contacts)).Methods("POST")

	contactRouter := s.Router.PathPrefix("/api/contact").Subrouter()
	contactRouter.Use(s.Authenticator.Middleware)

	contactRouter.HandleFunc("", handleListContacts(s.Contacts)).Methods("GET")
	contactRouter.HandleFunc("", handleCreateContact(s.Contacts)).Methods("POST")
	contactRouter.HandleFunc("/{id:[0-9]+}", handleFetchContact(s.Contacts)).Methods("GET")
	contactRouter.HandleFunc("/{id:[0-9]+}", handleUpdateContact(s.Contacts)).Methods("PUT")
	contactRouter.HandleFunc("/{id:[0-9]+}", handleDeleteContact(s.Contacts)).Methods("DELETE")
}

func handleSubmitContactForm(contactsStore store.ContactsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactFormRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Email == "" || req.Message == "" {
			respondWithError(w, http.StatusBadRequest, "Email and message are required")
			return
		}

		contact := &model.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Message: req.Message,
		}
		if err := contactsStore.CreateContact(contact); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to submit message")
			return
		}
		respondWithJSON(w, http.StatusCreated, contact)
	}
}

func handleListContacts(contactsStore store.ContactsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := contactsStore.ListContacts()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list contacts")
			return
		}
		respondWithJSON(w, http.StatusOK, contacts)
	}
}

func handleCreateContact(contactsStore store.ContactsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var contact model.Contact
		if !decodeJSON(w, r, &contact) {
			return
		}
		if contact.Email == "" {
			respondWithError(w, http.StatusBadRequest, "Email is required")
			return
		}
		contact.ID = 0

		if err := contactsStore.CreateContact(&contact); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create contact")
			return
		}
		respondWithJSON(w, http.StatusCreated, contact)
	}
}

func handleFetchContact(contactsStore store.ContactsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid contact id")
			return
		}

		contact, err := contactsStore.FetchContact(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Contact not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch contact")
			return
		}
		respondWithJSON(w, http.StatusOK, contact)
	}
}

func handleUpdateContact(contactsStore store.ContactsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid contact id")
			return
		}

		var contact model.Contact
		if !decodeJSON(w, r, &contact) {
			return
		}
		contact.ID = id

		if err := contactsStore.UpdateContact(&contact); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Contact not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to update contact")
			return
		}

		updated, err := contactsStore.FetchContact(id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch contact")
			return
		}
		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleDeleteContact(contactsStore store.ContactsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid contact id")
			return
		}

		if err := contactsStore.DeleteContact(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Contact not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete contact")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Contact deleted"})
	}
}
