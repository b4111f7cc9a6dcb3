package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atelier-web/atelier/pkg/model"
)

func TestSubmitContactForm(t *testing.T) {
	contacts := &MockContactsStore{}
	contacts.On("CreateContact", mock.MatchedBy(func(c *model.Contact) bool {
		return c.Email == "visitor@example.com" && c.Message == "Hello" && !c.Contacted
	})).Return(nil)

	// No principal: the form is public
	req := jsonRequest(t, "POST", "/contactForm", contactFormRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello",
	}, nil, nil)
	w := httptest.NewRecorder()
	handleSubmitContactForm(contacts)(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	contacts.AssertExpectations(t)
}

func TestSubmitContactFormMissingFields(t *testing.T) {
	contacts := &MockContactsStore{}

	req := jsonRequest(t, "POST", "/contactForm", contactFormRequest{Name: "X"}, nil, nil)
	w := httptest.NewRecorder()
	handleSubmitContactForm(contacts)(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	contacts.AssertNotCalled(t, "CreateContact", mock.Anything)
}

func TestUpdateContactFollowUp(t *testing.T) {
	contacts := &MockContactsStore{}
	contacts.On("UpdateContact", mock.MatchedBy(func(c *model.Contact) bool {
		return c.ID == uint(2) && c.Contacted && c.AdminNotes == "called back"
	})).Return(nil)
	contacts.On("FetchContact", uint(2)).Return(&model.Contact{
		ID:        2,
		Email:     "visitor@example.com",
		Contacted: true,
	}, nil)

	req := jsonRequest(t, "PUT", "/api/contact/2", model.Contact{
		Email:      "visitor@example.com",
		Message:    "Hello",
		Contacted:  true,
		AdminNotes: "called back",
	}, adminPrincipal(1), map[string]string{"id": "2"})
	w := httptest.NewRecorder()
	handleUpdateContact(contacts)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	contacts.AssertExpectations(t)
}
