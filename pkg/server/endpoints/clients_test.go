package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server/store"
)

func TestFetchOwnClient(t *testing.T) {
	clients := &MockClientsStore{}
	clients.On("FetchClientByUser", uint(7)).Return(&model.Client{
		ID:     3,
		Email:  "client@example.com",
		UserID: 7,
	}, nil)

	req := jsonRequest(t, "GET", "/api/clients/me", nil, clientPrincipal(7), nil)
	w := httptest.NewRecorder()
	handleFetchOwnClient(clients)(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got model.Client
	decodeBody(t, w, &got)
	assert.Equal(t, uint(3), got.ID)
	assert.Equal(t, uint(7), got.UserID)
}

func TestFetchOwnClientMissingRecord(t *testing.T) {
	clients := &MockClientsStore{}
	clients.On("FetchClientByUser", uint(7)).Return(nil, store.ErrNotFound)

	req := jsonRequest(t, "GET", "/api/clients/me", nil, clientPrincipal(7), nil)
	w := httptest.NewRecorder()
	handleFetchOwnClient(clients)(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateClient(t *testing.T) {
	clients := &MockClientsStore{}
	clients.On("CreateClient", &model.Client{Email: "new@example.com", UserID: 9}).Return(nil)

	req := jsonRequest(t, "POST", "/api/clients", model.Client{
		Email:  "new@example.com",
		UserID: 9,
	}, adminPrincipal(1), nil)
	w := httptest.NewRecorder()
	handleCreateClient(clients)(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	clients.AssertExpectations(t)
}
