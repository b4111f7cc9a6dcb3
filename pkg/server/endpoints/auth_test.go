package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atelier-web/atelier/pkg/authn"
	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server/store"
)

func newTestTokens(t *testing.T) *authn.TokenAuthority {
	t.Helper()
	tokens, err := authn.NewTokenAuthority([]byte("test-secret"), time.Hour)
	require.NoError(t, err)
	return tokens
}

func TestRegisterCreatesClientAccount(t *testing.T) {
	users := &MockUsersStore{}
	users.On("CreateUser", mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "new@example.com" &&
			u.Role == model.RoleClient &&
			u.Password != "" && u.Password != "pass123"
	})).Return(nil)

	req := jsonRequest(t, "POST", "/auth/register", registerRequest{
		Email:    "new@example.com",
		Password: "pass123",
	}, nil, nil)
	w := httptest.NewRecorder()
	handleRegister(users, newTestTokens(t), model.RoleClient)(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp sessionResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "new@example.com", resp.User.Email)

	users.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &MockUsersStore{}
	users.On("CreateUser", mock.Anything).Return(store.ErrConflict)

	req := jsonRequest(t, "POST", "/auth/register", registerRequest{
		Email:    "taken@example.com",
		Password: "pass123",
	}, nil, nil)
	w := httptest.NewRecorder()
	handleRegister(users, newTestTokens(t), model.RoleClient)(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	users := &MockUsersStore{}

	req := jsonRequest(t, "POST", "/auth/register", registerRequest{Email: "x@example.com"}, nil, nil)
	w := httptest.NewRecorder()
	handleRegister(users, newTestTokens(t), model.RoleClient)(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	users.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := authn.HashPassword("correct horse")
	require.NoError(t, err)

	users := &MockUsersStore{}
	users.On("FindUserByEmail", "someone@example.com").Return(&model.User{
		ID:       3,
		Email:    "someone@example.com",
		Password: hash,
		Role:     model.RoleAdmin,
	}, nil)

	tokens := newTestTokens(t)
	req := jsonRequest(t, "POST", "/auth/login", loginRequest{
		Email:    "someone@example.com",
		Password: "correct horse",
	}, nil, nil)
	w := httptest.NewRecorder()
	handleLogin(users, tokens)(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp sessionResponse
	decodeBody(t, w, &resp)

	principal, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), principal.UserID)
	assert.Equal(t, model.RoleAdmin, principal.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := authn.HashPassword("correct horse")
	require.NoError(t, err)

	users := &MockUsersStore{}
	users.On("FindUserByEmail", "someone@example.com").Return(&model.User{
		ID:       3,
		Email:    "someone@example.com",
		Password: hash,
	}, nil)

	req := jsonRequest(t, "POST", "/auth/login", loginRequest{
		Email:    "someone@example.com",
		Password: "wrong",
	}, nil, nil)
	w := httptest.NewRecorder()
	handleLogin(users, newTestTokens(t))(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := &MockUsersStore{}
	users.On("FindUserByEmail", "ghost@example.com").Return(nil, store.ErrNotFound)

	req := jsonRequest(t, "POST", "/auth/login", loginRequest{
		Email:    "ghost@example.com",
		Password: "anything",
	}, nil, nil)
	w := httptest.NewRecorder()
	handleLogin(users, newTestTokens(t))(w, req)

	// Indistinguishable from a wrong password
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile(t *testing.T) {
	users := &MockUsersStore{}
	users.On("FindUserByID", uint(7)).Return(&model.User{ID: 7, Email: "me@example.com"}, nil)

	req := jsonRequest(t, "GET", "/auth/profile", nil, clientPrincipal(7), nil)
	w := httptest.NewRecorder()
	handleProfile(users)(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var user model.User
	decodeBody(t, w, &user)
	assert.Equal(t, "me@example.com", user.Email)
}

func TestProfileNoPrincipal(t *testing.T) {
	users := &MockUsersStore{}

	req := jsonRequest(t, "GET", "/auth/profile", nil, nil, nil)
	w := httptest.NewRecorder()
	handleProfile(users)(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	req := jsonRequest(t, "POST", "/auth/logout", nil, clientPrincipal(1), nil)
	w := httptest.NewRecorder()
	handleLogout()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
