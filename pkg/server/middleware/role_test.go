package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelier-web/atelier/pkg/identity"
	"github.com/atelier-web/atelier/pkg/model"
)

func requireRoleStatus(t *testing.T, principal *identity.Principal, roles ...model.Role) int {
	t.Helper()

	called := false
	handler := RequireRole(roles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/articles", nil)
	if principal != nil {
		req = req.WithContext(identity.Set(req.Context(), principal))
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code == http.StatusOK {
		assert.True(t, called)
	} else {
		assert.False(t, called)
	}
	return w.Code
}

func TestRequireRoleNoPrincipal(t *testing.T) {
	code := requireRoleStatus(t, nil, model.RoleAdmin)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRequireRoleWrongRole(t *testing.T) {
	client := &identity.Principal{UserID: 1, Role: model.RoleClient}
	code := requireRoleStatus(t, client, model.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestRequireRoleMatch(t *testing.T) {
	admin := &identity.Principal{UserID: 1, Role: model.RoleAdmin}
	assert.Equal(t, http.StatusOK, requireRoleStatus(t, admin, model.RoleAdmin))

	client := &identity.Principal{UserID: 2, Role: model.RoleClient}
	assert.Equal(t, http.StatusOK, requireRoleStatus(t, client, model.RoleClient, model.RoleAdmin))
}
