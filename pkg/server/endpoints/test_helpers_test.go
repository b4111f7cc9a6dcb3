package endpoints

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/atelier-web/atelier/pkg/identity"
	"github.com/atelier-web/atelier/pkg/model"
)

func adminPrincipal(userID uint) *identity.Principal {
	return &identity.Principal{UserID: userID, Role: model.RoleAdmin}
}

func clientPrincipal(userID uint) *identity.Principal {
	return &identity.Principal{UserID: userID, Role: model.RoleClient}
}

// jsonRequest builds a request with a JSON body, an optional principal and
// optional mux path variables.
func jsonRequest(t *testing.T, method, target string, body interface{}, principal *identity.Principal, vars map[string]string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if principal != nil {
		req = req.WithContext(identity.Set(req.Context(), principal))
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

// multipartImageRequest builds a multipart request carrying an "image" part.
func multipartImageRequest(t *testing.T, method, target, filename string, content []byte, principal *identity.Principal, vars map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if principal != nil {
		req = req.WithContext(identity.Set(req.Context(), principal))
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}
