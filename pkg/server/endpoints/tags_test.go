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

func TestListTags(t *testing.T) {
	tags := &MockTagsStore{}
	tags.On("ListTags").Return([]model.Tag{{ID: 1, Name: "design"}, {ID: 2, Name: "go"}}, nil)

	req := jsonRequest(t, "GET", "/api/tags", nil, clientPrincipal(1), nil)
	w := httptest.NewRecorder()
	handleListTags(tags)(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []model.Tag
	decodeBody(t, w, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "design", got[0].Name)
}

func TestListTagsByArticle(t *testing.T) {
	tags := &MockTagsStore{}
	tags.On("ListTagsByArticle", uint(4)).Return([]model.Tag{{ID: 2, Name: "go"}}, nil)

	req := jsonRequest(t, "GET", "/api/tags/4", nil, clientPrincipal(1), map[string]string{"articleId": "4"})
	w := httptest.NewRecorder()
	handleListTagsByArticle(tags)(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []model.Tag
	decodeBody(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "go", got[0].Name)
}

func TestCreateTag(t *testing.T) {
	tags := &MockTagsStore{}
	tags.On("CreateTag", "design").Return(&model.Tag{ID: 1, Name: "design"}, nil)

	req := jsonRequest(t, "POST", "/api/tags", tagRequest{Name: "design"}, adminPrincipal(1), nil)
	w := httptest.NewRecorder()
	handleCreateTag(tags)(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateTagConflict(t *testing.T) {
	tags := &MockTagsStore{}
	tags.On("CreateTag", "design").Return(nil, store.ErrConflict)

	req := jsonRequest(t, "POST", "/api/tags", tagRequest{Name: "design"}, adminPrincipal(1), nil)
	w := httptest.NewRecorder()
	handleCreateTag(tags)(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateTagRequiresName(t *testing.T) {
	tags := &MockTagsStore{}

	req := jsonRequest(t, "POST", "/api/tags", tagRequest{}, adminPrincipal(1), nil)
	w := httptest.NewRecorder()
	handleCreateTag(tags)(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteTagNotFound(t *testing.T) {
	tags := &MockTagsStore{}
	tags.On("DeleteTag", uint(9)).Return(store.ErrNotFound)

	req := jsonRequest(t, "DELETE", "/api/tags/9", nil, adminPrincipal(1), map[string]string{"id": "9"})
	w := httptest.NewRecorder()
	handleDeleteTag(tags)(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
