package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkohler/webshop/internal/models"
)

func TestCreateCategory(t *testing.T) {
	env := newTestEnv(t)
	h := &CategoryHandler{Repo: env.Repo}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/categories", map[string]string{"name": "Books"})
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	cat := body["category"].(map[string]interface{})
	require.Equal(t, "Books", cat["name"])
	require.Equal(t, "books", cat["slug"])
}

func TestCreateCategoryMissingName(t *testing.T) {
	env := newTestEnv(t)
	h := &CategoryHandler{Repo: env.Repo}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/categories", map[string]string{})
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateCategoryAlreadyExists(t *testing.T) {
	env := newTestEnv(t)
	h := &CategoryHandler{Repo: env.Repo}

	require.NoError(t, env.DB.Create(&models.Category{Name: "Books", Slug: "books"}).Error)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/categories", map[string]string{"name": "Books"})
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "category already exists", decodeBody(t, rec)["message"])

	var count int64
	require.NoError(t, env.DB.Model(&models.Category{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestListAndSingleCategory(t *testing.T) {
	env := newTestEnv(t)
	h := &CategoryHandler{Repo: env.Repo}

	require.NoError(t, env.DB.Create(&models.Category{Name: "Books", Slug: "books"}).Error)
	require.NoError(t, env.DB.Create(&models.Category{Name: "Games", Slug: "games"}).Error)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/categories", nil)
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody(t, rec)["category"], 2)

	rec2, c2 := env.doJSONRequest(http.MethodGet, "/api/v1/categories/books", nil)
	c2.SetParamNames("slug")
	c2.SetParamValues("books")
	require.NoError(t, h.Single(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	rec3, c3 := env.doJSONRequest(http.MethodGet, "/api/v1/categories/missing", nil)
	c3.SetParamNames("slug")
	c3.SetParamValues("missing")
	require.NoError(t, h.Single(c3))
	require.Equal(t, http.StatusNotFound, rec3.Code)
}

func TestUpdateAndDeleteCategory(t *testing.T) {
	env := newTestEnv(t)
	h := &CategoryHandler{Repo: env.Repo}

	cat := models.Category{Name: "Books", Slug: "books"}
	require.NoError(t, env.DB.Create(&cat).Error)

	rec, c := env.doJSONRequest(http.MethodPut, "/api/v1/admin/categories/1", map[string]string{"name": "Used Books"})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Category
	require.NoError(t, env.DB.First(&updated, cat.ID).Error)
	require.Equal(t, "Used Books", updated.Name)
	require.Equal(t, "used-books", updated.Slug)

	rec2, c2 := env.doJSONRequest(http.MethodDelete, "/api/v1/admin/categories/1", nil)
	c2.SetParamNames("id")
	c2.SetParamValues("1")
	require.NoError(t, h.Delete(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Category{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
