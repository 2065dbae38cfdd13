package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkohler/webshop/internal/models"
)

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHandler{Repo: env.Repo}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/products", map[string]interface{}{
		"name":        "Test Product",
		"description": "test description",
		"price":       9.99,
		"quantity":    3,
	})
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	prod := body["product"].(map[string]interface{})
	require.Equal(t, "Test Product", prod["name"])
	require.Equal(t, "test-product", prod["slug"])

	var stored models.Product
	require.NoError(t, env.DB.Where("slug = ?", "test-product").First(&stored).Error)
	require.Equal(t, 9.99, stored.Price)
}

func TestUpdateProduct(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHandler{Repo: env.Repo}

	prod := models.Product{Name: "Old", Slug: "old", Description: "d", Price: 1, Quantity: 1}
	require.NoError(t, env.DB.Create(&prod).Error)

	rec, c := env.doJSONRequest(http.MethodPut, "/api/v1/admin/products/1", map[string]interface{}{
		"name":        "New Name",
		"description": "new description",
		"price":       2.5,
		"quantity":    5,
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Product
	require.NoError(t, env.DB.First(&updated, prod.ID).Error)
	require.Equal(t, "New Name", updated.Name)
	require.Equal(t, "new-name", updated.Slug)
	require.Equal(t, 2.5, updated.Price)
}

func TestUpdateProductNotFound(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHandler{Repo: env.Repo}

	rec, c := env.doJSONRequest(http.MethodPut, "/api/v1/admin/products/99", map[string]interface{}{"name": "X"})
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProductsPagination(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHandler{Repo: env.Repo}

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, env.DB.Create(&models.Product{Name: name, Slug: name, Description: "d", Price: 1}).Error)
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products?page=1&size=2", nil)
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Len(t, body["products"], 2)
	meta := body["meta"].(map[string]interface{})
	require.EqualValues(t, 3, meta["total"])
	require.EqualValues(t, 2, meta["total_pages"])
	require.Equal(t, true, meta["has_next"])
}

func TestSingleAndDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	h := &ProductHandler{Repo: env.Repo}

	prod := models.Product{Name: "Thing", Slug: "thing", Description: "d", Price: 1}
	require.NoError(t, env.DB.Create(&prod).Error)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/thing", nil)
	c.SetParamNames("slug")
	c.SetParamValues("thing")
	require.NoError(t, h.Single(c))
	require.Equal(t, http.StatusOK, rec.Code)

	rec2, c2 := env.doJSONRequest(http.MethodDelete, "/api/v1/admin/products/1", nil)
	c2.SetParamNames("id")
	c2.SetParamValues("1")
	require.NoError(t, h.Delete(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
