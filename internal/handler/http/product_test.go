package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-gift-catalog/internal/service"
	"github.com/MKhiriev/go-gift-catalog/internal/store"
	"github.com/MKhiriev/go-gift-catalog/internal/validators"
	"github.com/MKhiriev/go-gift-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productBody = `{"name":"Teddy bear","price":1500,"image_url":"https://img.example.com/bear.png"}`

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCreateProduct_Admin_Created(t *testing.T) {
	products := &mockProductService{createFn: func(_ context.Context, dto models.ProductDTO) (models.Product, error) {
		return dto.ToProductWithID(17), nil
	}}
	router := newTestRouter(t, products, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/products", productBody, map[string]string{authenticateHeader: adminToken})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Teddy bear", created.Name)
	assert.Equal(t, int64(1500), created.Price)
}

func TestCreateProduct_BearerForm_Accepted(t *testing.T) {
	router := newTestRouter(t, &mockProductService{createFn: func(_ context.Context, dto models.ProductDTO) (models.Product, error) {
		return dto.ToProductWithID(1), nil
	}}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/products", productBody, map[string]string{authenticateHeader: "Bearer " + adminToken})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateProduct_NonAdmin_Forbidden_NothingPersisted(t *testing.T) {
	called := false
	products := &mockProductService{createFn: func(_ context.Context, dto models.ProductDTO) (models.Product, error) {
		called = true
		return models.Product{}, nil
	}}
	router := newTestRouter(t, products, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/products", productBody, map[string]string{authenticateHeader: userToken})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "access denied", rec.Body.String())
	assert.False(t, called, "create must not reach the service for non-admin members")
}

func TestCreateProduct_NonAdmin_InvalidPayload_ForbiddenBeforeValidation(t *testing.T) {
	router := newTestRouter(t, &mockProductService{}, nil)

	for _, body := range []string{`{"price":-1}`, "{not json"} {
		rec := doRequest(t, router, http.MethodPost, "/api/products", body, map[string]string{authenticateHeader: userToken})

		assert.Equal(t, http.StatusForbidden, rec.Code, "body: %s", body)
		assert.Equal(t, "access denied", rec.Body.String())
	}
}

func TestCreateProduct_Unauthorized(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "missing header", headers: nil},
		{name: "invalid token", headers: map[string]string{authenticateHeader: "forged"}},
		{name: "malformed header", headers: map[string]string{authenticateHeader: "Basic a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			router := newTestRouter(t, &mockProductService{createFn: func(_ context.Context, _ models.ProductDTO) (models.Product, error) {
				called = true
				return models.Product{}, nil
			}}, nil)

			rec := doRequest(t, router, http.MethodPost, "/api/products", productBody, tt.headers)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}

func TestCreateProduct_RoleLookupFails(t *testing.T) {
	members := &mockMemberService{verifyRoleFn: func(_ context.Context, _ string) (models.Authorization, error) {
		return models.Authorization{}, store.ErrScanningRow
	}}
	router := newTestRouter(t, nil, members)

	rec := doRequest(t, router, http.MethodPost, "/api/products", productBody, map[string]string{authenticateHeader: adminToken})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateProduct_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/products", "{not json", map[string]string{authenticateHeader: adminToken})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProduct_ValidationFailure(t *testing.T) {
	products := &mockProductService{createFn: func(_ context.Context, _ models.ProductDTO) (models.Product, error) {
		verr := &validators.ValidationError{Fields: []models.FieldError{
			{Field: "name", Code: "INVALID_REQUIRED", Message: "name is required"},
		}}
		return models.Product{}, fmt.Errorf("%w: %w", service.ErrInvalidProduct, verr)
	}}
	router := newTestRouter(t, products, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/products", `{"price":1}`, map[string]string{authenticateHeader: adminToken})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "name", body.Errors[0].Field)
	assert.Equal(t, "INVALID_REQUIRED", body.Errors[0].Code)
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestListProducts(t *testing.T) {
	products := &mockProductService{listFn: func(_ context.Context) ([]models.Product, error) {
		return []models.Product{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nil
	}}
	router := newTestRouter(t, products, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/products", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListProducts_EmptyIsArray(t *testing.T) {
	router := newTestRouter(t, &mockProductService{}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/products", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListProducts_StoreError(t *testing.T) {
	products := &mockProductService{listFn: func(_ context.Context) ([]models.Product, error) {
		return nil, fmt.Errorf("error listing products: %w", store.ErrScanningRows)
	}}
	router := newTestRouter(t, products, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/products", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), http.StatusText(http.StatusInternalServerError))
}

// ─────────────────────────────────────────────
// Get
// ─────────────────────────────────────────────

func TestGetProduct(t *testing.T) {
	products := &mockProductService{getFn: func(_ context.Context, id int64) (models.Product, bool, error) {
		return models.Product{ID: id, Name: "found"}, true, nil
	}}
	router := newTestRouter(t, products, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/products/5", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.ID)
}

func TestGetProduct_NotFound_EmptyBody(t *testing.T) {
	router := newTestRouter(t, &mockProductService{}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/products/42", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetProduct_NonIntegerID(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/products/abc", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestUpdateProduct_IDForcedToPath(t *testing.T) {
	var gotID int64
	products := &mockProductService{updateFn: func(_ context.Context, id int64, dto models.ProductDTO) (models.Product, bool, error) {
		gotID = id
		return dto.ToProductWithID(id), true, nil
	}}
	router := newTestRouter(t, products, nil)

	body := `{"id":999,"name":"Teddy bear","price":1500,"image_url":"https://img.example.com/bear.png"}`
	rec := doRequest(t, router, http.MethodPut, "/api/products/42", body, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotID)

	var updated models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, int64(42), updated.ID)
	assert.Equal(t, "Teddy bear", updated.Name)
}

func TestUpdateProduct_NotFound_EmptyBody(t *testing.T) {
	router := newTestRouter(t, &mockProductService{}, nil)

	rec := doRequest(t, router, http.MethodPut, "/api/products/42", productBody, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUpdateProduct_ValidationFailure(t *testing.T) {
	products := &mockProductService{updateFn: func(_ context.Context, _ int64, _ models.ProductDTO) (models.Product, bool, error) {
		verr := &validators.ValidationError{Fields: []models.FieldError{{Field: "price", Code: "INVALID_GTE|0"}}}
		return models.Product{}, false, fmt.Errorf("%w: %w", service.ErrInvalidProduct, verr)
	}}
	router := newTestRouter(t, products, nil)

	rec := doRequest(t, router, http.MethodPut, "/api/products/1", `{"price":-1}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"price"`)
}

func TestUpdateProduct_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := doRequest(t, router, http.MethodPut, "/api/products/1", "[", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestDeleteProduct(t *testing.T) {
	tests := []struct {
		name       string
		affected   int64
		err        error
		wantStatus int
	}{
		{name: "deleted", affected: 1, wantStatus: http.StatusNoContent},
		{name: "missing", affected: 0, wantStatus: http.StatusNotFound},
		{name: "more than one row", affected: 2, wantStatus: http.StatusNotFound},
		{name: "store error", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := &mockProductService{deleteFn: func(_ context.Context, id int64) (int64, error) {
				assert.Equal(t, int64(42), id)
				return tt.affected, tt.err
			}}
			router := newTestRouter(t, products, nil)

			rec := doRequest(t, router, http.MethodDelete, "/api/products/42", "", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

func TestDeleteProduct_NonIntegerID(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/products/1.5", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
