package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-gift-catalog/internal/validators"
	"github.com/MKhiriev/go-gift-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockProductService struct {
	createFn func(ctx context.Context, dto models.ProductDTO) (models.Product, error)
	listFn   func(ctx context.Context) ([]models.Product, error)
	getFn    func(ctx context.Context, id int64) (models.Product, bool, error)
	updateFn func(ctx context.Context, id int64, dto models.ProductDTO) (models.Product, bool, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)
}

func (m *mockProductService) Create(ctx context.Context, dto models.ProductDTO) (models.Product, error) {
	if m.createFn != nil {
		return m.createFn(ctx, dto)
	}
	return models.Product{}, nil
}

func (m *mockProductService) List(ctx context.Context) ([]models.Product, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockProductService) Get(ctx context.Context, id int64) (models.Product, bool, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Product{}, false, nil
}

func (m *mockProductService) Update(ctx context.Context, id int64, dto models.ProductDTO) (models.Product, bool, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, dto)
	}
	return models.Product{}, false, nil
}

func (m *mockProductService) Delete(ctx context.Context, id int64) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// ProductValidationService
// ─────────────────────────────────────────────

func TestProductValidationService_Create_Valid_CallsInner(t *testing.T) {
	called := false
	inner := &mockProductService{createFn: func(ctx context.Context, dto models.ProductDTO) (models.Product, error) {
		called = true
		return dto.ToProductWithID(1), nil
	}}
	svc := NewProductValidationService().Wrap(inner)

	created, err := svc.Create(context.Background(), validDTO())

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, int64(1), created.ID)
}

func TestProductValidationService_Create_Invalid_SkipsInner(t *testing.T) {
	inner := &mockProductService{createFn: func(ctx context.Context, dto models.ProductDTO) (models.Product, error) {
		t.Fatal("inner service must not be called for invalid payload")
		return models.Product{}, nil
	}}
	svc := NewProductValidationService().Wrap(inner)

	_, err := svc.Create(context.Background(), models.ProductDTO{Name: "", Price: -1, ImageURL: "not a url"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProduct)
	assert.ErrorIs(t, err, validators.ErrInvalidInput)

	fields := validators.FieldErrors(err)
	require.Len(t, fields, 3)
	names := []string{fields[0].Field, fields[1].Field, fields[2].Field}
	assert.ElementsMatch(t, []string{"name", "price", "image_url"}, names)
}

func TestProductValidationService_Create_NameTooLong(t *testing.T) {
	svc := NewProductValidationService().Wrap(&mockProductService{})

	dto := validDTO()
	dto.Name = "a name that is far too long"
	_, err := svc.Create(context.Background(), dto)

	require.ErrorIs(t, err, ErrInvalidProduct)
	fields := validators.FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "name", fields[0].Field)
}

func TestProductValidationService_Update_Invalid(t *testing.T) {
	inner := &mockProductService{updateFn: func(ctx context.Context, id int64, dto models.ProductDTO) (models.Product, bool, error) {
		t.Fatal("inner service must not be called for invalid payload")
		return models.Product{}, false, nil
	}}
	svc := NewProductValidationService().Wrap(inner)

	_, found, err := svc.Update(context.Background(), 1, models.ProductDTO{})

	assert.False(t, found)
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestProductValidationService_Update_Valid(t *testing.T) {
	inner := &mockProductService{updateFn: func(ctx context.Context, id int64, dto models.ProductDTO) (models.Product, bool, error) {
		return dto.ToProductWithID(id), true, nil
	}}
	svc := NewProductValidationService().Wrap(inner)

	updated, found, err := svc.Update(context.Background(), 9, validDTO())

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(9), updated.ID)
}

func TestProductValidationService_ReadsPassThrough(t *testing.T) {
	inner := &mockProductService{
		listFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: 1}}, nil
		},
		getFn: func(ctx context.Context, id int64) (models.Product, bool, error) {
			return models.Product{ID: id}, true, nil
		},
		deleteFn: func(ctx context.Context, id int64) (int64, error) {
			return 1, nil
		},
	}
	svc := NewProductValidationService().Wrap(inner)
	ctx := context.Background()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	p, found, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(7), p.ID)

	affected, err := svc.Delete(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}
