package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/mock"
	"github.com/MKhiriev/go-gift-catalog/internal/store"
	"github.com/MKhiriev/go-gift-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validDTO() models.ProductDTO {
	return models.ProductDTO{Name: "Teddy bear", Price: 1500, ImageURL: "https://img.example.com/bear.png"}
}

func newProductServiceWithMock(t *testing.T) (ProductService, *mock.MockProductRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProductRepository(ctrl)
	return NewProductService(repo, logger.Nop()), repo
}

func TestProductService_Create(t *testing.T) {
	svc, repo := newProductServiceWithMock(t)

	repo.EXPECT().
		Insert(gomock.Any(), models.Product{Name: "Teddy bear", Price: 1500, ImageURL: "https://img.example.com/bear.png"}).
		Return(models.Product{ID: 1, Name: "Teddy bear", Price: 1500, ImageURL: "https://img.example.com/bear.png"}, nil)

	created, err := svc.Create(context.Background(), validDTO())

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestProductService_Create_RepoError(t *testing.T) {
	svc, repo := newProductServiceWithMock(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(models.Product{}, store.ErrExecutingQuery)

	_, err := svc.Create(context.Background(), validDTO())

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestProductService_List(t *testing.T) {
	svc, repo := newProductServiceWithMock(t)

	want := []models.Product{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	repo.EXPECT().FindAll(gomock.Any()).Return(want, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProductService_List_RepoError(t *testing.T) {
	svc, repo := newProductServiceWithMock(t)

	repo.EXPECT().FindAll(gomock.Any()).Return(nil, store.ErrScanningRows)

	got, err := svc.List(context.Background())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrScanningRows)
}

func TestProductService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo := newProductServiceWithMock(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(models.Product{ID: 5}, true, nil)

		product, found, err := svc.Get(context.Background(), 5)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(5), product.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newProductServiceWithMock(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(models.Product{}, false, nil)

		_, found, err := svc.Get(context.Background(), 42)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("error", func(t *testing.T) {
		svc, repo := newProductServiceWithMock(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(models.Product{}, false, store.ErrScanningRow)

		_, found, err := svc.Get(context.Background(), 1)

		assert.False(t, found)
		assert.ErrorIs(t, err, store.ErrScanningRow)
	})
}

func TestProductService_Update_ForcesPathID(t *testing.T) {
	svc, repo := newProductServiceWithMock(t)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Product) (models.Product, bool, error) {
			assert.Equal(t, int64(42), p.ID)
			return p, true, nil
		})

	updated, found, err := svc.Update(context.Background(), 42, validDTO())

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(42), updated.ID)
	assert.Equal(t, "Teddy bear", updated.Name)
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc, repo := newProductServiceWithMock(t)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(models.Product{}, false, nil)

	updated, found, err := svc.Update(context.Background(), 42, validDTO())

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, models.Product{}, updated)
}

func TestProductService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, repo := newProductServiceWithMock(t)
		repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(int64(1), nil)

		affected, err := svc.Delete(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo := newProductServiceWithMock(t)
		repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(int64(0), nil)

		affected, err := svc.Delete(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})

	t.Run("error", func(t *testing.T) {
		svc, repo := newProductServiceWithMock(t)
		repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(int64(0), errors.New("boom"))

		_, err := svc.Delete(context.Background(), 3)

		require.Error(t, err)
	})
}
