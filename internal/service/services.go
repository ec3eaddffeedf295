package service

import (
	"fmt"

	"github.com/MKhiriev/go-gift-catalog/internal/cache"
	"github.com/MKhiriev/go-gift-catalog/internal/config"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/store"
)

type Services struct {
	ProductService ProductService
	MemberService  MemberService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages. productCache may be nil,
// in which case products are always read from storage.
func NewServices(storages *store.Storages, productCache cache.ProductCache, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	wrappers := []ProductServiceWrapper{NewProductValidationService()}
	if productCache != nil {
		wrappers = append(wrappers, NewProductCacheService(productCache))
	}

	return &Services{
		ProductService: ComposeProductService(NewProductService(storages.ProductRepository, logger), wrappers...),
		MemberService:  NewMemberService(storages.MemberRepository, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}

// ComposeProductService decorates core with wrappers. The first wrapper is
// the outermost one.
func ComposeProductService(core ProductService, wrappers ...ProductServiceWrapper) ProductService {
	svc := core
	for i := len(wrappers) - 1; i >= 0; i-- {
		svc = wrappers[i].Wrap(svc)
	}
	return svc
}
