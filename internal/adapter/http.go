package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-gift-catalog/internal/config"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/utils"
	"github.com/MKhiriev/go-gift-catalog/models"
	"github.com/go-resty/resty/v2"
)

const (
	authenticateHeader = "WWW-Authenticate"

	productsPath = "/api/products"
	registerPath = "/api/members/register"
	loginPath    = "/api/members/login"
)

type httpProductAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPProductAPI builds a REST client for the server at cfg.HTTPAddress.
// A scheme-less address is treated as http. cfg.Token, when set, is used
// for protected requests until Register or Login replaces it.
func NewHTTPProductAPI(cfg config.ClientAdapter, logger *logger.Logger) (ProductAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	api := &httpProductAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(cfg.Token)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpProductAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpProductAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpProductAPI) Register(ctx context.Context, credentials models.Credentials) (string, error) {
	return h.authenticate(ctx, registerPath, credentials)
}

func (h *httpProductAPI) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	return h.authenticate(ctx, loginPath, credentials)
}

// authenticate posts credentials to path and stores the token taken from
// the response header, falling back to the JSON body.
func (h *httpProductAPI) authenticate(ctx context.Context, path string, credentials models.Credentials) (string, error) {
	var body models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&body).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := resp.Header().Get(authenticateHeader)
	if token == "" {
		token = body.Token
	}
	if token == "" {
		return "", ErrNoToken
	}

	h.SetToken(token)
	h.logger.Debug().Str("path", path).Msg("token received")
	return token, nil
}

func (h *httpProductAPI) CreateProduct(ctx context.Context, product models.ProductDTO) (models.Product, error) {
	var created models.Product

	resp, err := h.authedRequest(ctx).
		SetBody(product).
		SetResult(&created).
		Post(productsPath)
	if err != nil {
		return models.Product{}, fmt.Errorf("create product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return created, nil
}

func (h *httpProductAPI) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&products).
		Get(productsPath)
	if err != nil {
		return nil, fmt.Errorf("list products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (h *httpProductAPI) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&product).
		Get(productPath(id))
	if err != nil {
		return models.Product{}, fmt.Errorf("get product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, fmt.Errorf("product %d: %w", id, err)
	}

	return product, nil
}

func (h *httpProductAPI) UpdateProduct(ctx context.Context, id int64, product models.ProductDTO) (models.Product, error) {
	var updated models.Product

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(product).
		SetResult(&updated).
		Put(productPath(id))
	if err != nil {
		return models.Product{}, fmt.Errorf("update product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, fmt.Errorf("product %d: %w", id, err)
	}

	return updated, nil
}

func (h *httpProductAPI) DeleteProduct(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(productPath(id))
	if err != nil {
		return fmt.Errorf("delete product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("product %d: %w", id, err)
	}

	return nil
}

func (h *httpProductAPI) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(authenticateHeader, h.Token())
}

func productPath(id int64) string {
	return productsPath + "/" + strconv.FormatInt(id, 10)
}
