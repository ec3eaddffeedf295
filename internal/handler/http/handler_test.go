package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/service"
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

type mockMemberService struct {
	registerFn    func(ctx context.Context, c models.Credentials) (models.Member, error)
	loginFn       func(ctx context.Context, c models.Credentials) (models.Member, error)
	createTokenFn func(ctx context.Context, m models.Member) (models.Token, error)
	verifyRoleFn  func(ctx context.Context, token string) (models.Authorization, error)
}

func (m *mockMemberService) Register(ctx context.Context, c models.Credentials) (models.Member, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, c)
	}
	return models.Member{}, nil
}

func (m *mockMemberService) Login(ctx context.Context, c models.Credentials) (models.Member, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, c)
	}
	return models.Member{}, nil
}

func (m *mockMemberService) CreateToken(ctx context.Context, member models.Member) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, member)
	}
	return models.Token{SignedString: "signed-token", MemberID: member.MemberID}, nil
}

func (m *mockMemberService) VerifyRole(ctx context.Context, token string) (models.Authorization, error) {
	if m.verifyRoleFn != nil {
		return m.verifyRoleFn(ctx, token)
	}
	return models.Authorization{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockMemberService) EnsureAdmin(ctx context.Context, c models.Credentials) (models.Member, error) {
	return models.Member{}, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// tokens understood by adminAwareMembers.
const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

// adminAwareMembers resolves adminToken to an admin and userToken to a
// regular member. Any other token is rejected.
func adminAwareMembers() *mockMemberService {
	return &mockMemberService{
		verifyRoleFn: func(_ context.Context, token string) (models.Authorization, error) {
			switch token {
			case adminToken:
				return models.Authorization{MemberID: 1, Role: models.RoleAdmin}, nil
			case userToken:
				return models.Authorization{MemberID: 2, Role: models.RoleUser}, nil
			default:
				return models.Authorization{}, service.ErrTokenIsExpiredOrInvalid
			}
		},
	}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestRouter(t *testing.T, products service.ProductService, members service.MemberService) http.Handler {
	t.Helper()
	if products == nil {
		products = &mockProductService{}
	}
	if members == nil {
		members = adminAwareMembers()
	}
	h := NewHandler(&service.Services{
		ProductService: products,
		MemberService:  members,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, nil, logger.Nop())
	return h.Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, nil, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Nil(t, h.rateLimiter)
	assert.NotNil(t, h.traceIDs)
}

func TestInit_UnknownRoute_NotFound(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/unknown", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/products", "", nil)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
