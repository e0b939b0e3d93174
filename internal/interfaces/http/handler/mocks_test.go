package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/biztime/backend/internal/domain/company"
	"github.com/biztime/backend/internal/domain/invoice"
	"github.com/biztime/backend/internal/infrastructure/persistence"
	"github.com/biztime/backend/internal/interfaces/http/dto"
	"github.com/biztime/backend/internal/interfaces/http/middleware"
	"github.com/biztime/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// newTestEngine mounts the given groups the same way the server does
func newTestEngine(groups ...router.RouteRegistrar) *gin.Engine {
	engine := router.NewEngine(router.EngineConfig{MaxBodySize: 1 << 20})
	r := router.NewRouter(engine)
	for _, g := range groups {
		r.Register(g)
	}
	r.Setup()
	return engine
}

func performRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorInfo {
	t.Helper()
	var resp dto.ErrorResponse
	decodeBody(t, w, &resp)
	return resp.Error
}

// MockCompanyRepository is a mock implementation of company.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindAll(ctx context.Context) ([]company.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]company.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindDetailRows(ctx context.Context, code string) ([]company.DetailRow, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]company.DetailRow), args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *company.Company) (*company.Company, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockIndustryRepository is a mock implementation of company.IndustryRepository
type MockIndustryRepository struct {
	mock.Mock
}

func (m *MockIndustryRepository) FindAllListings(ctx context.Context) ([]company.IndustryListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]company.IndustryListing), args.Error(1)
}

func (m *MockIndustryRepository) Create(ctx context.Context, ind *company.Industry) (*company.Industry, error) {
	args := m.Called(ctx, ind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Industry), args.Error(1)
}

func (m *MockIndustryRepository) LinkCompany(ctx context.Context, link *company.CompanyIndustry) (*company.CompanyIndustry, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.CompanyIndustry), args.Error(1)
}

// MockInvoiceRepository is a mock implementation of invoice.Repository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context) ([]invoice.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindWithCompany(ctx context.Context, id int64) (*invoice.WithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.WithCompany), args.Error(1)
}

func (m *MockInvoiceRepository) Create(ctx context.Context, draft *invoice.Draft) (*invoice.Invoice, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, id int64, r *invoice.Replacement) (*invoice.Invoice, error) {
	args := m.Called(ctx, id, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeDatabase is a DatabaseProbe with canned answers
type fakeDatabase struct {
	pingErr  error
	stats    persistence.PoolStats
	statsErr error
}

func (f *fakeDatabase) Ping(context.Context) error {
	return f.pingErr
}

func (f *fakeDatabase) Stats() (persistence.PoolStats, error) {
	return f.stats, f.statsErr
}
