package http

import (
	"agri-drone/common/vars"
	"agri-drone/outbound/sqlgen"
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var priceItemColumns = []string{"kind", "key", "name", "price_per_rai", "sort_order", "active", "updated_at"}

type stubRefresher struct {
	calls int
	err   error
}

func (r *stubRefresher) Refresh(context.Context) error {
	r.calls++
	return r.err
}

type PricingHttpTestSuite struct {
	suite.Suite

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface

	Refresher *stubRefresher
	Mux       *http.ServeMux
}

func (s *PricingHttpTestSuite) SetupTest() {
	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}

	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)
	s.Refresher = &stubRefresher{}

	s.Mux = http.NewServeMux()
	RegisterPricingHttp(s.Mux, AdminAuthMiddleware(testAdminSecret), s.Querier, validator.New(), s.Refresher, decimal.RequireFromString("0.30"))

	vars.SetPriceTable(testPriceTable())

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *PricingHttpTestSuite) TearDownTest() {
	s.PgxMock.Close()

	vars.SetPriceTable(nil)
}

func TestPricingHttpTestSuite(t *testing.T) {
	suite.Run(t, new(PricingHttpTestSuite))
}

func (s *PricingHttpTestSuite) TestList() {
	s.Run("snapshot", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/prices", nil)
		w := httptest.NewRecorder()

		s.Mux.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
		s.Equal(`{"crops":[{"key":"rice","name":"ข้าว","price_per_rai":"300.00","active":true},{"key":"durian","name":"ทุเรียน","price_per_rai":"500.00","active":true}],`+
			`"sprays":[{"key":"herbicide","name":"ยาฆ่าหญ้า","price_per_rai":"100.00","active":true},{"key":"fungicide","name":"ยาป้องกันเชื้อรา","price_per_rai":"120.00","active":true}],`+
			`"deposit_rate":"0.3"}`, strings.TrimSpace(w.Body.String()))
	})

	s.Run("not loaded", func() {
		vars.SetPriceTable(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/prices", nil)
		w := httptest.NewRecorder()

		s.Mux.ServeHTTP(w, req)

		s.Equal(http.StatusServiceUnavailable, w.Code)
		s.Equal(`{"error":"Price table unavailable"}`, strings.TrimSpace(w.Body.String()))
	})
}

func (s *PricingHttpTestSuite) TestAdmin() {
	updatedAt := pgtype.Timestamp{Time: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC), Valid: true}

	tests := []struct {
		name            string
		method          string
		target          string
		reqBody         string
		refreshErr      error
		setupMock       func()
		expectedStatus  int
		expectedBody    string
		expectedRefresh int
	}{
		{
			name:           "unknown kind",
			method:         http.MethodGet,
			target:         "/api/admin/prices/fruit",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Price kind must be crop or spray"}`,
		},
		{
			name:   "list kind",
			method: http.MethodGet,
			target: "/api/admin/prices/crop",
			setupMock: func() {
				s.PgxMock.ExpectQuery(`FROM price_items\s+WHERE kind = \$1`).
					WithArgs("crop").
					WillReturnRows(pgxmock.NewRows(priceItemColumns).
						AddRow("crop", "rice", "ข้าว", numericOf("300"), int32(1), true, updatedAt).
						AddRow("crop", "mango", "มะม่วง", numericOf("420"), int32(2), false, updatedAt))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"items":[{"key":"rice","name":"ข้าว","price_per_rai":"300.00","sort_order":1,"active":true},{"key":"mango","name":"มะม่วง","price_per_rai":"420.00","sort_order":2,"active":false}]}`,
		},
		{
			name:           "create invalid key",
			method:         http.MethodPost,
			target:         "/api/admin/prices/crop",
			reqBody:        `{"key":"corn/sweet","name":"ข้าวโพดหวาน","price_per_rai":"330"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"Key":"excludesall"}}`,
		},
		{
			name:           "create negative price",
			method:         http.MethodPost,
			target:         "/api/admin/prices/crop",
			reqBody:        `{"key":"corn","name":"ข้าวโพด","price_per_rai":-1}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"PricePerRai":"number"}}`,
		},
		{
			name:    "create",
			method:  http.MethodPost,
			target:  "/api/admin/prices/crop",
			reqBody: `{"key":"corn","name":"ข้าวโพด","price_per_rai":"320.555","sort_order":2}`,
			setupMock: func() {
				s.PgxMock.ExpectQuery("INSERT INTO price_items").
					WithArgs("crop", "corn", "ข้าวโพด", pgxmock.AnyArg(), int32(2), true).
					WillReturnRows(pgxmock.NewRows(priceItemColumns).
						AddRow("crop", "corn", "ข้าวโพด", numericOf("320.56"), int32(2), true, updatedAt))
			},
			expectedStatus:  http.StatusOK,
			expectedBody:    `{"key":"corn","name":"ข้าวโพด","price_per_rai":"320.56","sort_order":2,"active":true}`,
			expectedRefresh: 1,
		},
		{
			name:       "update uses path key and survives refresh error",
			method:     http.MethodPut,
			target:     "/api/admin/prices/spray/herbicide",
			reqBody:    `{"key":"ignored","name":"ยาฆ่าหญ้า","price_per_rai":110,"active":false}`,
			refreshErr: fmt.Errorf("database error"),
			setupMock: func() {
				s.PgxMock.ExpectQuery("INSERT INTO price_items").
					WithArgs("spray", "herbicide", "ยาฆ่าหญ้า", pgxmock.AnyArg(), int32(0), false).
					WillReturnRows(pgxmock.NewRows(priceItemColumns).
						AddRow("spray", "herbicide", "ยาฆ่าหญ้า", numericOf("110"), int32(0), false, updatedAt))
			},
			expectedStatus:  http.StatusOK,
			expectedBody:    `{"key":"herbicide","name":"ยาฆ่าหญ้า","price_per_rai":"110.00","active":false}`,
			expectedRefresh: 1,
		},
		{
			name:   "deactivate missing",
			method: http.MethodDelete,
			target: "/api/admin/prices/crop/mango",
			setupMock: func() {
				s.PgxMock.ExpectExec(`UPDATE price_items\s+SET active = FALSE`).
					WithArgs("crop", "mango").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Price item not found"}`,
		},
		{
			name:   "deactivate",
			method: http.MethodDelete,
			target: "/api/admin/prices/crop/rice",
			setupMock: func() {
				s.PgxMock.ExpectExec(`UPDATE price_items\s+SET active = FALSE`).
					WithArgs("crop", "rice").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedStatus:  http.StatusNoContent,
			expectedBody:    "",
			expectedRefresh: 1,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Refresher.calls = 0
			s.Refresher.err = tc.refreshErr

			tc.setupMock()

			w := httptest.NewRecorder()
			s.Mux.ServeHTTP(w, adminRequest(tc.method, tc.target, tc.reqBody))

			s.Equal(tc.expectedStatus, w.Code)
			s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
			s.Equal(tc.expectedRefresh, s.Refresher.calls)
			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}
