package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agri-drone/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) TestCorsMiddleware() {
	tests := []struct {
		name            string
		method          string
		expectedStatus  int
		expectedHeaders map[string]string
		handlerCalled   bool
	}{
		{
			name:           "OPTIONS request",
			method:         http.MethodOptions,
			expectedStatus: http.StatusOK,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin":  "*",
				"Access-Control-Allow-Methods": "GET, POST, PUT, PATCH, DELETE, OPTIONS",
				"Access-Control-Allow-Headers": "Content-Type, Authorization",
			},
			handlerCalled: false,
		},
		{
			name:           "GET request",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin":  "*",
				"Access-Control-Allow-Methods": "GET, POST, PUT, PATCH, DELETE, OPTIONS",
				"Access-Control-Allow-Headers": "Content-Type, Authorization",
			},
			handlerCalled: true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			handlerCalled := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			middleware := CorsMiddleware(handler)

			req := httptest.NewRequest(tc.method, "/test", nil)
			w := httptest.NewRecorder()

			middleware.ServeHTTP(w, req)

			s.Equal(tc.expectedStatus, w.Code)
			for key, value := range tc.expectedHeaders {
				s.Equal(value, w.Header().Get(key))
			}
			s.Equal(tc.handlerCalled, handlerCalled)
		})
	}
}

func (s *MiddlewareTestSuite) TestTimeoutMiddleware() {
	tests := []struct {
		name           string
		handlerDelay   time.Duration
		timeout        time.Duration
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "request completes in time",
			handlerDelay:   1 * time.Millisecond,
			timeout:        100 * time.Millisecond,
			expectedStatus: http.StatusOK,
			expectedBody:   "success",
		},
		{
			name:           "request times out",
			handlerDelay:   200 * time.Millisecond,
			timeout:        50 * time.Millisecond,
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "request timeout",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(tc.handlerDelay)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("success"))
			})

			middleware := TimeoutMiddleware(tc.timeout)(handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			middleware.ServeHTTP(w, req)

			s.Equal(tc.expectedStatus, w.Code, "Expected status code %d but got %d", tc.expectedStatus, w.Code)
			s.Contains(w.Body.String(), tc.expectedBody)
		})
	}
}

func signAdminToken(secret []byte, method jwt.SigningMethod, subject string, expiresAt time.Time) string {
	claims := jwt.RegisteredClaims{Subject: subject}
	if !expiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	if err != nil {
		panic(err)
	}
	return token
}

func (s *MiddlewareTestSuite) TestAdminAuthMiddleware() {
	secret := []byte("test-secret")
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedAdmin  string
	}{
		{
			name:           "valid token",
			header:         "Bearer " + signAdminToken(secret, jwt.SigningMethodHS256, "somchai", future),
			expectedStatus: http.StatusOK,
			expectedAdmin:  "somchai",
		},
		{
			name:           "missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			header:         "Basic " + signAdminToken(secret, jwt.SigningMethodHS256, "somchai", future),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong secret",
			header:         "Bearer " + signAdminToken([]byte("other"), jwt.SigningMethodHS256, "somchai", future),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired",
			header:         "Bearer " + signAdminToken(secret, jwt.SigningMethodHS256, "somchai", time.Now().Add(-time.Minute)),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no expiry",
			header:         "Bearer " + signAdminToken(secret, jwt.SigningMethodHS256, "somchai", time.Time{}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "other hmac method",
			header:         "Bearer " + signAdminToken(secret, jwt.SigningMethodHS512, "somchai", future),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty subject",
			header:         "Bearer " + signAdminToken(secret, jwt.SigningMethodHS256, "", future),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			var admin string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				admin = adminFromCtx(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			AdminAuthMiddleware(secret)(handler).ServeHTTP(w, req)

			s.Equal(tc.expectedStatus, w.Code)
			if tc.expectedStatus != http.StatusOK {
				var resp model.ErrorResponse
				s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				s.Equal("Unauthorized", resp.Error)
				return
			}
			s.Equal(tc.expectedAdmin, admin)
		})
	}
}

func (s *MiddlewareTestSuite) TestAdminFromCtxDefault() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s.Equal("admin", adminFromCtx(req.Context()))
}
