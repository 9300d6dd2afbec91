package http

import (
	"agri-drone/model"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type AuthHttpTestSuite struct {
	suite.Suite

	Cfg *viper.Viper
}

func (s *AuthHttpTestSuite) SetupTest() {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	s.Require().NoError(err)

	s.Cfg = viper.New()
	s.Cfg.Set("admin.username", "somchai")
	s.Cfg.Set("admin.password_hash", string(hash))
	s.Cfg.Set("admin.jwt_secret", string(testAdminSecret))
	s.Cfg.Set("admin.token_ttl", "2h")
}

func TestAuthHttpTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHttpTestSuite))
}

func (s *AuthHttpTestSuite) TestLogin() {
	now := time.Now().Truncate(time.Second)

	tests := []struct {
		name           string
		reqBody        string
		configure      func(cfg *viper.Viper)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "invalid json",
			reqBody:        `{`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request"}`,
		},
		{
			name:           "missing password",
			reqBody:        `{"username":"somchai"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"Password":"required"}}`,
		},
		{
			name:           "wrong password",
			reqBody:        `{"username":"somchai","password":"guess"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid username or password"}`,
		},
		{
			name:           "wrong username",
			reqBody:        `{"username":"admin","password":"s3cret"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid username or password"}`,
		},
		{
			name:    "not configured",
			reqBody: `{"username":"somchai","password":"s3cret"}`,
			configure: func(cfg *viper.Viper) {
				cfg.Set("admin.password_hash", "")
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid username or password"}`,
		},
		{
			name:           "success",
			reqBody:        `{"username":"somchai","password":"s3cret"}`,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.configure != nil {
				tc.configure(s.Cfg)
			}

			authHttp := RegisterAuthHttp(http.NewServeMux(), s.Cfg, validator.New())
			authHttp.TimeNow = func() time.Time { return now }

			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tc.reqBody))
			w := httptest.NewRecorder()

			authHttp.login(w, req)

			s.Equal(tc.expectedStatus, w.Code)
			if tc.expectedBody != "" {
				s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
				return
			}

			var resp model.LoginResponse
			s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			s.Equal(now.Add(2*time.Hour).Format(time.RFC3339), resp.ExpiresAt)

			claims := &jwt.RegisteredClaims{}
			_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
				return testAdminSecret, nil
			})
			s.Require().NoError(err)
			s.Equal("somchai", claims.Subject)

			// the issued token opens admin routes
			var admin string
			handler := AdminAuthMiddleware(testAdminSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				admin = adminFromCtx(r.Context())
			}))
			adminReq := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
			adminReq.Header.Set("Authorization", "Bearer "+resp.Token)
			handler.ServeHTTP(httptest.NewRecorder(), adminReq)
			s.Equal("somchai", admin)
		})
	}
}
