package http

import (
	"agri-drone/common"
	"agri-drone/common/constant"
	"agri-drone/common/errs"
	"agri-drone/model"
	"crypto/subtle"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"log/slog"
	"net/http"
	"time"
)

const defaultTokenTTL = 12 * time.Hour

var errInvalidCredentials = &errs.HttpError{Code: http.StatusUnauthorized, Message: "Invalid username or password"}

type AuthHttp struct {
	Validate *validator.Validate
	TimeNow  func() time.Time

	username     string
	passwordHash []byte
	secret       []byte
	tokenTTL     time.Duration
}

func RegisterAuthHttp(mux *http.ServeMux, cfg *viper.Viper, validate *validator.Validate) *AuthHttp {
	in := &AuthHttp{
		Validate: validate,
		TimeNow:  time.Now,

		username:     cfg.GetString("admin.username"),
		passwordHash: []byte(cfg.GetString("admin.password_hash")),
		secret:       []byte(cfg.GetString("admin.jwt_secret")),
		tokenTTL:     cfg.GetDuration("admin.token_ttl"),
	}

	if in.tokenTTL <= 0 {
		in.tokenTTL = defaultTokenTTL
	}

	mux.HandleFunc("POST /api/admin/login", in.login)

	return in
}

func (in AuthHttp) login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, errs.ErrInvalidRequest)
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx := r.Context()
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	if in.username == "" || len(in.passwordHash) == 0 {
		slog.WarnContext(ctx, "admin login is not configured", traceIdAttr)
		writeErrorResponse(w, errInvalidCredentials)
		return
	}

	userOk := subtle.ConstantTimeCompare([]byte(req.Username), []byte(in.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(in.passwordHash, []byte(req.Password))
	if !userOk || passErr != nil {
		slog.DebugContext(ctx, "admin login rejected", traceIdAttr)
		writeErrorResponse(w, errInvalidCredentials)
		return
	}

	now := in.TimeNow()
	expiresAt := now.Add(in.tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   in.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(in.secret)
	if err != nil {
		slog.ErrorContext(ctx, "failed to sign admin token", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "admin login success", traceIdAttr)

	writeJSONResponse(w, http.StatusOK, model.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}
