package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pribylovaa/go-social-feed/internal/config"
	apierrors "github.com/pribylovaa/go-social-feed/internal/errors"
	"github.com/pribylovaa/go-social-feed/pkg/log"
)

type userIDKey struct{}

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
)

// AccessClaims — полезная нагрузка access-токена, выпущенного сервисом аутентификации.
type AccessClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// Authenticate извлекает Bearer-токен из Authorization и проверяет его (HS256).
//
// Поведение:
//   - заголовка нет — запрос идёт дальше анонимно;
//   - токен валиден — id пользователя кладётся в контекст (см. UserID);
//   - токен есть, но невалиден/просрочен — 401.
//
// Issuer/Audience проверяются, только если заданы в конфиге.
func Authenticate(cfg config.AuthConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if errors.Is(err, errMissingToken) {
				next.ServeHTTP(w, r)
				return
			}

			var uid int64
			if err == nil {
				uid, err = parseAccessToken(cfg, token)
			}

			if err != nil {
				log.From(r.Context()).Warn("auth failed", "err", err.Error())
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, uid)
			ctx = log.Into(ctx, log.From(ctx).With("caller_id", uid))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser отвечает 401, если Authenticate не положил пользователя в контекст.
func RequireUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserID(r.Context()); !ok {
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserID возвращает id аутентифицированного пользователя из контекста.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok && id > 0
}

// WithUserID кладёт id пользователя в контекст. Используется в тестах хендлеров.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

func bearerToken(r *http.Request) (string, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", errMissingToken
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", errInvalidToken
	}

	token := strings.TrimSpace(auth[len(prefix):])
	if token == "" {
		return "", errInvalidToken
	}

	return token, nil
}

// parseAccessToken валидирует подпись, срок действия и (опционально) iss/aud.
func parseAccessToken(cfg config.AuthConfig, tokenStr string) (int64, error) {
	const op = "http/middleware/parseAccessToken"

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5 * time.Second),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{},
		func(*jwt.Token) (any, error) {
			return []byte(cfg.JWTSecret), nil
		},
		opts...,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return 0, fmt.Errorf("%s: %w", op, errInvalidToken)
	}

	return claims.UserID, nil
}
