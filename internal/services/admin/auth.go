package admin

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/louisbranch/contentadmin/internal/platform/errors"
	errori18n "github.com/louisbranch/contentadmin/internal/platform/errors/i18n"
	"github.com/louisbranch/contentadmin/internal/services/admin/i18n"
	routepath "github.com/louisbranch/contentadmin/internal/services/admin/routepath"
)

// tokenCookieName carries the operator token for browser sessions.
const tokenCookieName = "ca_token"

// AuthConfig enables HS256 operator tokens for every admin route.
type AuthConfig struct {
	Secret string
	Issuer string
}

// Enabled reports whether tokens are required.
func (c AuthConfig) Enabled() bool {
	return strings.TrimSpace(c.Secret) != ""
}

// operatorClaims is the token payload accepted by the admin service.
type operatorClaims struct {
	jwt.RegisteredClaims
}

// IssueToken signs an operator token for subject valid for ttl.
func IssueToken(cfg AuthConfig, subject string, ttl time.Duration, now time.Time) (string, error) {
	if !cfg.Enabled() {
		return "", errors.New("auth secret is required")
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", errors.New("token subject is required")
	}
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}
	claims := operatorClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign operator token: %w", err)
	}
	return signed, nil
}

// verifyToken returns the operator subject of a valid token.
func verifyToken(raw string, cfg AuthConfig) (string, error) {
	var claims operatorClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeUnauthorized, "invalid operator token", err)
	}
	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return "", apperrors.New(apperrors.CodeUnauthorized, "operator token has no subject")
	}
	return subject, nil
}

// requireAuth rejects requests without a valid operator token and stores the
// operator subject in the request context.
func requireAuth(next http.Handler, cfg AuthConfig) http.Handler {
	if !cfg.Enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		raw := tokenFromRequest(r)
		if raw == "" {
			writeUnauthorized(w, r)
			return
		}
		operator, err := verifyToken(raw, cfg)
		if err != nil {
			log.Printf("admin auth rejected %s %s: %v", r.Method, r.URL.Path, err)
			writeUnauthorized(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithOperator(r.Context(), operator)))
	})
}

// tokenFromRequest reads a bearer token, falling back to the session cookie.
func tokenFromRequest(r *http.Request) string {
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	cookie, err := r.Cookie(tokenCookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	tag, _ := i18n.ResolveTag(r)
	message := errori18n.GetCatalog(tag.String()).Format(string(apperrors.CodeUnauthorized), nil)
	w.Header().Set("WWW-Authenticate", `Bearer realm="contentadmin"`)
	http.Error(w, message, apperrors.CodeUnauthorized.HTTPStatus())
}

// isAuthExempt returns true for paths that should bypass authentication.
func isAuthExempt(path string) bool {
	return strings.HasPrefix(path, routepath.StaticPrefix)
}
