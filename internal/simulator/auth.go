package simulator

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/mcpflow/mcpflow/internal/config"
)

// Authenticator validates bearer tokens on the protected endpoints.
// Static mode compares against a shared token; jwt mode verifies an HS256
// signature. Static mode with an empty token disables auth, which keeps
// the local demo loop free of setup.
type Authenticator struct {
	mode   string
	token  string
	secret []byte
}

// NewAuthenticator builds an authenticator from configuration.
func NewAuthenticator(cfg config.SimAuthConfig) (*Authenticator, error) {
	a := &Authenticator{mode: cfg.Mode, token: cfg.Token, secret: []byte(cfg.JWTSecret)}
	switch cfg.Mode {
	case "", "static":
		a.mode = "static"
	case "jwt":
		if cfg.JWTSecret == "" {
			return nil, errors.New("jwt_secret required when auth mode is jwt")
		}
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
	return a, nil
}

// Enabled reports whether requests must carry a token.
func (a *Authenticator) Enabled() bool {
	if a == nil {
		return false
	}
	return a.mode == "jwt" || a.token != ""
}

// Verify checks the Authorization header and returns the presented bearer
// token, which doubles as the rate limit key.
func (a *Authenticator) Verify(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if !a.Enabled() {
		token, _ := bearerOf(header)
		return token, nil
	}

	token, err := bearerOf(header)
	if err != nil {
		return "", err
	}

	if a.mode == "jwt" {
		if _, err := jwt.ParseString(token, jwt.WithKey(jwa.HS256, a.secret), jwt.WithValidate(true)); err != nil {
			return "", err
		}
		return token, nil
	}

	if token != a.token {
		return "", errors.New("invalid token")
	}
	return token, nil
}

func bearerOf(header string) (string, error) {
	if header == "" {
		return "", errors.New("authorization header required")
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", errors.New("authorization header must be bearer token")
	}
	token := strings.TrimSpace(header[7:])
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}

// MintToken signs an HS256 token accepted by jwt-mode authenticators with
// the same secret. Used by the CLI to hand out demo credentials.
func MintToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("empty signing secret")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	now := time.Now()
	builder := jwt.NewBuilder().
		Issuer("mcpflow-gateway-sim").
		IssuedAt(now).
		Expiration(now.Add(ttl))
	if subject != "" {
		builder = builder.Subject(subject)
	}
	token, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return string(signed), nil
}
