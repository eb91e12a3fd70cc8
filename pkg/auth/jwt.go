package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/newsner/newsner/config"
)

const JwtAlg = "HS256"

var ErrSecretNotSet = errors.New(
	"auth secret not set. Ensure NEWSNER_AUTH_SECRET is set in your environment",
)

func tokenAuth(cfg *config.Config) (*jwtauth.JWTAuth, error) {
	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		return nil, ErrSecretNotSet
	}
	return jwtauth.New(JwtAlg, secret, nil), nil
}

// GenerateJWT generates a bearer token for the JSON API using the configured secret.
func GenerateJWT(cfg *config.Config) (string, error) {
	ta, err := tokenAuth(cfg)
	if err != nil {
		return "", err
	}

	_, tokenString, err := ta.Encode(map[string]interface{}{"sub": "newsner-api"})
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// JWTVerifier returns middleware that verifies bearer tokens signed with the
// configured secret. Pair it with jwtauth.Authenticator to reject requests.
func JWTVerifier(cfg *config.Config) (func(http.Handler) http.Handler, error) {
	ta, err := tokenAuth(cfg)
	if err != nil {
		return nil, err
	}
	return jwtauth.Verifier(ta), nil
}
