package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login for a wrong email or
// password. Handlers must not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Credential is an admin login record from the allow-list collection.
type Credential struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
}

// AllowList is the admin collection boundary: presence of a document
// keyed by principal ID means the principal is authorized.
type AllowList interface {
	IsAllowed(ctx context.Context, principalID string) (bool, error)
	FindCredential(ctx context.Context, email string) (*Credential, error)
}

// Config carries the token parameters for a Gate.
type Config struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Gate resolves bearer tokens into sessions and issues tokens on login.
type Gate struct {
	allowList AllowList
	cfg       Config
	now       func() time.Time
}

// NewGate constructs a Gate over the given allow-list.
func NewGate(allowList AllowList, cfg Config) *Gate {
	return &Gate{allowList: allowList, cfg: cfg, now: time.Now}
}

type gateClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Resolve turns a raw bearer token into a Session. A blank token is
// anonymous; an invalid token or a principal missing from the
// allow-list is unauthorized; a failed allow-list lookup yields a
// settling session so callers do not guess either way.
func (g *Gate) Resolve(ctx context.Context, token string) Session {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{State: StateAnonymous}
	}

	claims, err := g.parseToken(token)
	if err != nil {
		return Session{State: StateUnauthorized}
	}

	principal := Principal{ID: claims.Subject, Email: claims.Email, Name: claims.Name}

	allowed, err := g.allowList.IsAllowed(ctx, principal.ID)
	if err != nil {
		return Session{State: StateSettling, Principal: principal}
	}
	if !allowed {
		return Session{State: StateUnauthorized, Principal: principal}
	}
	return Session{State: StateAuthorized, Principal: principal}
}

// Login verifies an email/password pair against the stored bcrypt hash
// and returns a signed token for the matching principal.
func (g *Gate) Login(ctx context.Context, email, password string) (string, Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", Principal{}, ErrInvalidCredentials
	}

	cred, err := g.allowList.FindCredential(ctx, email)
	if err != nil {
		return "", Principal{}, err
	}
	if cred == nil {
		return "", Principal{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", Principal{}, ErrInvalidCredentials
	}

	principal := Principal{ID: cred.ID, Email: cred.Email, Name: cred.Name}
	token, err := g.issueToken(principal)
	if err != nil {
		return "", Principal{}, err
	}
	return token, principal, nil
}

func (g *Gate) issueToken(principal Principal) (string, error) {
	now := g.now()
	claims := gateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID,
			Issuer:    g.cfg.Issuer,
			Audience:  jwt.ClaimStrings{g.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.cfg.TTL)),
		},
		Name:  principal.Name,
		Email: principal.Email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.cfg.Secret)
}

// parseToken validates the signature, issuer, audience and time claims.
func (g *Gate) parseToken(tokenString string) (*gateClaims, error) {
	claims := &gateClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return g.cfg.Secret, nil
	}, jwt.WithLeeway(30*time.Second), jwt.WithTimeFunc(g.now))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid access token")
	}

	if g.cfg.Issuer != "" && claims.Issuer != g.cfg.Issuer {
		return nil, errors.New("unexpected token issuer")
	}
	if g.cfg.Audience != "" && !contains(claims.Audience, g.cfg.Audience) {
		return nil, errors.New("unexpected token audience")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
