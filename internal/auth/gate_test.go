package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAllowList struct {
	allowed     map[string]bool
	credentials map[string]*Credential
	lookupErr   error
}

func (f *fakeAllowList) IsAllowed(_ context.Context, principalID string) (bool, error) {
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	return f.allowed[principalID], nil
}

func (f *fakeAllowList) FindCredential(_ context.Context, email string) (*Credential, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.credentials[email], nil
}

func testGate(list *fakeAllowList) *Gate {
	return NewGate(list, Config{
		Secret:   []byte("test-secret"),
		Issuer:   "pricewatch-admin",
		Audience: "pricewatch-dashboard",
		TTL:      time.Hour,
	})
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestResolveBlankTokenIsAnonymous(t *testing.T) {
	gate := testGate(&fakeAllowList{})

	session := gate.Resolve(context.Background(), "")

	assert.Equal(t, StateAnonymous, session.State)
	assert.False(t, session.Authorized())
}

func TestResolveGarbageTokenIsUnauthorized(t *testing.T) {
	gate := testGate(&fakeAllowList{})

	session := gate.Resolve(context.Background(), "not.a.jwt")

	assert.Equal(t, StateUnauthorized, session.State)
}

func TestLoginThenResolveAuthorized(t *testing.T) {
	list := &fakeAllowList{
		allowed: map[string]bool{"admin-1": true},
		credentials: map[string]*Credential{
			"ala@pricewatch.tn": {
				ID:           "admin-1",
				Email:        "ala@pricewatch.tn",
				Name:         "Ala",
				PasswordHash: mustHash(t, "s3cret"),
			},
		},
	}
	gate := testGate(list)

	token, principal, err := gate.Login(context.Background(), "ala@pricewatch.tn", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", principal.ID)

	session := gate.Resolve(context.Background(), token)
	assert.Equal(t, StateAuthorized, session.State)
	assert.Equal(t, "Ala", session.Principal.Name)
	assert.Equal(t, "ala@pricewatch.tn", session.Principal.Email)
}

func TestResolvePrincipalMissingFromAllowListIsUnauthorized(t *testing.T) {
	list := &fakeAllowList{
		allowed: map[string]bool{},
		credentials: map[string]*Credential{
			"ala@pricewatch.tn": {
				ID:           "admin-1",
				Email:        "ala@pricewatch.tn",
				PasswordHash: mustHash(t, "s3cret"),
			},
		},
	}
	gate := testGate(list)

	token, _, err := gate.Login(context.Background(), "ala@pricewatch.tn", "s3cret")
	require.NoError(t, err)

	session := gate.Resolve(context.Background(), token)
	assert.Equal(t, StateUnauthorized, session.State)
	assert.Equal(t, "admin-1", session.Principal.ID)
}

func TestResolveAllowListFailureSettles(t *testing.T) {
	list := &fakeAllowList{
		credentials: map[string]*Credential{
			"ala@pricewatch.tn": {
				ID:           "admin-1",
				Email:        "ala@pricewatch.tn",
				PasswordHash: mustHash(t, "s3cret"),
			},
		},
	}
	gate := testGate(list)
	token, _, err := gate.Login(context.Background(), "ala@pricewatch.tn", "s3cret")
	require.NoError(t, err)

	list.lookupErr = errors.New("mongo: network unreachable")

	session := gate.Resolve(context.Background(), token)
	assert.Equal(t, StateSettling, session.State)
	assert.False(t, session.Authorized())
}

func TestLoginWrongPassword(t *testing.T) {
	list := &fakeAllowList{
		credentials: map[string]*Credential{
			"ala@pricewatch.tn": {
				ID:           "admin-1",
				Email:        "ala@pricewatch.tn",
				PasswordHash: mustHash(t, "s3cret"),
			},
		},
	}
	gate := testGate(list)

	_, _, err := gate.Login(context.Background(), "ala@pricewatch.tn", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	gate := testGate(&fakeAllowList{credentials: map[string]*Credential{}})

	_, _, err := gate.Login(context.Background(), "ghost@pricewatch.tn", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveExpiredToken(t *testing.T) {
	list := &fakeAllowList{
		allowed: map[string]bool{"admin-1": true},
		credentials: map[string]*Credential{
			"ala@pricewatch.tn": {
				ID:           "admin-1",
				Email:        "ala@pricewatch.tn",
				PasswordHash: mustHash(t, "s3cret"),
			},
		},
	}
	gate := testGate(list)
	token, _, err := gate.Login(context.Background(), "ala@pricewatch.tn", "s3cret")
	require.NoError(t, err)

	// Move the gate clock past TTL plus parsing leeway.
	gate.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	session := gate.Resolve(context.Background(), token)
	assert.Equal(t, StateUnauthorized, session.State)
}

func TestSessionStateString(t *testing.T) {
	assert.Equal(t, "settling", StateSettling.String())
	assert.Equal(t, "anonymous", StateAnonymous.String())
	assert.Equal(t, "unauthorized", StateUnauthorized.String())
	assert.Equal(t, "authorized", StateAuthorized.String())
}
