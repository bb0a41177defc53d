package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/auth"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/interfaces/http/common"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	State     string          `json:"state"`
	Principal *auth.Principal `json:"principal,omitempty"`
	Redirect  string          `json:"redirect,omitempty"`
}

// loginHandler exchanges an email/password pair for a bearer token.
// Wrong email and wrong password answer identically.
func (s *Server) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		body := http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			common.WriteError(s.log, w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
		defer cancel()

		token, principal, err := s.gate.Login(ctx, req.Email, req.Password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			common.WriteError(s.log, w, http.StatusUnauthorized, err.Error())
			return
		}
		if err != nil {
			s.log.WithError(err).Error("login failed")
			common.WriteError(s.log, w, http.StatusInternalServerError, "internal error")
			return
		}

		s.log.WithField("principal", principal.ID).Info("admin logged in")
		common.WriteJSON(s.log, w, http.StatusOK, map[string]any{
			"token":     token,
			"principal": principal,
		})
	}
}

// logoutHandler exists for the front end's sign-out flow. Tokens are
// stateless, so there is nothing to revoke server side.
func (s *Server) logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(s.log, w, http.StatusOK, map[string]string{"status": "signed out"})
	}
}

// sessionHandler reports the caller's session state without gating, so
// the front end can render loading, login or unauthorized views.
func (s *Server) sessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
		defer cancel()

		session := s.gate.Resolve(ctx, common.BearerToken(r))
		payload := sessionResponse{State: session.State.String()}
		if session.Principal.ID != "" {
			principal := session.Principal
			payload.Principal = &principal
		}
		if session.State == auth.StateUnauthorized && session.Principal.ID != "" {
			payload.Redirect = s.unauthorizedPath
		}

		status := http.StatusOK
		if session.State == auth.StateSettling {
			status = http.StatusServiceUnavailable
		}
		common.WriteJSON(s.log, w, status, payload)
	}
}
