package server

import (
	"net/http"

	"github.com/me1pik/admin-backoffice/admins"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	Admin        *admins.Admin `json:"admin"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// LoginHandler authenticates an admin and issues the token pair. Bad
// credentials answer 401; the client never refresh-retries this route.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		admin, err := s.repos.Admins.GetByEmail(req.Email)
		if err != nil || !admins.CheckPasswordHash(req.Password, admin.PasswordHash) {
			writeError(w, http.StatusUnauthorized, errs.ErrInvalidCredentials.Error())
			return
		}
		if admin.IsBlocked() {
			writeError(w, http.StatusUnauthorized, errs.ErrAdminBlocked.Error())
			return
		}

		accessToken, err := s.tokens.Create(admin)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to create access token")
			writeError(w, http.StatusInternalServerError, "failed to create token")
			return
		}

		refreshToken, err := s.refresh.Create(admin.ID)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to create refresh token")
			writeError(w, http.StatusInternalServerError, "failed to create token")
			return
		}

		if err := s.repos.Admins.SetLastLogin(admin.ID); err != nil {
			s.log.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to record last login")
		}

		writeJSON(w, http.StatusOK, loginResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			Admin:        admin,
		})
	}
}

// RefreshHandler exchanges a valid refresh token for a new access token.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.RefreshToken == "" {
			writeError(w, http.StatusBadRequest, errs.ErrMissingRefreshToken.Error())
			return
		}

		stored, err := s.refresh.Verify(req.RefreshToken)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}

		admin, err := s.repos.Admins.GetByID(stored.AdminID)
		if err != nil || admin.IsBlocked() {
			writeError(w, http.StatusUnauthorized, errs.ErrInvalidRefreshToken.Error())
			return
		}

		accessToken, err := s.tokens.Create(admin)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to create access token")
			writeError(w, http.StatusInternalServerError, "failed to create token")
			return
		}

		writeJSON(w, http.StatusOK, refreshResponse{AccessToken: accessToken})
	}
}

// LogoutHandler revokes the caller's refresh token.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if req.RefreshToken != "" {
			if err := s.refresh.Revoke(req.RefreshToken); err != nil && !errs.Is(err, errs.ErrNotFound) {
				s.log.Warn().Err(err).Msg("failed to revoke refresh token")
			}
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "logged out"})
	}
}

// MeHandler returns the authenticated admin's own account.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		admin, err := s.repos.Admins.GetByID(claims.AdminID)
		if err != nil {
			writeError(w, http.StatusNotFound, errs.ErrAdminNotFound.Error())
			return
		}
		writeJSON(w, http.StatusOK, admin)
	}
}
