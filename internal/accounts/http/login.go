package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gaiyadev/accounts/internal/accounts/service"
	"github.com/gaiyadev/accounts/pkg/accountsdk"
	"github.com/gaiyadev/accounts/pkg/httpx"
	"github.com/gaiyadev/accounts/pkg/slogx"
)

// LoginHandler serves POST /v1/login.
//
// The credential pair is deliberately not schema-validated: a malformed
// email can never match an account, so every bad input falls through to the
// same 401 as a wrong password.
type LoginHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Verifies an email/password pair and issues a bearer token valid for one day.
//	@Description	Unknown emails and wrong passwords produce identical 401 responses.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		accountsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	accountsdk.LoginResponse	"data:{id,email}, token"
//	@Failure		401		{object}	accountsdk.MessageResponse	"message"
//	@Failure		500		{object}	accountsdk.MessageResponse	"message"
//	@Header			200		{string}	Cache-Control				"no-store"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		accountsdk.ErrInvalidCredentials.WriteError(w)
		return
	}

	issued, err := h.TokenService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			accountsdk.ErrInvalidCredentials.WriteError(w)
			return
		}

		log.Error("login failed", "err", err)
		accountsdk.ErrInternal.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, accountsdk.LoginResponse{
		Data: accountsdk.UserData{
			ID:    issued.User.ID,
			Email: issued.User.Email,
		},
		Token: issued.Token,
	})
}
