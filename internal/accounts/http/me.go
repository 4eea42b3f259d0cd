package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gaiyadev/accounts/internal/accounts/service"
	"github.com/gaiyadev/accounts/internal/accounts/store"
	"github.com/gaiyadev/accounts/pkg/accountsdk"
	"github.com/gaiyadev/accounts/pkg/httpx"
	"github.com/gaiyadev/accounts/pkg/jwtx"
	"github.com/gaiyadev/accounts/pkg/slogx"
)

// MeHandler serves GET /v1/me.
type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Get own profile
//	@Description	Returns the full profile of the authenticated account.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	accountsdk.MeResponse		"data:{id,firstName,lastName,email,createdAt}"
//	@Failure		401	{object}	accountsdk.MessageResponse	"message"
//	@Failure		500	{object}	accountsdk.MessageResponse	"message"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	claims, ok := ctx.Value(httpx.CtxKeyClaims).(jwtx.Claims)
	if !ok {
		accountsdk.ErrInvalidCredentials.WriteError(w)
		return
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		accountsdk.ErrInvalidCredentials.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Token subject no longer exists.
			accountsdk.ErrInvalidCredentials.WriteError(w)
			return
		}

		log.Error("profile lookup failed", "err", err)
		accountsdk.ErrInternal.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MeResponse{
		Data: accountsdk.Profile{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
}
