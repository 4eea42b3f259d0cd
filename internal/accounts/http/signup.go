package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gaiyadev/accounts/internal/accounts/service"
	"github.com/gaiyadev/accounts/internal/accounts/validate"
	"github.com/gaiyadev/accounts/pkg/accountsdk"
	"github.com/gaiyadev/accounts/pkg/httpx"
	"github.com/gaiyadev/accounts/pkg/slogx"
)

// SignUpHandler serves POST /v1/sign-up.
type SignUpHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates a user account from a validated sign-up payload. The response omits the account's names.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		accountsdk.SignUpRequest		true	"Registration payload"
//	@Success		201		{object}	accountsdk.SignUpResponse		"message, data:{id,email}"
//	@Failure		400		{object}	accountsdk.ValidationResponse	"message: per-field rule violations"
//	@Failure		500		{object}	accountsdk.MessageResponse		"message"
//	@Router			/v1/sign-up [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req validate.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		accountsdk.ErrInvalidBody.WriteError(w)
		return
	}

	user, err := h.UserService.SignUp(ctx, req)
	if err != nil {
		var fieldErrs validate.FieldErrors
		if errors.As(err, &fieldErrs) {
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ValidationResponse{
				Message: toSDKFieldErrors(fieldErrs),
			})
			return
		}

		log.Error("sign-up failed", "err", err)
		accountsdk.ErrInternal.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.SignUpResponse{
		Message: "User created successfully",
		Data: accountsdk.UserData{
			ID:    user.ID,
			Email: user.Email,
		},
	})
}

func toSDKFieldErrors(errs validate.FieldErrors) []accountsdk.FieldError {
	out := make([]accountsdk.FieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, accountsdk.FieldError{
			Field:   fe.Field,
			Rule:    fe.Rule,
			Message: fe.Message,
		})
	}
	return out
}
