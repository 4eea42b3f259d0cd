package service

import (
	"context"
	"errors"

	"github.com/gaiyadev/accounts/internal/accounts/domain"
	"github.com/gaiyadev/accounts/internal/accounts/store"
	"github.com/gaiyadev/accounts/internal/accounts/validate"
	"github.com/gaiyadev/accounts/pkg/cryptox"
)

// UserService owns account registration and lookup.
type UserService struct {
	Store store.Store
}

// SignUp validates the request, hashes the password, and persists a new
// account. Rule violations come back as validate.FieldErrors; anything else
// is an infrastructure failure the handler should not leak.
//
// The uniqueness check runs inside the same transaction as the insert, and
// the storage layer's unique constraint backstops concurrent registrations
// racing the check.
func (s *UserService) SignUp(ctx context.Context, req validate.SignUpRequest) (domain.User, error) {
	if errs := req.Validate(); errs != nil {
		return domain.User{}, errs
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, err
	}

	var user domain.User

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().GetUserByEmail(ctx, req.Email)
		switch {
		case err == nil:
			return validate.Unique("email")
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		id, err := tx.Users().CreateUser(ctx, domain.NewUser{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return validate.Unique("email")
			}
			return err
		}

		user, err = tx.Users().GetUserByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
