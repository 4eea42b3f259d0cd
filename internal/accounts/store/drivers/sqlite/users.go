package sqlite

import (
	"context"

	"github.com/gaiyadev/accounts/internal/accounts/domain"
)

type usersRepo struct {
	q querier
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.NewUser) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO users (first_name, last_name, email, password_hash)
		VALUES (?, ?, ?, ?)`,
		u.FirstName, u.LastName, u.Email, u.PasswordHash,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := r.q.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
		FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.q.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
		FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
