package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"cloud-telephony-api/internal/domain/user"
	"cloud-telephony-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DBTX
}

func NewRepository(db postgres.DBTX) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUsers(ctx context.Context, page, pageSize int) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers, pageSize, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.Email,
			&u.PasswordHash,
			&u.Role,
			&u.Name,

			&u.CreatedAt,
			&u.UpdatedAt,

			&u.DeletedAt,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) CountUsers(ctx context.Context) (uint64, error) {
	var total uint64
	if err := r.db.QueryRow(ctx, CountUsers).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, id).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByEmail, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Email, req.PasswordHash, req.Name,
	).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, UpdateUserByID,
		req.Email, req.Name, req.ID,
	).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) DeleteUser(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SoftDeleteUserByID, id).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}
