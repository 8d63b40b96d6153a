package phonenumber

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"cloud-telephony-api/internal/domain/phonenumber"
	"cloud-telephony-api/internal/domain/user"
	"cloud-telephony-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DBTX
}

func NewRepository(db postgres.DBTX) phonenumber.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchNumberByID(ctx context.Context, id phonenumber.ID) (*phonenumber.PhoneNumber, error) {
	pn := new(PhoneNumber)
	err := r.db.QueryRow(ctx, SelectNumberByID, id).Scan(
		&pn.ID,
		&pn.UserID,
		&pn.Number,
		&pn.Active,

		&pn.CreatedAt,
		&pn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(pn), nil
}

func (r *Repository) FetchNumbersByUser(ctx context.Context, userID user.ID, page, pageSize int) (phonenumber.PhoneNumbers, error) {
	rows, err := r.db.Query(ctx, SelectNumbersByUser, userID, pageSize, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pns PhoneNumbers
	for rows.Next() {
		pn := new(PhoneNumber)

		if err = rows.Scan(
			&pn.ID,
			&pn.UserID,
			&pn.Number,
			&pn.Active,

			&pn.CreatedAt,
			&pn.UpdatedAt,
		); err != nil {
			return nil, err
		}

		pns = append(pns, pn)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&pns), nil
}

func (r *Repository) CountNumbersByUser(ctx context.Context, userID user.ID) (uint64, error) {
	var total uint64
	if err := r.db.QueryRow(ctx, CountNumbersByUser, userID).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *Repository) CreateNumber(ctx context.Context, userID user.ID, number string) (*phonenumber.PhoneNumber, error) {
	pn := new(PhoneNumber)

	err := r.db.QueryRow(ctx, InsertNumber, userID, number).Scan(
		&pn.ID,
		&pn.UserID,
		&pn.Number,
		&pn.Active,

		&pn.CreatedAt,
		&pn.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrNumberAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(pn), nil
}

func (r *Repository) UpdateNumber(ctx context.Context, userID user.ID, id phonenumber.ID, number string) (*phonenumber.PhoneNumber, error) {
	pn := new(PhoneNumber)

	err := r.db.QueryRow(ctx, UpdateNumberByID, number, id, userID).Scan(
		&pn.ID,
		&pn.UserID,
		&pn.Number,
		&pn.Active,

		&pn.CreatedAt,
		&pn.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrNumberAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(pn), nil
}

func (r *Repository) DeactivateNumber(ctx context.Context, userID user.ID, id phonenumber.ID) (*phonenumber.PhoneNumber, error) {
	pn := new(PhoneNumber)

	err := r.db.QueryRow(ctx, DeactivateNumberByID, id, userID).Scan(
		&pn.ID,
		&pn.UserID,
		&pn.Number,
		&pn.Active,

		&pn.CreatedAt,
		&pn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(pn), nil
}

func (r *Repository) FetchNumberDetails(ctx context.Context, page, pageSize int) (phonenumber.Details, error) {
	rows, err := r.db.Query(ctx, SelectNumberDetails, pageSize, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ds Details
	for rows.Next() {
		d := new(Detail)

		if err = rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Number,
			&d.UserName,
			&d.UserEmail,
			&d.CallCount,
		); err != nil {
			return nil, err
		}

		ds = append(ds, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBDetails(&ds), nil
}

func (r *Repository) CountActiveNumbers(ctx context.Context) (uint64, error) {
	var total uint64
	if err := r.db.QueryRow(ctx, CountActiveNumbers).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}
