package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"pet-registry/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

// addresses se guarda como jsonb: es un value object embebido sin ciclo de
// vida propio, no amerita tabla aparte.
func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	addrs, err := marshalAddresses(o.Addresses)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO owners (
			id,
			first_name, last_name, email,
			phone, government_id, addresses,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		o.ID,
		o.FirstName,
		o.LastName,
		o.Email,
		o.Phone,
		o.GovernmentID,
		addrs,
		o.CreatedAt,
		o.UpdatedAt,
	)
	return err
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	addrs, err := marshalAddresses(o.Addresses)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			phone = $5,
			government_id = $6,
			addresses = $7,
			updated_at = $8
		WHERE id = $1
	`,
		o.ID,
		o.FirstName,
		o.LastName,
		o.Email,
		o.Phone,
		o.GovernmentID,
		addrs,
		o.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return owners.Owner{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id,
			first_name, last_name, email,
			phone, government_id, addresses,
			created_at, updated_at
		FROM owners
		WHERE id = $1
	`, id)

	o, err := scanOwner(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id,
			first_name, last_name, email,
			phone, government_id, addresses,
			created_at, updated_at
		FROM owners
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

func (r *OwnersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOwner(row rowScanner) (owners.Owner, error) {
	var o owners.Owner
	var addrs []byte
	if err := row.Scan(
		&o.ID,
		&o.FirstName,
		&o.LastName,
		&o.Email,
		&o.Phone,
		&o.GovernmentID,
		&addrs,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return owners.Owner{}, err
	}

	if len(addrs) > 0 {
		if err := json.Unmarshal(addrs, &o.Addresses); err != nil {
			return owners.Owner{}, err
		}
	}
	return o, nil
}

func marshalAddresses(addrs []owners.Address) ([]byte, error) {
	if addrs == nil {
		addrs = []owners.Address{}
	}
	return json.Marshal(addrs)
}
