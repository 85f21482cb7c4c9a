package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pet-registry/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_id,
			name, species, breed, color,
			birth_date,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		p.Species,
		p.Breed,
		p.Color,
		toNullDate(p.BirthDate),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			breed = $4,
			color = $5,
			birth_date = $6,
			updated_at = $7
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		p.Color,
		toNullDate(p.BirthDate),
		p.UpdatedAt,
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

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_id,
			name, species, breed, color,
			birth_date,
			created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, `
		SELECT
			id, owner_id,
			name, species, breed, color,
			birth_date,
			created_at, updated_at
		FROM pets
		ORDER BY created_at ASC
	`)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	return r.list(ctx, `
		SELECT
			id, owner_id,
			name, species, breed, color,
			birth_date,
			created_at, updated_at
		FROM pets
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`, ownerID)
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PetsRepo) list(ctx context.Context, query string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var bd sql.NullTime
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Color,
		&bd,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	if bd.Valid {
		t := bd.Time
		// birth_date es DATE; pgx lo mapea a time.Time midnight UTC
		p.BirthDate = &t
	}

	return p, nil
}

// birth_date es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
