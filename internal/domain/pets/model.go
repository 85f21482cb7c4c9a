package pets

import "time"

// Pet representa una mascota registrada. La relación con su dueño es por
// referencia: acá solo se guarda OwnerID; el registro completo del owner
// se resuelve recién al leer (ver handler).
type Pet struct {
	ID      string
	OwnerID string

	Name    string
	Species string
	Breed   string // opcional
	Color   string // opcional

	BirthDate *time.Time // opcional, solo fecha (YYYY-MM-DD en el wire)

	CreatedAt time.Time
	UpdatedAt time.Time
}
