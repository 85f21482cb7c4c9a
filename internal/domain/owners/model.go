package owners

import "time"

// Address es un value object embebido en Owner: lleva su propio ID persistente
// (para poder referenciarlo desde afuera) pero no tiene ciclo de vida propio.
type Address struct {
	ID string

	Street     string
	City       string
	State      string // opcional
	PostalCode string
	Country    string
}

// Owner representa a una persona dueña de mascotas.
type Owner struct {
	ID string

	FirstName    string
	LastName     string
	Email        string
	Phone        string // opcional, formato libre
	GovernmentID string // opcional

	// Orden de inserción preservado. En PATCH se reemplaza la lista completa.
	Addresses []Address

	CreatedAt time.Time
	UpdatedAt time.Time
}
