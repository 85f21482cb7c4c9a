package owners

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Un solo validador para el paquete (es thread-safe y cachea metadata).
var validate = validator.New()

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

type AddressInput struct {
	ID string // opcional: eco de un ID ya emitido por el server

	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

type CreateInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	GovernmentID string
	Addresses    []AddressInput
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	now := s.now()

	o := Owner{
		ID:           s.newID(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		GovernmentID: strings.TrimSpace(in.GovernmentID),
		CreatedAt:    now,
		UpdatedAt:    now, // en creación, created_at == updated_at
	}

	if o.FirstName == "" {
		return Owner{}, fmt.Errorf("%w: first_name is required", ErrInvalidInput)
	}
	if o.LastName == "" {
		return Owner{}, fmt.Errorf("%w: last_name is required", ErrInvalidInput)
	}
	if err := validateEmail(o.Email); err != nil {
		return Owner{}, err
	}

	addrs, err := s.buildAddresses(in.Addresses)
	if err != nil {
		return Owner{}, err
	}
	o.Addresses = addrs

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	if strings.TrimSpace(id) == "" {
		return Owner{}, ErrNotFound
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, ErrNotFound
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

// PatchString distingue los tres estados de un campo en un PATCH:
// ausente (Present=false), null explícito (Present=true, Value=nil)
// o con valor (Present=true, Value!=nil).
type PatchString struct {
	Present bool
	Value   *string
}

// PatchAddresses: si Present, la lista reemplaza por completo a la guardada.
type PatchAddresses struct {
	Present bool
	Value   []AddressInput
}

type UpdateInput struct {
	FirstName    PatchString
	LastName     PatchString
	Email        PatchString
	Phone        PatchString
	GovernmentID PatchString
	Addresses    PatchAddresses
}

// Update aplica un PATCH: campo ausente = no tocar, campo presente = sobreescribir.
// Las validaciones fallan el payload completo: o se aplica todo, o nada.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Owner, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	if in.FirstName.Present {
		v, err := requiredPatch("first_name", in.FirstName)
		if err != nil {
			return Owner{}, err
		}
		o.FirstName = v
	}
	if in.LastName.Present {
		v, err := requiredPatch("last_name", in.LastName)
		if err != nil {
			return Owner{}, err
		}
		o.LastName = v
	}
	if in.Email.Present {
		v, err := requiredPatch("email", in.Email)
		if err != nil {
			return Owner{}, err
		}
		if err := validateEmail(v); err != nil {
			return Owner{}, err
		}
		o.Email = v
	}
	if in.Phone.Present {
		o.Phone = optionalPatch(in.Phone)
	}
	if in.GovernmentID.Present {
		o.GovernmentID = optionalPatch(in.GovernmentID)
	}
	if in.Addresses.Present {
		addrs, err := s.buildAddresses(in.Addresses.Value)
		if err != nil {
			return Owner{}, err
		}
		// Reemplazo total: la lista anterior se descarta entera.
		o.Addresses = addrs
	}

	o.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return ErrNotFound
	}
	return nil
}

// buildAddresses valida cada dirección y asigna ID a las que no traen uno.
// No se chequea unicidad de IDs acá: eso le toca a quien persiste.
func (s *Service) buildAddresses(in []AddressInput) ([]Address, error) {
	out := make([]Address, 0, len(in))
	for i, a := range in {
		addr := Address{
			ID:         strings.TrimSpace(a.ID),
			Street:     strings.TrimSpace(a.Street),
			City:       strings.TrimSpace(a.City),
			State:      strings.TrimSpace(a.State),
			PostalCode: strings.TrimSpace(a.PostalCode),
			Country:    strings.TrimSpace(a.Country),
		}
		if addr.Street == "" {
			return nil, fmt.Errorf("%w: addresses[%d].street is required", ErrInvalidInput, i)
		}
		if addr.City == "" {
			return nil, fmt.Errorf("%w: addresses[%d].city is required", ErrInvalidInput, i)
		}
		if addr.PostalCode == "" {
			return nil, fmt.Errorf("%w: addresses[%d].postal_code is required", ErrInvalidInput, i)
		}
		if addr.Country == "" {
			return nil, fmt.Errorf("%w: addresses[%d].country is required", ErrInvalidInput, i)
		}
		if addr.ID == "" {
			addr.ID = s.newID()
		}
		out = append(out, addr)
	}
	return out, nil
}

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: email must be a valid email address", ErrInvalidInput)
	}
	return nil
}

// requiredPatch: un campo requerido puede sobreescribirse pero nunca limpiarse.
func requiredPatch(name string, p PatchString) (string, error) {
	if p.Value == nil {
		return "", fmt.Errorf("%w: %s cannot be null", ErrInvalidInput, name)
	}
	v := strings.TrimSpace(*p.Value)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	return v, nil
}

// optionalPatch: null explícito limpia el valor guardado.
func optionalPatch(p PatchString) string {
	if p.Value == nil {
		return ""
	}
	return strings.TrimSpace(*p.Value)
}
