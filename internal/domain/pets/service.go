package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-registry/internal/domain/owners"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrOwnerNotFound = errors.New("owner not found")
)

// OwnerDirectory es lo mínimo que pets necesita del módulo owners:
// verificar existencia en el alta y resolver el registro completo al leer.
// Interface propia para no acoplar el service al *owners.Service concreto.
type OwnerDirectory interface {
	GetByID(ctx context.Context, id string) (owners.Owner, error)
}

type Service struct {
	repo   Repository
	owners OwnerDirectory
	now    func() time.Time
	newID  func() string
}

func NewService(repo Repository, dir OwnerDirectory) *Service {
	return &Service{
		repo:   repo,
		owners: dir,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

type CreateInput struct {
	OwnerID   string
	Name      string
	Species   string
	Breed     string
	Color     string
	BirthDate *time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	now := s.now()

	p := Pet{
		ID:        s.newID(),
		OwnerID:   strings.TrimSpace(in.OwnerID),
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		Color:     strings.TrimSpace(in.Color),
		BirthDate: in.BirthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if p.Name == "" {
		return Pet{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if p.Species == "" {
		return Pet{}, fmt.Errorf("%w: species is required", ErrInvalidInput)
	}
	if p.OwnerID == "" {
		return Pet{}, fmt.Errorf("%w: owner_id is required", ErrInvalidInput)
	}

	// Chequeo referencial: el owner tiene que existir al momento del alta.
	if _, err := s.owners.GetByID(ctx, p.OwnerID); err != nil {
		return Pet{}, ErrOwnerNotFound
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, strings.TrimSpace(ownerID))
}

// ResolveOwner busca el owner de una mascota para embeberlo en la lectura.
// Devuelve ok=false si el owner fue borrado: la mascota se lee igual, sin owner.
func (s *Service) ResolveOwner(ctx context.Context, p Pet) (owners.Owner, bool) {
	o, err := s.owners.GetByID(ctx, p.OwnerID)
	if err != nil {
		return owners.Owner{}, false
	}
	return o, true
}

// PatchString distingue ausente / null / valor en un PATCH.
// (Duplicado a propósito con owners: cada módulo define su vocabulario.)
type PatchString struct {
	Present bool
	Value   *string
}

// PatchDate lleva la fecha ya parseada; null explícito la limpia.
type PatchDate struct {
	Present bool
	Value   *time.Time
}

// UpdateInput no tiene OwnerID: reasignar una mascota a otro dueño
// no está soportado vía PATCH (decisión registrada en DESIGN.md).
type UpdateInput struct {
	Name      PatchString
	Species   PatchString
	Breed     PatchString
	Color     PatchString
	BirthDate PatchDate
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name.Present {
		v, err := requiredPatch("name", in.Name)
		if err != nil {
			return Pet{}, err
		}
		p.Name = v
	}
	if in.Species.Present {
		v, err := requiredPatch("species", in.Species)
		if err != nil {
			return Pet{}, err
		}
		p.Species = v
	}
	if in.Breed.Present {
		p.Breed = optionalPatch(in.Breed)
	}
	if in.Color.Present {
		p.Color = optionalPatch(in.Color)
	}
	if in.BirthDate.Present {
		p.BirthDate = in.BirthDate.Value
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
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

func optionalPatch(p PatchString) string {
	if p.Value == nil {
		return ""
	}
	return strings.TrimSpace(*p.Value)
}
