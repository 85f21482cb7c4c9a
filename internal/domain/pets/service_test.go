package pets

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"pet-registry/internal/domain/owners"
)

// -------------------------
// Test repo + owner directory
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

type testDirectory struct {
	byID map[string]owners.Owner
}

func (d *testDirectory) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	o, ok := d.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

const ownerID = "99999999-9999-4999-8999-999999999999"

func newTestService(repo *testRepo) (*Service, *testDirectory) {
	dir := &testDirectory{byID: map[string]owners.Owner{
		ownerID: {ID: ownerID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
	}}

	svc := NewService(repo, dir)

	base := time.Date(2025, 1, 15, 10, 20, 30, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		t := base.Add(time.Duration(tick) * time.Minute)
		tick++
		return t
	}

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("aaaaaaaa-aaaa-4aaa-8aaa-%012d", seq)
	}

	return svc, dir
}

func str(s string) *string { return &s }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// -------------------------
// Create
// -------------------------

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	repo := newTestRepo()
	svc, _ := newTestService(repo)

	p, err := svc.Create(context.Background(), CreateInput{
		OwnerID:   ownerID,
		Name:      "Buddy",
		Species:   "Dog",
		Breed:     "Golden Retriever",
		Color:     "Golden",
		BirthDate: date(2020, time.May, 10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if p.ID == "" {
		t.Fatal("expected server-assigned id")
	}
	if !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at at creation, got %v / %v", p.CreatedAt, p.UpdatedAt)
	}
	if p.OwnerID != ownerID {
		t.Fatalf("unexpected owner id %q", p.OwnerID)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateInput
		wantErr error
	}{
		{"missing name", CreateInput{OwnerID: ownerID, Species: "Dog"}, ErrInvalidInput},
		{"missing species", CreateInput{OwnerID: ownerID, Name: "Buddy"}, ErrInvalidInput},
		{"missing owner_id", CreateInput{Name: "Buddy", Species: "Dog"}, ErrInvalidInput},
		{"unknown owner", CreateInput{OwnerID: "00000000-0000-4000-8000-000000000000", Name: "Buddy", Species: "Dog"}, ErrOwnerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo()
			svc, _ := newTestService(repo)

			if _, err := svc.Create(context.Background(), tt.in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(repo.byID) != 0 {
				t.Fatalf("expected nothing persisted, repo has %d entries", len(repo.byID))
			}
		})
	}
}

// -------------------------
// Update (merge)
// -------------------------

func seedPet(t *testing.T, svc *Service) Pet {
	t.Helper()
	p, err := svc.Create(context.Background(), CreateInput{
		OwnerID:   ownerID,
		Name:      "Whiskers",
		Species:   "Cat",
		Breed:     "Siamese",
		Color:     "Cream",
		BirthDate: date(2021, time.July, 4),
	})
	if err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	return p
}

func TestUpdate_MergeSemantics(t *testing.T) {
	svc, _ := newTestService(newTestRepo())
	created := seedPet(t, svc)

	got, err := svc.Update(context.Background(), created.ID, UpdateInput{
		Name:  PatchString{Present: true, Value: str("Max")},
		Color: PatchString{Present: true}, // null: limpia
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if got.Name != "Max" {
		t.Fatalf("expected name overwritten, got %q", got.Name)
	}
	if got.Color != "" {
		t.Fatalf("expected color cleared, got %q", got.Color)
	}
	if got.Species != "Cat" || got.Breed != "Siamese" {
		t.Fatal("expected absent fields unchanged")
	}
	if got.BirthDate == nil || !got.BirthDate.Equal(*created.BirthDate) {
		t.Fatal("expected birth_date unchanged when absent")
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("expected updated_at > created_at, got %v / %v", got.UpdatedAt, got.CreatedAt)
	}
	if got.OwnerID != created.OwnerID {
		t.Fatal("owner reference must survive updates")
	}
}

func TestUpdate_BirthDateNullClears(t *testing.T) {
	svc, _ := newTestService(newTestRepo())
	created := seedPet(t, svc)

	got, err := svc.Update(context.Background(), created.ID, UpdateInput{
		BirthDate: PatchDate{Present: true}, // null explícito
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.BirthDate != nil {
		t.Fatalf("expected birth_date cleared, got %v", got.BirthDate)
	}
}

func TestUpdate_RequiredFieldsCannotBeCleared(t *testing.T) {
	svc, _ := newTestService(newTestRepo())
	created := seedPet(t, svc)

	cases := []UpdateInput{
		{Name: PatchString{Present: true}},
		{Species: PatchString{Present: true}},
		{Name: PatchString{Present: true, Value: str("  ")}},
	}

	for i, in := range cases {
		if _, err := svc.Update(context.Background(), created.ID, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Whiskers" || !got.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatal("failed update must not mutate the stored pet")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService(newTestRepo())

	_, err := svc.Update(context.Background(), "nope", UpdateInput{
		Name: PatchString{Present: true, Value: str("Max")},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// -------------------------
// Owner resolution
// -------------------------

func TestResolveOwner(t *testing.T) {
	svc, dir := newTestService(newTestRepo())
	p := seedPet(t, svc)

	o, ok := svc.ResolveOwner(context.Background(), p)
	if !ok {
		t.Fatal("expected owner resolved")
	}
	if o.ID != ownerID {
		t.Fatalf("unexpected owner %q", o.ID)
	}

	// Owner borrado: la mascota se sigue leyendo, sin owner embebido.
	delete(dir.byID, ownerID)
	if _, ok := svc.ResolveOwner(context.Background(), p); ok {
		t.Fatal("expected no owner after deletion")
	}
}

// -------------------------
// Listing
// -------------------------

func TestListByOwner(t *testing.T) {
	repo := newTestRepo()
	svc, dir := newTestService(repo)

	other := "88888888-8888-4888-8888-888888888888"
	dir.byID[other] = owners.Owner{ID: other, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}

	seedPet(t, svc)
	if _, err := svc.Create(context.Background(), CreateInput{OwnerID: other, Name: "Rex", Species: "Dog"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.ListByOwner(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("list by owner: %v", err)
	}
	if len(mine) != 1 || mine[0].Name != "Whiskers" {
		t.Fatalf("expected only Whiskers for owner, got %d pets", len(mine))
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 pets total, got %d", len(all))
	}
}
