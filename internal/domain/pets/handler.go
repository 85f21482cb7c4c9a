package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"pet-registry/internal/domain/owners"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name      string `json:"name" validate:"required"`
	Species   string `json:"species" validate:"required"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD opcional
	Color     string `json:"color"`
	OwnerID   string `json:"owner_id" validate:"required,uuid"`
}

type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed,omitempty"`
	BirthDate string    `json:"birth_date,omitempty"` // YYYY-MM-DD
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Owner resuelto al leer. Ausente si el owner fue borrado.
	Owner *owners.OwnerResponse `json:"owner,omitempty"`
}

// createPetHandler godoc
// @Summary Create a pet
// @Tags pets
// @Accept json
// @Produce json
// @Param pet body createPetRequest true "pet to create"
// @Success 201 {object} petResponse
// @Failure 400 {string} string
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse(dateLayout, req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		p, err := svc.Create(r.Context(), CreateInput{
			OwnerID:   req.OwnerID,
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			Color:     req.Color,
			BirthDate: bd,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(r, svc, p))
	}
}

// listPetsHandler godoc
// @Summary List pets
// @Description Optionally filtered by owner with ?owner_id=.
// @Tags pets
// @Produce json
// @Param owner_id query string false "filter by owner id"
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Pet
			err   error
		)
		if ownerID := strings.TrimSpace(r.URL.Query().Get("owner_id")); ownerID != "" {
			items, err = svc.ListByOwner(r.Context(), ownerID)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(r, svc, p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Get a pet by id
// @Tags pets
// @Produce json
// @Param petID path string true "pet id"
// @Success 200 {object} petResponse
// @Failure 404 {string} string
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(r, svc, p))
	}
}

var petPatchKeys = map[string]bool{
	"name":       true,
	"species":    true,
	"breed":      true,
	"birth_date": true,
	"color":      true,
}

// updatePetHandler godoc
// @Summary Partially update a pet
// @Description Fields absent from the body are left untouched. owner_id is not patchable.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "pet id"
// @Success 200 {object} petResponse
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		for k := range raw {
			if k == "owner_id" {
				// Rechazo explícito, no silencioso: ver DESIGN.md.
				http.Error(w, "owner_id cannot be changed: reassigning a pet is not supported", http.StatusBadRequest)
				return
			}
			if !petPatchKeys[k] {
				http.Error(w, fmt.Sprintf("unknown field %q", k), http.StatusBadRequest)
				return
			}
		}

		var in UpdateInput
		var err error
		if in.Name, err = strPatch(raw, "name"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if in.Species, err = strPatch(raw, "species"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if in.Breed, err = strPatch(raw, "breed"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if in.Color, err = strPatch(raw, "color"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// birth_date: null limpia la fecha, ausente no la toca.
		if v, ok := raw["birth_date"]; ok {
			in.BirthDate.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				t, err := time.Parse(dateLayout, s)
				if err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				in.BirthDate.Value = &t
			}
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), in)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(r, svc, p))
	}
}

// deletePetHandler godoc
// @Summary Delete a pet
// @Tags pets
// @Param petID path string true "pet id"
// @Success 204
// @Failure 404 {string} string
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toPetResponse(r *http.Request, svc *Service, p Pet) petResponse {
	resp := petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Color:     p.Color,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.BirthDate != nil {
		resp.BirthDate = p.BirthDate.Format(dateLayout)
	}
	if o, ok := svc.ResolveOwner(r.Context(), p); ok {
		or := owners.ToResponse(o)
		resp.Owner = &or
	}
	return resp
}

func strPatch(raw map[string]json.RawMessage, key string) (PatchString, error) {
	v, ok := raw[key]
	if !ok {
		return PatchString{}, nil
	}
	if string(v) == "null" {
		return PatchString{Present: true}, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return PatchString{}, fmt.Errorf("%s must be a string or null", key)
	}
	return PatchString{Present: true, Value: &s}, nil
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrOwnerNotFound):
		http.Error(w, "owner_id does not reference an existing owner", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (owners/pets) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
