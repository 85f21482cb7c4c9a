package owners

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc))
		or.Get("/", listOwnersHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Patch("/{ownerID}", updateOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
	})
}

type addressPayload struct {
	ID         string `json:"id,omitempty" validate:"omitempty,uuid"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

type createOwnerRequest struct {
	FirstName    string           `json:"first_name" validate:"required"`
	LastName     string           `json:"last_name" validate:"required"`
	Email        string           `json:"email" validate:"required,email"`
	Phone        string           `json:"phone"`
	GovernmentID string           `json:"government_id"`
	Addresses    []addressPayload `json:"addresses" validate:"omitempty,dive"`
}

// AddressResponse es la vista de lectura de una dirección embebida.
type AddressResponse struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OwnerResponse es la representación de lectura que produce el server.
// Exportada porque el módulo pets la embebe en su propia respuesta.
type OwnerResponse struct {
	ID           string            `json:"id"`
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone,omitempty"`
	GovernmentID string            `json:"government_id,omitempty"`
	Addresses    []AddressResponse `json:"addresses"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ToResponse mapea el modelo de dominio a la vista de lectura.
func ToResponse(o Owner) OwnerResponse {
	// Slice no-nil para que un owner sin direcciones serialice "addresses": [].
	addrs := make([]AddressResponse, 0, len(o.Addresses))
	for _, a := range o.Addresses {
		addrs = append(addrs, AddressResponse{
			ID:         a.ID,
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		})
	}
	return OwnerResponse{
		ID:           o.ID,
		FirstName:    o.FirstName,
		LastName:     o.LastName,
		Email:        o.Email,
		Phone:        o.Phone,
		GovernmentID: o.GovernmentID,
		Addresses:    addrs,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// createOwnerHandler godoc
// @Summary Create an owner
// @Tags owners
// @Accept json
// @Produce json
// @Param owner body createOwnerRequest true "owner to create"
// @Success 201 {object} OwnerResponse
// @Failure 400 {string} string
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			Phone:        req.Phone,
			GovernmentID: req.GovernmentID,
			Addresses:    toAddressInputs(req.Addresses),
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(o))
	}
}

// listOwnersHandler godoc
// @Summary List owners
// @Tags owners
// @Produce json
// @Success 200 {array} OwnerResponse
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]OwnerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, ToResponse(o))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getOwnerHandler godoc
// @Summary Get an owner by id
// @Tags owners
// @Produce json
// @Param ownerID path string true "owner id"
// @Success 200 {object} OwnerResponse
// @Failure 404 {string} string
// @Router /owners/{ownerID} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(o))
	}
}

// Campos aceptados en el PATCH de owner. Cualquier otro key es rechazado
// para que un typo no se pierda en silencio.
var ownerPatchKeys = map[string]bool{
	"first_name":    true,
	"last_name":     true,
	"email":         true,
	"phone":         true,
	"government_id": true,
	"addresses":     true,
}

// updateOwnerHandler godoc
// @Summary Partially update an owner
// @Description Fields absent from the body are left untouched; "addresses", when present, replaces the whole list.
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerID path string true "owner id"
// @Success 200 {object} OwnerResponse
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /owners/{ownerID} [patch]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Decodificamos a map primero: necesitamos saber qué campos vinieron
		// para distinguir "ausente" (no tocar) de "null" (limpiar).
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		for k := range raw {
			if !ownerPatchKeys[k] {
				http.Error(w, fmt.Sprintf("unknown field %q", k), http.StatusBadRequest)
				return
			}
		}

		var in UpdateInput
		var err error
		if in.FirstName, err = strPatch(raw, "first_name"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if in.LastName, err = strPatch(raw, "last_name"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if in.Email, err = strPatch(raw, "email"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if in.Phone, err = strPatch(raw, "phone"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if in.GovernmentID, err = strPatch(raw, "government_id"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if v, ok := raw["addresses"]; ok {
			if string(v) == "null" {
				// null no es un reemplazo válido; para vaciar la lista se manda [].
				http.Error(w, "addresses must be an array (send [] to clear)", http.StatusBadRequest)
				return
			}
			var items []addressPayload
			if err := json.Unmarshal(v, &items); err != nil {
				http.Error(w, "addresses must be an array of address objects", http.StatusBadRequest)
				return
			}
			for i := range items {
				if err := validate.Struct(items[i]); err != nil {
					http.Error(w, fmt.Sprintf("addresses[%d]: %v", i, err), http.StatusBadRequest)
					return
				}
			}
			in.Addresses = PatchAddresses{Present: true, Value: toAddressInputs(items)}
		}

		o, err := svc.Update(r.Context(), chi.URLParam(r, "ownerID"), in)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToResponse(o))
	}
}

// deleteOwnerHandler godoc
// @Summary Delete an owner
// @Tags owners
// @Param ownerID path string true "owner id"
// @Success 204
// @Failure 404 {string} string
// @Router /owners/{ownerID} [delete]
func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "ownerID")); err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toAddressInputs(items []addressPayload) []AddressInput {
	out := make([]AddressInput, 0, len(items))
	for _, a := range items {
		out = append(out, AddressInput{
			ID:         a.ID,
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		})
	}
	return out
}

// strPatch extrae un campo string de un PATCH crudo preservando la
// distinción ausente / null / valor.
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
	case errors.Is(err, ErrNotFound):
		http.Error(w, "owner not found", http.StatusNotFound)
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
