package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-registry/internal/router"
)

func TestHTTP_EndToEnd_OwnerPetLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Crear owner (escenario Ada)
	st, body := doReq(t, ts.URL, "POST", "/owners", map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"addresses":  []any{},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating owner, got %d body=%s", st, body)
	}

	owner := decode(t, body)
	ownerID, _ := owner["id"].(string)
	if ownerID == "" {
		t.Fatal("expected server-assigned owner id")
	}
	if owner["created_at"] != owner["updated_at"] {
		t.Fatalf("expected created_at == updated_at at creation, got %v / %v", owner["created_at"], owner["updated_at"])
	}
	if addrs, ok := owner["addresses"].([]any); !ok || len(addrs) != 0 {
		t.Fatalf("expected addresses [], got %v", owner["addresses"])
	}

	// 2) Round-trip: el GET devuelve byte a byte lo mismo que devolvió el POST
	{
		st, got := doReq(t, ts.URL, "GET", "/owners/"+ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get owner, got %d", st)
		}
		if !bytes.Equal(got, body) {
			t.Fatalf("read representation not stable:\npost=%s\nget =%s", body, got)
		}
	}

	// 3) Email inválido rechaza el create
	{
		st, _ := doReq(t, ts.URL, "POST", "/owners", map[string]any{
			"first_name": "Bad",
			"last_name":  "Email",
			"email":      "not-an-email",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for malformed email, got %d", st)
		}
	}

	// 4) PATCH solo phone: el resto queda igual, updated_at avanza
	{
		st, body := doReq(t, ts.URL, "PATCH", "/owners/"+ownerID, map[string]any{
			"phone": "+1-555-0000",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch owner, got %d body=%s", st, body)
		}
		got := decode(t, body)
		if got["phone"] != "+1-555-0000" {
			t.Fatalf("expected phone set, got %v", got["phone"])
		}
		if got["first_name"] != "Ada" || got["last_name"] != "Lovelace" || got["email"] != "ada@example.com" {
			t.Fatal("expected absent fields unchanged")
		}
		if !parseTime(t, got["updated_at"]).After(parseTime(t, got["created_at"])) {
			t.Fatalf("expected updated_at > created_at, got %v / %v", got["updated_at"], got["created_at"])
		}
	}

	// 5) addresses reemplaza la lista completa: [A] y después [B] deja solo [B]
	{
		a := map[string]any{"street": "742 Evergreen Terrace", "city": "Springfield", "state": "IL", "postal_code": "62704", "country": "USA"}
		b := map[string]any{"street": "10 Downing St", "city": "London", "postal_code": "SW1A 2AA", "country": "UK"}

		st, _ := doReq(t, ts.URL, "PATCH", "/owners/"+ownerID, map[string]any{"addresses": []any{a}})
		if st != http.StatusOK {
			t.Fatalf("expected 200 replacing addresses with [A], got %d", st)
		}

		st, body := doReq(t, ts.URL, "PATCH", "/owners/"+ownerID, map[string]any{"addresses": []any{b}})
		if st != http.StatusOK {
			t.Fatalf("expected 200 replacing addresses with [B], got %d", st)
		}

		got := decode(t, body)
		addrs, _ := got["addresses"].([]any)
		if len(addrs) != 1 {
			t.Fatalf("expected exactly [B] after second replacement, got %d addresses", len(addrs))
		}
		first, _ := addrs[0].(map[string]any)
		if first["street"] != "10 Downing St" {
			t.Fatalf("expected [B] to win, got %v", first["street"])
		}
		if first["id"] == "" || first["id"] == nil {
			t.Fatal("expected server-assigned address id")
		}
	}

	// 6) null explícito limpia un campo opcional; campo desconocido se rechaza
	{
		st, body := doReq(t, ts.URL, "PATCH", "/owners/"+ownerID, map[string]any{"government_id": nil})
		if st != http.StatusOK {
			t.Fatalf("expected 200 clearing government_id, got %d", st)
		}
		if _, present := decode(t, body)["government_id"]; present {
			t.Fatal("expected government_id omitted after clearing")
		}

		st, _ = doReq(t, ts.URL, "PATCH", "/owners/"+ownerID, map[string]any{"nickname": "ada"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown patch field, got %d", st)
		}
	}

	// 7) Pet create: requiere owner_id y que el owner exista
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets", map[string]any{
			"name":    "Buddy",
			"species": "Dog",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 creating pet without owner_id, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "POST", "/pets", map[string]any{
			"name":     "Buddy",
			"species":  "Dog",
			"owner_id": "00000000-0000-4000-8000-000000000000",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 creating pet with unknown owner, got %d", st)
		}
	}

	st, body = doReq(t, ts.URL, "POST", "/pets", map[string]any{
		"name":       "Buddy",
		"species":    "Dog",
		"breed":      "Golden Retriever",
		"birth_date": "2020-05-10",
		"color":      "Golden",
		"owner_id":   ownerID,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating pet, got %d body=%s", st, body)
	}

	pet := decode(t, body)
	petID, _ := pet["id"].(string)
	if petID == "" {
		t.Fatal("expected server-assigned pet id")
	}
	if pet["birth_date"] != "2020-05-10" {
		t.Fatalf("expected birth_date on the wire as YYYY-MM-DD, got %v", pet["birth_date"])
	}

	// 8) La lectura embebe el owner resuelto
	embedded, _ := pet["owner"].(map[string]any)
	if embedded == nil || embedded["id"] != ownerID {
		t.Fatalf("expected embedded owner %s, got %v", ownerID, pet["owner"])
	}

	// 9) Listado filtrado por owner
	{
		st, body := doReq(t, ts.URL, "GET", "/pets?owner_id="+ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing pets, got %d", st)
		}
		var items []map[string]any
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("decode list: %v", err)
		}
		if len(items) != 1 || items[0]["id"] != petID {
			t.Fatalf("expected exactly the created pet, got %v", items)
		}
	}

	// 10) Reasignar owner vía PATCH no está soportado
	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+petID, map[string]any{
			"owner_id": "00000000-0000-4000-8000-000000000000",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 patching owner_id, got %d body=%s", st, body)
		}
	}

	// 11) PATCH parcial del pet + limpiar birth_date con null
	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+petID, map[string]any{
			"breed": "Labrador",
			"color": "Black",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch pet, got %d body=%s", st, body)
		}
		got := decode(t, body)
		if got["breed"] != "Labrador" || got["color"] != "Black" {
			t.Fatalf("expected breed/color overwritten, got %v / %v", got["breed"], got["color"])
		}
		if got["name"] != "Buddy" || got["birth_date"] != "2020-05-10" {
			t.Fatal("expected absent fields unchanged")
		}

		st, body = doReq(t, ts.URL, "PATCH", "/pets/"+petID, map[string]any{"birth_date": nil})
		if st != http.StatusOK {
			t.Fatalf("expected 200 clearing birth_date, got %d", st)
		}
		if _, present := decode(t, body)["birth_date"]; present {
			t.Fatal("expected birth_date omitted after clearing")
		}
	}

	// 12) Borrar el owner: el pet se sigue leyendo, sin owner embebido
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/owners/"+ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deleting owner, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 reading orphaned pet, got %d", st)
		}
		if _, present := decode(t, body)["owner"]; present {
			t.Fatal("expected owner omitted after owner deletion")
		}
	}

	// 13) Borrar el pet
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deleting pet, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, body)
	}
}

// -------------------------
// Helpers
// -------------------------

func doReq(t *testing.T, baseURL, method, path string, payload map[string]any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("decode body %s: %v", body, err)
	}
	return m
}

func parseTime(t *testing.T, v any) time.Time {
	t.Helper()
	s, _ := v.(string)
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return ts
}
