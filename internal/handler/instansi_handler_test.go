package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestInstansiCreateAndDuplicate(t *testing.T) {
	app, _, token := setupApp(t)

	status, body := request(t, app, http.MethodPost, "/api/instansi", token, fiber.Map{"nama": "Dinas Pendidikan"})
	if status != http.StatusCreated {
		t.Fatalf("create: got %d, body %v", status, body)
	}
	if got := data(t, body)["nama"]; got != "Dinas Pendidikan" {
		t.Errorf("nama = %v", got)
	}

	status, body = request(t, app, http.MethodPost, "/api/instansi", token, fiber.Map{"nama": "Dinas Pendidikan"})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("duplicate: got %d, body %v", status, body)
	}
	msgs := fieldErrors(t, body, "nama")
	if msgs[0] != "Nama Instansi sudah ada, harap pilih nama lain" {
		t.Errorf("unexpected message: %v", msgs[0])
	}
}

func TestInstansiRequiredField(t *testing.T) {
	app, _, token := setupApp(t)

	status, body := request(t, app, http.MethodPost, "/api/instansi", token, fiber.Map{})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, body %v", status, body)
	}
	msgs := fieldErrors(t, body, "nama")
	if msgs[0] != "Nama Instansi Wajib diisi" {
		t.Errorf("unexpected message: %v", msgs[0])
	}
}

func TestInstansiRoundTrip(t *testing.T) {
	app, _, token := setupApp(t)

	_, body := request(t, app, http.MethodPost, "/api/instansi", token, fiber.Map{"nama": "Dinas Kesehatan"})
	id := data(t, body)["id"].(float64)

	status, body := request(t, app, http.MethodGet, fmt.Sprintf("/api/instansi/%.0f", id), token, nil)
	if status != http.StatusOK {
		t.Fatalf("show: got %d", status)
	}
	if got := data(t, body)["nama"]; got != "Dinas Kesehatan" {
		t.Errorf("nama = %v", got)
	}

	status, body = request(t, app, http.MethodPut, fmt.Sprintf("/api/instansi/%.0f", id), token, fiber.Map{"nama": "Dinas Kesehatan Kota"})
	if status != http.StatusOK {
		t.Fatalf("update: got %d, body %v", status, body)
	}

	_, body = request(t, app, http.MethodGet, fmt.Sprintf("/api/instansi/%.0f", id), token, nil)
	if got := data(t, body)["nama"]; got != "Dinas Kesehatan Kota" {
		t.Errorf("update not persisted: %v", got)
	}
}

func TestInstansiUpdateKeepsOwnName(t *testing.T) {
	app, _, token := setupApp(t)

	_, body := request(t, app, http.MethodPost, "/api/instansi", token, fiber.Map{"nama": "Dinas PUPR"})
	id := data(t, body)["id"].(float64)

	// Update ke nama sendiri harus lolos (self-exclusion).
	status, body := request(t, app, http.MethodPut, fmt.Sprintf("/api/instansi/%.0f", id), token, fiber.Map{"nama": "Dinas PUPR"})
	if status != http.StatusOK {
		t.Fatalf("got %d, body %v", status, body)
	}
}

func TestInstansiNotFoundAndDeleteIdempotence(t *testing.T) {
	app, _, token := setupApp(t)

	if status, _ := request(t, app, http.MethodGet, "/api/instansi/99", token, nil); status != http.StatusNotFound {
		t.Errorf("show missing: got %d", status)
	}
	if status, _ := request(t, app, http.MethodPut, "/api/instansi/99", token, fiber.Map{"nama": "X"}); status != http.StatusNotFound {
		t.Errorf("update missing: got %d", status)
	}
	for i := 0; i < 2; i++ {
		if status, _ := request(t, app, http.MethodDelete, "/api/instansi/99", token, nil); status != http.StatusNotFound {
			t.Errorf("delete missing attempt %d: got %d", i+1, status)
		}
	}
}

func TestInstansiDeleteReturnsNoContent(t *testing.T) {
	app, _, token := setupApp(t)

	_, body := request(t, app, http.MethodPost, "/api/instansi", token, fiber.Map{"nama": "Dinas Sosial"})
	id := data(t, body)["id"].(float64)

	status, _ := request(t, app, http.MethodDelete, fmt.Sprintf("/api/instansi/%.0f", id), token, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete: got %d", status)
	}
	if status, _ := request(t, app, http.MethodGet, fmt.Sprintf("/api/instansi/%.0f", id), token, nil); status != http.StatusNotFound {
		t.Errorf("show after delete: got %d", status)
	}
}

func TestRequestWithoutTokenRejected(t *testing.T) {
	app, _, _ := setupApp(t)

	if status, _ := request(t, app, http.MethodGet, "/api/instansi", "", nil); status != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", status)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	app, _, token := setupApp(t)

	if status, _ := request(t, app, http.MethodPost, "/api/logout", token, nil); status != http.StatusOK {
		t.Fatal("logout failed")
	}
	if status, _ := request(t, app, http.MethodGet, "/api/instansi", token, nil); status != http.StatusUnauthorized {
		t.Error("revoked token still accepted")
	}
}
