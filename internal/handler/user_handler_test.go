package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func createUser(t *testing.T, app *fiber.App, token string, payload fiber.Map) float64 {
	t.Helper()
	status, body := request(t, app, http.MethodPost, "/api/users", token, payload)
	if status != http.StatusCreated {
		t.Fatalf("create user: got %d, body %v", status, body)
	}
	return data(t, body)["id"].(float64)
}

func TestUserCreateWithUnknownJabatan(t *testing.T) {
	app, _, token := setupApp(t)

	status, body := request(t, app, http.MethodPost, "/api/users", token, fiber.Map{
		"nama":       "Budi Santoso",
		"username":   "budi",
		"password":   "rahasia123",
		"jabatan_id": 999,
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, body %v", status, body)
	}
	msgs := fieldErrors(t, body, "jabatan_id")
	if msgs[0] != "Jabatan yang dipilih tidak valid" {
		t.Errorf("unexpected message: %v", msgs[0])
	}

	if status, _ := request(t, app, http.MethodGet, "/api/users/2", token, nil); status != http.StatusNotFound {
		t.Errorf("rejected user was persisted")
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	app, _, token := setupApp(t)

	createUser(t, app, token, fiber.Map{"nama": "Budi", "username": "budi", "password": "rahasia123"})

	status, body := request(t, app, http.MethodPost, "/api/users", token, fiber.Map{
		"nama":     "Budi Kedua",
		"username": "budi",
		"password": "rahasia123",
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, body %v", status, body)
	}
	msgs := fieldErrors(t, body, "username")
	if msgs[0] != "Kolom username sudah digunakan" {
		t.Errorf("unexpected message: %v", msgs[0])
	}
}

func TestUserUpdateKeepsOwnUsername(t *testing.T) {
	app, _, token := setupApp(t)

	id := createUser(t, app, token, fiber.Map{"nama": "Budi", "username": "budi", "password": "rahasia123"})

	// Update ke username sendiri harus lolos (self-exclusion).
	status, body := request(t, app, http.MethodPut, fmt.Sprintf("/api/users/%.0f", id), token, fiber.Map{
		"username": "budi",
		"nama":     "Budi Santoso",
	})
	if status != http.StatusOK {
		t.Fatalf("got %d, body %v", status, body)
	}
	if got := data(t, body)["nama"]; got != "Budi Santoso" {
		t.Errorf("nama = %v", got)
	}
}

func TestUserPartialUpdate(t *testing.T) {
	app, _, token := setupApp(t)

	id := createUser(t, app, token, fiber.Map{
		"nama":          "Budi",
		"username":      "budi",
		"password":      "rahasia123",
		"email":         "budi@mail.com",
		"jenis_pegawai": "pns",
	})

	status, body := request(t, app, http.MethodPut, fmt.Sprintf("/api/users/%.0f", id), token, fiber.Map{
		"no_wa": "081234567890",
	})
	if status != http.StatusOK {
		t.Fatalf("update: got %d, body %v", status, body)
	}
	d := data(t, body)
	if d["no_wa"] != "081234567890" {
		t.Errorf("no_wa = %v", d["no_wa"])
	}
	if d["email"] != "budi@mail.com" {
		t.Errorf("email changed: %v", d["email"])
	}
	if d["jenis_pegawai"] != "pns" {
		t.Errorf("jenis_pegawai changed: %v", d["jenis_pegawai"])
	}
	if _, ok := d["password"]; ok {
		t.Error("password must not be serialized")
	}
}

func TestUserUpdateWithoutPasswordKeepsLogin(t *testing.T) {
	app, _, token := setupApp(t)

	id := createUser(t, app, token, fiber.Map{"nama": "Budi", "username": "budi", "password": "rahasia123"})

	status, body := request(t, app, http.MethodPut, fmt.Sprintf("/api/users/%.0f", id), token, fiber.Map{
		"nama": "Budi Santoso",
	})
	if status != http.StatusOK {
		t.Fatalf("update: got %d, body %v", status, body)
	}

	// Password lama masih berlaku.
	status, body = request(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": "budi",
		"password": "rahasia123",
	})
	if status != http.StatusOK {
		t.Fatalf("login after update: got %d, body %v", status, body)
	}
}

func TestUserShortPasswordOnUpdate(t *testing.T) {
	app, _, token := setupApp(t)

	id := createUser(t, app, token, fiber.Map{"nama": "Budi", "username": "budi", "password": "rahasia123"})

	status, body := request(t, app, http.MethodPut, fmt.Sprintf("/api/users/%.0f", id), token, fiber.Map{
		"password": "abc",
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, body %v", status, body)
	}
	fieldErrors(t, body, "password")
}

func TestUserDeleteNullsSupervisor(t *testing.T) {
	app, _, token := setupApp(t)

	atasanID := createUser(t, app, token, fiber.Map{"nama": "Kepala", "username": "kepala", "password": "rahasia123"})
	bawahanID := createUser(t, app, token, fiber.Map{
		"nama":      "Staf",
		"username":  "staf",
		"password":  "rahasia123",
		"id_atasan": atasanID,
	})

	status, _ := request(t, app, http.MethodDelete, fmt.Sprintf("/api/users/%.0f", atasanID), token, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete atasan: got %d", status)
	}

	status, body := request(t, app, http.MethodGet, fmt.Sprintf("/api/users/%.0f", bawahanID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("bawahan should survive: got %d", status)
	}
	d := data(t, body)
	if d["id_atasan"] != nil {
		t.Errorf("id_atasan should be null, got %v", d["id_atasan"])
	}
	if d["atasan"] != nil {
		t.Errorf("atasan relation should be null, got %v", d["atasan"])
	}
}

func TestUserJenisPegawaiRestricted(t *testing.T) {
	app, _, token := setupApp(t)

	status, body := request(t, app, http.MethodPost, "/api/users", token, fiber.Map{
		"nama":          "Budi",
		"username":      "budi",
		"password":      "rahasia123",
		"jenis_pegawai": "honorer",
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, body %v", status, body)
	}
	fieldErrors(t, body, "jenis_pegawai")
}
