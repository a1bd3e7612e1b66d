package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLoginWrongPassword(t *testing.T) {
	app, _, _ := setupApp(t)

	status, body := request(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": "admin",
		"password": "salah",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("got %d, body %v", status, body)
	}
	if body["error"] != "Username atau password salah" {
		t.Errorf("unexpected message: %v", body["error"])
	}
}

func TestLoginUnknownUser(t *testing.T) {
	app, _, _ := setupApp(t)

	status, body := request(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": "tidakada",
		"password": "apapun",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("got %d, body %v", status, body)
	}
}

func TestLoginMissingFields(t *testing.T) {
	app, _, _ := setupApp(t)

	status, body := request(t, app, http.MethodPost, "/api/login", "", fiber.Map{})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, body %v", status, body)
	}
	fieldErrors(t, body, "username")
	fieldErrors(t, body, "password")
}

func TestMeReturnsOwnProfile(t *testing.T) {
	app, _, token := setupApp(t)

	status, body := request(t, app, http.MethodGet, "/api/user", token, nil)
	if status != http.StatusOK {
		t.Fatalf("got %d, body %v", status, body)
	}
	d := data(t, body)
	if d["username"] != "admin" {
		t.Errorf("username = %v", d["username"])
	}
	if _, ok := d["password"]; ok {
		t.Error("password must not be serialized")
	}
}
