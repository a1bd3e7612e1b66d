package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ekin-backend/internal/model"
	"ekin-backend/internal/routes"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp membangun aplikasi lengkap di atas sqlite in-memory, membuat
// satu akun admin, lalu login untuk mendapat token.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Instansi{},
		&model.Jabatan{},
		&model.Pangkat{},
		&model.Indikator{},
		&model.RhkPejabat{},
		&model.RhkStaff{},
		&model.UraianTugas{},
		&model.User{},
		&model.TokenBlacklist{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	routes.SetupAuthRoutes(app, db)
	routes.SetupInstansiRoutes(app, db)
	routes.SetupJabatanRoutes(app, db)
	routes.SetupPangkatRoutes(app, db)
	routes.SetupIndikatorRoutes(app, db)
	routes.SetupRhkPejabatRoutes(app, db)
	routes.SetupRhkStaffRoutes(app, db)
	routes.SetupUraianTugasRoutes(app, db)
	routes.SetupUserRoutes(app, db)

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := model.User{Nama: "Administrator", Username: "admin", Password: string(hashed)}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	status, body := request(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": "admin",
		"password": "admin123",
	})
	if status != http.StatusOK {
		t.Fatalf("login failed: %d %v", status, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login returned empty token")
	}

	return app, db, token
}

// request mengirim request JSON dan mengembalikan status plus body yang
// sudah di-decode; body nil untuk respons kosong (mis. 204).
func request(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return resp.StatusCode, body
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("body has no data object: %v", body)
	}
	return d
}

func fieldErrors(t *testing.T, body map[string]interface{}, field string) []interface{} {
	t.Helper()
	errs, ok := body["errors"].(map[string]interface{})
	if !ok {
		t.Fatalf("body has no errors object: %v", body)
	}
	msgs, ok := errs[field].([]interface{})
	if !ok {
		t.Fatalf("no errors for field %q: %v", field, errs)
	}
	return msgs
}
