package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisterLoginProfileFlow(t *testing.T) {
	r := newTestEngine()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
		"name":     "Alice",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("register: no user in %v", body)
	}
	if user["email"] != "alice@example.com" || user["name"] != "Alice" {
		t.Errorf("register user = %v", user)
	}
	// credential material never crosses the boundary
	for _, key := range []string{"password", "passwordHash", "PasswordHash"} {
		if _, present := user[key]; present {
			t.Errorf("register response leaks %q", key)
		}
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body = %s", w.Code, w.Body.String())
	}
	token := decode(t, w)["access_token"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/auth/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile: status = %d, body = %s", w.Code, w.Body.String())
	}
	profile := decode(t, w)
	if profile["email"] != "alice@example.com" {
		t.Errorf("profile = %v, want email alice@example.com", profile)
	}
	if profile["userId"] != user["id"] {
		t.Errorf("profile userId = %v, want %v", profile["userId"], user["id"])
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r := newTestEngine()
	registerUser(t, r, "alice@example.com", "Alice")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "alice@example.com",
		"password": "password456",
		"name":     "Alice Again",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decode(t, w)
	if body["message"] != "User already exists" {
		t.Errorf("message = %v, want 'User already exists'", body["message"])
	}
}

func TestLogin_UniformFailureMessage(t *testing.T) {
	r := newTestEngine()
	registerUser(t, r, "alice@example.com", "Alice")

	wrongPass := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	noUser := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ghost@example.com",
		"password": "password123",
	})

	if wrongPass.Code != http.StatusUnauthorized || noUser.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d/%d, want 401/401", wrongPass.Code, noUser.Code)
	}
	if decode(t, wrongPass)["message"] != decode(t, noUser)["message"] {
		t.Error("wrong-password and unknown-email messages must match")
	}
}

func TestErrorEnvelopeShape(t *testing.T) {
	r := newTestEngine()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ghost@example.com",
		"password": "whatever1",
	})
	body := decode(t, w)

	for _, key := range []string{"statusCode", "timestamp", "path", "message", "details"} {
		if _, present := body[key]; !present {
			t.Errorf("envelope missing %q: %v", key, body)
		}
	}
	if body["path"] != "/api/auth/login" {
		t.Errorf("path = %v, want /api/auth/login", body["path"])
	}
}
