package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stockpulse/stockpulse/internal/ctxkeys"
	"github.com/stockpulse/stockpulse/internal/model"
	"github.com/stockpulse/stockpulse/internal/repository"
	"github.com/stockpulse/stockpulse/internal/service"
)

type memUserRepo struct {
	users map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) ByID(id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *memUserRepo) ByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func newTestAuthHandler() (*authHandler, *memUserRepo) {
	repo := newMemUserRepo()
	return NewAuthHandler(service.NewAuthService(repo, "test-secret", time.Hour, false)), repo
}

const signupBody = `{
	"name": "Asha Rao",
	"email": "asha@example.com",
	"dob": "1992-04-15",
	"gender": "Female",
	"password": "sturdy-passphrase-9"
}`

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterCreated(t *testing.T) {
	h, _ := newTestAuthHandler()

	rec := postJSON(t, h.Register, "/users", signupBody)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		Message string          `json:"message"`
		User    json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "User created successfully" {
		t.Errorf("message = %q, want %q", resp.Message, "User created successfully")
	}
	if strings.Contains(string(resp.User), "password") {
		t.Error("response user payload leaks password material")
	}
}

func TestRegisterDuplicateConflict(t *testing.T) {
	h, _ := newTestAuthHandler()

	if rec := postJSON(t, h.Register, "/users", signupBody); rec.Code != http.StatusCreated {
		t.Fatalf("first signup status = %d, want %d", rec.Code, http.StatusCreated)
	}
	rec := postJSON(t, h.Register, "/users", signupBody)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if !strings.Contains(rec.Body.String(), "User already exists.") {
		t.Errorf("body = %q, want duplicate-user error", rec.Body.String())
	}
}

func TestRegisterValidationFailure(t *testing.T) {
	h, _ := newTestAuthHandler()

	rec := postJSON(t, h.Register, "/users", `{"name":"","email":"","dob":"","gender":"","password":""}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRegisterMalformedBody(t *testing.T) {
	h, _ := newTestAuthHandler()

	rec := postJSON(t, h.Register, "/users", `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	h, _ := newTestAuthHandler()
	postJSON(t, h.Register, "/users", signupBody)

	rec := postJSON(t, h.Login, "/users/login", `{"email":"asha@example.com","password":"sturdy-passphrase-9"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Login successful") {
		t.Errorf("body = %q, want login success message", rec.Body.String())
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "auth_token" || cookies[0].Value == "" {
		t.Errorf("cookies = %+v, want populated auth_token", cookies)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	h, _ := newTestAuthHandler()

	rec := postJSON(t, h.Login, "/users/login", `{"email":"nobody@example.com","password":"whatever-pass"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "User not found.") {
		t.Errorf("body = %q, want not-found error", rec.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h, _ := newTestAuthHandler()
	postJSON(t, h.Register, "/users", signupBody)

	rec := postJSON(t, h.Login, "/users/login", `{"email":"asha@example.com","password":"wrong-passphrase"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(rec.Body.String(), "Incorrect password.") {
		t.Errorf("body = %q, want incorrect-password error", rec.Body.String())
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	h, _ := newTestAuthHandler()

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].Expires.Before(time.Now()) {
		t.Error("logout did not expire the auth cookie")
	}
}

func TestMeReturnsSessionUser(t *testing.T) {
	h, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req = req.WithContext(ctxkeys.WithUser(req.Context(), &model.User{ID: "user-1", Name: "Asha Rao", Email: "asha@example.com"}))
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "asha@example.com") {
		t.Errorf("body = %q, want session user payload", rec.Body.String())
	}
}
