package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Natalia-Nic/construction-company-api/internal/audit"
	"github.com/Natalia-Nic/construction-company-api/internal/config"
	dbpkg "github.com/Natalia-Nic/construction-company-api/internal/db"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
	"github.com/Natalia-Nic/construction-company-api/internal/token"
)

func setupAuthTest(t *testing.T) (*gin.Engine, *gorm.DB, *token.Issuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := dbpkg.Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	issuer := token.NewIssuer(config.JWTConfig{
		Secret:   "test-secret-key-minimum-16-chars",
		Issuer:   "construction-company",
		Audience: "construction-company-users",
		TTL:      time.Hour,
	})

	h := NewAuthHandler(db, issuer, audit.NewDispatcher(audit.New(db)))

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r, db, issuer
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"fullName"`
		Role     string `json:"role"`
	} `json:"user"`
}

const registerBody = `{"email":"a@test.com","password":"secret1","fullName":"Anna Petrova","phone":"+70000000002","role":"Client"}`

func TestRegisterIssuesTokenWithIdentityClaims(t *testing.T) {
	r, db, issuer := setupAuthTest(t)

	w := postJSON(t, r, "/api/auth/register", registerBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var resp authResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.ID == "" || resp.User.Role != models.RoleClient {
		t.Fatalf("unexpected user summary: %+v", resp.User)
	}

	claims, err := issuer.Verify(resp.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Subject != resp.User.ID {
		t.Fatalf("subject %q != user id %q", claims.Subject, resp.User.ID)
	}
	if claims.Role != models.RoleClient {
		t.Fatalf("expected role claim Client got %q", claims.Role)
	}

	// Only the hash is persisted, never the plaintext.
	var user models.User
	if err := db.Where("email = ?", "a@test.com").First(&user).Error; err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("hash does not match supplied password: %v", err)
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	r, db, _ := setupAuthTest(t)

	if w := postJSON(t, r, "/api/auth/register", registerBody); w.Code != http.StatusOK {
		t.Fatalf("first register: expected 200 got %d", w.Code)
	}

	dup := strings.Replace(registerBody, "a@test.com", "A@Test.Com", 1)
	w := postJSON(t, r, "/api/auth/register", dup)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400 got %d body=%s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one user row, got %d", count)
	}
}

func TestRegisterRejectsWeakPasswordAndBadRole(t *testing.T) {
	r, _, _ := setupAuthTest(t)

	cases := []string{
		`{"email":"b@test.com","password":"abc1","fullName":"B","role":"Client"}`,   // too short
		`{"email":"b@test.com","password":"abcdef","fullName":"B","role":"Client"}`, // no digit
		`{"email":"b@test.com","password":"ABC123","fullName":"B","role":"Client"}`, // no lowercase
		`{"email":"b@test.com","password":"secret1","fullName":"B","role":"Boss"}`,  // unknown role
		`{"email":"not-an-email","password":"secret1","fullName":"B","role":"Client"}`,
	}
	for _, body := range cases {
		if w := postJSON(t, r, "/api/auth/register", body); w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 got %d", body, w.Code)
		}
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	r, _, _ := setupAuthTest(t)

	if w := postJSON(t, r, "/api/auth/register", registerBody); w.Code != http.StatusOK {
		t.Fatalf("register: expected 200 got %d", w.Code)
	}

	// Wrong password is rejected; there is no bypass.
	w := postJSON(t, r, "/api/auth/login", `{"email":"a@test.com","password":"wrong99"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401 got %d", w.Code)
	}

	w = postJSON(t, r, "/api/auth/login", `{"email":"ghost@test.com","password":"secret1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401 got %d", w.Code)
	}

	w = postJSON(t, r, "/api/auth/login", `{"email":"A@TEST.COM","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var resp authResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" || resp.User.Email != "a@test.com" {
		t.Fatalf("unexpected login response: %+v", resp)
	}
}
