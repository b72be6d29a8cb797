package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/younifirst/younifirst/internal/app/features/auth"
	"github.com/younifirst/younifirst/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func TestRegister_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := auth.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/auth/register", registerBody{
		Name: "Jamie Lee", Email: "jamie@example.com", Password: "hunter2hunter2",
	})
	rec := httptest.NewRecorder()
	handler.ServeRegister(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.ID == "" {
		t.Error("expected a generated id")
	}
	if resp.Email != "jamie@example.com" || resp.Name != "Jamie Lee" {
		t.Errorf("projection mismatch: %+v", resp)
	}

	// The raw response must never carry the password or its hash.
	if body := rec.Body.String(); strings.Contains(body, "hunter2") || strings.Contains(body, "password") {
		t.Errorf("response leaks credential material: %s", body)
	}

	// The stored document holds a bcrypt hash, not the password.
	ctx, cancel := testutil.TestContext()
	defer cancel()
	var doc struct {
		PasswordHash string `bson:"password_hash"`
	}
	if err := db.Collection("user").FindOne(ctx, bson.M{"email": "jamie@example.com"}).Decode(&doc); err != nil {
		t.Fatalf("failed to load stored user: %v", err)
	}
	if doc.PasswordHash == "" || doc.PasswordHash == "hunter2hunter2" {
		t.Errorf("expected a hash in password_hash, got %q", doc.PasswordHash)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := auth.NewHandler(db, zap.NewNop())

	body := registerBody{Name: "First", Email: "dup@example.com", Password: "pw1pw1pw1"}
	rec := httptest.NewRecorder()
	handler.ServeRegister(rec, testutil.NewJSONRequest(t, "POST", "/auth/register", body))
	testutil.AssertStatus(t, rec, http.StatusOK)

	body.Name = "Second"
	rec = httptest.NewRecorder()
	handler.ServeRegister(rec, testutil.NewJSONRequest(t, "POST", "/auth/register", body))
	testutil.AssertStatus(t, rec, http.StatusConflict)

	// The second attempt must not have created a document.
	ctx, cancel := testutil.TestContext()
	defer cancel()
	n, err := db.Collection("user").CountDocuments(ctx, bson.M{"email": "dup@example.com"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 user document, got %d", n)
	}
}

func TestRegister_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := auth.NewHandler(db, zap.NewNop())

	tests := []struct {
		name string
		body registerBody
	}{
		{"missing name", registerBody{Email: "a@b.co", Password: "pw"}},
		{"blank name", registerBody{Name: "   ", Email: "a@b.co", Password: "pw"}},
		{"bad email", registerBody{Name: "A", Email: "not-an-email", Password: "pw"}},
		{"missing password", registerBody{Name: "A", Email: "a@b.co"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeRegister(rec, testutil.NewJSONRequest(t, "POST", "/auth/register", tt.body))
			testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
		})
	}
}

func TestRegister_MalformedJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := auth.NewHandler(db, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ServeRegister(rec, testutil.NewRawRequest("POST", "/auth/register", "{not json"))
	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestRegister_NoDatabase(t *testing.T) {
	handler := auth.NewHandler(nil, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ServeRegister(rec, testutil.NewJSONRequest(t, "POST", "/auth/register", registerBody{
		Name: "A", Email: "a@b.co", Password: "pw",
	}))
	testutil.AssertStatus(t, rec, http.StatusServiceUnavailable)
}

func TestLogin_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := auth.NewHandler(db, zap.NewNop())

	reg := registerBody{Name: "Jamie", Email: "login@example.com", Password: "correct-horse"}
	rec := httptest.NewRecorder()
	handler.ServeRegister(rec, testutil.NewJSONRequest(t, "POST", "/auth/register", reg))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var regResp struct {
		ID string `json:"id"`
	}
	testutil.DecodeJSON(t, rec, &regResp)

	rec = httptest.NewRecorder()
	handler.ServeLogin(rec, testutil.NewJSONRequest(t, "POST", "/auth/login", loginBody{
		Email: "login@example.com", Password: "correct-horse",
	}))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp struct {
		Message string `json:"message"`
		User    struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Message != "Login successful" {
		t.Errorf("message: got %q", resp.Message)
	}
	if resp.User.ID != regResp.ID {
		t.Errorf("login id %q differs from registration id %q", resp.User.ID, regResp.ID)
	}
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := auth.NewHandler(db, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ServeRegister(rec, testutil.NewJSONRequest(t, "POST", "/auth/register", registerBody{
		Name: "Jamie", Email: "known@example.com", Password: "right-password",
	}))
	testutil.AssertStatus(t, rec, http.StatusOK)

	wrongPassword := httptest.NewRecorder()
	handler.ServeLogin(wrongPassword, testutil.NewJSONRequest(t, "POST", "/auth/login", loginBody{
		Email: "known@example.com", Password: "wrong-password",
	}))
	testutil.AssertStatus(t, wrongPassword, http.StatusUnauthorized)

	unknownEmail := httptest.NewRecorder()
	handler.ServeLogin(unknownEmail, testutil.NewJSONRequest(t, "POST", "/auth/login", loginBody{
		Email: "unknown@example.com", Password: "whatever",
	}))
	testutil.AssertStatus(t, unknownEmail, http.StatusUnauthorized)

	// Same status and same body: callers cannot probe registered emails.
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("failure bodies differ: %q vs %q",
			wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}
