package auth

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/younifirst/younifirst/internal/app/store/users"
	"github.com/younifirst/younifirst/internal/app/system/httpjson"
	"github.com/younifirst/younifirst/internal/app/system/inputval"
	"github.com/younifirst/younifirst/internal/app/system/normalize"
	"github.com/younifirst/younifirst/internal/app/system/timeouts"
	"github.com/younifirst/younifirst/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// invalidCredentials is the single message for every login failure.
// Unknown email and wrong password must be indistinguishable to callers.
const invalidCredentials = "Invalid credentials"

// Handler serves registration and login. Users is nil when the persistence
// backend was unreachable at startup.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	h := &Handler{Log: logger}
	if db != nil {
		h.Users = userstore.New(db)
	}
	return h
}

// ServeRegister handles POST /auth/register.
//
// Duplicate emails are rejected with 409 via the store's best-effort
// pre-check. The password is bcrypt-hashed before it touches the store and
// never appears in responses or logs.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Unprocessable(w, err.Error())
		return
	}

	req.Name = normalize.Name(req.Name)
	req.Email = normalize.Email(req.Email)
	switch {
	case req.Name == "":
		httpjson.Unprocessable(w, "name is required")
		return
	case !inputval.IsValidEmail(req.Email):
		httpjson.Unprocessable(w, "invalid email address")
		return
	case req.Password == "":
		httpjson.Unprocessable(w, "password is required")
		return
	}

	if h.Users == nil {
		httpjson.ServiceUnavailable(w)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpjson.Internal(w, h.Log, "password hash failed", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Conflict(w, "Email already registered")
			return
		}
		httpjson.Internal(w, h.Log, "user create failed", err)
		return
	}

	h.Log.Info("user registered", zap.String("user_id", user.ID.Hex()))
	httpjson.OK(w, registerResponse{
		ID:    user.ID.Hex(),
		Email: user.Email,
		Name:  user.Name,
	})
}

// ServeLogin handles POST /auth/login.
//
// Both failure modes (unknown email, wrong password) return the same 401
// body so callers cannot probe which emails are registered.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Unprocessable(w, err.Error())
		return
	}

	req.Email = normalize.Email(req.Email)
	if req.Email == "" || req.Password == "" {
		httpjson.Unprocessable(w, "email and password are required")
		return
	}

	if h.Users == nil {
		httpjson.ServiceUnavailable(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Internal(w, h.Log, "user lookup failed", err)
			return
		}
		httpjson.Unauthorized(w, invalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httpjson.Unauthorized(w, invalidCredentials)
		return
	}

	httpjson.OK(w, loginResponse{
		Message: "Login successful",
		User: userProjection{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
		},
	})
}
