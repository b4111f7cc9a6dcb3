package endpoints

import (
	"errors"
	"net/http"

	"github.com/atelier-web/atelier/pkg/authn"
	"github.com/atelier-web/atelier/pkg/identity"
	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server"
	"github.com/atelier-web/atelier/pkg/server/middleware"
	"github.com/atelier-web/atelier/pkg/server/store"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// RegisterAuthEndpoints registers registration, login and profile routes
func RegisterAuthEndpoints(s *server.Server) {
	authRouter := s.Router.PathPrefix("/auth").Subrouter()

	// POST /auth/register - Create a client account
	authRouter.HandleFunc("/register", handleRegister(s.Users, s.Tokens, model.RoleClient)).Methods("POST")

	// POST /auth/register/admin - Create an admin account
	authRouter.HandleFunc("/register/admin", handleRegister(s.Users, s.Tokens, model.RoleAdmin)).Methods("POST")

	// POST /auth/login - Exchange credentials for a session token
	authRouter.HandleFunc("/login", handleLogin(s.Users, s.Tokens)).Methods("POST")

	sessionRouter := s.Router.PathPrefix("/auth").Subrouter()
	sessionRouter.Use(s.Authenticator.Middleware)

	// POST /auth/logout - Sessions are stateless; the client discards its token
	sessionRouter.HandleFunc("/logout", handleLogout()).Methods("POST")

	// GET /auth/profile - The signed-in user's record
	sessionRouter.HandleFunc("/profile", handleProfile(s.Users)).Methods("GET")

	adminRouter := s.Router.PathPrefix("/auth/admin").Subrouter()
	adminRouter.Use(s.Authenticator.Middleware, middleware.RequireRole(model.RoleAdmin))

	// GET /auth/admin/profile - Same record, admin-gated
	adminRouter.HandleFunc("/profile", handleProfile(s.Users)).Methods("GET")
}

func handleRegister(usersStore store.UsersStore, tokens *authn.TokenAuthority, role model.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Email == "" || req.Password == "" {
			respondWithError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		hash, err := authn.HashPassword(req.Password)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		user := &model.User{
			Email:     req.Email,
			Password:  hash,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      role,
		}
		if err := usersStore.CreateUser(user); err != nil {
			if errors.Is(err, store.ErrConflict) {
				respondWithError(w, http.StatusConflict, "Email already registered")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}

		token, err := tokens.Issue(user)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}

		respondWithJSON(w, http.StatusCreated, sessionResponse{Token: token, User: user})
	}
}

func handleLogin(usersStore store.UsersStore, tokens *authn.TokenAuthority) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := usersStore.FindUserByEmail(req.Email)
		if err != nil {
			// Burn a hash comparison so an unknown email costs the same as a
			// wrong password.
			authn.BurnComparison(req.Password)
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		if err := authn.VerifyPassword(user.Password, req.Password); err != nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := tokens.Issue(user)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}

		respondWithJSON(w, http.StatusOK, sessionResponse{Token: token, User: user})
	}
}

func handleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	}
}

func handleProfile(usersStore store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		user, err := usersStore.FindUserByID(principal.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "User not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to load profile")
			return
		}

		respondWithJSON(w, http.StatusOK, user)
	}
}
