package auth

// registerRequest is the JSON body for POST /auth/register.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerResponse is returned after a successful registration.
type registerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// loginRequest is the JSON body for POST /auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userProjection is the minimal user shape returned on login.
// No token or session accompanies it; the API stays anonymous afterwards.
type userProjection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// loginResponse is returned after a successful login.
type loginResponse struct {
	Message string         `json:"message"`
	User    userProjection `json:"user"`
}
