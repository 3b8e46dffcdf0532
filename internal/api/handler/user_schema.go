package handler

// Request and response shapes for the auth and user endpoints. Field names
// follow the wire contract consumed by the frontend (snake_case).

type signupRequest struct {
	FirstName   string   `json:"first_name" validate:"required"`
	LastName    string   `json:"last_name" validate:"required"`
	CompanyName string   `json:"company_name"`
	Email       string   `json:"email" validate:"required,email"`
	PhoneNumber string   `json:"phone_number" validate:"required"`
	Password    string   `json:"password" validate:"required,min=8"`
	Roles       []string `json:"roles"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// tokenResponse is returned by both signup and login. ExpiresIn is the token
// lifetime in seconds.
type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type updateProfileRequest struct {
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
}

type userResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	CompanyName string   `json:"company_name,omitempty"`
	Roles       []string `json:"roles"`
}

type updateProfileResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
}
