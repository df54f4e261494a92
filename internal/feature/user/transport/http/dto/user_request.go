// Package dto defines request shapes for the user and auth HTTP surfaces.
package dto

// UserRequest carries the decoded request body for user registration and
// user update. Raw decoded JSON values are kept (nil when absent) so
// validators can distinguish missing fields from wrongly typed ones and so
// the update validator can reject fields a non-admin is not allowed to send.
type UserRequest struct {
	ID       any
	Name     any
	Email    any
	Password any
	Role     any
}

// NewUserRequest extracts the known user fields from a decoded JSON body.
func NewUserRequest(body map[string]any) UserRequest {
	return UserRequest{
		ID:       body["id"],
		Name:     body["name"],
		Email:    body["email"],
		Password: body["password"],
		Role:     body["role"],
	}
}

// UserModel is the typed view of a request that already passed validation.
type UserModel struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// Model converts a validated request into its typed form.
func (m UserRequest) Model() UserModel {
	return UserModel{
		ID:       stringValue(m.ID),
		Name:     stringValue(m.Name),
		Email:    stringValue(m.Email),
		Password: stringValue(m.Password),
		Role:     stringValue(m.Role),
	}
}

// LoginRequest carries the decoded credentials for login and for the
// forgot-password flow (which only uses the email).
type LoginRequest struct {
	Email    any
	Password any
}

// NewLoginRequest extracts the credential fields from a decoded JSON body.
func NewLoginRequest(body map[string]any) LoginRequest {
	return LoginRequest{
		Email:    body["email"],
		Password: body["password"],
	}
}

// EmailValue returns the email of a validated login request.
func (m LoginRequest) EmailValue() string {
	return stringValue(m.Email)
}

// PasswordValue returns the password of a validated login request.
func (m LoginRequest) PasswordValue() string {
	return stringValue(m.Password)
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// TokenResponse returns a freshly signed JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

// ResetPasswordRequest carries the new password for the reset endpoint.
type ResetPasswordRequest struct {
	Password any
}

// NewResetPasswordRequest extracts the password field from a decoded body.
func NewResetPasswordRequest(body map[string]any) ResetPasswordRequest {
	return ResetPasswordRequest{Password: body["password"]}
}

// PasswordValue returns the password of a validated reset request.
func (m ResetPasswordRequest) PasswordValue() string {
	return stringValue(m.Password)
}
