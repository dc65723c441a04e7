package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Credential is a registered account. Passwords are kept in the form produced
// by the configured PasswordScheme, which is cleartext by default.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
