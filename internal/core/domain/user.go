package domain

// Role is the single role granted to a user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Authority returns the authority string carried in tokens, e.g. ROLE_ADMIN.
func (r Role) Authority() string {
	return "ROLE_" + string(r)
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is an authenticated principal of the API.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// Authorities returns the user's granted authorities.
func (u User) Authorities() []string {
	return []string{u.Role.Authority()}
}
