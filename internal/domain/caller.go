package domain

const RoleAdmin = "admin"

// Caller is the authenticated principal behind a request. It is passed
// explicitly into services and policies; nothing reads identity from
// ambient request state.
type Caller struct {
	ID   int
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
