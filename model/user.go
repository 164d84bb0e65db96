package model

type Role string

const (
	RoleMaster       Role = "master"
	RoleCollaborator Role = "collaborator"
)

func (r Role) Valid() bool {
	return r == RoleMaster || r == RoleCollaborator
}

// User never carries its password out of the service layer: the field is
// skipped by the JSON encoder.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}
