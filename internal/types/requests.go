package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds the credential pair sent to /api/auth/login.
type LoginRequest struct {
	NumFicha string `json:"numFicha"`
	Cedula   string `json:"cedula"`
}

// ValidateTokenRequest holds the token sent to /api/auth/validate.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ActivityDraft holds the fields of a not-yet-persisted activity record.
type ActivityDraft struct {
	Kind        Kind     `json:"tipo"`
	Category    Category `json:"categoria"`
	Equipment   string   `json:"equipo"`
	Technician  string   `json:"tecnico"`
	NumFicha    string   `json:"numFicha"`
	Shift       Shift    `json:"turno"`
	Description string   `json:"descripcion"`
}

// UserForm holds the fields for creating or editing an account.
type UserForm struct {
	NumFicha   string `json:"numFicha"`
	Cedula     string `json:"cedula"`
	GivenName  string `json:"nombre"`
	FamilyName string `json:"apellido"`
	Role       Role   `json:"role"`
}

// ------------------------------
// Local (non-wire) filter types
// ------------------------------

// ActivityFilter selects a subset of an already-fetched record set.
// Zero value is the identity filter.
type ActivityFilter struct {
	Kind   Kind   // KindAll or "" matches everything
	Search string // case-insensitive substring over equipment and description
}

// UserFilter selects a subset of an already-fetched account list.
type UserFilter struct {
	Role   Role   // "" matches every role
	Search string // substring over names, ficha and cedula
}
