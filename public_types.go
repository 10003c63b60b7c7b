package client

import "github.com/historial/historial-client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Enumerations
	Kind     = types.Kind
	Category = types.Category
	Shift    = types.Shift
	Role     = types.Role

	// Domain entities
	Activity    = types.Activity
	UserAccount = types.UserAccount

	// Requests and local filters
	ActivityDraft  = types.ActivityDraft
	ActivityFilter = types.ActivityFilter
	UserForm       = types.UserForm
	UserFilter     = types.UserFilter

	// Responses
	ReportSummary = types.ReportSummary
)

// Enumeration values re-exported alongside the aliases.
const (
	KindFalla         = types.KindFalla
	KindRutina        = types.KindRutina
	KindTrabajoTaller = types.KindTrabajoTaller
	KindAll           = types.KindAll

	CategoryZonaCaliente = types.CategoryZonaCaliente
	CategoryZonaFria     = types.CategoryZonaFria
	CategoryTaller       = types.CategoryTaller
	CategoryOtros        = types.CategoryOtros

	Shift1 = types.Shift1
	Shift2 = types.Shift2
	Shift3 = types.Shift3
	ShiftZ = types.ShiftZ

	RoleAdmin = types.RoleAdmin
	RoleUser  = types.RoleUser
)
