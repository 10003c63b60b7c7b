package types

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse mirrors the auth service's login reply. Error/Message carry
// the service-reported rejection; the remaining fields are only meaningful
// when Error is false.
type LoginResponse struct {
	Error      bool   `json:"error"`
	Message    string `json:"message,omitempty"`
	Token      string `json:"token,omitempty"`
	Tipo       string `json:"tipo,omitempty"` // lowercase role, normalized via ParseRole
	NumFicha   string `json:"numFicha,omitempty"`
	GivenName  string `json:"nombre,omitempty"`
	FamilyName string `json:"apellido,omitempty"`
}

// ValidateTokenResponse mirrors /api/auth/validate.
type ValidateTokenResponse struct {
	Valid bool `json:"valid"`
}

// ReportSummary is the pre-aggregated payload from the reporting service.
// The groupings are unordered mappings; presentation ordering (equipment by
// descending count) is applied by the stats package, not stored here.
type ReportSummary struct {
	TotalActivities int64            `json:"totalActivities"`
	ByKind          map[string]int64 `json:"activitiesByType"`
	ByCategory      map[string]int64 `json:"activitiesByCategory"`
	ByEquipment     map[string]int64 `json:"activitiesByEquipo"`
	ByShift         map[string]int64 `json:"activitiesByTurno"`
}
