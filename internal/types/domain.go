package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ------------------------------
// Enumerations
// ------------------------------

// Kind is the activity classification.
type Kind string

const (
	KindFalla         Kind = "FALLA"
	KindRutina        Kind = "RUTINA"
	KindTrabajoTaller Kind = "TRABAJO_TALLER"

	// KindAll is a filter-only value matching every kind. Never sent to the
	// backend as a record field.
	KindAll Kind = "ALL"
)

// Valid reports whether k is a storable activity kind.
func (k Kind) Valid() bool {
	switch k {
	case KindFalla, KindRutina, KindTrabajoTaller:
		return true
	}
	return false
}

// Category is the operational zone classification of an activity.
type Category string

const (
	CategoryZonaCaliente Category = "ZONA_CALIENTE"
	CategoryZonaFria     Category = "ZONA_FRIA"
	CategoryTaller       Category = "TALLER"
	CategoryOtros        Category = "OTROS"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryZonaCaliente, CategoryZonaFria, CategoryTaller, CategoryOtros:
		return true
	}
	return false
}

// Shift is one of the four work-shift codes.
type Shift string

const (
	Shift1 Shift = "1"
	Shift2 Shift = "2"
	Shift3 Shift = "3"
	ShiftZ Shift = "Z"
)

// Valid reports whether s is a known shift code.
func (s Shift) Valid() bool {
	switch s {
	case Shift1, Shift2, Shift3, ShiftZ:
		return true
	}
	return false
}

// Role is the canonical account role. The backend flows disagree on the wire
// form (login returns a lowercase "tipo", the user service uses ADMIN/USUARIO);
// this type normalizes on decode and emits the user-service form on encode.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole normalizes any wire variant to the canonical Role. Unknown values
// map to RoleUser (least privilege) with ok=false.
func ParseRole(s string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADMIN":
		return RoleAdmin, true
	case "USER", "USUARIO":
		return RoleUser, true
	}
	return RoleUser, false
}

// wireRole is the enumerant the user service stores.
func (r Role) wireRole() string {
	if r == RoleAdmin {
		return "ADMIN"
	}
	return "USUARIO"
}

// MarshalJSON emits the user-service enumerant.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wireRole())
}

// UnmarshalJSON accepts every role spelling the backend has used.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, _ := ParseRole(s)
	*r = parsed
	return nil
}

// ------------------------------
// Wire time handling
// ------------------------------

// LocalTime decodes the backend's zone-less LocalDateTime serialization
// ("2006-01-02T15:04:05", optionally with fractional seconds). RFC 3339 is
// accepted too for forward compatibility.
type LocalTime struct {
	time.Time
}

const localTimeLayout = "2006-01-02T15:04:05"

// UnmarshalJSON implements json.Unmarshaler.
func (t *LocalTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{localTimeLayout, "2006-01-02T15:04:05.999999999", time.RFC3339} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

// MarshalJSON implements json.Marshaler.
func (t LocalTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(localTimeLayout))
}

// ------------------------------
// Core domain entities
// ------------------------------

// Activity is one maintenance-logbook record. ID and CreatedAt are
// server-assigned and absent until the record is persisted.
type Activity struct {
	ID          *int64     `json:"id,omitempty"`
	Kind        Kind       `json:"tipo"`
	Category    Category   `json:"categoria"`
	Equipment   string     `json:"equipo"`
	Technician  string     `json:"tecnico"`
	NumFicha    string     `json:"numFicha"`
	Shift       Shift      `json:"turno"`
	Description string     `json:"descripcion"`
	CreatedAt   *LocalTime `json:"createdAt,omitempty"`
}

// UserAccount is an operator account as managed by the auth service.
// Cedula is write-only: list responses omit it, admin edits may set it.
type UserAccount struct {
	ID         *int64     `json:"id,omitempty"`
	NumFicha   string     `json:"numFicha"`
	Cedula     string     `json:"cedula,omitempty"`
	GivenName  string     `json:"nombre"`
	FamilyName string     `json:"apellido"`
	Role       Role       `json:"role"`
	Active     *bool      `json:"isActive,omitempty"`
	CreatedAt  *LocalTime `json:"createdAt,omitempty"`
}
