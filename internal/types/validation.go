package types

import (
	"regexp"

	"github.com/historial/historial-client/internal/errors"
)

var digits1to20 = regexp.MustCompile(`^[0-9]{1,20}$`)

// ValidateCredential checks a login credential: a non-empty digit string of
// at most 20 characters. Field names the offending input in the error.
func ValidateCredential(field, value string) error {
	if value == "" {
		return errors.Validationf("%s is required", field)
	}
	if !digits1to20.MatchString(value) {
		return errors.Validationf("%s must be a digit string (1-20 digits)", field)
	}
	return nil
}

// ValidateDraft checks the mandatory fields of an activity draft before it is
// sent to the backend. Empty-field rejections never reach the wire.
func ValidateDraft(d ActivityDraft) error {
	if !d.Kind.Valid() {
		return errors.Validationf("tipo %q is not a valid activity kind", string(d.Kind))
	}
	if !d.Category.Valid() {
		return errors.Validationf("categoria %q is not a valid category", string(d.Category))
	}
	if d.Equipment == "" {
		return errors.Validationf("equipo is required")
	}
	if !d.Shift.Valid() {
		return errors.Validationf("turno %q is not a valid shift code", string(d.Shift))
	}
	if d.Description == "" {
		return errors.Validationf("descripcion is required")
	}
	if d.Technician == "" {
		return errors.Validationf("tecnico is required")
	}
	if d.NumFicha == "" {
		return errors.Validationf("numFicha is required")
	}
	return nil
}

// ValidateUserForm checks the mandatory fields of an account form.
// Cedula is required on creation; update call sites may pass it empty to
// leave the stored secret untouched, so it is checked by the caller.
func ValidateUserForm(f UserForm) error {
	if err := ValidateCredential("numFicha", f.NumFicha); err != nil {
		return err
	}
	if f.GivenName == "" {
		return errors.Validationf("nombre is required")
	}
	if f.FamilyName == "" {
		return errors.Validationf("apellido is required")
	}
	if f.Role != RoleAdmin && f.Role != RoleUser {
		return errors.Validationf("role %q is not a valid role", string(f.Role))
	}
	return nil
}
