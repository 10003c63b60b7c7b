package types

import (
	"strings"
	"testing"
)

func TestValidateCredential(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in string
		ok bool
	}{
		{"1", true}, {"12345", true}, {"12345678901234567890", true},
		{"", false}, {"123456789012345678901", false}, {"12a45", false}, {" 123", false}, {"-123", false},
	}
	for _, c := range cases {
		err := ValidateCredential("numFicha", c.in)
		if c.ok && err != nil {
			t.Fatalf("expected ok for %q, got %v", c.in, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("expected error for %q", c.in)
		}
	}
}

func validDraft() ActivityDraft {
	return ActivityDraft{
		Kind:        KindFalla,
		Category:    CategoryZonaCaliente,
		Equipment:   "T-12",
		Technician:  "Ana Pérez",
		NumFicha:    "12345",
		Shift:       Shift1,
		Description: "bomba con fuga",
	}
}

func TestValidateDraft(t *testing.T) {
	t.Parallel()
	if err := ValidateDraft(validDraft()); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*ActivityDraft)
		field  string
	}{
		{"missing kind", func(d *ActivityDraft) { d.Kind = "" }, "tipo"},
		{"kind ALL not storable", func(d *ActivityDraft) { d.Kind = KindAll }, "tipo"},
		{"bad category", func(d *ActivityDraft) { d.Category = "PATIO" }, "categoria"},
		{"empty equipment", func(d *ActivityDraft) { d.Equipment = "" }, "equipo"},
		{"bad shift", func(d *ActivityDraft) { d.Shift = "4" }, "turno"},
		{"empty description", func(d *ActivityDraft) { d.Description = "" }, "descripcion"},
		{"empty technician", func(d *ActivityDraft) { d.Technician = "" }, "tecnico"},
		{"empty ficha", func(d *ActivityDraft) { d.NumFicha = "" }, "numFicha"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := validDraft()
			tc.mutate(&d)
			err := ValidateDraft(d)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("error %q does not name field %q", err, tc.field)
			}
		})
	}
}

func TestValidateUserForm(t *testing.T) {
	t.Parallel()
	valid := UserForm{NumFicha: "12345", Cedula: "999", GivenName: "Ana", FamilyName: "Pérez", Role: RoleUser}
	if err := ValidateUserForm(valid); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	bad := valid
	bad.Role = "SUPERVISOR"
	if err := ValidateUserForm(bad); err == nil {
		t.Fatal("unknown role accepted")
	}
	bad = valid
	bad.GivenName = ""
	if err := ValidateUserForm(bad); err == nil {
		t.Fatal("empty nombre accepted")
	}
	bad = valid
	bad.NumFicha = "abc"
	if err := ValidateUserForm(bad); err == nil {
		t.Fatal("non-digit ficha accepted")
	}
}
