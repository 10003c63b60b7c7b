package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"ADMIN", RoleAdmin, true},
		{"admin", RoleAdmin, true},
		{"USER", RoleUser, true},
		{"user", RoleUser, true},
		{"USUARIO", RoleUser, true},
		{"usuario", RoleUser, true},
		{" admin ", RoleAdmin, true},
		{"supervisor", RoleUser, false}, // unknown → least privilege
		{"", RoleUser, false},
	}
	for _, c := range cases {
		got, ok := ParseRole(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("ParseRole(%q) = (%v,%v), want (%v,%v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestRole_WireRoundTrip(t *testing.T) {
	t.Parallel()
	// Encode emits the user-service enumerants.
	raw, err := json.Marshal(RoleUser)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"USUARIO"` {
		t.Fatalf("RoleUser encoded as %s", raw)
	}
	raw, _ = json.Marshal(RoleAdmin)
	if string(raw) != `"ADMIN"` {
		t.Fatalf("RoleAdmin encoded as %s", raw)
	}

	// Decode normalizes every spelling back to canonical.
	var r Role
	if err := json.Unmarshal([]byte(`"usuario"`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r != RoleUser {
		t.Fatalf("decoded %v, want RoleUser", r)
	}
}

func TestLocalTime_Decode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want time.Time
	}{
		{`"2025-03-01T14:30:00"`, time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC)},
		{`"2025-03-01T14:30:00.123456"`, time.Date(2025, 3, 1, 14, 30, 0, 123456000, time.UTC)},
		{`"2025-03-01T14:30:00Z"`, time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		var lt LocalTime
		if err := json.Unmarshal([]byte(c.in), &lt); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if !lt.Time.Equal(c.want) {
			t.Fatalf("decoded %s as %v, want %v", c.in, lt.Time, c.want)
		}
	}

	var lt LocalTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &lt); err == nil {
		t.Fatal("expected error for unsupported timestamp")
	}
}

func TestActivity_DecodeWireShape(t *testing.T) {
	t.Parallel()
	raw := `{
		"id": 7,
		"tipo": "FALLA",
		"categoria": "ZONA_CALIENTE",
		"equipo": "T-12",
		"tecnico": "Ana Pérez",
		"numFicha": "12345",
		"turno": "2",
		"descripcion": "fuga de aceite",
		"createdAt": "2025-03-01T08:00:00"
	}`
	var a Activity
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.ID == nil || *a.ID != 7 {
		t.Fatalf("id = %v", a.ID)
	}
	if a.Kind != KindFalla || a.Category != CategoryZonaCaliente || a.Shift != Shift2 {
		t.Fatalf("enums decoded wrong: %+v", a)
	}
	if a.CreatedAt == nil || a.CreatedAt.Hour() != 8 {
		t.Fatalf("createdAt = %v", a.CreatedAt)
	}
}
