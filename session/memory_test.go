package session

import "testing"

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	m := NewMemoryStore()
	if m.Restore() != nil {
		t.Fatal("new store should be empty")
	}
	if err := m.Save(Session{NumFicha: "1", Token: "t"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	s := m.Restore()
	if s == nil || s.NumFicha != "1" {
		t.Fatalf("unexpected session %+v", s)
	}
	// Restore returns a copy; mutating it must not touch the store.
	s.Token = "changed"
	if m.Restore().Token != "t" {
		t.Fatal("restore leaked internal state")
	}
	if err := m.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if m.Restore() != nil {
		t.Fatal("store not empty after clear")
	}
}

func TestSessionFullName(t *testing.T) {
	t.Parallel()
	cases := []struct {
		given, family, want string
	}{
		{"Ana", "Pérez", "Ana Pérez"},
		{"Ana", "", "Ana"},
		{"", "Pérez", "Pérez"},
		{"", "", ""},
	}
	for _, c := range cases {
		got := Session{GivenName: c.given, FamilyName: c.family}.FullName()
		if got != c.want {
			t.Fatalf("FullName(%q,%q) = %q, want %q", c.given, c.family, got, c.want)
		}
	}
}
