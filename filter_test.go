package client

import (
	"testing"
)

func sampleRecords() []Activity {
	return []Activity{
		{Kind: KindFalla, Category: CategoryZonaCaliente, Equipment: "T-12", Description: "fuga de vapor"},
		{Kind: KindRutina, Category: CategoryTaller, Equipment: "T-99", Description: "inspección semanal"},
		{Kind: KindTrabajoTaller, Category: CategoryTaller, Equipment: "Compresor-3", Description: "cambio de filtro"},
	}
}

func TestFilterActivities_ZeroFilterIsIdentity(t *testing.T) {
	t.Parallel()
	records := sampleRecords()

	for _, f := range []ActivityFilter{
		{},
		{Kind: KindAll},
		{Kind: KindAll, Search: ""},
	} {
		got := FilterActivities(records, f)
		if len(got) != len(records) {
			t.Fatalf("filter %+v dropped records: %d != %d", f, len(got), len(records))
		}
		for i := range got {
			if got[i].Equipment != records[i].Equipment {
				t.Fatalf("filter %+v reordered records", f)
			}
		}
	}
}

func TestFilterActivities_ByKind(t *testing.T) {
	t.Parallel()
	got := FilterActivities(sampleRecords(), ActivityFilter{Kind: KindFalla})
	if len(got) != 1 || got[0].Equipment != "T-12" {
		t.Fatalf("kind filter: %+v", got)
	}
}

func TestFilterActivities_SearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	records := sampleRecords()

	for _, search := range []string{"t-99", "T-99", "INSPECCIÓN"} {
		got := FilterActivities(records, ActivityFilter{Search: search})
		if len(got) != 1 || got[0].Kind != KindRutina {
			t.Fatalf("search %q: %+v", search, got)
		}
	}
}

func TestFilterActivities_Conjunction(t *testing.T) {
	t.Parallel()
	records := sampleRecords()

	// Both criteria must hold: kind matches record 0, search matches record 1.
	got := FilterActivities(records, ActivityFilter{Kind: KindFalla, Search: "inspección"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}

	got = FilterActivities(records, ActivityFilter{Kind: KindFalla, Search: "fuga"})
	if len(got) != 1 || got[0].Equipment != "T-12" {
		t.Fatalf("conjunction: %+v", got)
	}
}

func TestFilterActivities_Idempotent(t *testing.T) {
	t.Parallel()
	f := ActivityFilter{Kind: KindTrabajoTaller, Search: "filtro"}
	once := FilterActivities(sampleRecords(), f)
	twice := FilterActivities(once, f)
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d != %d", len(once), len(twice))
	}
}

func TestFilterActivities_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	records := sampleRecords()
	_ = FilterActivities(records, ActivityFilter{Kind: KindFalla})
	if records[1].Kind != KindRutina || len(records) != 3 {
		t.Fatalf("input mutated: %+v", records)
	}
}

func TestFilterUsers(t *testing.T) {
	t.Parallel()
	accounts := []UserAccount{
		{NumFicha: "1001", GivenName: "Ana", FamilyName: "Pérez", Role: RoleAdmin},
		{NumFicha: "1002", GivenName: "Luis", FamilyName: "Mora", Role: RoleUser},
		{NumFicha: "2001", GivenName: "Marta", FamilyName: "Anaya", Role: RoleUser},
	}

	got := FilterUsers(accounts, UserFilter{Role: RoleUser})
	if len(got) != 2 || got[0].NumFicha != "1002" {
		t.Fatalf("role filter: %+v", got)
	}

	// Search spans given name, family name and ficha.
	got = FilterUsers(accounts, UserFilter{Search: "ana"})
	if len(got) != 2 {
		t.Fatalf("search matches Ana and Anaya: %+v", got)
	}
	got = FilterUsers(accounts, UserFilter{Search: "2001"})
	if len(got) != 1 || got[0].GivenName != "Marta" {
		t.Fatalf("ficha search: %+v", got)
	}

	got = FilterUsers(accounts, UserFilter{Role: RoleUser, Search: "ana"})
	if len(got) != 1 || got[0].FamilyName != "Anaya" {
		t.Fatalf("conjunction: %+v", got)
	}
}
