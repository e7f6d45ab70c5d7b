package vocabulary_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/moesim/internal/vocabulary"
)

func Test_Address_And_Name_Round_Trip_For_Every_Entry(t *testing.T) {
	t.Parallel()

	all := vocabulary.All()
	if len(all) != 128 {
		t.Fatalf("len(All()) = %d, want 128", len(all))
	}

	for want, name := range all {
		got, ok := vocabulary.Address(name)
		if !ok {
			t.Fatalf("Address(%q) not found", name)
		}

		if got != want {
			t.Fatalf("Address(%q) = %d, want %d", name, got, want)
		}

		roundTrip, ok := vocabulary.Name(got)
		if !ok || roundTrip != name {
			t.Fatalf("Name(%d) = %q,%v, want %q,true", got, roundTrip, ok, name)
		}
	}
}

func Test_Address_Is_Case_And_Space_Insensitive(t *testing.T) {
	t.Parallel()

	got, ok := vocabulary.Address("  Rosa  ")
	if !ok || got != 0 {
		t.Fatalf("Address(\"  Rosa  \") = %d,%v, want 0,true", got, ok)
	}
}

func Test_Address_Unknown_Name_Not_Found(t *testing.T) {
	t.Parallel()

	if _, ok := vocabulary.Address("not-a-flower"); ok {
		t.Fatalf("Address(unknown) reported found")
	}
}

func Test_Name_Out_Of_Range_Not_Found(t *testing.T) {
	t.Parallel()

	if _, ok := vocabulary.Name(-1); ok {
		t.Fatalf("Name(-1) reported found")
	}

	if _, ok := vocabulary.Name(128); ok {
		t.Fatalf("Name(128) reported found")
	}
}

func Test_All_Entries_Are_Unique(t *testing.T) {
	t.Parallel()

	all := vocabulary.All()
	seen := make(map[string]bool, len(all))

	for _, n := range all {
		if seen[n] {
			t.Fatalf("duplicate catalog entry %q", n)
		}

		seen[n] = true
	}
}

func Test_All_Returns_A_Copy(t *testing.T) {
	t.Parallel()

	first := vocabulary.All()
	first[0] = "mutated"

	second := vocabulary.All()
	if diff := cmp.Diff(first, second); diff == "" {
		t.Fatalf("mutating the result of All() leaked into the catalog")
	}
}
