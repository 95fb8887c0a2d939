package query

import (
	"testing"

	"github.com/Angiecode225/TerraNobis-sub001/internal/ledger"
	"github.com/Angiecode225/TerraNobis-sub001/internal/store"
)

func TestProjectsIdentity(t *testing.T) {
	records := store.SeedProjects()

	got := Projects(records, "", FilterAll)
	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
	for i := range records {
		if got[i].Id != records[i].Id {
			t.Errorf("order changed at %d: got %q, want %q", i, got[i].Id, records[i].Id)
		}
	}
}

func TestProjectsIdempotent(t *testing.T) {
	records := store.SeedProjects()

	once := Projects(records, "bio", FilterActive)
	twice := Projects(once, "bio", FilterActive)
	if len(once) != len(twice) {
		t.Fatalf("got %d records after refilter, want %d", len(twice), len(once))
	}
	for i := range once {
		if once[i].Id != twice[i].Id {
			t.Errorf("refilter changed record %d: %q vs %q", i, once[i].Id, twice[i].Id)
		}
	}
}

func TestProjectsSearch(t *testing.T) {
	records := store.SeedProjects()

	tests := []struct {
		name    string
		term    string
		filter  Filter
		wantIds []string
	}{
		{"location match", "Thiès", FilterAll, []string{"1"}},
		{"case insensitive", "thiès", FilterAll, []string{"1"}},
		{"farmer match", "Fatou", FilterAll, []string{"3"}},
		{"title match", "Élevage", FilterAll, []string{"2"}},
		{"status filter", "", FilterActive, []string{"1", "3"}},
		{"completed filter", "", FilterCompleted, []string{"2"}},
		{"search and status", "Kaolack", FilterActive, []string{"3"}},
		{"high return", "", FilterHighReturn, []string{"2"}},
		{"no match", "Dakar", FilterAll, []string{}},
		{"unknown filter", "", Filter("bogus"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Projects(records, tt.term, tt.filter)
			if len(got) != len(tt.wantIds) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.wantIds))
			}
			for i, id := range tt.wantIds {
				if got[i].Id != id {
					t.Errorf("record %d id = %q, want %q", i, got[i].Id, id)
				}
			}
		})
	}
}

func TestInvestmentsFilter(t *testing.T) {
	records := ledger.SeedInvestments()

	tests := []struct {
		name    string
		term    string
		filter  Filter
		wantIds []string
	}{
		{"all", "", FilterAll, []string{"1", "2", "3"}},
		{"active", "", FilterActive, []string{"1", "2"}},
		{"completed", "", FilterCompleted, []string{"3"}},
		{"high return", "", FilterHighReturn, []string{"2"}},
		{"search", "Fatick", FilterAll, []string{"2"}},
		{"empty result", "Dakar", FilterHighReturn, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Investments(records, tt.term, tt.filter)
			if len(got) != len(tt.wantIds) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.wantIds))
			}
			for i, id := range tt.wantIds {
				if got[i].Id != id {
					t.Errorf("record %d id = %q, want %q", i, got[i].Id, id)
				}
			}
		})
	}
}

func TestFilterIsValid(t *testing.T) {
	tests := []struct {
		filter Filter
		want   bool
	}{
		{FilterAll, true},
		{FilterPending, true},
		{FilterActive, true},
		{FilterCompleted, true},
		{FilterCancelled, true},
		{FilterHighReturn, true},
		{Filter(""), false},
		{Filter("high-risk"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			if got := tt.filter.IsValid(); got != tt.want {
				t.Errorf("Filter(%q).IsValid() = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}
