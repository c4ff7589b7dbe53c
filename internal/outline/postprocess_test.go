package outline

import "testing"

func TestFinalizeDedupFirstWins(t *testing.T) {
	entries := []Entry{
		{Level: "H1", Text: "Introduction", Page: 1},
		{Level: "H1", Text: "Introduction", Page: 4},
		{Level: "H1", Text: "Methods", Page: 2},
	}
	got := finalize("", entries)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Text != "Introduction" || got[0].Page != 0 {
		t.Errorf("expected first occurrence at page 0, got %+v", got[0])
	}
}

func TestFinalizeTitleSubsumption(t *testing.T) {
	entries := []Entry{
		{Level: "H1", Text: "Report", Page: 1},
		{Level: "H1", Text: "Conclusions", Page: 3},
	}
	got := finalize("Annual Report 2024", entries)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Text != "Conclusions" {
		t.Errorf("expected title fragment dropped, got %+v", got)
	}
}

func TestFinalizeNoSubsumptionWithEmptyTitle(t *testing.T) {
	entries := []Entry{{Level: "H1", Text: "Report", Page: 1}}
	got := finalize("", entries)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
}

func TestFinalizeSortsByPageThenLevelString(t *testing.T) {
	entries := []Entry{
		{Level: "H2", Text: "Later", Page: 3},
		{Level: "H1", Text: "Deep", Page: 3},
		{Level: "H1", Text: "First", Page: 1},
	}
	got := finalize("", entries)
	want := []string{"First", "Deep", "Later"}
	for i, text := range want {
		if got[i].Text != text {
			t.Errorf("position %d: expected %q, got %q", i, text, got[i].Text)
		}
	}
}

func TestFinalizeLevelStringOrderQuirk(t *testing.T) {
	// Level compares lexicographically: "H10" sorts before "H2".
	// Preserved behavior, not a bug to fix.
	entries := []Entry{
		{Level: "H2", Text: "Shallow", Page: 1},
		{Level: "H10", Text: "VeryDeep", Page: 1},
	}
	got := finalize("", entries)
	if got[0].Level != "H10" || got[1].Level != "H2" {
		t.Errorf("expected lexicographic level order, got %+v", got)
	}
}

func TestFinalizePageNormalization(t *testing.T) {
	got := finalize("", []Entry{{Level: "H1", Text: "Start", Page: 1}})
	if got[0].Page != 0 {
		t.Errorf("internal page 1 must map to output page 0, got %d", got[0].Page)
	}
}

func TestFinalizeEmptyInput(t *testing.T) {
	got := finalize("Anything", nil)
	if got == nil {
		t.Fatal("expected a non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("expected no entries, got %d", len(got))
	}
}
