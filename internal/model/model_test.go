package model

import "testing"

func TestEventKey_StringParseRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []EventKey{
		{Date: "2025-03-10", Title: "Standup"},
		{Date: "2025-03-10", Title: "a|b"},
		{Date: "2024-02-29", Title: ""},
	}
	for _, k := range tests {
		got, ok := ParseEventKey(k.String())
		if !ok {
			t.Fatalf("ParseEventKey(%q): not ok", k.String())
		}
		if got != k {
			t.Fatalf("ParseEventKey(%q) = %#v, want %#v", k.String(), got, k)
		}
	}

	if _, ok := ParseEventKey("no-separator"); ok {
		t.Fatalf("expected missing separator to fail")
	}
	if _, ok := ParseEventKey("|title"); ok {
		t.Fatalf("expected empty date to fail")
	}
}

func TestEventKey_MatchesIsCaseSensitive(t *testing.T) {
	t.Parallel()

	k := EventKey{Date: "2025-03-10", Title: "Standup"}
	if !k.Matches(Event{Date: "2025-03-10", Title: "Standup"}) {
		t.Fatalf("expected exact match")
	}
	if k.Matches(Event{Date: "2025-03-10", Title: "standup"}) {
		t.Fatalf("expected different casing not to match")
	}
	if k.Matches(Event{Date: "2025-03-11", Title: "Standup"}) {
		t.Fatalf("expected different date not to match")
	}
}
