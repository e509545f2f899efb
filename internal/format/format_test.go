package format

import (
	"bytes"
	"testing"
)

type sample struct {
	Date  string   `json:"date"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
	Extra *string  `json:"extra_note"`
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := Write(&buf, Envelope{Data: sample{Date: "2025-03-10", Count: 2}}, "", false); err != nil {
		t.Fatal(err)
	}
	want := `{"data":{"date":"2025-03-10","count":2,"tags":null,"extra_note":null}}` + "\n"
	if buf.String() != want {
		t.Fatalf("got %q\nwant %q", buf.String(), want)
	}
}

func TestWrite_EDN(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	v := sample{Date: "2025-03-10", Count: 1234567890123, Tags: []string{"a", "b"}}
	if err := Write(&buf, v, "EDN", false); err != nil {
		t.Fatal(err)
	}
	want := `{:count 1234567890123 :date "2025-03-10" :extra-note nil :tags ["a" "b"]}` + "\n"
	if buf.String() != want {
		t.Fatalf("got %q\nwant %q", buf.String(), want)
	}
}

func TestWrite_EDNPretty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []any{}, "b": []int{1}}, true); err != nil {
		t.Fatal(err)
	}
	want := "{\n  :a []\n  :b [\n    1\n  ]\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q\nwant %q", buf.String(), want)
	}
}

func TestNormalize_RejectsUnknown(t *testing.T) {
	t.Parallel()
	if _, err := Normalize("yaml"); err == nil {
		t.Fatalf("expected error")
	}
	if got, _ := Normalize(""); got != "json" {
		t.Fatalf("default = %q", got)
	}
}
