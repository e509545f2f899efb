package tui

import (
	"reflect"
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func containsPlain(s, sub string) bool {
	return strings.Contains(xansi.Strip(s), sub)
}

func TestTUIPrompt_StagedAnswersAreUsedOnce(t *testing.T) {
	t.Parallel()
	p := &tuiPrompt{}

	if _, ok := p.AskText("q", "init"); ok {
		t.Fatalf("unstaged AskText should cancel")
	}
	p.stageText("hello", true)
	if got, ok := p.AskText("q", "init"); !ok || got != "hello" {
		t.Fatalf("AskText = %q, %v", got, ok)
	}
	if _, ok := p.AskText("q", "init"); ok {
		t.Fatalf("staged answer should be consumed")
	}

	if p.Confirm("sure?") {
		t.Fatalf("unstaged Confirm should decline")
	}
	p.stageConfirm(true)
	if !p.Confirm("sure?") {
		t.Fatalf("staged yes ignored")
	}
}

func TestTUIPrompt_Drain(t *testing.T) {
	t.Parallel()
	p := &tuiPrompt{}
	p.Notify("a")
	p.Notify("b")
	if got := p.drain(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("drain = %v", got)
	}
	if got := p.drain(); len(got) != 0 {
		t.Fatalf("second drain = %v", got)
	}
}
