package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// stdioPrompt answers presenter questions from flags when given, otherwise
// from a line of input. Notifications go to stderr.
type stdioPrompt struct {
	in  *bufio.Reader
	out io.Writer

	// answer and assumeYes come from flags (--to, --yes).
	answer    *string
	assumeYes bool

	lastText string
	notices  []string
}

func newStdioPrompt(in io.Reader, out io.Writer) *stdioPrompt {
	return &stdioPrompt{in: bufio.NewReader(in), out: out}
}

func (p *stdioPrompt) AskText(prompt, initial string) (string, bool) {
	if p.answer != nil {
		p.lastText = *p.answer
		return *p.answer, true
	}
	fmt.Fprintf(p.out, "%s [%s] ", prompt, initial)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		line = initial
	}
	p.lastText = line
	return line, true
}

func (p *stdioPrompt) Confirm(question string) bool {
	if p.assumeYes {
		return true
	}
	fmt.Fprintf(p.out, "%s [y/N] ", question)
	line, _ := p.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// Notify queues msg. Commands that fail return the error instead, so
// queued notices are only printed by flush on paths that keep going.
func (p *stdioPrompt) Notify(msg string) {
	p.notices = append(p.notices, msg)
}

func (p *stdioPrompt) flush(w io.Writer) {
	for _, n := range p.notices {
		fmt.Fprintln(w, n)
	}
	p.notices = nil
}
