package tui

// tuiPrompt answers the presenter's questions from modals the user has
// already completed. The TUI stages an answer, then calls the presenter
// synchronously, so the presenter never waits on terminal input.
type tuiPrompt struct {
	text      string
	textOK    bool
	hasText   bool
	confirm   bool
	hasAnswer bool

	notices []string
}

func (p *tuiPrompt) stageText(text string, ok bool) {
	p.text, p.textOK, p.hasText = text, ok, true
}

func (p *tuiPrompt) stageConfirm(yes bool) {
	p.confirm, p.hasAnswer = yes, true
}

// AskText returns the staged answer once. Without one the question counts
// as cancelled.
func (p *tuiPrompt) AskText(_ string, initial string) (string, bool) {
	if !p.hasText {
		return initial, false
	}
	p.hasText = false
	return p.text, p.textOK
}

func (p *tuiPrompt) Confirm(string) bool {
	if !p.hasAnswer {
		return false
	}
	p.hasAnswer = false
	return p.confirm
}

func (p *tuiPrompt) Notify(msg string) {
	p.notices = append(p.notices, msg)
}

// drain returns and clears queued notifications.
func (p *tuiPrompt) drain() []string {
	out := p.notices
	p.notices = nil
	return out
}
