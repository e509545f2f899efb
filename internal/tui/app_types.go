package tui

import (
	"context"
	"time"

	"monthcal/internal/app"
	"monthcal/internal/model"
	"monthcal/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalAdd
	modalOverlay
	modalEditTitle
	modalConfirmDelete
	modalAlert
	modalHelp
)

// Add-form fields.
const (
	formFieldDate = iota
	formFieldTitle
)

// Cell geometry: one line for the day number, two event lines, one "+N more" line.
const (
	cellLines  = 4
	minCellW   = 6
	gridHeadH  = 3 // month title, blank, weekday row
	footerH    = 1
	weekStride = cellLines + 1
)

type appModel struct {
	ctx    context.Context
	store  store.Store
	ctrl   *app.Controller
	prompt *tuiPrompt
	keys   keyMap
	now    func() time.Time

	width  int
	height int

	// cursor is the focused date; target indexes the focused cell's
	// TargetIDs (-1: the day itself).
	cursor string
	target int

	modal modalKind
	// modalBelow is restored when an alert or help modal is dismissed.
	modalBelow modalKind

	formDate  textinput.Model
	formTitle textinput.Model
	formFocus int

	editInput textinput.Model
	editKey   model.EventKey

	overlayIdx   int
	confirmFocus confirmModalFocus

	alerts []string
}
