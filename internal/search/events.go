package search

import (
	"time"

	"github.com/tiendamayor/smartsearch/internal/history"
	"github.com/tiendamayor/smartsearch/internal/nav"
)

// Event is an input delivered to the state machine by the host UI.
type Event interface{ isEvent() }

// QueryChanged carries the full new text of the search input.
type QueryChanged struct{ Text string }

// Debounced fires when the debounce timer armed with Token expires. A
// token that no longer matches the state's current token is stale and
// ignored.
type Debounced struct{ Token uint64 }

// CursorUp moves the selection up one row, saturating at "no selection".
type CursorUp struct{}

// CursorDown moves the selection down one row, saturating at the last row.
type CursorDown struct{}

// Enter commits the current selection, or the raw query as free text.
type Enter struct{}

// Escape hides the suggestions, clears the selection and blurs the input.
type Escape struct{}

// OutsideClick is a pointer event outside the input and suggestion panel.
type OutsideClick struct{}

// HistoryClick selects a history entry by index, copying its text into the
// query without committing.
type HistoryClick struct{ Index int }

// Hover previews a result row as the selection.
type Hover struct{ Index int }

// Focus is the input gaining keyboard focus.
type Focus struct{}

// Commit is a direct click/tap on a result row.
type Commit struct{ Index int }

func (QueryChanged) isEvent() {}
func (Debounced) isEvent()    {}
func (CursorUp) isEvent()     {}
func (CursorDown) isEvent()   {}
func (Enter) isEvent()        {}
func (Escape) isEvent()       {}
func (OutsideClick) isEvent() {}
func (HistoryClick) isEvent() {}
func (Hover) isEvent()        {}
func (Focus) isEvent()        {}
func (Commit) isEvent()       {}

// Effect is an instruction to the host that Apply cannot perform itself.
// Effects are the machine's only outputs besides the returned state.
type Effect interface{ isEffect() }

// ArmDebounce asks the host to deliver Debounced{Token} after Delay. Each
// ArmDebounce supersedes the previous one: the token it carries is the
// only one the machine will still accept.
type ArmDebounce struct {
	Token uint64
	Delay time.Duration
}

// Navigate asks the host's router to go to Target. Fire-and-forget.
type Navigate struct{ Target nav.Target }

// Blur asks the host to drop keyboard focus from the input.
type Blur struct{}

// SaveHistory asks the host to persist the updated history log.
type SaveHistory struct{ Log history.Log }

func (ArmDebounce) isEffect() {}
func (Navigate) isEffect()    {}
func (Blur) isEffect()        {}
func (SaveHistory) isEffect() {}
