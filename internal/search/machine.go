// Package search implements the search box's state machine as an explicit
// reducer: Apply(state, event) returns the next state plus the effects the
// host must carry out. All ranking, selection, debounce-token and history
// semantics live here, so the machine is testable without a UI host.
package search

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tiendamayor/smartsearch/internal/catalog"
	"github.com/tiendamayor/smartsearch/internal/history"
	"github.com/tiendamayor/smartsearch/internal/nav"
	"github.com/tiendamayor/smartsearch/internal/rank"
)

// DefaultDebounce is the delay between the last keystroke and a ranking
// evaluation.
const DefaultDebounce = 150 * time.Millisecond

// State is the complete value of one search-box instance. It is a plain
// value: Apply returns a new State and never mutates its input's slices in
// place.
type State struct {
	// Query is the raw input text.
	Query string

	// Results is the current ranked candidate list, descending by score.
	Results []rank.Candidate

	// SelectedIndex is in [-1, len(Results)-1]; -1 means no selection.
	SelectedIndex int

	// Pending is true from debounce arm until the evaluation applies.
	Pending bool

	// SuggestionsVisible gates keyboard navigation and the panels.
	SuggestionsVisible bool

	// History is the recent-query log, most recent first.
	History history.Log

	// DebounceToken identifies the only timer whose firing is still
	// current. Re-arming bumps it, so earlier timers become stale.
	DebounceToken uint64
}

// HistoryVisible reports whether the history panel substitutes for the
// result list: short query, non-empty history, panel open.
func (s State) HistoryVisible() bool {
	return queryRunes(s.Query) <= 1 && len(s.History) > 0 && s.SuggestionsVisible
}

// Machine applies events to states. The catalog snapshot is shared and
// read-only; Machine itself holds no per-search mutable state, so one
// Machine can serve any number of State values.
type Machine struct {
	Catalog catalog.Snapshot

	// Debounce, MinQueryRunes, MaxResults and HistorySize fall back to the
	// package defaults when zero.
	Debounce      time.Duration
	MinQueryRunes int
	MaxResults    int
	HistorySize   int
}

// NewState returns the initial state for one search box, seeded with a
// previously persisted history log (nil for none).
func (m Machine) NewState(log history.Log) State {
	return State{SelectedIndex: -1, History: log}
}

// Apply advances the state by one event.
func (m Machine) Apply(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case QueryChanged:
		return m.setQuery(s, ev.Text)

	case Debounced:
		if ev.Token != s.DebounceToken {
			return s, nil // stale timer
		}
		s.Results = rank.RankN(s.Query, m.Catalog, m.MinQueryRunes, m.MaxResults)
		s.Pending = false
		if s.SelectedIndex >= len(s.Results) {
			s.SelectedIndex = len(s.Results) - 1
		}
		return s, nil

	case CursorDown:
		if !s.SuggestionsVisible {
			return s, nil
		}
		if s.SelectedIndex < len(s.Results)-1 {
			s.SelectedIndex++
		}
		return s, nil

	case CursorUp:
		if !s.SuggestionsVisible {
			return s, nil
		}
		if s.SelectedIndex > -1 {
			s.SelectedIndex--
		}
		return s, nil

	case Enter:
		if s.SelectedIndex >= 0 && s.SelectedIndex < len(s.Results) {
			return m.commitProduct(s, s.Results[s.SelectedIndex].Product)
		}
		return m.commitFreeText(s)

	case Escape:
		s.SuggestionsVisible = false
		s.SelectedIndex = -1
		return s, []Effect{Blur{}}

	case OutsideClick:
		// Keeps the query; only the panel closes.
		s.SuggestionsVisible = false
		s.SelectedIndex = -1
		return s, nil

	case HistoryClick:
		if ev.Index < 0 || ev.Index >= len(s.History) {
			return s, nil
		}
		// Copies the text into the query; never commits on its own.
		return m.setQuery(s, s.History[ev.Index])

	case Hover:
		if ev.Index >= 0 && ev.Index < len(s.Results) {
			s.SelectedIndex = ev.Index
		}
		return s, nil

	case Focus:
		if queryRunes(s.Query) > 1 || len(s.History) > 0 {
			s.SuggestionsVisible = true
		}
		return s, nil

	case Commit:
		if ev.Index >= 0 && ev.Index < len(s.Results) {
			return m.commitProduct(s, s.Results[ev.Index].Product)
		}
		return m.commitFreeText(s)
	}

	return s, nil
}

// setQuery applies a new query value: selection resets, panel visibility
// follows the length threshold, and a fresh debounce timer is armed. The
// previous timer's token is invalidated by the bump.
func (m Machine) setQuery(s State, text string) (State, []Effect) {
	s.Query = text
	s.SelectedIndex = -1
	s.SuggestionsVisible = queryRunes(text) > 1
	s.Pending = true
	s.DebounceToken++
	return s, []Effect{ArmDebounce{Token: s.DebounceToken, Delay: m.debounce()}}
}

// commitProduct records the product's title, emits navigation to its
// detail view and resets the box. Exactly one history append, one query
// reset and one navigation emission; the catalog is never touched.
func (m Machine) commitProduct(s State, p catalog.Product) (State, []Effect) {
	s.History = s.History.Push(p.Title, m.HistorySize)
	effects := []Effect{
		SaveHistory{Log: s.History},
		Navigate{Target: nav.ProductDetail(p.Slug)},
	}
	return m.reset(s), effects
}

// commitFreeText records the raw query and emits navigation to the generic
// results view. With an empty query it is a no-op.
func (m Machine) commitFreeText(s State) (State, []Effect) {
	if strings.TrimSpace(s.Query) == "" {
		return s, nil
	}
	text := s.Query
	s.History = s.History.Push(text, m.HistorySize)
	effects := []Effect{
		SaveHistory{Log: s.History},
		Navigate{Target: nav.SearchResults(text)},
	}
	return m.reset(s), effects
}

// reset clears the box after a commit. Bumping the token orphans any
// pending timer so no late evaluation can resurface stale results.
func (m Machine) reset(s State) State {
	s.Query = ""
	s.Results = nil
	s.SelectedIndex = -1
	s.SuggestionsVisible = false
	s.Pending = false
	s.DebounceToken++
	return s
}

func (m Machine) debounce() time.Duration {
	if m.Debounce <= 0 {
		return DefaultDebounce
	}
	return m.Debounce
}

func queryRunes(q string) int {
	return utf8.RuneCountInString(q)
}
