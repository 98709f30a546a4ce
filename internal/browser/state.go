// Package browser holds the certificate browser's application state.
//
// State owns the master list and everything derived from it for display.
// The initial fetch is the only writer of the master list; filter and reset
// read it and replace the displayed rows. Nothing here does I/O or knows how
// it is drawn.
package browser

import (
	"errors"

	"github.com/jask/certbrowser/internal/certificates"
)

// User-facing copy.
const (
	MsgNotFound    = "Error: 404 not found"
	MsgFetchFailed = "Error al obtener los datos: "
	MsgNoResults   = "Su búsqueda no coincide con ninguna certificación."
	MsgNeedFilter  = "Debe ingresar al menos un filtro."
)

// Row is one rendered table line.
type Row struct {
	ID   int
	Name string
	Type string
}

// State is the widget model. The zero value is ready to use.
type State struct {
	master []certificates.Record
	loaded bool
	rows   []Row

	Loading           bool
	ErrorVisible      bool
	ErrorText         string
	ValidationVisible bool
	ResetVisible      bool
}

// FilterOutcome reports what ApplyFilters did.
type FilterOutcome int

const (
	// FilterRejected means both inputs were empty; nothing changed except the
	// validation message.
	FilterRejected FilterOutcome = iota
	// FilterApplied means the displayed rows were replaced by the subset.
	FilterApplied
)

// BeginFetch shows the loading indicator.
func (s *State) BeginFetch() {
	s.Loading = true
}

// FinishFetch records the fetch outcome and always hides the loading
// indicator. Only the first call may set the master list.
func (s *State) FinishFetch(records []certificates.Record, err error) {
	defer func() { s.Loading = false }()

	if s.loaded {
		return
	}
	if err != nil {
		s.showError(ErrorText(err))
		return
	}
	s.loaded = true
	s.master = make([]certificates.Record, len(records))
	copy(s.master, records)
	s.Render(s.master)
}

// Loaded reports whether a fetch has populated the master list.
func (s *State) Loaded() bool { return s.loaded }

// Master returns a copy of the master list, or nil when no fetch succeeded.
func (s *State) Master() []certificates.Record {
	if !s.loaded {
		return nil
	}
	out := make([]certificates.Record, len(s.master))
	copy(out, s.master)
	return out
}

// Rows returns the currently displayed rows.
func (s *State) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Render hides the error panel, clears the table and fills it with records
// in order. An empty input leaves the table empty and shows the no-results
// message.
func (s *State) Render(records []certificates.Record) {
	s.hideError()
	s.rows = s.rows[:0]

	if len(records) == 0 {
		s.showError(MsgNoResults)
		return
	}
	for _, r := range records {
		s.rows = append(s.rows, Row{ID: r.ID, Name: r.Name, Type: r.TypeName()})
	}
}

// ApplyFilters narrows the displayed rows to master records matching the
// raw inputs. Callers clear their inputs when the outcome is FilterApplied.
func (s *State) ApplyFilters(name, typ string) FilterOutcome {
	f := certificates.NewFilter(name, typ)
	if f.IsEmpty() {
		s.ValidationVisible = true
		return FilterRejected
	}
	s.ValidationVisible = false
	s.ResetVisible = true
	s.Render(f.Apply(s.master))
	return FilterApplied
}

// Reset re-renders the full master list and hides the validation message
// and the reset control.
func (s *State) Reset() {
	s.Render(s.master)
	s.ValidationVisible = false
	s.ResetVisible = false
}

func (s *State) showError(msg string) {
	s.ErrorVisible = true
	s.ErrorText = msg
}

func (s *State) hideError() {
	s.ErrorVisible = false
}

// ErrorText maps a fetch error to the message shown in the error panel.
func ErrorText(err error) string {
	var apiErr *certificates.APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, certificates.ErrNotFound):
		return MsgNotFound
	default:
		return MsgFetchFailed + err.Error()
	}
}
