// Package proceduretest provides a recording procedures.Gateway for tests.
package proceduretest

import (
	"context"
	"fmt"
	"sync"

	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	"hackathon-catalog.backend/internal/infrastructure/procedures"
)

// Call is one recorded gateway call.
type Call struct {
	Procedure string
	Params    []procedures.Param
}

// Param returns the value of the named parameter, or nil.
func (c Call) Param(name string) any {
	for _, p := range c.Params {
		if p.Name == name {
			return p.Value
		}
	}
	return nil
}

// Handler answers one procedure call.
type Handler func(params []procedures.Param) ([]procedures.Row, error)

// Recorder records every call in order and answers with the handler
// registered for the procedure. Procedures without a handler succeed with no
// rows.
type Recorder struct {
	mu       sync.Mutex
	calls    []Call
	handlers map[string]Handler
}

func NewRecorder() *Recorder {
	return &Recorder{handlers: map[string]Handler{}}
}

func (r *Recorder) On(procedure string, h Handler) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[procedure] = h
	return r
}

// Returns makes procedure answer with rows.
func (r *Recorder) Returns(procedure string, rows ...procedures.Row) *Recorder {
	return r.On(procedure, func([]procedures.Param) ([]procedures.Row, error) { return rows, nil })
}

// Fails makes procedure report a persistence failure.
func (r *Recorder) Fails(procedure string) *Recorder {
	return r.On(procedure, func([]procedures.Param) ([]procedures.Row, error) { return nil, Failure(procedure) })
}

func (r *Recorder) Call(_ context.Context, procedure string, params ...procedures.Param) ([]procedures.Row, error) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Procedure: procedure, Params: append([]procedures.Param(nil), params...)})
	h := r.handlers[procedure]
	r.mu.Unlock()

	if h == nil {
		return []procedures.Row{}, nil
	}
	return h(params)
}

// Calls returns a copy of the recorded calls in issue order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Procedures returns the recorded procedure names in issue order.
func (r *Recorder) Procedures() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Procedure
	}
	return out
}

// CallsTo returns the recorded calls to one procedure.
func (r *Recorder) CallsTo(procedure string) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Procedure == procedure {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// Failure builds the error a failing gateway call returns.
func Failure(procedure string) error {
	return fmt.Errorf("call %s: %w", procedure, domainerrors.ErrPersistenceFailure)
}
