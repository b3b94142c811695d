package errx

import (
	"maps"
	"runtime"
	"slices"
	"strings"
)

// Code is the stable identifier of an error's meaning.
type Code string

// Error is an immutable coded error. Every With* call returns a new value, so the
// package-level sentinels can be shared freely.
//
// Only the code takes part in errors.Is. Message, data and cause describe a single
// occurrence and are meant for logs.
type Error struct {
	code   Code
	text   string
	fields map[string]any
	cause  error
	trace  []uintptr
	system bool
}

// NewBiz creates an error about rejected input. It never records a stack.
func NewBiz(code Code, msg string) *Error {
	return &Error{code: code, text: msg}
}

// NewSys creates an error about a failing dependency. The stack is recorded when a
// cause is first attached.
func NewSys(code Code, msg string) *Error {
	return &Error{code: code, text: msg, system: true}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	parts := make([]string, 0, 3)
	parts = append(parts, string(e.code))
	if e.text != "" {
		parts = append(parts, e.text)
	}
	if e.cause != nil {
		parts = append(parts, e.cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && e != nil && other != nil && other.code == e.code
}

func (e *Error) Code() Code {
	if e == nil {
		return ""
	}
	return e.code
}

func (e *Error) CodeText() string { return string(e.Code()) }

func (e *Error) Msg() string {
	if e == nil {
		return ""
	}
	return e.text
}

// Data returns a copy of the attached key/value context, or nil when there is none.
func (e *Error) Data() map[string]any {
	if e == nil || len(e.fields) == 0 {
		return nil
	}
	return maps.Clone(e.fields)
}

// Stack returns a copy of the recorded program counters.
func (e *Error) Stack() []uintptr {
	if e == nil || len(e.trace) == 0 {
		return nil
	}
	return slices.Clone(e.trace)
}

func (e *Error) WithData(key string, value any) *Error {
	return e.with(func(n *Error) { n.fields[key] = value })
}

func (e *Error) WithDataMap(data map[string]any) *Error {
	return e.with(func(n *Error) { maps.Copy(n.fields, data) })
}

func (e *Error) WithCause(cause error) *Error {
	return e.with(func(n *Error) {
		n.cause = cause
		if n.system && cause != nil && len(n.trace) == 0 && !carriesTrace(cause) {
			n.trace = callers()
		}
	})
}

// with copies e, applies edit to the copy and returns it. fields is always
// allocated on the copy; an empty map is dropped again afterwards.
func (e *Error) with(edit func(*Error)) *Error {
	n := &Error{
		code:   e.code,
		text:   e.text,
		fields: make(map[string]any, len(e.fields)+1),
		cause:  e.cause,
		trace:  slices.Clone(e.trace),
		system: e.system,
	}
	maps.Copy(n.fields, e.fields)
	edit(n)
	if len(n.fields) == 0 {
		n.fields = nil
	}
	return n
}

// callers skips runtime.Callers, callers, the edit closure, with and WithCause.
func callers() []uintptr {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(5, pcs)
	return pcs[:n:n]
}

// carriesTrace walks the cause tree, including errors.Join branches, looking for
// an error that already recorded a stack.
func carriesTrace(err error) bool {
	pending := []error{err}
	for seen := 0; len(pending) > 0 && seen < 64; seen++ {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if cur == nil {
			continue
		}
		if st, ok := cur.(interface{ Stack() []uintptr }); ok && len(st.Stack()) > 0 {
			return true
		}
		switch u := cur.(type) {
		case interface{ Unwrap() []error }:
			pending = append(pending, u.Unwrap()...)
		case interface{ Unwrap() error }:
			pending = append(pending, u.Unwrap())
		}
	}
	return false
}
