package logx

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Bounds for what an error report carries.
const (
	maxChainLinks  = 20
	maxStackFrames = 32
)

// coded is satisfied by errx.Error; logx does not import errx so any error type
// exposing the same accessors is reported the same way.
type coded interface {
	CodeText() string
	Msg() string
	Data() map[string]any
}

type traced interface {
	Stack() []uintptr
}

// ErrorLog is an error flattened into loggable values.
type ErrorLog struct {
	Error      string
	Code       string
	Msg        string
	Data       map[string]any
	CauseChain []string
	Origin     string
	Stack      string
}

// BuildErrorLog flattens err. Code, message and data come from the outermost coded
// error; the stack comes from the innermost error that recorded one.
func BuildErrorLog(err error) ErrorLog {
	var out ErrorLog
	if err == nil {
		return out
	}
	out.Error = err.Error()

	var trace []uintptr
	links := unwrapAll(err)
	for _, link := range links {
		if c, ok := link.(coded); ok && out.Code == "" {
			out.Code, out.Msg, out.Data = c.CodeText(), c.Msg(), c.Data()
		}
		if t, ok := link.(traced); ok {
			if pcs := t.Stack(); len(pcs) > 0 {
				trace = pcs
			}
		}
	}
	for _, link := range links[1:] {
		out.CauseChain = append(out.CauseChain, fmt.Sprintf("%T: %v", link, link))
	}
	out.Origin, out.Stack = renderFrames(trace)
	return out
}

// fields renders the non-empty parts of l as zap fields.
func (l ErrorLog) fields() []zap.Field {
	fs := []zap.Field{zap.String("error", l.Error)}
	if l.Code != "" {
		fs = append(fs, zap.String("error_code", l.Code))
	}
	if len(l.Data) > 0 {
		fs = append(fs, zap.Any("error_data", l.Data))
	}
	if len(l.CauseChain) > 0 {
		fs = append(fs, zap.Strings("cause_chain", l.CauseChain))
	}
	if l.Origin != "" {
		fs = append(fs, zap.String("origin_caller", l.Origin), zap.String("stack_origin", l.Stack))
	}
	return fs
}

// ReportError logs err at ERROR level as "<action> failed".
func ReportError(l Logger, action string, err error, fields ...zap.Field) {
	if l == nil || err == nil {
		return
	}
	fs := append([]zap.Field{zap.String("action", action)}, BuildErrorLog(err).fields()...)
	l.Error(action+" failed", append(fs, fields...)...)
}

// unwrapAll lists err followed by its causes, depth first, flattening errors.Join.
func unwrapAll(err error) []error {
	var out []error
	var visit func(error)
	visit = func(e error) {
		if e == nil || len(out) > maxChainLinks {
			return
		}
		out = append(out, e)
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, branch := range u.Unwrap() {
				visit(branch)
			}
		default:
			visit(errors.Unwrap(e))
		}
	}
	visit(err)
	return out
}

// renderFrames returns the first frame and up to maxStackFrames frames, one per line.
func renderFrames(pcs []uintptr) (origin, stack string) {
	if len(pcs) == 0 {
		return "", ""
	}
	lines := make([]string, 0, maxStackFrames)
	frames := runtime.CallersFrames(pcs)
	for more := true; more && len(lines) < maxStackFrames; {
		var f runtime.Frame
		f, more = frames.Next()
		if f.Function == "" && f.File == "" {
			break
		}
		lines = append(lines, fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line))
	}
	if len(lines) == 0 {
		return "", ""
	}
	return lines[0], strings.Join(lines, "\n")
}
