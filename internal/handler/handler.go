// Package handler accumulates diagnostics produced while parsing and
// formatting a single source text, and translates byte offsets to
// line/column positions for display. Adapted from the teacher's
// internal/handler.Handler; the JS/wasm error marshalling half lives at
// the wasm boundary (cmd/markupfmt-wasm) instead of here, since the core
// never needs to produce a JS value.
package handler

import (
	"errors"
	"strings"

	"github.com/markup-fmt/markup-fmt/internal/loc"
)

// Handler collects warnings raised while parsing/formatting sourcetext.
// Parse failures are not collected here: they abort the call immediately
// and are returned as a loc.SyntaxError (spec section 7).
type Handler struct {
	sourcetext  string
	filename    string
	lineOffsets []int
	warnings    []error
	infos       []error
	hints       []error
}

// NewHandler builds a Handler for sourcetext, precomputing the line-start
// offset table used to translate byte positions to line/column.
func NewHandler(sourcetext string, filename string) *Handler {
	return &Handler{
		sourcetext:  sourcetext,
		filename:    filename,
		lineOffsets: lineOffsetTable(sourcetext),
	}
}

func lineOffsetTable(src string) []int {
	offsets := []int{0}
	for i, c := range []byte(src) {
		if c == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// lineAndColumn returns the 1-based line and column for byte offset start.
func (h *Handler) lineAndColumn(start int) (line, column int) {
	// binary search for the last line offset <= start
	lo, hi := 0, len(h.lineOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if h.lineOffsets[mid] <= start {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, start - h.lineOffsets[lo] + 1
}

func (h *Handler) HasWarnings() bool {
	return len(h.warnings) > 0
}

func (h *Handler) AppendWarning(err error) {
	h.warnings = append(h.warnings, err)
}

func (h *Handler) AppendInfo(err error) {
	h.infos = append(h.infos, err)
}

func (h *Handler) AppendHint(err error) {
	h.hints = append(h.hints, err)
}

func (h *Handler) Warnings() []loc.DiagnosticMessage {
	return h.toMessages(h.warnings, loc.WarningType)
}

func (h *Handler) Diagnostics() []loc.DiagnosticMessage {
	msgs := h.toMessages(h.warnings, loc.WarningType)
	msgs = append(msgs, h.toMessages(h.infos, loc.InformationType)...)
	msgs = append(msgs, h.toMessages(h.hints, loc.HintType)...)
	return msgs
}

func (h *Handler) toMessages(errs []error, severity loc.DiagnosticSeverity) []loc.DiagnosticMessage {
	msgs := make([]loc.DiagnosticMessage, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			msgs = append(msgs, h.errorToMessage(severity, err))
		}
	}
	return msgs
}

func (h *Handler) errorToMessage(severity loc.DiagnosticSeverity, err error) loc.DiagnosticMessage {
	var rangedError *loc.ErrorWithRange
	if errors.As(err, &rangedError) {
		line, column := h.lineAndColumn(rangedError.Range.Loc.Start)
		location := &loc.DiagnosticLocation{
			File:   h.filename,
			Line:   line,
			Column: column,
			Length: rangedError.Range.Len,
		}
		message := rangedError.ToMessage(location)
		message.Severity = int(severity)
		return message
	}
	return loc.DiagnosticMessage{Text: err.Error(), Severity: int(severity)}
}

// FormatForHumans renders msgs as "filename:line:column: text" lines, the
// shape a CLI boundary prints to stderr.
func FormatForHumans(msgs []loc.DiagnosticMessage) string {
	var b strings.Builder
	for _, m := range msgs {
		if m.Location != nil {
			b.WriteString(m.Location.File)
			b.WriteByte(':')
			b.WriteString(itoa(m.Location.Line))
			b.WriteByte(':')
			b.WriteString(itoa(m.Location.Column))
			b.WriteString(": ")
		}
		b.WriteString(m.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
