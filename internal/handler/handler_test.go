package handler

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/markup-fmt/markup-fmt/internal/loc"
)

func TestNewHandlerHasNoWarningsInitially(t *testing.T) {
	h := NewHandler("<div></div>", "f.html")
	assert.Assert(t, !h.HasWarnings())
	assert.Equal(t, len(h.Warnings()), 0)
}

func TestAppendWarningInfoHintAccumulate(t *testing.T) {
	h := NewHandler("<div></div>", "f.html")
	h.AppendWarning(errors.New("w1"))
	h.AppendInfo(errors.New("i1"))
	h.AppendHint(errors.New("h1"))

	assert.Assert(t, h.HasWarnings())
	assert.Equal(t, len(h.Warnings()), 1)

	diags := h.Diagnostics()
	assert.Equal(t, len(diags), 3)
	assert.Equal(t, diags[0].Text, "w1")
	assert.Equal(t, diags[0].Severity, int(loc.WarningType))
	assert.Equal(t, diags[1].Text, "i1")
	assert.Equal(t, diags[1].Severity, int(loc.InformationType))
	assert.Equal(t, diags[2].Text, "h1")
	assert.Equal(t, diags[2].Severity, int(loc.HintType))
}

func TestWarningWithRangeTranslatesToLineColumn(t *testing.T) {
	src := "line one\nline two\nline three"
	h := NewHandler(src, "f.html")

	// byte offset 9 is the start of "line two" (second line, column 1).
	h.AppendWarning(&loc.ErrorWithRange{
		Text:  "unexpected token",
		Range: loc.Range{Loc: loc.Loc{Start: 9}, Len: 4},
		Kind:  loc.UnexpectedChar,
	})

	msgs := h.Warnings()
	assert.Equal(t, len(msgs), 1)
	assert.Assert(t, msgs[0].Location != nil)
	assert.Equal(t, msgs[0].Location.File, "f.html")
	assert.Equal(t, msgs[0].Location.Line, 2)
	assert.Equal(t, msgs[0].Location.Column, 1)
	assert.Equal(t, msgs[0].Location.Length, 4)
}

func TestFormatForHumans(t *testing.T) {
	msgs := []loc.DiagnosticMessage{
		{Text: "no location"},
		{Text: "with location", Location: &loc.DiagnosticLocation{File: "f.html", Line: 3, Column: 5}},
	}
	out := FormatForHumans(msgs)
	assert.Equal(t, out, "no location\nf.html:3:5: with location\n")
}
