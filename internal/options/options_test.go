package options

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestDefaultOptions(t *testing.T) {
	o := Default()
	assert.Equal(t, o.PrintWidth, 80)
	assert.Equal(t, o.IndentWidth, 2)
	assert.Equal(t, o.LineBreak, LF)
	assert.Equal(t, o.Quotes, DoubleQuote)
	assert.Equal(t, o.WhitespaceSensitivity, WhitespaceCSS)
	assert.Equal(t, o.SingleAttrSameLine, true)
}

func TestTriStateBool(t *testing.T) {
	assert.Equal(t, Unset.Bool(true), true)
	assert.Equal(t, Unset.Bool(false), false)
	assert.Equal(t, True.Bool(false), true)
	assert.Equal(t, False.Bool(true), false)
}

func TestFromBool(t *testing.T) {
	assert.Equal(t, FromBool(true), True)
	assert.Equal(t, FromBool(false), False)
}

func TestLineBreakString(t *testing.T) {
	assert.Equal(t, LF.String(), "\n")
	assert.Equal(t, CRLF.String(), "\r\n")
}

func TestScriptStyleIndentFor(t *testing.T) {
	s := ScriptStyleIndent{Base: false, Vue: True}
	assert.Equal(t, s.For("vue"), true)
	assert.Equal(t, s.For("html"), false)
	assert.Equal(t, s.For("svelte"), false)
}

func TestVSlotOverridesResolve(t *testing.T) {
	v := VSlotOverrides{Base: VSlotStyleLong, Component: VSlotStyleShort, Named: VSlotStyleVSlot}
	assert.Equal(t, v.Resolve(true, false, false), VSlotStyleShort)
	assert.Equal(t, v.Resolve(false, false, true), VSlotStyleVSlot)
	assert.Equal(t, v.Resolve(false, false, false), VSlotStyleLong)
}

func TestComponentWhitespaceSensitivityResolve(t *testing.T) {
	o := Default()
	o.WhitespaceSensitivity = WhitespaceCSS
	o.ComponentWhitespaceSensitivity = True
	assert.Equal(t, o.EffectiveWhitespaceSensitivity(true), WhitespaceIgnore)
	assert.Equal(t, o.EffectiveWhitespaceSensitivity(false), WhitespaceCSS)
}
