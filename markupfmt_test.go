package markupfmt

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

func TestFormatVoidElement(t *testing.T) {
	out, err := Format(`<br>`, HTML, DefaultOptions(), nil)
	assert.NilError(t, err)
	assert.Equal(t, out, "<br />\n")
}

func TestFormatSingleAttrSameLine(t *testing.T) {
	out, err := Format(`<div class="a"></div>`, HTML, DefaultOptions(), nil)
	assert.NilError(t, err)
	assert.Equal(t, out, `<div class="a"></div>`+"\n")
}

func TestFormatRawTextWithoutEmbed(t *testing.T) {
	out, err := Format(`<script>const a=1;</script>`, HTML, DefaultOptions(), nil)
	assert.NilError(t, err)
	assert.Equal(t, out, "<script>const a=1;</script>\n")
}

func TestFormatInvokesEmbedCallback(t *testing.T) {
	embed := func(code string, d EmbedDescriptor) (string, error) {
		assert.Equal(t, d.Lang, "js")
		return "const a = 1;", nil
	}
	out, err := Format(`<script>const a=1;</script>`, HTML, DefaultOptions(), embed)
	assert.NilError(t, err)
	assert.Equal(t, out, "<script>\nconst a = 1;\n</script>\n")
}

func TestFormatEmbedFailureDiscardsOutput(t *testing.T) {
	boom := errors.New("boom")
	embed := func(code string, d EmbedDescriptor) (string, error) {
		return "", boom
	}
	out, err := Format(`<script>const a=1;</script>`, HTML, DefaultOptions(), embed)
	assert.Equal(t, out, "")
	assert.Assert(t, err != nil)

	fe, ok := err.(*FormatError)
	assert.Assert(t, ok)
	assert.Equal(t, fe.Kind, ExternalErrorKind)
	assert.Equal(t, len(fe.External), 1)
	assert.ErrorContains(t, fe.External[0], "boom")
}

func TestFormatSyntaxErrorOnUnterminatedScript(t *testing.T) {
	_, err := Format(`<script>var a = 1;`, HTML, DefaultOptions(), nil)
	assert.Assert(t, err != nil)

	fe, ok := err.(*FormatError)
	assert.Assert(t, ok)
	assert.Equal(t, fe.Kind, SyntaxErrorKind)
	assert.Assert(t, fe.Syntax != nil)
}

func TestFormatIgnoreFileDirectiveReturnsSourceVerbatim(t *testing.T) {
	src := "<!-- markup-fmt-ignore-file -->\n<div   class=\"a\"></div>"
	out, err := Format(src, HTML, DefaultOptions(), nil)
	assert.NilError(t, err)
	assert.Equal(t, out, src)
}
