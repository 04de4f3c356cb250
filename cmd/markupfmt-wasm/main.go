// Command markupfmt-wasm exposes markupfmt.Format to a JS host over
// syscall/js, the wasm boundary spec section 6 puts outside the core
// ("The wrapper and CLI are outside the core"). Adapted from the
// teacher's cmd/astro-wasm/astro-wasm.go Transform() JS entry point:
// same js.FuncOf registration and vert value-marshalling idiom, wired
// to markupfmt.Format instead of Astro-to-JSX compilation.
//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/norunners/vert"

	"github.com/markup-fmt/markup-fmt"
	"github.com/markup-fmt/markup-fmt/internal/hostconfig"
)

func main() {
	js.Global().Set("__markupfmt_format", js.FuncOf(format))
	<-make(chan struct{})
}

func jsString(v js.Value) string {
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

// format(source string, languageTag string, configJSON string,
// embedFormatter JS function) -> {code: string} | {error: string}
func format(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return vert.ValueOf(map[string]interface{}{"error": "markupfmt: expected (source, languageTag, configJSON[, embedFormatter])"})
	}
	src := jsString(args[0])
	tagName := jsString(args[1])
	configJSON := jsString(args[2])

	tag, err := hostconfig.ParseTag(tagName)
	if err != nil {
		return vert.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	opts := markupfmt.DefaultOptions()
	if configJSON != "" {
		decoded, _, decodeErr := hostconfig.Decode([]byte(configJSON))
		if decodeErr != nil {
			return vert.ValueOf(map[string]interface{}{"error": decodeErr.Error()})
		}
		opts = decoded
	}

	var embed markupfmt.EmbedFormatter
	if len(args) > 3 && args[3].Type() == js.TypeFunction {
		jsCallback := args[3]
		embed = func(code string, d markupfmt.EmbedDescriptor) (string, error) {
			result := jsCallback.Invoke(code, vert.ValueOf(map[string]interface{}{
				"lang":      d.Lang,
				"parentTag": d.ParentTag,
				"indent":    d.Indent,
			}))
			if result.Get("error").Truthy() {
				return "", errString(jsString(result.Get("error")))
			}
			return jsString(result.Get("code")), nil
		}
	}

	out, formatErr := markupfmt.Format(src, tag, opts, embed)
	if formatErr != nil {
		return vert.ValueOf(map[string]interface{}{"error": formatErr.Error()})
	}
	return vert.ValueOf(map[string]interface{}{"code": out})
}

type simpleError string

func (e simpleError) Error() string { return string(e) }

func errString(s string) error { return simpleError(s) }
