// Command markupfmt is the CLI wrapper spec section 6 places outside
// the core: it resolves a language tag per file (by extension, via
// internal/hostconfig's routing table or the built-in defaults),
// reads an optional JSON config file, and calls markupfmt.Format.
//
// Grounded on the pack's github.com/jinterlante1206/AleutianLocal
// cmd/aleutian CLI, the one example repo in the retrieval pack with a
// real multi-command CLI (the teacher's own cmd/astro.go is a wasm
// stub, not a CLI) — same github.com/spf13/cobra root-command-plus-
// flags shape, generalized from its deployment subcommands to this
// module's format/check verbs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/markup-fmt/markup-fmt"
	"github.com/markup-fmt/markup-fmt/internal/ast"
	"github.com/markup-fmt/markup-fmt/internal/astdump"
	"github.com/markup-fmt/markup-fmt/internal/hostconfig"
	"github.com/markup-fmt/markup-fmt/internal/parser"
)

var (
	flagWrite      bool
	flagCheck      bool
	flagConfigPath string
	flagTagName    string
	flagAST        bool
)

var rootCmd = &cobra.Command{
	Use:   "markupfmt [files...]",
	Short: "Format HTML/XML/Vue/Svelte/Astro/Angular/template markup",
	Long: `markupfmt formats markup files in place or to stdout, per the
language tag each file's extension maps to (or -l/--language to force one).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func main() {
	rootCmd.Flags().BoolVarP(&flagWrite, "write", "w", false, "write result back to the source file instead of stdout")
	rootCmd.Flags().BoolVar(&flagCheck, "check", false, "exit nonzero if any file is not already formatted, without writing")
	rootCmd.Flags().StringVarP(&flagConfigPath, "config", "c", "", "path to a host JSON config file (spec section 6 schema)")
	rootCmd.Flags().StringVarP(&flagTagName, "language", "l", "", "force a language tag instead of inferring it from the extension")
	rootCmd.Flags().BoolVar(&flagAST, "ast", false, "dump the parsed AST as JSON instead of formatting")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFormat(cmd *cobra.Command, args []string) error {
	opts := markupfmt.DefaultOptions()
	routes := defaultExtensionRoutes()

	if flagConfigPath != "" {
		data, err := os.ReadFile(flagConfigPath)
		if err != nil {
			return fmt.Errorf("markupfmt: reading config: %w", err)
		}
		decoded, hostRoutes, err := hostconfig.Decode(data)
		if err != nil {
			return err
		}
		opts = decoded
		for ext, tag := range hostRoutes {
			routes[ext] = tag
		}
	}

	var forcedTag markupfmt.LanguageTag
	forced := false
	if flagTagName != "" {
		tag, err := hostconfig.ParseTag(flagTagName)
		if err != nil {
			return err
		}
		forcedTag, forced = tag, true
	}

	unformatted := 0
	for _, path := range args {
		tag := forcedTag
		if !forced {
			resolved, ok := routes[extensionOf(path)]
			if !ok {
				return fmt.Errorf("markupfmt: %s: no language tag for this extension, pass -l", path)
			}
			tag = resolved
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("markupfmt: %w", err)
		}

		if flagAST {
			root, perr := parseOnly(string(src), tag, opts)
			if perr != nil {
				return perr
			}
			out, merr := astdump.Marshal(root)
			if merr != nil {
				return fmt.Errorf("markupfmt: %w", merr)
			}
			fmt.Println(string(out))
			continue
		}

		out, ferr := markupfmt.Format(string(src), tag, opts, nil)
		if ferr != nil {
			return reportFormatError(path, ferr)
		}

		switch {
		case flagCheck:
			if out != string(src) {
				unformatted++
				fmt.Fprintln(os.Stderr, path)
			}
		case flagWrite:
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return fmt.Errorf("markupfmt: %w", err)
			}
		default:
			fmt.Print(out)
		}
	}

	if flagCheck && unformatted > 0 {
		return fmt.Errorf("markupfmt: %d file(s) would be reformatted", unformatted)
	}
	return nil
}

func parseOnly(src string, tag markupfmt.LanguageTag, opts markupfmt.Options) (*ast.Node, error) {
	root, err := parser.Parse(src, tag, parser.ParseOptions{HTMLParseJSExpressions: opts.HTMLParseJSExpressions})
	if err != nil {
		return nil, fmt.Errorf("markupfmt: %w", err)
	}
	return root, nil
}

func reportFormatError(path string, err error) error {
	fmtErr, ok := err.(*markupfmt.FormatError)
	if !ok {
		return fmt.Errorf("%s: %w", path, err)
	}
	if fmtErr.Kind == markupfmt.SyntaxErrorKind {
		return fmt.Errorf("%s: %s", path, fmtErr.Syntax.Error())
	}
	return fmt.Errorf("%s: %s", path, joinLines(fmtErr.External))
}

func joinLines(errs []error) string {
	out := ""
	for i, e := range errs {
		if i > 0 {
			out += "; "
		}
		out += e.Error()
	}
	return out
}

func extensionOf(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func defaultExtensionRoutes() map[string]markupfmt.LanguageTag {
	return map[string]markupfmt.LanguageTag{
		".html":           markupfmt.HTML,
		".htm":            markupfmt.HTML,
		".xml":            markupfmt.XML,
		".vue":            markupfmt.Vue,
		".svelte":         markupfmt.Svelte,
		".astro":          markupfmt.Astro,
		".jinja":          markupfmt.Jinja,
		".jinja2":         markupfmt.Jinja,
		".j2":             markupfmt.Jinja,
		".twig":           markupfmt.Twig,
		".njk":            markupfmt.Nunjucks,
		".vto":            markupfmt.Vento,
		".mustache":       markupfmt.Mustache,
		".hbs":            markupfmt.Handlebars,
		".handlebars":     markupfmt.Handlebars,
	}
}
