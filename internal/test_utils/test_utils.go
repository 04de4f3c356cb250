// Package test_utils holds snapshot-testing helpers for _test.go files
// (no test in this module imports it): golden snapshots via go-snaps, an ANSI-colored
// diff for mismatch output, and a Dedent for readable fixture literals.
// Adapted from the teacher's own internal/test_utils/test_utils.go,
// which this module follows for its test style (spec section 6's
// tooling is outside the core; the test harness is not), with the
// output-kind table narrowed to markupfmt's own output shapes (formatted
// markup, AST JSON dumps) instead of the teacher's JS/JSX/CSS targets,
// and ANSIDiff now rendering a real line diff via github.com/pkg/diff
// instead of go-cmp's struct-diff output, since test comparisons here
// are almost always "expected formatted text" vs "actual formatted
// text", not arbitrary Go values.
package test_utils

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/lithammer/dedent"
	"github.com/pkg/diff"
)

func RemoveNewlines(input string) string {
	return strings.ReplaceAll(input, "\n", "")
}

func Dedent(input string) string {
	return dedent.Dedent( // removes any leading whitespace
		strings.ReplaceAll( // compress linebreaks to 1 or 2 lines max
			strings.TrimLeft(
				strings.TrimRight(input, " \n\r"), // remove any trailing whitespace
				" \t\r\n"),                        // remove leading whitespace
			"\n\n\n", "\n\n"),
	)
}

// ANSIDiff renders a colorized unified diff between expected and actual,
// empty when they're equal.
func ANSIDiff(expected, actual string) string {
	if expected == actual {
		return ""
	}
	var buf strings.Builder
	if err := diff.Text("expected", "actual", expected, actual, &buf); err != nil {
		return err.Error()
	}
	escapeCode := func(code int) string {
		return "\x1b[" + itoa(code) + "m"
	}
	lines := strings.Split(buf.String(), "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "-"):
			lines[i] = escapeCode(31) + s + escapeCode(0)
		case strings.HasPrefix(s, "+"):
			lines[i] = escapeCode(32) + s + escapeCode(0)
		}
	}
	return strings.Join(lines, "\n")
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// Removes unsupported characters from the test case name, because it will be used as name for the snapshot
func RedactTestName(testCaseName string) string {
	snapshotName := strings.ReplaceAll(testCaseName, "#", "_")
	snapshotName = strings.ReplaceAll(snapshotName, "<", "_")
	snapshotName = strings.ReplaceAll(snapshotName, ">", "_")
	snapshotName = strings.ReplaceAll(snapshotName, ")", "_")
	snapshotName = strings.ReplaceAll(snapshotName, "(", "_")
	snapshotName = strings.ReplaceAll(snapshotName, ":", "_")
	snapshotName = strings.ReplaceAll(snapshotName, " ", "_")
	snapshotName = strings.ReplaceAll(snapshotName, "#", "_")
	snapshotName = strings.ReplaceAll(snapshotName, "'", "_")
	snapshotName = strings.ReplaceAll(snapshotName, "\"", "_")
	snapshotName = strings.ReplaceAll(snapshotName, "@", "_")
	snapshotName = strings.ReplaceAll(snapshotName, "`", "_")
	snapshotName = strings.ReplaceAll(snapshotName, "+", "_")
	return snapshotName
}

type OutputKind int

const (
	MarkupOutput OutputKind = iota
	ASTOutput
	EmbeddedScriptOutput
	EmbeddedStyleOutput
)

var outputKind = map[OutputKind]string{
	MarkupOutput:         "html",
	ASTOutput:            "json",
	EmbeddedScriptOutput: "js",
	EmbeddedStyleOutput:  "css",
}

type SnapshotOptions struct {
	Testing      *testing.T
	TestCaseName string
	Input        string
	Output       string
	Kind         OutputKind
	FolderName   string
}

// It creates a snapshot for the given test case, the snapshot will include the input and the output of the test case
func MakeSnapshot(options *SnapshotOptions) {
	t := options.Testing
	testCaseName := options.TestCaseName
	input := options.Input
	output := options.Output
	kind := options.Kind

	folderName := "__snapshots__"
	if options.FolderName != "" {
		folderName = options.FolderName
	}
	snapshotName := RedactTestName(testCaseName)

	s := snaps.WithConfig(
		snaps.Filename(snapshotName),
		snaps.Dir(folderName),
	)

	snapshot := "## Input\n\n```\n"
	snapshot += Dedent(input)
	snapshot += "\n```\n\n## Output\n\n"
	snapshot += "```" + outputKind[kind] + "\n"
	snapshot += Dedent(output)
	snapshot += "\n```"

	s.MatchSnapshot(t, snapshot)

}
