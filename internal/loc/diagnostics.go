package loc

import "fmt"

// DiagnosticSeverity classifies a DiagnosticMessage the way an editor would.
type DiagnosticSeverity int

const (
	ErrorType DiagnosticSeverity = iota
	WarningType
	InformationType
	HintType
)

// DiagnosticCode distinguishes the fixed set of SyntaxError kinds named in
// the spec (section 4.2 "Failure mode") from the External-callback
// aggregate error (section 7).
type DiagnosticCode int

const (
	ERROR                          DiagnosticCode = 1000
	ERROR_UNEXPECTED_CHAR          DiagnosticCode = 1001
	ERROR_UNMATCHED_END_TAG        DiagnosticCode = 1002
	ERROR_UNTERMINATED_COMMENT     DiagnosticCode = 1003
	ERROR_UNTERMINATED_CDATA       DiagnosticCode = 1004
	ERROR_UNTERMINATED_STRING      DiagnosticCode = 1005
	ERROR_INVALID_DIRECTIVE_NAME   DiagnosticCode = 1006
	ERROR_INVALID_ATTRIBUTE_FORM   DiagnosticCode = 1007
	ERROR_UNCLOSED_TEMPLATE_BLOCK  DiagnosticCode = 1008
	ERROR_UNEXPECTED_END_OF_INPUT  DiagnosticCode = 1009
	WARNING                        DiagnosticCode = 2000
	WARNING_UNCLOSED_HTML_TAG      DiagnosticCode = 2001
	WARNING_IGNORED_DIRECTIVE      DiagnosticCode = 2002
	WARNING_EXTERNAL_FORMAT_FAILED DiagnosticCode = 2003
	INFO                           DiagnosticCode = 3000
	HINT                           DiagnosticCode = 4000
)

// DiagnosticLocation is a diagnostic's position translated to line/column,
// ready for display to a human.
type DiagnosticLocation struct {
	File   string
	Line   int
	Column int
	Length int
}

// DiagnosticMessage is what Handler.Diagnostics returns: a severity, text,
// optional source location, and optional fix-it suggestion.
type DiagnosticMessage struct {
	Code       DiagnosticCode
	Text       string
	Suggestion string
	Severity   int
	Location   *DiagnosticLocation
}

// SyntaxErrorKind is the fixed tag set a SyntaxError carries, per spec
// section 4.2 and the FormatError union in section 6.
type SyntaxErrorKind int

const (
	UnexpectedChar SyntaxErrorKind = iota
	UnmatchedEndTag
	UnterminatedComment
	UnterminatedCDATA
	UnterminatedString
	InvalidDirectiveName
	UnclosedBlock
	InvalidAttributeForm
	UnexpectedEndOfInput
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case UnexpectedChar:
		return "UnexpectedChar"
	case UnmatchedEndTag:
		return "UnmatchedEndTag"
	case UnterminatedComment:
		return "UnterminatedComment"
	case UnterminatedCDATA:
		return "UnterminatedCDATA"
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidDirectiveName:
		return "InvalidDirectiveName"
	case UnclosedBlock:
		return "UnclosedBlock"
	case InvalidAttributeForm:
		return "InvalidAttributeForm"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	}
	return "Unknown"
}

// ErrorWithRange is an error carrying the source range it pertains to, so
// Handler can translate it to a line/column DiagnosticMessage.
type ErrorWithRange struct {
	Text       string
	Suggestion string
	Range      Range
	Kind       SyntaxErrorKind
}

func (e *ErrorWithRange) Error() string {
	return e.Text
}

func (e *ErrorWithRange) ToMessage(location *DiagnosticLocation) DiagnosticMessage {
	return DiagnosticMessage{
		Text:       e.Text,
		Suggestion: e.Suggestion,
		Location:   location,
	}
}

// SyntaxError is the parse-failure half of FormatError (spec section 6/7):
// parsing could not continue, and no partial output is produced.
type SyntaxError struct {
	Kind  SyntaxErrorKind
	Span  Span
	Range Range
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s at byte %d", e.Kind, e.Span.Start)
}
