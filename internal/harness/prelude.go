package harness

import (
	"fmt"

	"morph/script"
)

// Dialect preludes defining the field_transformer capability. Fixed at
// compile time, prepended newline-separated to every custom snippet, so the
// capability is declared once and reused by any number of snippets.

// GoPrelude is the goscript dialect. Custom code calls the pre-bound
// field_transformer value, e.g.
//
//	output := field_transformer.ToUpper(input)
//
// The combined script is evaluated as a statement list, so the prelude must
// stay in statement form: no top-level type or func declarations, the
// capability is a value of funcs instead.
const GoPrelude = `import "strings"

field_transformer := struct {
	ToUpper func(string) string
	ToLower func(string) string
	Trim    func(string) string
}{
	ToUpper: strings.ToUpper,
	ToLower: strings.ToLower,
	Trim:    strings.TrimSpace,
}`

// ShellPrelude is the shell dialect. Bindings arrive as environment
// variables, e.g.
//
//	output="$(field_transformer_to_upper "$input")"
//
// trim peels one blank at a time; negated character classes ([!...]) are
// off-limits, the interpreter cannot convert them to a valid pattern.
const ShellPrelude = `field_transformer_to_upper() { printf '%s' "${1^^}"; }
field_transformer_to_lower() { printf '%s' "${1,,}"; }
field_transformer_trim() {
	v="$1"
	tab="$(printf '\t')"
	nl="$(printf '\nx')"
	nl="${nl%x}"
	while :; do
		case "$v" in
		" "* | "$tab"* | "$nl"*) v="${v#?}" ;;
		*" " | *"$tab" | *"$nl") v="${v%?}" ;;
		*) break ;;
		esac
	done
	printf '%s' "$v"
}`

// NewFieldTransformer builds a harness around eng with the prelude matching
// its dialect.
func NewFieldTransformer(eng script.Engine) (*Harness, error) {
	switch eng.Name() {
	case "goscript":
		return New(eng, GoPrelude), nil
	case "shell":
		return New(eng, ShellPrelude), nil
	default:
		return nil, fmt.Errorf("harness: no field transformer prelude for engine %q", eng.Name())
	}
}
