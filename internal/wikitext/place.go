package wikitext

import (
	"strings"
)

// maxPlaceDepth bounds recursion through "One of <<..>>" compounds.
// Deeper nesting degrades to emitting tokens verbatim.
const maxPlaceDepth = 8

// ParsePlace converts the token list of a place template (everything after
// the template name and leading descriptor arguments) into descriptive prose.
// Each token is classified independently by the first matching rule and
// appends a fragment to the output buffer.
func ParsePlace(tokens []string) string {
	return parsePlace(tokens, 0)
}

func parsePlace(tokens []string, depth int) string {
	var b strings.Builder

	for _, tok := range tokens {
		switch {
		case tok == "ucomm":
			b.WriteString("(Unincorporated Community) ")

		case tok == "CDP" || tok == "cdp":
			b.WriteString("(Census-Designated Place) ")

		case tok == "minor city":
			b.WriteString("(Minor City) ")

		case tok == "electoral division":
			b.WriteString("(Electoral Division) ")

		case strings.HasPrefix(tok, "seat="):
			// Everything after the last '=' is the seat name.
			seat := tok[strings.LastIndex(tok, "=")+1:]
			b.WriteString(" (Seat ")
			b.WriteString(seat)
			b.WriteString(")")

		case strings.HasPrefix(tok, "One of"):
			// "One of <<tokens ...>>" recurses on the inner token list.
			if depth >= maxPlaceDepth {
				b.WriteString(tok)
				b.WriteString(" ")
				continue
			}
			inner := strings.ReplaceAll(tok, "<<", "")
			inner = strings.ReplaceAll(inner, ">>", "")
			b.WriteString(parsePlace(strings.Split(inner, " "), depth+1))

		case strings.HasPrefix(tok, "in ") || tok == "and":
			b.WriteString(tok)
			b.WriteString(" ")

		case strings.HasPrefix(tok, "c/"):
			b.WriteString(strings.TrimPrefix(tok, "c/"))

		case strings.HasPrefix(tok, "cc/"):
			b.WriteString(strings.TrimPrefix(tok, "cc/"))

		case strings.HasPrefix(tok, "s/"):
			b.WriteString(strings.TrimPrefix(tok, "s/"))
			b.WriteString(", ")

		case strings.HasPrefix(tok, "co/"):
			b.WriteString(strings.TrimPrefix(tok, "co/"))
			b.WriteString(", ")

		case strings.HasPrefix(tok, "state/"):
			b.WriteString(titleFirst(strings.TrimPrefix(tok, "state/")))
			b.WriteString(", ")

		case strings.HasPrefix(tok, "city/"):
			b.WriteString(titleFirst(strings.TrimPrefix(tok, "city/")))
			b.WriteString(" , ")

		case strings.HasPrefix(tok, "town/"):
			b.WriteString(titleFirst(strings.TrimPrefix(tok, "town/")))
			b.WriteString(" , ")

		case strings.HasPrefix(tok, "prefecture:"):
			v := strings.TrimPrefix(tok, "prefecture:")
			v = strings.ReplaceAll(v, "Suf/", "")
			b.WriteString(titleFirst(v))
			b.WriteString(" prefecture, ")

		case strings.HasPrefix(tok, "ar:"):
			v := strings.TrimPrefix(tok, "ar:")
			v = strings.ReplaceAll(v, "Suf/", "")
			b.WriteString(titleFirst(v))
			b.WriteString(" Autonomous Region, ")

		default:
			b.WriteString(tok)
			b.WriteString(" ")
		}
	}

	out := strings.TrimRight(b.String(), " \t\n")

	// Adjacent comma-emitting rules leave ",,"; adjacent space-emitting
	// rules leave "  ". Collapse both.
	for strings.Contains(out, ",,") {
		out = strings.ReplaceAll(out, ",,", ",")
	}
	for strings.Contains(out, "  ") {
		out = strings.ReplaceAll(out, "  ", " ")
	}

	return out
}

// titleFirst upper-cases the first character only, ASCII-only.
// Non-ASCII leading characters are left untouched.
func titleFirst(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
