package wikitext

import (
	"strings"
)

// handler expands one parsed template invocation. args[0] is the template
// name. The second return is false when the invocation is malformed (a
// required position is missing) and the caller must keep the original span.
type handler func(args []string) (string, bool)

// handlers is the closed template vocabulary. This is deliberately not a
// general interpreter: full Wikitext semantics need parser functions and Lua
// modules, so the most common templates observed in dump data are
// special-cased and everything else passes through untouched.
var handlers = map[string]handler{
	",":                    literal(","),
	"1":                    titleArg(1),
	"cap":                  titleArg(1),
	"ngd":                  verbatimArg(1),
	"unsupported":          verbatimArg(1),
	"non-gloss definition": verbatimArg(1),
	"gloss":                verbatimArg(1),
	"alternative form of":  prefixArg("Alternative form of ", 2),
	"alt form":             prefixArg("Alternative form of ", 2),
	"ja-romanization of":   prefixArg("Rōmaji transcription of ", 1),
	"sumti":                prefixArg("x", 1),
	"ja-def": func(args []string) (string, bool) {
		v, ok := arg(args, 1)
		return v + ":", ok
	},
	"qualifier": parenArg(1),
	"q":         parenArg(1),
	"lb": func(args []string) (string, bool) {
		if len(args) < 3 {
			return "", false
		}
		var labels []string
		for _, a := range args[2:] {
			if a == "_" {
				continue
			}
			labels = append(labels, a)
		}
		return "(" + strings.Join(labels, ", ") + ")", true
	},
	"c":                        verbatimArg(2),
	"m":                        verbatimArg(2),
	"l":                        verbatimArg(2),
	"w":                        verbatimArg(2),
	"senseid":                  literal(""),
	"alternative case form of": prefixArg("Alternative case form of ", 2),
	"plural of":                prefixArg("Plural of ", 2),
	"infl of":                  prefixArg("Inflected form of ", 2),
	"syn of":                   prefixArg("Synonym of ", 2),
	"synonym of":               prefixArg("Synonym of ", 2),
	"acronym of":               prefixArg("Acronym of ", 2),
	"initialism of":            prefixArg("Initialism of ", 2),
	"abbreviation of":          prefixArg("Abbreviation of ", 2),
	"clipping of":              prefixArg("Clipping of ", 2),
	"surname":                  literal("Surname"),
	"given name":               literal("Given name"),
	"defdate": func(args []string) (string, bool) {
		v, ok := arg(args, 1)
		return "[" + v + "]", ok
	},
	"place": func(args []string) (string, bool) {
		if len(args) < 3 {
			return "", false
		}
		return "(Place) " + ParsePlace(args[2:]), true
	},
	"taxfmt": func(args []string) (string, bool) {
		if len(args) < 2 {
			return "", false
		}
		return strings.Join(args[1:len(args)-1], " "), true
	},
	"alt sp": func(args []string) (string, bool) {
		if len(args) < 4 {
			return "", false
		}
		args[3] = strings.TrimPrefix(args[3], "t=")
		return "Alt spelling of " + args[2] + " " + ParsePlace(args[3:]), true
	},
}

// ExpandTemplate resolves one template invocation. args is the pipe-split
// content of a {{...}} span; args[0] is the template name. The second return
// is false when the name is unrecognized or a required argument position is
// missing, in which case the caller leaves the original span unchanged.
func ExpandTemplate(args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	h, ok := handlers[args[0]]
	if !ok {
		return "", false
	}
	return h(args)
}

// arg returns args[i] with a length check.
func arg(args []string, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	return args[i], true
}

func literal(s string) handler {
	return func([]string) (string, bool) { return s, true }
}

func verbatimArg(i int) handler {
	return func(args []string) (string, bool) { return arg(args, i) }
}

func prefixArg(prefix string, i int) handler {
	return func(args []string) (string, bool) {
		v, ok := arg(args, i)
		return prefix + v, ok
	}
}

func parenArg(i int) handler {
	return func(args []string) (string, bool) {
		v, ok := arg(args, i)
		return "(" + v + ")", ok
	}
}

func titleArg(i int) handler {
	return func(args []string) (string, bool) {
		v, ok := arg(args, i)
		return titleFirst(v), ok
	}
}
