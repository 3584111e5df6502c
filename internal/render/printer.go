// Package render prints grouped lookup results to a terminal with
// colorized section headers and word-wrapped definitions.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"github.com/heartmarshall/define/internal/domain"
)

const (
	initialIndent    = "    "
	subsequentIndent = "      "
)

// Printer renders a WordMap. Output layout follows the classic dict-client
// shape: language header, word with its parts of speech, then numbered,
// wrapped definitions per part of speech.
type Printer struct {
	out   io.Writer
	width int

	langColor *color.Color
	wordColor *color.Color
	posColor  *color.Color
}

// New creates a Printer writing to out, wrapping at width columns.
// When enableColor is false all styling is disabled (NO_COLOR and
// non-terminal output are additionally honored by the color package itself).
func New(out io.Writer, width int, enableColor bool) *Printer {
	langColor := color.New(color.FgGreen, color.Bold)
	wordColor := color.New(color.Bold)
	posColor := color.New(color.FgWhite)

	if !enableColor {
		langColor.DisableColor()
		wordColor.DisableColor()
		posColor.DisableColor()
	}

	return &Printer{
		out:       out,
		width:     width,
		langColor: langColor,
		wordColor: wordColor,
		posColor:  posColor,
	}
}

// Print renders all words in sorted order.
func (p *Printer) Print(words domain.WordMap) {
	for _, word := range words.Words() {
		for _, lang := range words.Languages(word) {
			p.printLanguage(words, word, lang)
		}
	}
}

// PrintNoResults reports an empty lookup.
func (p *Printer) PrintNoResults() {
	fmt.Fprintln(p.out, "No results found.")
}

func (p *Printer) printLanguage(words domain.WordMap, word, lang string) {
	poses := words.PartsOfSpeech(word, lang)

	fmt.Fprintf(p.out, "%s\n\n", p.langColor.Sprint(lang))
	fmt.Fprintf(p.out, "  %s (%s)\n\n", p.wordColor.Sprint(word), strings.Join(poses, ", "))

	for _, pos := range poses {
		fmt.Fprintf(p.out, "  %s\n", p.posColor.Sprint(pos))
		for i, def := range words[word][lang][pos] {
			fmt.Fprintf(p.out, "%s\n\n", p.fill(fmt.Sprintf("%d. %s", i+1, def)))
		}
	}
}

// fill wraps text at the printer width with a hanging indent: the first
// line gets initialIndent, continuation lines get subsequentIndent.
func (p *Printer) fill(text string) string {
	limit := p.width - len(subsequentIndent)
	if limit < 1 {
		limit = 1
	}

	lines := strings.Split(wordwrap.String(text, limit), "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = initialIndent + line
		} else {
			lines[i] = subsequentIndent + line
		}
	}
	return strings.Join(lines, "\n")
}
