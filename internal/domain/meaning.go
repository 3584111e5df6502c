package domain

import (
	"sort"
)

// Meaning is one row of the words table: a single definition of a word in
// one language and part of speech.
type Meaning struct {
	Word         string
	Language     string
	PartOfSpeech string
	Definition   string
}

// WordMap groups lookup results as word → language → part of speech →
// definitions, in insertion order within each definition list.
type WordMap map[string]map[string]map[string][]string

// Group builds a WordMap from flat rows. Definition order within a
// (word, language, pos) bucket follows row order.
func Group(meanings []Meaning) WordMap {
	words := make(WordMap)
	for _, m := range meanings {
		langs, ok := words[m.Word]
		if !ok {
			langs = make(map[string]map[string][]string)
			words[m.Word] = langs
		}
		poses, ok := langs[m.Language]
		if !ok {
			poses = make(map[string][]string)
			langs[m.Language] = poses
		}
		poses[m.PartOfSpeech] = append(poses[m.PartOfSpeech], m.Definition)
	}
	return words
}

// FilterLanguage returns a copy of w containing only the given language.
// Matching is case-insensitive via NormalizeText; the stored language name
// is kept as the key. Words with no definitions in that language are
// dropped entirely.
func (w WordMap) FilterLanguage(language string) WordMap {
	want := NormalizeText(language)
	filtered := make(WordMap)
	for word, langs := range w {
		for lang, poses := range langs {
			if NormalizeText(lang) != want {
				continue
			}
			filtered[word] = map[string]map[string][]string{lang: poses}
		}
	}
	return filtered
}

// Words returns the word keys in sorted order.
func (w WordMap) Words() []string {
	return sortedKeys(w)
}

// Languages returns the language keys for a word in sorted order.
func (w WordMap) Languages(word string) []string {
	return sortedKeys(w[word])
}

// PartsOfSpeech returns the POS keys for a word and language in sorted order.
func (w WordMap) PartsOfSpeech(word, language string) []string {
	return sortedKeys(w[word][language])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
