package wikitext

import (
	"testing"
)

func TestExpandTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		handled bool
	}{
		{
			name:    "comma literal",
			args:    []string{","},
			want:    ",",
			handled: true,
		},
		{
			name:    "cap title-cases first char only",
			args:    []string{"cap", "dog breed"},
			want:    "Dog breed",
			handled: true,
		},
		{
			name:    "numeric one behaves like cap",
			args:    []string{"1", "obsolete"},
			want:    "Obsolete",
			handled: true,
		},
		{
			name:    "non-gloss definition verbatim",
			args:    []string{"non-gloss definition", "Used to express surprise."},
			want:    "Used to express surprise.",
			handled: true,
		},
		{
			name:    "gloss verbatim",
			args:    []string{"gloss", "a sense note"},
			want:    "a sense note",
			handled: true,
		},
		{
			name:    "qualifier parenthesized",
			args:    []string{"qualifier", "archaic"},
			want:    "(archaic)",
			handled: true,
		},
		{
			name:    "q parenthesized",
			args:    []string{"q", "informal"},
			want:    "(informal)",
			handled: true,
		},
		{
			name:    "lb drops underscore filler",
			args:    []string{"lb", "en", "_", "dated"},
			want:    "(dated)",
			handled: true,
		},
		{
			name:    "lb joins multiple labels",
			args:    []string{"lb", "en", "transitive", "rare"},
			want:    "(transitive, rare)",
			handled: true,
		},
		{
			name:    "alternative form of",
			args:    []string{"alternative form of", "en", "colour"},
			want:    "Alternative form of colour",
			handled: true,
		},
		{
			name:    "alt form shares behavior",
			args:    []string{"alt form", "en", "colour"},
			want:    "Alternative form of colour",
			handled: true,
		},
		{
			name:    "ja-romanization of",
			args:    []string{"ja-romanization of", "neko"},
			want:    "Rōmaji transcription of neko",
			handled: true,
		},
		{
			name:    "sumti position",
			args:    []string{"sumti", "1"},
			want:    "x1",
			handled: true,
		},
		{
			name:    "ja-def adds colon",
			args:    []string{"ja-def", "猫"},
			want:    "猫:",
			handled: true,
		},
		{
			name:    "mention takes third position",
			args:    []string{"m", "la", "canis"},
			want:    "canis",
			handled: true,
		},
		{
			name:    "link takes third position",
			args:    []string{"l", "en", "dog"},
			want:    "dog",
			handled: true,
		},
		{
			name:    "wikipedia link takes third position",
			args:    []string{"w", "en", "Dog"},
			want:    "Dog",
			handled: true,
		},
		{
			name:    "senseid expands to nothing",
			args:    []string{"senseid", "en", "Q144"},
			want:    "",
			handled: true,
		},
		{
			name:    "plural of",
			args:    []string{"plural of", "en", "cat"},
			want:    "Plural of cat",
			handled: true,
		},
		{
			name:    "inflected form of",
			args:    []string{"infl of", "en", "run"},
			want:    "Inflected form of run",
			handled: true,
		},
		{
			name:    "synonym of short name",
			args:    []string{"syn of", "en", "big"},
			want:    "Synonym of big",
			handled: true,
		},
		{
			name:    "synonym of long name",
			args:    []string{"synonym of", "en", "big"},
			want:    "Synonym of big",
			handled: true,
		},
		{
			name:    "acronym of",
			args:    []string{"acronym of", "en", "light amplification"},
			want:    "Acronym of light amplification",
			handled: true,
		},
		{
			name:    "initialism of",
			args:    []string{"initialism of", "en", "United Nations"},
			want:    "Initialism of United Nations",
			handled: true,
		},
		{
			name:    "abbreviation of",
			args:    []string{"abbreviation of", "en", "doctor"},
			want:    "Abbreviation of doctor",
			handled: true,
		},
		{
			name:    "clipping of",
			args:    []string{"clipping of", "en", "influenza"},
			want:    "Clipping of influenza",
			handled: true,
		},
		{
			name:    "alternative case form of",
			args:    []string{"alternative case form of", "en", "internet"},
			want:    "Alternative case form of internet",
			handled: true,
		},
		{
			name:    "surname literal",
			args:    []string{"surname", "en"},
			want:    "Surname",
			handled: true,
		},
		{
			name:    "given name literal",
			args:    []string{"given name", "en", "female"},
			want:    "Given name",
			handled: true,
		},
		{
			name:    "defdate bracketed",
			args:    []string{"defdate", "from 15th c."},
			want:    "[from 15th c.]",
			handled: true,
		},
		{
			name:    "place delegates to place parser",
			args:    []string{"place", "en", "ucomm", "state/california"},
			want:    "(Place) (Unincorporated Community) California,",
			handled: true,
		},
		{
			name:    "taxfmt joins all but the trailing rank",
			args:    []string{"taxfmt", "Felis", "catus", "species"},
			want:    "Felis catus",
			handled: true,
		},
		{
			name:    "alt sp strips t= and parses place",
			args:    []string{"alt sp", "en", "Colour", "t=city/london", "c/UK"},
			want:    "Alt spelling of Colour London , UK",
			handled: true,
		},
		{
			name:    "unrecognized name not handled",
			args:    []string{"head", "en", "noun"},
			handled: false,
		},
		{
			name:    "empty invocation not handled",
			args:    nil,
			handled: false,
		},
		{
			name:    "missing position degrades to not handled",
			args:    []string{"plural of", "en"},
			handled: false,
		},
		{
			name:    "qualifier without argument not handled",
			args:    []string{"qualifier"},
			handled: false,
		},
		{
			name:    "lb without labels not handled",
			args:    []string{"lb", "en"},
			handled: false,
		},
		{
			name:    "place without tokens not handled",
			args:    []string{"place", "en"},
			handled: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, handled := ExpandTemplate(tt.args)
			if handled != tt.handled {
				t.Fatalf("ExpandTemplate(%q) handled = %v, want %v", tt.args, handled, tt.handled)
			}
			if handled && got != tt.want {
				t.Errorf("ExpandTemplate(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
