package lookup

import (
	"strings"

	"github.com/heartmarshall/define/internal/domain"
)

// Input holds lookup parameters.
type Input struct {
	// Term is the word to look up. Multiple CLI arguments are joined
	// with spaces before reaching the service.
	Term string

	// Language restricts output to a single language when non-empty.
	Language string

	// Partial switches from exact equality to substring matching.
	Partial bool

	// Raw disables template expansion; definitions are returned as stored.
	Raw bool
}

// Validate checks the input for consistency.
func (i Input) Validate() error {
	if strings.TrimSpace(i.Term) == "" {
		return domain.NewValidationError("term", "must not be empty")
	}
	return nil
}

// Result is a grouped, expanded lookup result ready for rendering.
type Result struct {
	Words domain.WordMap
}

// Empty reports whether the lookup matched nothing.
func (r *Result) Empty() bool {
	return len(r.Words) == 0
}
