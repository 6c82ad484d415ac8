package terminal

import "strings"

// DefaultMaxSuggestions is used when no positive limit is given
const DefaultMaxSuggestions = 6

// Completion is the result of a Tab press. Filled is the new input; when
// several candidates match, Suggestions lists up to the limit and Overflow
// counts the rest.
type Completion struct {
	Filled      string
	Suggestions []string
	Overflow    int
}

// Visible reports whether there is a suggestion list to show
func (c Completion) Visible() bool {
	return len(c.Suggestions) > 0
}

// Complete matches partial case-insensitively against the start of each
// candidate. One match replaces the input; several fill the input up to
// their longest common prefix; none leaves it alone.
func Complete(partial string, candidates []string, limit int) Completion {
	if limit < 1 {
		limit = DefaultMaxSuggestions
	}

	lower := strings.ToLower(partial)
	seen := make(map[string]bool)
	var matches []string
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		if strings.HasPrefix(strings.ToLower(c), lower) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return Completion{Filled: partial}
	case 1:
		return Completion{Filled: matches[0]}
	}

	result := Completion{Filled: partial}
	if prefix := commonPrefix(matches); len([]rune(prefix)) > len([]rune(partial)) {
		result.Filled = prefix
	}

	if len(matches) > limit {
		result.Suggestions = matches[:limit]
		result.Overflow = len(matches) - limit
	} else {
		result.Suggestions = matches
	}
	return result
}

// commonPrefix returns the longest prefix, compared case-insensitively, that
// all values share. The casing of the first value is kept.
func commonPrefix(values []string) string {
	first := []rune(values[0])
	n := len(first)
	for _, v := range values[1:] {
		r := []rune(v)
		if len(r) < n {
			n = len(r)
		}
		for i := 0; i < n; i++ {
			if !strings.EqualFold(string(first[i]), string(r[i])) {
				n = i
				break
			}
		}
	}
	return string(first[:n])
}
