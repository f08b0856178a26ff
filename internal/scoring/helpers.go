package scoring

import "strings"

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalizeTerm lowercases and trims a comparison term.
func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// termSet builds a set of normalized terms, dropping empties.
func termSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		if n := normalizeTerm(t); n != "" {
			set[n] = true
		}
	}
	return set
}

// overlap counts how many wanted terms the candidate set covers and returns
// the ratio over the wanted list plus the matched terms.
func overlap(have map[string]bool, want []string) (float64, []string) {
	if len(want) == 0 {
		return 0, nil
	}
	matched := make([]string, 0)
	seen := make(map[string]bool, len(want))
	for _, w := range want {
		n := normalizeTerm(w)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		if have[n] {
			matched = append(matched, n)
		}
	}
	if len(seen) == 0 {
		return 0, nil
	}
	return float64(len(matched)) / float64(len(seen)), matched
}

// titleTokens splits a title into lowercase tokens, dropping short filler
// words so "Head of Data" and "Data Lead" still share a token.
func titleTokens(title string) []string {
	fields := strings.Fields(strings.ToLower(title))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ",.()/-")
		if len(f) >= 3 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// sameTerm compares two free-text values case-insensitively, treating empty
// values as never equal.
func sameTerm(a, b string) bool {
	na, nb := normalizeTerm(a), normalizeTerm(b)
	return na != "" && na == nb
}
