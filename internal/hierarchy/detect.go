// Package hierarchy classifies seniority signals into ordinal levels and
// adjusts match scores for the compatibility between them.
package hierarchy

import (
	"strings"
	"unicode"

	"github.com/gsabatini/match-engine/internal/types"
)

// Years thresholds used when title patterns are inconclusive.
const (
	seniorYears = 8
	juniorYears = 2
)

// Signal carries the seniority evidence for one side of a match. Years of
// zero means unknown and contributes nothing to the classification.
type Signal struct {
	Title   string
	Context string
	Years   float64
}

// levelPatterns maps each pattern-detectable level to the lowercase word
// sequences that imply it. Patterns match on whole words, so "coo" does not
// fire on "coordinator" and "intern" does not fire on "international". The
// table is data; the precedence lives in Detect.
var levelPatterns = map[types.HierarchicalLevel][]string{
	types.LevelDirection: {
		"direction", "director", "vp", "vice president", "head of",
		"chief", "cto", "ceo", "coo", "cfo", "founder", "partner",
	},
	types.LevelManager: {
		"manager", "team lead", "tech lead", "responsabile",
		"coordinator", "supervisor",
	},
	types.LevelSenior: {
		"senior", "sr.", "principal", "staff", "expert",
	},
	types.LevelJunior: {
		"junior", "jr.", "intern", "trainee", "entry level",
		"graduate", "apprentice", "stagista",
	},
}

// tokenize lowercases text and splits it into words, dropping punctuation,
// so "Sr. Engineer" becomes ["sr", "engineer"].
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsWords reports whether the pattern words appear as a contiguous
// word sequence in tokens.
func containsWords(tokens, pattern []string) bool {
	if len(pattern) == 0 {
		return false
	}
	for i := 0; i+len(pattern) <= len(tokens); i++ {
		matched := true
		for j, w := range pattern {
			if tokens[i+j] != w {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

func matchesLevel(tokens []string, level types.HierarchicalLevel) bool {
	for _, p := range levelPatterns[level] {
		if containsWords(tokens, tokenize(p)) {
			return true
		}
	}
	return false
}

// Detect classifies a seniority signal. Rules run most senior first and the
// first match wins: "Senior Engineering Manager" is a manager, not a senior.
// Years only decide when no higher pattern matched. With no evidence at all
// the result is the middle level, confirmed.
func Detect(sig Signal) types.HierarchicalLevel {
	tokens := tokenize(sig.Title + " " + sig.Context)
	switch {
	case matchesLevel(tokens, types.LevelDirection):
		return types.LevelDirection
	case matchesLevel(tokens, types.LevelManager):
		return types.LevelManager
	case matchesLevel(tokens, types.LevelSenior) || sig.Years >= seniorYears:
		return types.LevelSenior
	case matchesLevel(tokens, types.LevelJunior) || (sig.Years > 0 && sig.Years <= juniorYears):
		return types.LevelJunior
	default:
		return types.LevelConfirmed
	}
}

// DetectCandidateLevel classifies a candidate from title, responsibility
// scope, and years of experience.
func DetectCandidateLevel(c *types.CandidateRecord) types.HierarchicalLevel {
	return Detect(Signal{
		Title:   c.CurrentTitle,
		Context: c.ResponsibilityScope,
		Years:   c.YearsExperience,
	})
}

// DetectPositionLevel classifies a position from its title, seniority label,
// and required-years band.
func DetectPositionLevel(p *types.PositionRecord) types.HierarchicalLevel {
	years := p.YearsMin
	if years == 0 && p.YearsMax > 0 && p.YearsMax <= juniorYears {
		// A 0..2 years band is an entry-level signal even without a label.
		years = p.YearsMax
	}
	return Detect(Signal{
		Title:   p.Title,
		Context: p.SeniorityLabel,
		Years:   years,
	})
}
