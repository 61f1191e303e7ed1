package skills

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	GoodMatchThreshold     = 0.75
	ModerateMatchThreshold = 0.50
)

type Tier string

const (
	TierGood     Tier = "good"
	TierModerate Tier = "moderate"
	TierPoor     Tier = "poor"
)

// TierFor buckets a score into the three feedback tiers.
func TierFor(score float64) Tier {
	switch {
	case score >= GoodMatchThreshold:
		return TierGood
	case score >= ModerateMatchThreshold:
		return TierModerate
	default:
		return TierPoor
	}
}

func (t Tier) Message() string {
	switch t {
	case TierGood:
		return "The candidate is a good match for the job."
	case TierModerate:
		return "The candidate is a moderate match for the job."
	default:
		return "The candidate is not a good match for the job."
	}
}

// Report is a MatchResult decorated with user-facing feedback.
type Report struct {
	MatchResult
	Tier            Tier     `json:"tier"`
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
}

func NewReport(result MatchResult) *Report {
	tier := TierFor(result.Score)
	return &Report{
		MatchResult:     result,
		Tier:            tier,
		Message:         tier.Message(),
		Recommendations: Recommendations(result.MissingSkills),
	}
}

// Recommendations suggests one learning action per missing skill.
func Recommendations(missing []string) []string {
	out := make([]string, 0, len(missing))
	for _, skill := range missing {
		out = append(out, fmt.Sprintf("Learn and showcase projects using %s.", Capitalize(skill)))
	}
	return out
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
