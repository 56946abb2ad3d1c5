package career

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrResumeTooShort is returned when the resume text is too short to score.
var ErrResumeTooShort = errors.New("resume text must be at least 20 characters")

const minResumeLength = 20

// resumeKeywords are the action verbs the scorer looks for, in report order.
var resumeKeywords = []string{
	"leadership", "managed", "developed", "implemented", "achieved",
	"increased", "reduced", "improved", "collaborated", "designed",
	"led", "created", "launched", "optimized", "scaled",
}

var (
	percentPattern    = regexp.MustCompile(`\d+%`)
	dollarPattern     = regexp.MustCompile(`\$\d+`)
	quantifierPattern = regexp.MustCompile(`(?i)\d+\s*(users|customers|revenue|growth|reduction|increase)`)
)

// ResumeAnalysis is the result of scoring a resume.
type ResumeAnalysis struct {
	Score         int      `json:"score"`
	Tips          []string `json:"tips"`
	FoundKeywords []string `json:"foundKeywords"`
	HasMetrics    bool     `json:"hasMetrics"`
}

// ScoreResume analyzes resume text against the keyword table and quantifier
// patterns. It is a pure function; nothing is persisted.
func ScoreResume(resumeText string) (ResumeAnalysis, error) {
	if len(strings.TrimSpace(resumeText)) < minResumeLength {
		return ResumeAnalysis{}, ErrResumeTooShort
	}

	hasMetrics := percentPattern.MatchString(resumeText) ||
		dollarPattern.MatchString(resumeText) ||
		quantifierPattern.MatchString(resumeText)

	lower := strings.ToLower(resumeText)
	found := []string{}
	missing := []string{}
	for _, kw := range resumeKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := 8 * len(found)
	if hasMetrics {
		score += 25
	}
	if len(resumeText) > 150 {
		score += 15
	}
	score += 20
	if score > 100 {
		score = 100
	}

	tips := buildResumeTips(resumeText, lower, found, missing, hasMetrics)

	topFound := found
	if len(topFound) > 5 {
		topFound = topFound[:5]
	}

	return ResumeAnalysis{
		Score:         score,
		Tips:          tips,
		FoundKeywords: topFound,
		HasMetrics:    hasMetrics,
	}, nil
}

func buildResumeTips(text, lower string, found, missing []string, hasMetrics bool) []string {
	tips := []string{}
	if !hasMetrics {
		tips = append(tips, "Add quantifiable metrics to your achievements (e.g. \"increased revenue by 20%\").")
	}
	if len(found) < 3 {
		suggest := missing
		if len(suggest) > 5 {
			suggest = suggest[:5]
		}
		tips = append(tips, fmt.Sprintf("Work in strong action verbs such as: %s.", strings.Join(suggest, ", ")))
	}
	if len(text) < 150 {
		tips = append(tips, "Expand your resume with specific examples of your work.")
	}
	if !strings.Contains(lower, "project") && !strings.Contains(lower, "initiative") {
		tips = append(tips, "Highlight projects or initiatives you contributed to.")
	}
	if len(tips) == 0 {
		tips = append(tips,
			"Tailor the wording to each job description you apply for.",
			"Keep formatting consistent and lead bullets with strong verbs.",
			"Have someone in your target field review it for clarity.",
		)
	}
	return tips
}
