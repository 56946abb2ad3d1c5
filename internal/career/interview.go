package career

import (
	"regexp"
	"strings"
)

// starComponent pairs a STAR component with its indicator pattern.
type starComponent struct {
	name    string
	pattern *regexp.Regexp
	missing string
}

// Evaluated in S, T, A, R order; feedback preserves this order.
var starComponents = []starComponent{
	{"situation", regexp.MustCompile(`(?i)situation|context|background`),
		"Set the scene: describe the situation or context you were in."},
	{"task", regexp.MustCompile(`(?i)task|goal|objective|challenge`),
		"State the task: what goal or challenge were you responsible for?"},
	{"action", regexp.MustCompile(`(?i)action|did|implemented|executed|performed`),
		"Explain your actions: what did you concretely do?"},
	{"result", regexp.MustCompile(`(?i)result|outcome|impact|achieved|accomplished`),
		"Close with the result: what outcome or impact did you deliver?"},
}

const (
	starPointsPerComponent = 25
	maxLengthScore         = 30
	baseInterviewScore     = 10
	shortResponseWords     = 50
)

// InterviewEvaluation is the scoring outcome for one response.
type InterviewEvaluation struct {
	Score          int             `json:"score"`
	Feedback       []string        `json:"feedback"`
	WordCount      int             `json:"wordCount"`
	StarComponents map[string]bool `json:"starComponents"`
}

// EvaluateInterviewResponse scores a response against the STAR rubric.
// Pure function; persistence is the service's concern.
func EvaluateInterviewResponse(response string) InterviewEvaluation {
	components := make(map[string]bool, len(starComponents))
	starScore := 0
	feedback := []string{}
	for _, comp := range starComponents {
		present := comp.pattern.MatchString(response)
		components[comp.name] = present
		if present {
			starScore += starPointsPerComponent
		} else {
			feedback = append(feedback, comp.missing)
		}
	}

	wordCount := len(strings.Fields(response))
	lengthScore := (wordCount / 10) * 5
	if lengthScore > maxLengthScore {
		lengthScore = maxLengthScore
	}

	total := starScore + lengthScore + baseInterviewScore
	if total > 100 {
		total = 100
	}

	if wordCount < shortResponseWords {
		feedback = append(feedback, "Aim for a fuller answer; strong responses usually run 50+ words.")
	}
	if len(feedback) == 0 {
		feedback = append(feedback,
			"Well structured answer covering the full STAR arc.",
			"Keep practicing with different prompts to stay sharp.",
		)
	}

	return InterviewEvaluation{
		Score:          total,
		Feedback:       feedback,
		WordCount:      wordCount,
		StarComponents: components,
	}
}
