package career

import "math"

const (
	maxInterviewWeight = 40
	maxScoreWeight     = 30
	maxActivityWeight  = 30
)

// ConfidencePulse blends practice volume, practice quality, and application
// activity into one 0-100 engagement score. The three caps sum to exactly
// 100, so no extra clamp is needed.
func ConfidencePulse(interviews InterviewAggregate, applications ApplicationAggregate) int {
	interviewWeight := math.Min(maxInterviewWeight, float64(interviews.Count)*8)
	scoreWeight := math.Min(maxScoreWeight, interviews.AverageScore*0.3)
	activityWeight := math.Min(maxActivityWeight, float64(applications.Total)*3)
	return int(math.Round(interviewWeight + scoreWeight + activityWeight))
}
