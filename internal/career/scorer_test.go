package career

import (
	"errors"
	"strings"
	"testing"
)

func TestScoreResumeRejectsShortText(t *testing.T) {
	_, err := ScoreResume("too short")
	if !errors.Is(err, ErrResumeTooShort) {
		t.Fatalf("expected ErrResumeTooShort, got %v", err)
	}
}

func TestScoreResumeCountsKeywordsAndMetrics(t *testing.T) {
	text := "Managed a team of engineers and developed a billing platform. " +
		"Implemented caching which increased throughput by 40% and reduced costs."

	analysis, err := ScoreResume(text)
	if err != nil {
		t.Fatalf("ScoreResume: %v", err)
	}
	if !analysis.HasMetrics {
		t.Fatalf("expected metrics to be detected")
	}
	// managed, developed, implemented, increased, reduced
	if len(analysis.FoundKeywords) != 5 {
		t.Fatalf("expected 5 found keywords, got %v", analysis.FoundKeywords)
	}
	// 5*8 + 25 metrics + 20 base = 85; text is under 150 chars only if short
	want := 5*8 + 25 + 20
	if len(text) > 150 {
		want += 15
	}
	if analysis.Score != want {
		t.Fatalf("expected score %d, got %d", want, analysis.Score)
	}
}

func TestScoreResumeCapsAtHundred(t *testing.T) {
	var b strings.Builder
	for _, kw := range resumeKeywords {
		b.WriteString(kw)
		b.WriteString(" the project by 20% ")
	}
	analysis, err := ScoreResume(b.String())
	if err != nil {
		t.Fatalf("ScoreResume: %v", err)
	}
	if analysis.Score != 100 {
		t.Fatalf("expected capped score 100, got %d", analysis.Score)
	}
	if len(analysis.FoundKeywords) != 5 {
		t.Fatalf("expected found keywords trimmed to 5, got %d", len(analysis.FoundKeywords))
	}
}

func TestScoreResumeTipOrder(t *testing.T) {
	// No metrics, few keywords, short text, no project mention.
	text := "I am a recent graduate looking for my first role in finance."
	analysis, err := ScoreResume(text)
	if err != nil {
		t.Fatalf("ScoreResume: %v", err)
	}
	if len(analysis.Tips) != 4 {
		t.Fatalf("expected 4 tips, got %v", analysis.Tips)
	}
	if !strings.Contains(analysis.Tips[0], "quantifiable metrics") {
		t.Fatalf("expected metrics tip first, got %q", analysis.Tips[0])
	}
	if !strings.Contains(analysis.Tips[1], "action verbs") {
		t.Fatalf("expected keyword tip second, got %q", analysis.Tips[1])
	}
	if !strings.Contains(analysis.Tips[2], "Expand") {
		t.Fatalf("expected length tip third, got %q", analysis.Tips[2])
	}
	if !strings.Contains(analysis.Tips[3], "projects") {
		t.Fatalf("expected project tip fourth, got %q", analysis.Tips[3])
	}
}

func TestScoreResumeGenericTipsWhenStrong(t *testing.T) {
	text := "Led a project initiative: managed, developed, implemented and achieved " +
		"a 30% increase in revenue while collaborating across three designed systems. " +
		"Launched and optimized the scaled platform serving 2000 users every day."
	analysis, err := ScoreResume(text)
	if err != nil {
		t.Fatalf("ScoreResume: %v", err)
	}
	if len(analysis.Tips) != 3 {
		t.Fatalf("expected 3 generic tips, got %v", analysis.Tips)
	}
	if !strings.Contains(analysis.Tips[0], "Tailor") {
		t.Fatalf("unexpected first generic tip: %q", analysis.Tips[0])
	}
}
