package service

import (
	"regexp"

	"github.com/fadilmartias/resume-matcher/internal/model"
)

// Action verbs ranked by the strength they signal. Order inside each
// list fixes the order of the report output.
var strongVerbs = []string{
	"led", "built", "designed", "architected", "launched", "shipped",
	"delivered", "implemented", "optimized", "automated", "reduced",
	"increased", "improved", "migrated", "scaled", "created",
	"developed", "engineered", "refactored", "accelerated",
}

var weakVerbs = []string{
	"helped", "assisted", "worked", "participated", "responsible",
	"involved", "supported", "contributed", "tasked",
}

var metricRes = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?\s?%`),
	regexp.MustCompile(`[$€£]\s?\d[\d,]*(?:\.\d+)?\s?[kKmMbB]?`),
	regexp.MustCompile(`\b\d+(?:\.\d+)?x\b`),
	regexp.MustCompile(`(?i)\b\d[\d,]*\+?\s*(?:users|customers|clients|requests|transactions|records|rows|documents|downloads|engineers|teams)\b`),
}

const maxReportedMetrics = 20

type ImpactAnalyzerInterface interface {
	Analyze(text string) model.ImpactSummary
}

// ImpactAnalyzer measures how achievements are phrased: strong versus
// weak action verbs and quantified results.
type ImpactAnalyzer struct{}

func NewImpactAnalyzer() *ImpactAnalyzer {
	return &ImpactAnalyzer{}
}

func (a *ImpactAnalyzer) Analyze(text string) model.ImpactSummary {
	present := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		present[tok.Text] = true
	}

	summary := model.ImpactSummary{
		StrongVerbs: []string{},
		WeakVerbs:   []string{},
		Metrics:     []string{},
	}
	for _, verb := range strongVerbs {
		if present[verb] {
			summary.StrongVerbs = append(summary.StrongVerbs, verb)
		}
	}
	for _, verb := range weakVerbs {
		if present[verb] {
			summary.WeakVerbs = append(summary.WeakVerbs, verb)
		}
	}

	seen := make(map[string]bool)
	for _, re := range metricRes {
		for _, m := range re.FindAllString(text, -1) {
			if seen[m] || len(summary.Metrics) >= maxReportedMetrics {
				continue
			}
			seen[m] = true
			summary.Metrics = append(summary.Metrics, m)
		}
	}

	summary.Score = impactScore(len(summary.StrongVerbs), len(summary.WeakVerbs), len(summary.Metrics))
	return summary
}

// impactScore blends verb strength (60%) and quantification (40%).
// Five or more metrics count as fully quantified.
func impactScore(strong, weak, metrics int) float64 {
	verbScore := 0.5
	if strong+weak > 0 {
		verbScore = float64(strong) / float64(strong+weak)
	}
	metricScore := float64(metrics) / 5
	if metricScore > 1 {
		metricScore = 1
	}
	return verbScore*0.6 + metricScore*0.4
}
