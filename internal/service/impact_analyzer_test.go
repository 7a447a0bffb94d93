package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_VerbsAndMetrics(t *testing.T) {
	analyzer := NewImpactAnalyzer()
	text := "Led a team of 4 engineers, reduced latency by 45% and helped with migrations saving $30k yearly."

	summary := analyzer.Analyze(text)
	assert.Equal(t, []string{"led", "reduced"}, summary.StrongVerbs)
	assert.Equal(t, []string{"helped"}, summary.WeakVerbs)
	assert.Contains(t, summary.Metrics, "45%")
	assert.Contains(t, summary.Metrics, "$30k")
	assert.Contains(t, summary.Metrics, "4 engineers")
}

func TestAnalyze_NoImpactLanguage(t *testing.T) {
	analyzer := NewImpactAnalyzer()

	summary := analyzer.Analyze("Familiar with several programming languages.")
	assert.Empty(t, summary.StrongVerbs)
	assert.Empty(t, summary.WeakVerbs)
	assert.Empty(t, summary.Metrics)
	assert.InDelta(t, 0.3, summary.Score, 0.001, "neutral verb score, zero quantification")
}

func TestAnalyze_StrongOnlyScoresHigher(t *testing.T) {
	analyzer := NewImpactAnalyzer()

	strong := analyzer.Analyze("Built and shipped the billing platform, improved throughput 3x for 2000 users.")
	weak := analyzer.Analyze("Responsible for tasks and helped where needed.")
	assert.Greater(t, strong.Score, weak.Score)
}

func TestImpactScore_Bounds(t *testing.T) {
	assert.InDelta(t, 1.0, impactScore(5, 0, 10), 0.001)
	assert.InDelta(t, 0.0, impactScore(0, 3, 0), 0.001)
}
