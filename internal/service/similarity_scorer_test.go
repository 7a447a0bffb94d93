package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_Symmetry(t *testing.T) {
	scorer := NewSimilarityScorer()
	a := "Backend engineer with Go, PostgreSQL and Docker experience"
	b := "We need a Go developer familiar with Docker and cloud deployments"

	assert.Equal(t, scorer.Score(a, b), scorer.Score(b, a))
}

func TestScore_SelfSimilarity(t *testing.T) {
	scorer := NewSimilarityScorer()
	text := "Built ML models using Python and scikit-learn for classification tasks"

	assert.InDelta(t, 100, scorer.Score(text, text), 0.001)
}

func TestScore_Range(t *testing.T) {
	scorer := NewSimilarityScorer()
	a := "Python machine learning engineer"
	b := "Senior accountant with bookkeeping background"

	score := scorer.Score(a, b)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestScore_NoSharedTerms(t *testing.T) {
	scorer := NewSimilarityScorer()

	assert.Equal(t, 0.0, scorer.Score("alpha beta gamma", "delta epsilon zeta"))
}

func TestScore_EmptyInputs(t *testing.T) {
	scorer := NewSimilarityScorer()

	assert.Equal(t, 0.0, scorer.Score("", "Go developer wanted"))
	assert.Equal(t, 0.0, scorer.Score("Go developer", ""))
	assert.Equal(t, 0.0, scorer.Score("the of and", "Go developer"), "all-stop-word document scores zero")
}

func TestScore_Deterministic(t *testing.T) {
	scorer := NewSimilarityScorer()
	a := "Go engineer building APIs with PostgreSQL"
	b := "Looking for a backend engineer who knows Go and PostgreSQL"

	first := scorer.Score(a, b)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Score(a, b))
	}
}

func TestScore_SharedTermsScoreHigher(t *testing.T) {
	scorer := NewSimilarityScorer()
	jd := "Go developer with Docker and Kubernetes experience"

	closer := scorer.Score("Go developer who ships Docker and Kubernetes workloads", jd)
	further := scorer.Score("Graphic designer fluent in Photoshop", jd)
	assert.Greater(t, closer, further)
}

func TestKeywordOverlap(t *testing.T) {
	scorer := NewSimilarityScorer()
	resume := "python python docker terraform"
	jd := "python docker kubernetes"

	overlap := scorer.KeywordOverlap(resume, jd)
	assert.Equal(t, []string{"docker", "python"}, overlap.Matched)
	assert.Equal(t, []string{"kubernetes"}, overlap.Missing)
	assert.Equal(t, []string{"terraform"}, overlap.Extra)
}
