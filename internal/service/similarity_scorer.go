package service

import (
	"math"
	"sort"

	"github.com/fadilmartias/resume-matcher/internal/model"
)

// topKeywordCount is how many high-frequency terms per document feed
// the keyword overlap comparison.
const topKeywordCount = 20

type SimilarityScorerInterface interface {
	Score(resumeText, jdText string) float64
	KeywordOverlap(resumeText, jdText string) model.KeywordOverlap
}

// SimilarityScorer measures textual overlap between a resume and a job
// description with TF-IDF cosine similarity over the two-document
// corpus. Deterministic: no randomness, no external calls.
type SimilarityScorer struct{}

func NewSimilarityScorer() *SimilarityScorer {
	return &SimilarityScorer{}
}

// Score returns cosine similarity scaled to 0..100, rounded to one
// decimal place. An empty or all-stop-word document scores 0.
func (s *SimilarityScorer) Score(resumeText, jdText string) float64 {
	resumeTF := termFrequencies(Terms(resumeText))
	jdTF := termFrequencies(Terms(jdText))
	if len(resumeTF) == 0 || len(jdTF) == 0 {
		return 0
	}

	idf := inverseDocumentFrequencies(resumeTF, jdTF)
	resumeVec := tfidfVector(resumeTF, idf)
	jdVec := tfidfVector(jdTF, idf)

	sim := cosineSimilarity(resumeVec, jdVec)
	return math.Round(sim*1000) / 10
}

// KeywordOverlap compares the top terms of both documents, giving the
// matched/missing/extra keyword lists shown alongside the score.
func (s *SimilarityScorer) KeywordOverlap(resumeText, jdText string) model.KeywordOverlap {
	resumeTop := topTerms(Terms(resumeText), topKeywordCount)
	jdTop := topTerms(Terms(jdText), topKeywordCount)

	inResume := make(map[string]bool, len(resumeTop))
	for _, term := range resumeTop {
		inResume[term] = true
	}
	inJD := make(map[string]bool, len(jdTop))
	for _, term := range jdTop {
		inJD[term] = true
	}

	overlap := model.KeywordOverlap{Matched: []string{}, Missing: []string{}, Extra: []string{}}
	for _, term := range jdTop {
		if inResume[term] {
			overlap.Matched = append(overlap.Matched, term)
		} else {
			overlap.Missing = append(overlap.Missing, term)
		}
	}
	for _, term := range resumeTop {
		if !inJD[term] {
			overlap.Extra = append(overlap.Extra, term)
		}
	}
	sort.Strings(overlap.Matched)
	sort.Strings(overlap.Missing)
	sort.Strings(overlap.Extra)
	return overlap
}

func termFrequencies(terms []string) map[string]float64 {
	if len(terms) == 0 {
		return nil
	}
	tf := make(map[string]float64, len(terms))
	for _, term := range terms {
		tf[term]++
	}
	total := float64(len(terms))
	for term := range tf {
		tf[term] /= total
	}
	return tf
}

// inverseDocumentFrequencies uses the smoothed formula
// ln((1+n)/(1+df))+1 over the degenerate two-document corpus: terms in
// both documents weigh 1, terms in one weigh ln(3/2)+1.
func inverseDocumentFrequencies(docs ...map[string]float64) map[string]float64 {
	df := make(map[string]float64)
	for _, doc := range docs {
		for term := range doc {
			df[term]++
		}
	}
	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((1+n)/(1+count)) + 1
	}
	return idf
}

func tfidfVector(tf, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(tf))
	for term, f := range tf {
		vec[term] = f * idf[term]
	}
	return vec
}

func cosineSimilarity(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	magA := magnitude(a)
	magB := magnitude(b)
	if magA == 0 || magB == 0 {
		return 0
	}
	sim := dot / (magA * magB)
	// Guard against floating point drift past 1.0 for identical texts.
	if sim > 1 {
		sim = 1
	}
	return sim
}

func magnitude(vec map[string]float64) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// topTerms ranks terms by raw frequency, ties broken alphabetically.
func topTerms(terms []string, n int) []string {
	counts := make(map[string]int)
	for _, term := range terms {
		counts[term]++
	}
	unique := make([]string, 0, len(counts))
	for term := range counts {
		unique = append(unique, term)
	}
	sort.Slice(unique, func(i, j int) bool {
		if counts[unique[i]] != counts[unique[j]] {
			return counts[unique[i]] > counts[unique[j]]
		}
		return unique[i] < unique[j]
	})
	if len(unique) > n {
		unique = unique[:n]
	}
	return unique
}
