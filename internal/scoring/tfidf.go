// Package scoring computes resume-to-job-description relevance using a
// TF-IDF weighted vector space and cosine similarity.
package scoring

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Vectorizer holds the vocabulary and inverse-document-frequency weights
// fitted over a document corpus.
type Vectorizer struct {
	terms []string       // sorted, so vector layout is reproducible
	index map[string]int // term -> position in terms
	idf   []float64
}

// NewVectorizer fits a TF-IDF model over the given corpus. The vocabulary is
// the union of tokens across all documents; IDF uses the smoothed form
// log((1+N)/(1+df)) + 1.
func NewVectorizer(corpus []string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, term := range Tokenize(doc) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vectorizer{
		terms: terms,
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(corpus))
	for i, term := range terms {
		v.index[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// Transform maps a document onto the fitted vector space and returns its
// L2-normalized TF-IDF vector. A document with no in-vocabulary tokens
// yields the zero vector.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, term := range Tokenize(doc) {
		if i, ok := v.index[term]; ok {
			vec[i] += v.idf[i]
		}
	}
	normalize(vec)
	return vec
}

// Tokenize lowercases a document and splits it into alphanumeric tokens.
// Single-character tokens are dropped; they carry no signal.
func Tokenize(doc string) []string {
	fields := strings.FieldsFunc(strings.ToLower(doc), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// CosineSimilarity returns the cosine of the angle between two equal-length
// vectors. Either vector being zero yields 0.0, never a division fault.
func CosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func normalize(vec []float64) {
	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
