package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// projectionSections are the taxonomy labels whose content feeds the
// similarity signal. Contact info, education and table payloads are excluded
// on purpose: they describe the candidate, not the fit.
var projectionSections = []string{
	types.SectionKeySkills,
	types.SectionWorkExperience,
	types.SectionProfile,
}

// ProjectRelevantText concatenates, whitespace-separated, the lines assigned
// to the skills, experience and profile sections. Missing sections
// contribute nothing.
func ProjectRelevantText(resume *types.StructuredResume) string {
	var parts []string
	for _, label := range projectionSections {
		parts = append(parts, resume.Lines(label)...)
	}
	return strings.Join(parts, " ")
}

// Score computes the relevance of a structured resume to a job description:
// cosine similarity between the TF-IDF vectors of the projected resume text
// and the job description, over a corpus of exactly those two documents,
// rounded to 2 decimals. An empty projection scores exactly 0.0.
func Score(resume *types.StructuredResume, jobDescription string) float64 {
	projected := ProjectRelevantText(resume)
	corpus := []string{projected, jobDescription}

	v := NewVectorizer(corpus)
	similarity := CosineSimilarity(v.Transform(projected), v.Transform(jobDescription))

	// Guard against float drift before rounding.
	if similarity > 1.0 {
		similarity = 1.0
	}
	if similarity < 0.0 {
		similarity = 0.0
	}
	return math.Round(similarity*100) / 100
}
