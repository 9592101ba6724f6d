// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionTaxonomy is the fixed, ordered list of recognized resume section
// headers. The order is a precedence list: when a line matches more than one
// header, the earliest entry wins.
var SectionTaxonomy = []string{
	SectionContactInfo,
	SectionProfile,
	SectionKeySkills,
	SectionWorkExperience,
	SectionEducation,
}

// Canonical section labels.
const (
	SectionContactInfo    = "CONTACT INFO"
	SectionProfile        = "PROFILE"
	SectionKeySkills      = "KEY SKILLS"
	SectionWorkExperience = "WORK EXPERIENCE"
	SectionEducation      = "EDUCATION"
)

// SectionTables is the key under which extracted table rows are attached.
// It is not part of the taxonomy scan; the pipeline adds it after
// classification, and it never feeds the similarity signal.
const SectionTables = "TABLES"

// StructuredResume maps section labels to the lines assigned to them by the
// classifier. Order records the sequence in which sections were first opened.
type StructuredResume struct {
	Sections map[string][]string `json:"sections"`
	Order    []string            `json:"order"`
}

// NewStructuredResume returns an empty structured resume.
func NewStructuredResume() *StructuredResume {
	return &StructuredResume{
		Sections: make(map[string][]string),
	}
}

// Open starts (or restarts) a section. A recurring header resets the
// section's accumulated lines; the last occurrence wins.
func (r *StructuredResume) Open(label string) {
	if _, seen := r.Sections[label]; !seen {
		r.Order = append(r.Order, label)
	}
	r.Sections[label] = []string{}
}

// Append adds a line to a section. The section must have been opened first.
func (r *StructuredResume) Append(label, line string) {
	r.Sections[label] = append(r.Sections[label], line)
}

// Lines returns the lines assigned to a section, or nil if the section was
// never opened.
func (r *StructuredResume) Lines(label string) []string {
	return r.Sections[label]
}

// AttachTables unions extracted table rows into the section map under the
// TABLES key. Each row is flattened to a single tab-separated line.
func (r *StructuredResume) AttachTables(tables [][][]string) {
	if len(tables) == 0 {
		return
	}
	r.Open(SectionTables)
	for _, table := range tables {
		for _, row := range table {
			r.Append(SectionTables, joinRow(row))
		}
	}
}

// IsEmpty reports whether no section was ever opened.
func (r *StructuredResume) IsEmpty() bool {
	return len(r.Sections) == 0
}

func joinRow(cells []string) string {
	line := ""
	for i, cell := range cells {
		if i > 0 {
			line += "\t"
		}
		line += cell
	}
	return line
}
