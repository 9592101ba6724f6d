package parsing

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Classify partitions normalized resume text into labeled sections in a
// single forward pass. The scan keeps one piece of state: the currently open
// section. A line that contains a taxonomy header (whole-word,
// case-insensitive) opens that section; when a line matches several headers,
// taxonomy declaration order decides, not position in the line. Every
// non-empty line is appended to the open section, including the header line
// itself. Lines before the first recognized header are dropped. A recurring
// header resets its section rather than appending to it.
func Classify(text string) *types.StructuredResume {
	resume := types.NewStructuredResume()
	current := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, header := range types.SectionTaxonomy {
			if containsWholeWord(line, header) {
				current = header
				resume.Open(header)
				break
			}
		}

		if current != "" {
			resume.Append(current, line)
		}
	}

	return resume
}

// containsWholeWord reports whether phrase occurs in line as a whole word,
// case-insensitively. Boundaries are non-word characters or the ends of the
// line.
func containsWholeWord(line, phrase string) bool {
	line = strings.ToUpper(line)
	phrase = strings.ToUpper(phrase)

	for start := 0; start+len(phrase) <= len(line); {
		i := strings.Index(line[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(phrase)
		if (i == 0 || !isWordByte(line[i-1])) && (end == len(line) || !isWordByte(line[end])) {
			return true
		}
		start = i + 1
	}
	return false
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z')
}
