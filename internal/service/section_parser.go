package service

import (
	"regexp"
	"strings"

	"github.com/fadilmartias/resume-matcher/internal/model"
)

// SectionType classifies a resume heading.
type SectionType string

const (
	SectionSummary        SectionType = "summary"
	SectionSkills         SectionType = "skills"
	SectionExperience     SectionType = "experience"
	SectionProjects       SectionType = "projects"
	SectionEducation      SectionType = "education"
	SectionCertifications SectionType = "certifications"
)

// Section is a heading plus the text up to the next heading.
type Section struct {
	Type    SectionType
	Heading string
	Content string
}

type sectionPattern struct {
	sectionType SectionType
	re          *regexp.Regexp
}

// Heading variations seen across real resumes. Evaluated in order; the
// first pattern that matches a heading line wins.
var sectionPatterns = []sectionPattern{
	{SectionSummary, regexp.MustCompile(`(?i)^(?:professional\s+summary|summary|career\s+objective|objective|profile|about(?:\s+me)?)$`)},
	{SectionSkills, regexp.MustCompile(`(?i)^(?:technical\s+skills|skills|technologies|core\s+competencies|competencies|expertise|tools?\s*(?:&|and)\s*technologies)$`)},
	{SectionExperience, regexp.MustCompile(`(?i)^(?:(?:work|professional|employment)\s+(?:experience|history)|experience|career\s+history|work\s+history)$`)},
	{SectionProjects, regexp.MustCompile(`(?i)^(?:(?:personal|academic|key|selected)\s+projects?|projects?|portfolio)$`)},
	{SectionEducation, regexp.MustCompile(`(?i)^(?:education(?:al\s+background)?|academic\s+(?:background|qualifications?)|qualifications?)$`)},
	{SectionCertifications, regexp.MustCompile(`(?i)^(?:certifications?|certificates|licenses?\s*(?:&|and)\s*certifications?|credentials)$`)},
}

const maxHeadingWords = 5

type SectionParserInterface interface {
	Parse(text string) []Section
	Summarize(text string) model.SectionSummary
}

// SectionParser splits resume text into labeled sections by detecting
// heading lines.
type SectionParser struct{}

func NewSectionParser() *SectionParser {
	return &SectionParser{}
}

func (p *SectionParser) Parse(text string) []Section {
	var sections []Section
	var current *Section
	var content strings.Builder

	flush := func() {
		if current != nil {
			current.Content = strings.TrimSpace(content.String())
			sections = append(sections, *current)
			content.Reset()
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if sectionType, ok := matchHeading(line); ok {
			flush()
			current = &Section{Type: sectionType, Heading: strings.TrimSpace(line)}
			continue
		}
		if current != nil {
			content.WriteString(line)
			content.WriteString("\n")
		}
	}
	flush()
	return sections
}

// Summarize reports which standard sections were detected, in document
// order without duplicates.
func (p *SectionParser) Summarize(text string) model.SectionSummary {
	summary := model.SectionSummary{Detected: []string{}}
	seen := make(map[SectionType]bool)
	for _, section := range p.Parse(text) {
		if !seen[section.Type] {
			seen[section.Type] = true
			summary.Detected = append(summary.Detected, string(section.Type))
		}
	}
	summary.HasExperience = seen[SectionExperience]
	summary.HasEducation = seen[SectionEducation]
	summary.HasSkills = seen[SectionSkills]
	return summary
}

func matchHeading(line string) (SectionType, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimRight(trimmed, ":")
	if trimmed == "" || len(strings.Fields(trimmed)) > maxHeadingWords {
		return "", false
	}
	for _, p := range sectionPatterns {
		if p.re.MatchString(trimmed) {
			return p.sectionType, true
		}
	}
	return "", false
}
