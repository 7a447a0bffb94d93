package service

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// maxResumeRunes roughly corresponds to two printed pages.
	maxResumeRunes = 7000
	minResumeWords = 200
	maxLineLength  = 200
)

var (
	columnRunRe = regexp.MustCompile(`(?: {3,}|\t+)`)
	emailRe     = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+`)
	phoneRe     = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
	allCapsRe   = regexp.MustCompile(`\b[A-Z]{10,}\b`)
)

const nonStandardBullets = "●◦▪►➤✦★✓❖➢∙"

type FormattingCheckerInterface interface {
	Check(text string) []string
}

// FormattingChecker applies heuristic ATS-compatibility rules. Every
// rule is evaluated on every call and the tip order is the fixed rule
// order, never input-dependent.
type FormattingChecker struct{}

func NewFormattingChecker() *FormattingChecker {
	return &FormattingChecker{}
}

func (f *FormattingChecker) Check(text string) []string {
	rules := []func(string) string{
		checkColumnLayout,
		checkSectionHeaders,
		checkExcessiveLength,
		checkShortResume,
		checkBulletCharacters,
		checkEmailPresent,
		checkPhonePresent,
		checkAllCaps,
		checkLongLines,
	}

	tips := []string{}
	for _, rule := range rules {
		if tip := rule(text); tip != "" {
			tips = append(tips, tip)
		}
	}
	return tips
}

// checkColumnLayout flags lines whose repeated wide whitespace runs
// suggest tables or multi-column layout.
func checkColumnLayout(text string) string {
	suspect := 0
	for _, line := range strings.Split(text, "\n") {
		if len(columnRunRe.FindAllString(line, -1)) >= 2 {
			suspect++
		}
	}
	if suspect > 3 {
		return "Possible table or multi-column layout detected; ATS parsers read columns out of order. Use a single-column layout."
	}
	return ""
}

func checkSectionHeaders(text string) string {
	lower := strings.ToLower(text)
	var missing []string
	for _, header := range []string{"experience", "education", "skills"} {
		if !strings.Contains(lower, header) {
			missing = append(missing, header)
		}
	}
	if len(missing) > 0 {
		return fmt.Sprintf("Missing standard section headers: %s. ATS parsers rely on clearly labeled sections.", strings.Join(missing, ", "))
	}
	return ""
}

func checkExcessiveLength(text string) string {
	if len([]rune(text)) > maxResumeRunes {
		return "Resume looks longer than two pages; condense it to the most relevant experience."
	}
	return ""
}

func checkShortResume(text string) string {
	words := len(strings.Fields(text))
	if words > 0 && words < minResumeWords {
		return fmt.Sprintf("Resume looks very short (%d words); ATS scoring favors 300-700 words of concrete detail.", words)
	}
	return ""
}

func checkBulletCharacters(text string) string {
	if strings.ContainsAny(text, nonStandardBullets) {
		return "Non-standard bullet characters detected; replace them with plain dashes or asterisks so ATS parsers keep your bullets."
	}
	return ""
}

func checkEmailPresent(text string) string {
	if !emailRe.MatchString(text) {
		return "No email address found; ATS systems need one to process an application."
	}
	return ""
}

func checkPhonePresent(text string) string {
	if !phoneRe.MatchString(text) {
		return "No phone number found; consider adding one."
	}
	return ""
}

func checkAllCaps(text string) string {
	if len(allCapsRe.FindAllString(text, -1)) > 3 {
		return "Excessive ALL-CAPS text detected; use normal casing with bold headings instead."
	}
	return ""
}

func checkLongLines(text string) string {
	long := 0
	for _, line := range strings.Split(text, "\n") {
		if len(line) > maxLineLength {
			long++
		}
	}
	if long > 5 {
		return "Very long lines detected; this often comes from copy-pasted layouts that ATS parsers mangle."
	}
	return ""
}
