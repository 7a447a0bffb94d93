package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fadilmartias/resume-matcher/internal/model"
	"github.com/fadilmartias/resume-matcher/internal/service"
	"github.com/fadilmartias/resume-matcher/internal/taxonomy"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"github.com/google/uuid"
)

// UnknownRoleError reports a role that is not part of the taxonomy.
type UnknownRoleError struct {
	Role string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role %q", e.Role)
}

// EmptyInputError reports an empty resume or job description.
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s is empty", e.Field)
}

// AnalysisUsecase composes the matching engine into one report. The
// taxonomy is injected at construction, loaded once by the host
// process and shared read-only across requests.
type AnalysisUsecase struct {
	tax      taxonomy.Taxonomy
	detector service.SkillDetectorInterface
	scorer   service.SimilarityScorerInterface
	checker  service.FormattingCheckerInterface
	sections service.SectionParserInterface
	impact   service.ImpactAnalyzerInterface
}

func NewAnalysisUsecase(
	tax taxonomy.Taxonomy,
	detector service.SkillDetectorInterface,
	scorer service.SimilarityScorerInterface,
	checker service.FormattingCheckerInterface,
	sections service.SectionParserInterface,
	impact service.ImpactAnalyzerInterface,
) *AnalysisUsecase {
	return &AnalysisUsecase{
		tax:      tax,
		detector: detector,
		scorer:   scorer,
		checker:  checker,
		sections: sections,
		impact:   impact,
	}
}

// Roles lists the selectable roles.
func (uc *AnalysisUsecase) Roles() []string {
	return uc.tax.Roles()
}

// Analyze runs one full synchronous analysis of an uploaded resume
// against a job description for the selected role. The returned report
// is complete or the error is one of the tagged kinds; no partial
// report is ever returned.
func (uc *AnalysisUsecase) Analyze(fileBytes []byte, format model.Format, fileName, role, jdText string) (*model.AnalysisReport, error) {
	if !uc.tax.HasRole(role) {
		return nil, &UnknownRoleError{Role: role}
	}

	resumeText, err := util.Extract(fileBytes, format, fileName)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, &EmptyInputError{Field: "resume"}
	}
	if strings.TrimSpace(jdText) == "" {
		return nil, &EmptyInputError{Field: "job description"}
	}

	matched := []string{}
	missing := []string{}
	evidence := make(map[string]string)
	for _, m := range uc.detector.DetectAll(resumeText, uc.tax.Skills(role)) {
		if m.Detected {
			matched = append(matched, m.Skill)
			evidence[m.Skill] = m.Evidence
		} else {
			missing = append(missing, m.Skill)
		}
	}

	extra := []string{}
	for _, m := range uc.detector.DetectAll(resumeText, uc.tax.Vocabulary(role)) {
		if m.Detected {
			extra = append(extra, m.Skill)
		}
	}

	return &model.AnalysisReport{
		ID:             uuid.New(),
		Role:           role,
		Score:          uc.scorer.Score(resumeText, jdText),
		MatchedSkills:  matched,
		MissingSkills:  missing,
		ExtraSkills:    extra,
		Evidence:       evidence,
		FormattingTips: uc.checker.Check(resumeText),
		Keywords:       uc.scorer.KeywordOverlap(resumeText, jdText),
		Sections:       uc.sections.Summarize(resumeText),
		Impact:         uc.impact.Analyze(resumeText),
		RoleMatches:    uc.recommendRoles(resumeText),
		CreatedAt:      time.Now(),
	}, nil
}

// recommendRoles measures skill alignment of the resume against every
// taxonomy role, best fit first.
func (uc *AnalysisUsecase) recommendRoles(resumeText string) []model.RoleMatch {
	roles := uc.tax.Roles()
	matches := make([]model.RoleMatch, 0, len(roles))
	for _, role := range roles {
		rm := model.RoleMatch{Role: role, Matched: []string{}, Missing: []string{}}
		for _, m := range uc.detector.DetectAll(resumeText, uc.tax.Skills(role)) {
			if m.Detected {
				rm.Matched = append(rm.Matched, m.Skill)
			} else {
				rm.Missing = append(rm.Missing, m.Skill)
			}
		}
		if total := len(rm.Matched) + len(rm.Missing); total > 0 {
			rm.Alignment = float64(len(rm.Matched)) / float64(total)
		}
		matches = append(matches, rm)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Alignment > matches[j].Alignment
	})
	return matches
}
