package dto

import (
	"time"

	"github.com/fadilmartias/resume-matcher/internal/model"
	"github.com/google/uuid"
)

type AnalysisReportDTO struct {
	ID             uuid.UUID            `json:"id"`
	Role           string               `json:"role"`
	Score          float64              `json:"score"`
	MatchedSkills  []string             `json:"matched_skills"`
	MissingSkills  []string             `json:"missing_skills"`
	ExtraSkills    []string             `json:"extra_skills"`
	Evidence       map[string]string    `json:"evidence"`
	FormattingTips []string             `json:"formatting_tips"`
	Keywords       model.KeywordOverlap `json:"keywords"`
	Sections       model.SectionSummary `json:"sections"`
	Impact         model.ImpactSummary  `json:"impact"`
	RoleMatches    []model.RoleMatch    `json:"role_matches"`
	CreatedAt      time.Time            `json:"created_at"`
}
