package model

import (
	"time"

	"github.com/google/uuid"
)

// SkillMatch is the detector result for one canonical skill.
type SkillMatch struct {
	Skill    string `json:"skill"`
	Detected bool   `json:"detected"`
	Alias    string `json:"alias,omitempty"`
	Evidence string `json:"evidence,omitempty"`
}

// RoleMatch is the alignment of a resume against one taxonomy role.
type RoleMatch struct {
	Role      string   `json:"role"`
	Alignment float64  `json:"alignment"` // 0..1
	Matched   []string `json:"matched"`
	Missing   []string `json:"missing"`
}

// KeywordOverlap compares the top TF-IDF terms of resume and job description.
type KeywordOverlap struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
}

// SectionSummary reports which standard resume sections were found.
type SectionSummary struct {
	Detected      []string `json:"detected"`
	HasExperience bool     `json:"has_experience"`
	HasEducation  bool     `json:"has_education"`
	HasSkills     bool     `json:"has_skills"`
}

// ImpactSummary reports how achievements are phrased and quantified.
type ImpactSummary struct {
	StrongVerbs []string `json:"strong_verbs"`
	WeakVerbs   []string `json:"weak_verbs"`
	Metrics     []string `json:"metrics"`
	Score       float64  `json:"score"` // 0..1
}

// AnalysisReport is created fresh per analysis and never mutated after
// construction. MatchedSkills and MissingSkills always partition the
// selected role's skill set; ExtraSkills is disjoint from both.
type AnalysisReport struct {
	ID             uuid.UUID         `json:"id"`
	Role           string            `json:"role"`
	Score          float64           `json:"score"` // 0..100
	MatchedSkills  []string          `json:"matched_skills"`
	MissingSkills  []string          `json:"missing_skills"`
	ExtraSkills    []string          `json:"extra_skills"`
	Evidence       map[string]string `json:"evidence"`
	FormattingTips []string          `json:"formatting_tips"`
	Keywords       KeywordOverlap    `json:"keywords"`
	Sections       SectionSummary    `json:"sections"`
	Impact         ImpactSummary     `json:"impact"`
	RoleMatches    []RoleMatch       `json:"role_matches"`
	CreatedAt      time.Time         `json:"created_at"`
}
