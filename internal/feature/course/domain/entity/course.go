// Package entity defines the domain entities for the course feature.
package entity

import "time"

// DescriptionMaxLength is the ceiling enforced by the course validator.
const DescriptionMaxLength = 1000

// MinimumSkill is the entry level a course expects from students.
type MinimumSkill string

const (
	SkillBeginner     MinimumSkill = "beginner"
	SkillIntermediate MinimumSkill = "intermediate"
	SkillAdvanced     MinimumSkill = "advanced"
)

// MinimumSkillValues returns every allowed minimum-skill value.
func MinimumSkillValues() []MinimumSkill {
	return []MinimumSkill{SkillBeginner, SkillIntermediate, SkillAdvanced}
}

// IsValidMinimumSkill reports whether s is an allowed minimum-skill value.
func IsValidMinimumSkill(s string) bool {
	for _, m := range MinimumSkillValues() {
		if string(m) == s {
			return true
		}
	}
	return false
}

// Course represents a training course published by an mtc.
type Course struct {
	ID                     string       `gorm:"primaryKey;size:36" json:"id"`
	Title                  string       `gorm:"size:255;not null" json:"title"`
	Description            string       `gorm:"size:1000;not null" json:"description"`
	WeeksDuration          int          `gorm:"not null" json:"weeksDuration"`
	TuitionCost            float64      `gorm:"not null" json:"tuitionCost"`
	MinimumSkill           MinimumSkill `gorm:"size:32;not null" json:"minimumSkill"`
	IsScholarshipAvailable bool         `json:"isScholarshipAvailable"`

	// MtcID references the owning mtc. Courses are removed in cascade when
	// the mtc is deleted.
	MtcID string `gorm:"index;size:36;not null" json:"mtc"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
