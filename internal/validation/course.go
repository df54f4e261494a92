package validation

import (
	"strings"

	entity "mtc_backend/internal/feature/course/domain/entity"
	dto "mtc_backend/internal/feature/course/transport/http/dto"
)

// ValidateCourseRequest checks a course create/update payload.
func ValidateCourseRequest(rm dto.CourseRequest) []FieldError {
	var errs []FieldError

	validateCourseTitle(&errs, rm.Title)
	validateCourseDescription(&errs, rm.Description)
	validateCourseWeeksDuration(&errs, rm.WeeksDuration)
	validateCourseTuitionCost(&errs, rm.TuitionCost)
	validateCourseMinimumSkill(&errs, rm.MinimumSkill)
	validateCourseMtcID(&errs, rm.MtcID)

	if rm.IsScholarshipAvailable != nil {
		if err := BooleanField(rm.IsScholarshipAvailable, "isScholarshipAvailable"); err != nil {
			errs = append(errs, *err)
		}
	}

	return errs
}

func validateCourseTitle(errs *[]FieldError, value any) {
	if err := StringField(value, "title", ""); err != nil {
		*errs = append(*errs, *err)
	}
}

func validateCourseDescription(errs *[]FieldError, value any) {
	if err := StringField(value, "description", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if len(strings.TrimSpace(value.(string))) > entity.DescriptionMaxLength {
		*errs = append(*errs, NewFieldError("description", CourseDescriptionLengthMessage))
	}
}

func validateCourseWeeksDuration(errs *[]FieldError, value any) {
	if err := NumberField(value, "weeksDuration", true, ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if asNumber(value) <= 0 {
		*errs = append(*errs, NewFieldError("weeksDuration", WeeksDurationMessage))
	}
}

func validateCourseTuitionCost(errs *[]FieldError, value any) {
	if err := NumberField(value, "tuitionCost", false, ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if asNumber(value) < 0 {
		*errs = append(*errs, NewFieldError("tuitionCost", TuitionCostMessage))
	}
}

func validateCourseMinimumSkill(errs *[]FieldError, value any) {
	if err := StringField(value, "minimumSkill", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if !entity.IsValidMinimumSkill(value.(string)) {
		*errs = append(*errs, NewFieldError("minimumSkill", ValidMinimumSkillMessage))
	}
}

func validateCourseMtcID(errs *[]FieldError, value string) {
	if err := StringField(value, "mtc", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if !isValidUUID(value) {
		*errs = append(*errs, NewFieldError("mtc", CourseMtcIDMessage))
	}
}
