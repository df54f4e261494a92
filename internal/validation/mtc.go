package validation

import (
	"strings"

	entity "mtc_backend/internal/feature/mtc/domain/entity"
	dto "mtc_backend/internal/feature/mtc/transport/http/dto"
)

// ValidateMtcRequest checks an mtc create/update payload. Required fields
// come first in declaration order; optional fields are checked only when
// present in the body.
func ValidateMtcRequest(rm dto.MtcRequest) []FieldError {
	var errs []FieldError

	validateMtcName(&errs, rm.Name)
	validateMtcDescription(&errs, rm.Description)
	validateMtcWebsite(&errs, rm.Website)
	validateMtcPhone(&errs, rm.Phone)
	validateMtcEmail(&errs, rm.Email)
	validateMtcAddress(&errs, rm.Address)
	validateMtcCareers(&errs, rm.Careers)

	if rm.AverageRating != nil {
		validateMtcAverageRating(&errs, rm.AverageRating)
	}
	if rm.AverageCost != nil {
		validateMtcAverageCost(&errs, rm.AverageCost)
	}
	if rm.Photo != nil {
		if err := StringField(rm.Photo, "photo", ""); err != nil {
			errs = append(errs, *err)
		}
	}
	for _, opt := range []struct {
		value any
		name  string
	}{
		{rm.Housing, "housing"},
		{rm.JobAssistance, "jobAssistance"},
		{rm.JobGuarantee, "jobGuarantee"},
		{rm.AcceptGiBill, "acceptGiBill"},
	} {
		if opt.value == nil {
			continue
		}
		if err := BooleanField(opt.value, opt.name); err != nil {
			errs = append(errs, *err)
		}
	}

	return errs
}

func validateMtcName(errs *[]FieldError, value any) {
	if err := StringField(value, "name", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if len(strings.TrimSpace(value.(string))) > entity.NameMaxLength {
		*errs = append(*errs, NewFieldError("name", NameLengthMessage))
	}
}

func validateMtcDescription(errs *[]FieldError, value any) {
	if err := StringField(value, "description", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if len(strings.TrimSpace(value.(string))) > entity.DescriptionMaxLength {
		*errs = append(*errs, NewFieldError("description", DescriptionLengthMessage))
	}
}

func validateMtcWebsite(errs *[]FieldError, value any) {
	if err := StringField(value, "website", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if !isValidURL(value.(string)) {
		*errs = append(*errs, NewFieldError("website", ValidURLMessage))
	}
}

func validateMtcPhone(errs *[]FieldError, value any) {
	if err := StringField(value, "phone", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if len(strings.TrimSpace(value.(string))) > entity.PhoneMaxLength {
		*errs = append(*errs, NewFieldError("phone", PhoneLengthMessage))
	}
}

func validateMtcEmail(errs *[]FieldError, value any) {
	if err := StringField(value, "email", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if !isValidEmail(value.(string)) {
		*errs = append(*errs, NewFieldError("email", ValidEmailMessage))
	}
}

func validateMtcAddress(errs *[]FieldError, value any) {
	if err := StringField(value, "address", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if len(strings.TrimSpace(value.(string))) > entity.AddressMaxLength {
		*errs = append(*errs, NewFieldError("address", AddressLengthMessage))
	}
}

func validateMtcCareers(errs *[]FieldError, value any) {
	list, ok := value.([]any)
	if !ok || len(list) == 0 {
		*errs = append(*errs, NewFieldError("careers", OneCareerMessage))
		return
	}
	for _, item := range list {
		s, ok := item.(string)
		if !ok || !entity.IsValidCareerType(s) {
			*errs = append(*errs, NewFieldError("careers", ValidCareerMessage))
			return
		}
	}
}

func validateMtcAverageRating(errs *[]FieldError, value any) {
	if err := NumberField(value, "averageRating", true, ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	rating := asNumber(value)
	if rating < entity.AverageRatingMinValue || rating > entity.AverageRatingMaxValue {
		*errs = append(*errs, NewFieldError("averageRating", AverageRatingIntervalMessage))
	}
}

func validateMtcAverageCost(errs *[]FieldError, value any) {
	if err := NumberField(value, "averageCost", false, ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if asNumber(value) < 0 {
		*errs = append(*errs, NewFieldError("averageCost", AverageCostMessage))
	}
}
