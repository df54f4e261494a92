package validation

import (
	entity "mtc_backend/internal/feature/user/domain/entity"
	dto "mtc_backend/internal/feature/user/transport/http/dto"
)

// ValidateUserRequest checks a registration payload. The id is optional
// (admin-created fixtures may carry one); everything else is required.
func ValidateUserRequest(rm dto.UserRequest) []FieldError {
	var errs []FieldError

	validateUserName(&errs, rm.Name)
	validateUserEmail(&errs, rm.Email)
	validateUserPassword(&errs, rm.Password)
	validateUserRole(&errs, rm.Role)

	if rm.ID != nil {
		validateUserID(&errs, rm.ID)
	}

	return errs
}

// ValidateUserUpdate checks a self-update payload. Non-admin callers may
// only send name and email; id, password and role are rejected outright for
// them, while admins may set those fields subject to the create-time rules.
// Name and email are optional on update but must be well-formed if present.
func ValidateUserUpdate(rm dto.UserRequest, isAdmin bool) []FieldError {
	var errs []FieldError

	checkAdminOnlyFields(&errs, rm, isAdmin)

	if rm.Name != nil {
		validateUserName(&errs, rm.Name)
	}
	if rm.Email != nil {
		validateUserEmail(&errs, rm.Email)
	}

	return errs
}

func checkAdminOnlyFields(errs *[]FieldError, rm dto.UserRequest, isAdmin bool) {
	if !isAdmin {
		if rm.ID != nil {
			*errs = append(*errs, NewFieldError("id", UserIDUpdateMessage))
		}
		if rm.Password != nil {
			*errs = append(*errs, NewFieldError("password", UserPasswordUpdateMessage))
		}
		if rm.Role != nil {
			*errs = append(*errs, NewFieldError("role", UserRoleUpdateMessage))
		}
		return
	}

	if rm.ID != nil {
		validateUserID(errs, rm.ID)
	}
	if rm.Role != nil {
		validateUserRole(errs, rm.Role)
	}
	if rm.Password != nil {
		validateUserPassword(errs, rm.Password)
	}
}

// ValidateUserLogin checks login credentials. The forgot-password flow
// reuses the email check alone.
func ValidateUserLogin(rm dto.LoginRequest) []FieldError {
	var errs []FieldError

	validateUserEmail(&errs, rm.Email)
	validateUserPassword(&errs, rm.Password)

	return errs
}

// ValidateUserEmail checks a lone email value.
func ValidateUserEmail(value any) []FieldError {
	var errs []FieldError
	validateUserEmail(&errs, value)
	return errs
}

// ValidateUserPassword checks a lone password value.
func ValidateUserPassword(value any) []FieldError {
	var errs []FieldError
	validateUserPassword(&errs, value)
	return errs
}

func validateUserName(errs *[]FieldError, value any) {
	if err := StringField(value, "name", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if len(value.(string)) > entity.NameMaxLength {
		*errs = append(*errs, NewFieldError("name", UserNameLengthMessage))
	}
}

func validateUserEmail(errs *[]FieldError, value any) {
	if err := StringField(value, "email", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if !isValidEmail(value.(string)) {
		*errs = append(*errs, NewFieldError("email", ValidEmailMessage))
	}
}

func validateUserPassword(errs *[]FieldError, value any) {
	if err := StringField(value, "password", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if !isValidPassword(value.(string)) {
		*errs = append(*errs, NewFieldError("password", UserInvalidPasswordMessage))
	}
}

func validateUserRole(errs *[]FieldError, value any) {
	if err := StringField(value, "role", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if !entity.IsValidRole(value.(string)) {
		*errs = append(*errs, NewFieldError("role", UserRoleValidValueMessage))
	}
}

func validateUserID(errs *[]FieldError, value any) {
	if err := StringField(value, "id", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if !isValidUUID(value.(string)) {
		*errs = append(*errs, NewFieldError("id", UserIDValidValueMessage))
	}
}
