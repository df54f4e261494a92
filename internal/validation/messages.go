package validation

import (
	"fmt"

	courseentity "mtc_backend/internal/feature/course/domain/entity"
	mtcentity "mtc_backend/internal/feature/mtc/domain/entity"
	userentity "mtc_backend/internal/feature/user/domain/entity"
)

// Base field-check messages shared by every validator.
const (
	ProvideValueMessage  = "Please provide value"
	MustBeStringMessage  = "Must be a string"
	MustBeNumberMessage  = "Must be a number"
	MustBeIntegerMessage = "Must be an integer"
	MustBeBooleanMessage = "Must be a boolean"
)

// Mtc validator messages.
var (
	NameLengthMessage        = fmt.Sprintf("Cannot be more than %d characters", mtcentity.NameMaxLength)
	DescriptionLengthMessage = fmt.Sprintf("Cannot be more than %d characters", mtcentity.DescriptionMaxLength)
	PhoneLengthMessage       = fmt.Sprintf("Cannot be more than %d characters", mtcentity.PhoneMaxLength)
	AddressLengthMessage     = fmt.Sprintf("Cannot be more than %d characters", mtcentity.AddressMaxLength)

	AverageRatingIntervalMessage = fmt.Sprintf("Must be from %d to %d",
		mtcentity.AverageRatingMinValue, mtcentity.AverageRatingMaxValue)
)

const (
	ValidURLMessage    = "Please provide valid URL"
	ValidEmailMessage  = "Please provide valid email"
	OneCareerMessage   = "Please provide at least one career in list"
	ValidCareerMessage = "There must be only valid careers"
	AverageCostMessage = "Cannot be less than 0"
)

// Course validator messages.
var CourseDescriptionLengthMessage = fmt.Sprintf("Cannot be more than %d characters", courseentity.DescriptionMaxLength)

const (
	WeeksDurationMessage     = "Must be greater than 0"
	TuitionCostMessage       = "Cannot be less than 0"
	ValidMinimumSkillMessage = "Minimum skill can only be of valid value"
	CourseMtcIDMessage       = "Mtc id must be a valid uuid"
)

// User validator messages.
var UserNameLengthMessage = fmt.Sprintf("User name can't be more than %d letters", userentity.NameMaxLength)

const (
	UserRoleValidValueMessage = "User role can only be of valid value"
	UserIDValidValueMessage   = "User id must be a valid uuid"

	UserIDUpdateMessage       = "User is not allowed to update id"
	UserPasswordUpdateMessage = "User is not allowed to update password"
	UserRoleUpdateMessage     = "User is not allowed to update role"
)

// PasswordMinLength is the minimum accepted password length.
const PasswordMinLength = 8

var UserInvalidPasswordMessage = fmt.Sprintf(
	"Password must be minimum %d characters long with at least one lower letter, "+
		"one uppercase letter, one digit, one special character", PasswordMinLength)

// Radius search validator messages.
const (
	ValidZipcodeMessage      = "Please provide valid zipcode"
	DistanceIntervalMessage  = "Must be greater than 0"
	ValidMeasurementUnitsMsg = "Must be one of: KM, MI"
)

// Geocoded location validator messages. The lat/lng missing messages are
// custom because the value comes from the geocoding provider, not the user.
const (
	LongitudeIntervalMessage            = "Must be a number between -180 and 180"
	LongitudeProvideValueMessage        = "Could not process longitude, provide another address"
	LatitudeIntervalMessage             = "Must be a number between -90 and 90"
	LatitudeProvideValueMessage         = "Could not process latitude, provide another address"
	FormattedAddressProvideValueMessage = "Could not process address string, provide another address"
)

// Photo upload validator messages.
const (
	PhotoMimetypeMessage    = "Please upload an image file"
	PhotoMaxFileSizeMessage = "Please upload an image with size not greater than "
)
