package validation

import (
	"fmt"
	"strings"

	dto "mtc_backend/internal/feature/mtc/transport/http/dto"
)

// ValidateMtcPhoto checks an uploaded photo against the mimetype and size
// limits. maxSize is in bytes and comes from configuration.
func ValidateMtcPhoto(meta dto.MtcPhotoMeta, maxSize int64) []FieldError {
	var errs []FieldError

	if !strings.HasPrefix(meta.Mimetype, "image") {
		errs = append(errs, NewFieldError("mimetype", PhotoMimetypeMessage))
	}
	if meta.Size > maxSize {
		errs = append(errs, NewFieldError("size", fmt.Sprintf("%s%d", PhotoMaxFileSizeMessage, maxSize)))
	}

	return errs
}
