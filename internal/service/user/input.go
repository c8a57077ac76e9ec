package user

import (
	"unicode/utf8"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// A nil Password keeps the current password.
type UpdateProfileInput struct {
	Name     string
	Email    string
	Password *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > domain.MaxUserNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !domain.ValidEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if i.Password != nil {
		if len(*i.Password) < domain.MinPasswordLength {
			errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
		} else if len(*i.Password) > 72 {
			errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UploadAvatarInput holds an uploaded avatar image.
type UploadAvatarInput struct {
	// ContentType is the type declared by the client. It is informational;
	// the stored type is sniffed from Data.
	ContentType string
	Data        []byte
}
