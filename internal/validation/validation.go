package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Tell the validator to use the JSON tag as the “field name”
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Grab the value of `json:"foo,omitempty"`
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			// fallback to the Go field name or skip
			return fld.Name
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ErrorsToJson(validationErrs error) (string, error) {
	errsMap := make(map[string]string)
	for _, fieldErr := range validationErrs.(validator.ValidationErrors) {
		errsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	errsJson, err := json.Marshal(errsMap)
	if err != nil {
		return "", err
	}
	return string(errsJson), nil
}

var (
	ErrInvalidScheme    = errors.New("URL must be a GCS path (start with gs://)")
	ErrInvalidExtension = errors.New("URL must point to an MP4 video file")
)

// CheckVideoURL applies the intake policy for video URLs: a literal gs://
// prefix, then a case-sensitive .mp4 suffix, checked in that order. Nothing
// else is verified here — in particular no existence check against storage.
func CheckVideoURL(url string) error {
	if !strings.HasPrefix(url, "gs://") {
		return ErrInvalidScheme
	}
	if !strings.HasSuffix(url, ".mp4") {
		return ErrInvalidExtension
	}
	return nil
}
