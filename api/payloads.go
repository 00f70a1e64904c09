package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/saas-starter-backend/errs"
)

// validate is shared by all handlers; field names in validation errors
// come from the json tags so clients see wire-format names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type registerPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type blogCreatePayload struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	AuthorName string   `json:"author_name" validate:"required"`
	Tags       []string `json:"tags"`
}

type contactPayload struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Company *string `json:"company"`
	Message string  `json:"message" validate:"required"`
}

// decodePayload parses the request body into dst and validates it,
// translating the first validation failure into a field-level ApiErr.
func decodePayload(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewInvalidJSONError(err)
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Tag() == "required" {
				return errs.NewMissingRequiredFieldError(fe.Field())
			}
			return errs.NewInvalidFieldError(fe.Field(), "failed "+fe.Tag()+" validation")
		}
		return errs.NewMalformedPayloadError("request", err)
	}

	return nil
}
