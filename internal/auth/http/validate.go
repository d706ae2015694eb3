package http

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/talentsift/talentsift/internal/auth/domain"
	"github.com/talentsift/talentsift/pkg/authsdk"
)

// Password length bounds enforced on register and reset.
const (
	minPasswordLength = 8
	maxPasswordLength = 128
)

type registerRequest authsdk.RegisterRequest

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLength, maxPasswordLength)),
		validation.Field(&r.Organization, validation.Length(0, 200)),
	)
}

type loginRequest authsdk.LoginRequest

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type verifyEmailRequest authsdk.VerifyEmailRequest

func (r verifyEmailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
	)
}

type emailRequest authsdk.EmailRequest

func (r emailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type resetPasswordRequest authsdk.ResetPasswordRequest

func (r resetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLength, maxPasswordLength)),
		validation.Field(&r.ConfirmPassword, validation.Required, validation.By(stringEquals(r.Password, "passwords do not match"))),
	)
}

type incrementRequest authsdk.IncrementRequest

func (r incrementRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Counter, validation.Required, validation.By(knownCounter)),
		validation.Field(&r.Amount, validation.Min(0)),
	)
}

func stringEquals(expected, message string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s != expected {
			return errors.New(message)
		}
		return nil
	}
}

func knownCounter(value any) error {
	s, _ := value.(string)
	if _, err := domain.ParseCounter(s); err != nil {
		return errors.New("unknown counter")
	}
	return nil
}

// decodeAndValidate parses the JSON body into dst and runs its Validate
// method. On failure it writes a validation_error response with per-field
// details and reports false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{ Validate() error }) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		authsdk.ErrValidation.WithMessage("request body is not valid JSON").WriteError(w)
		return false
	}
	if err := dst.Validate(); err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			details := make(map[string]string, len(fields))
			for name, ferr := range fields {
				details[name] = ferr.Error()
			}
			authsdk.ErrValidation.WithDetails(details).WriteError(w)
		} else {
			authsdk.ErrValidation.WriteError(w)
		}
		return false
	}
	return true
}
