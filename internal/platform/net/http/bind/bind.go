// Package bind decodes JSON request bodies and validates them with
// go-playground/validator, reporting failures as project errors
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "ttt/internal/platform/errors"
	"ttt/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds the singleton validator and its english translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Get returns the validator singleton, building it on first use
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		translate(v, trans, "min", "{0} must be at least {1}")
		translate(v, trans, "max", "{0} must be at most {1}")
		_ = v.RegisterValidation("phrase", validPhrase)
		translate(v, trans, "phrase", "{0} must be one or more non-blank words")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// jsonName reports fields by their json tag in messages
func jsonName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "-" || tag == "" {
		return fld.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// validPhrase accepts a string with at least one non-blank word, or a
// non-empty []string whose elements are all non-blank
func validPhrase(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.String:
		return strings.TrimSpace(f.String()) != ""
	case reflect.Slice:
		if f.Len() == 0 {
			return false
		}
		for i := range f.Len() {
			if el := f.Index(i); el.Kind() != reflect.String || strings.TrimSpace(el.String()) == "" {
				return false
			}
		}
		return true
	}
	return false
}

func translate(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// Options controls decoding
type Options struct {
	MaxBytes       int64 // 0 means 1MB
	AllowUnknown   bool
	AllowEmptyBody bool
}

// ParseJSON decodes the body into T, validates it, and maps failures to
// perr codes: JSON for malformed input, Validation for failed rules
func ParseJSON[T any](r *http.Request, opts ...Options) (T, error) {
	var zero, dst T
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = 1 << 20
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Debug().Err(err).Msg("close request body")
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(r.Body, o.MaxBytes+1))
	if err != nil {
		return zero, perr.JSONErrf("read body: %v", err)
	}
	if int64(len(raw)) > o.MaxBytes {
		return zero, perr.JSONErrf("body exceeds %d bytes", o.MaxBytes)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		if !o.AllowEmptyBody {
			return zero, perr.JSONErrf("empty body")
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(raw))
		if !o.AllowUnknown {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&dst); err != nil {
			return zero, perr.JSONErrf("invalid JSON: %v", err)
		}
		if dec.More() {
			return zero, perr.JSONErrf("unexpected trailing data")
		}
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct rules on v; non-struct values pass
func Validate(v any) error {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil
	}
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
}

// FieldAndMessage returns the first failing field and its translated message
func FieldAndMessage(err error) (field, message string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	if err == nil {
		return "", ""
	}
	return "", err.Error()
}
