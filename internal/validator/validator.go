package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// trans is the singleton English translator for validation errors.
	trans    ut.Translator
	once     sync.Once
	setupErr error
)

// Setup registers the validator with English translations on Gin's binding
// engine. Request binding and the console form share that one engine, so
// every failure is reported with the same messages. Safe to call more
// than once; later calls return the first result.
func Setup() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*govalidator.Validate)
		if !ok {
			setupErr = fmt.Errorf("validator: unexpected binding engine %T", binding.Validator.Engine())
			return
		}

		// Use JSON tag name for field names in error messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// Register English translations.
		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
			setupErr = fmt.Errorf("validator: register translations: %w", err)
		}
	})
	return setupErr
}

func mustSetup() {
	if err := Setup(); err != nil {
		panic(err)
	}
}

// Struct validates v against its `binding` tags. Returns nil when valid,
// otherwise a field name → message map.
func Struct(v interface{}) map[string]string {
	mustSetup()
	if err := binding.Validator.ValidateStruct(v); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields["detail"] = err.Error()
	return fields
}

// Bind binds and validates the request body into dst.
// Returns nil on success or a translated field error map on failure.
func Bind(c *gin.Context, dst interface{}) map[string]string {
	mustSetup()
	if err := c.ShouldBindJSON(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// Decode reads the JSON request body into dst without validating it, for
// callers that normalize values before checking them. A malformed body
// yields a "detail" map like Bind.
func Decode(c *gin.Context, dst interface{}) map[string]string {
	if c.Request.Body == nil {
		return map[string]string{"detail": "empty request body"}
	}
	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil {
		return map[string]string{"detail": err.Error()}
	}
	return nil
}
