package forms

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"Backend-FormFlow-007/src/models"

	"github.com/go-playground/validator/v10"
)

// Messages per field. Any rule failing on a field reports that field's message.
var fieldMessages = map[string]string{
	models.FieldFullName: "Name is required and must be at least 2 characters",
	models.FieldEmail:    "Invalid email format",
	models.FieldAge:      "Age must be a positive number",
	models.FieldCountry:  "Please select a country",
	models.FieldGender:   "Please select your gender",
}

// FieldMessage returns the validation message shown for field.
func FieldMessage(field string) string {
	return fieldMessages[field]
}

// emailPart excludes every Unicode space (\s alone is ASCII-only in RE2) and "@".
const emailPart = `[^\s\v\p{Z}\x{FEFF}@]+`

var emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// ใช้ชื่อจาก json tag เพื่อให้ key ตรงกับชื่อ field ในฟอร์ม
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		mustRegister(v, "looseemail", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "positiveint", func(fl validator.FieldLevel) bool {
			return ParseAge(fl.Field().String()) > 0
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("forms: register validation %q: %v", tag, err))
	}
}

// Validate runs every field rule independently and returns the failing fields.
// ok is true iff errs is empty.
func Validate(draft models.SubmissionDraft) (errs models.ValidationErrors, ok bool) {
	errs = models.ValidationErrors{}

	err := getValidator().Struct(draft)
	if err == nil {
		return errs, true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError only happens for non-struct input.
		panic(err)
	}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if msg, known := fieldMessages[field]; known {
			errs[field] = msg
		}
	}
	return errs, len(errs) == 0
}

// ParseAge reads the leading integer of s the way a lenient parseInt does:
// leading whitespace, an optional sign, then digits; trailing text is ignored.
// Input without leading digits yields 0, which fails the age rule like any
// other non-positive value. Overflow saturates.
func ParseAge(s string) int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var n int64
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		digits++
		if n > (math.MaxInt64-9)/10 {
			n = math.MaxInt64
			continue
		}
		n = n*10 + int64(r-'0')
	}
	if digits == 0 {
		return 0
	}
	if negative {
		return -n
	}
	return n
}
