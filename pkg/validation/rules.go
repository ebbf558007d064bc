package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout - единственный формат даты, который принимают формы.
const DateLayout = "2006-01-02"

var (
	clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
	phoneRe = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// registerRules регистрирует теги, которые мы используем в struct tags и правилах колонок
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("iso_date", isISODate); err != nil {
		return err
	}
	if err := v.RegisterValidation("clock_time", isClockTime); err != nil {
		return err
	}
	if err := v.RegisterValidation("bank_phone", isBankPhone); err != nil {
		return err
	}
	return nil
}

// isISODate - строка вида YYYY-MM-DD
func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

// isClockTime - HH:MM или HH:MM:SS
func isClockTime(fl validator.FieldLevel) bool {
	return clockRe.MatchString(fl.Field().String())
}

// isBankPhone - от 7 до 15 цифр, опционально с "+"
func isBankPhone(fl validator.FieldLevel) bool {
	return phoneRe.MatchString(fl.Field().String())
}
