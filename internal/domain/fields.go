package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FieldValidator — контракт валидатора одного поля схемы.
// Validate проверяет непустое значение, IsEmpty определяет
// "пустоту" по правилам конкретного типа поля.
type FieldValidator interface {
	Validate(value any) bool
	IsEmpty(value any) bool
}

// FieldSpec описывает один слот схемы: имя поля во входном JSON,
// флаги required/nullable, валидатор типа и указатель на слот,
// куда кладётся принятое значение.
type FieldSpec struct {
	Name      string
	Required  bool
	Nullable  bool
	Validator FieldValidator
	Slot      *any
}

// Assign применяет контракт присваивания: либо значение сохраняется
// в слот без изменений, либо возвращается ошибка. Частичных состояний нет.
func (f FieldSpec) Assign(value any) error {
	if f.Required && value == nil {
		return &FieldError{Field: f.Name, Err: ErrMissingField}
	}

	if !f.Validator.IsEmpty(value) && !f.Validator.Validate(value) {
		return &FieldError{Field: f.Name, Err: ErrInvalidField}
	}

	if !f.Nullable && f.Validator.IsEmpty(value) {
		return &FieldError{Field: f.Name, Err: ErrMissingField}
	}

	*f.Slot = value
	return nil
}

// CharField строковое поле.
type CharField struct{}

func (CharField) Validate(value any) bool {
	_, ok := value.(string)
	return ok
}

func (CharField) IsEmpty(value any) bool {
	return value == nil || value == ""
}

// ArgumentsField поле с объектом аргументов метода.
type ArgumentsField struct{}

func (ArgumentsField) Validate(value any) bool {
	_, ok := value.(map[string]any)
	return ok
}

func (ArgumentsField) IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	args, ok := value.(map[string]any)
	return ok && len(args) == 0
}

// EmailField строка с символом "@".
type EmailField struct {
	CharField
}

func (f EmailField) Validate(value any) bool {
	email, ok := value.(string)
	return ok && strings.Contains(email, "@")
}

// PhoneField телефон: строка или целое число. Значение приводится
// к десятичной строке и проверяется на длину 11 и префикс "7";
// в слоте сохраняется исходное значение.
type PhoneField struct {
	CharField
}

func (PhoneField) Validate(value any) bool {
	phone, ok := DecimalString(value)
	return ok && len(phone) == 11 && strings.HasPrefix(phone, "7")
}

var dateFormat = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

const dateLayout = "02.01.2006"

// DateField дата в формате DD.MM.YYYY.
type DateField struct {
	CharField
}

func (DateField) Validate(value any) bool {
	date, ok := value.(string)
	if !ok || !dateFormat.MatchString(date) {
		return false
	}
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// BirthDayField дата рождения: не раньше 70 лет назад и не в будущем.
// Високосные годы не учитываются, окно считается как 70*365 дней.
type BirthDayField struct {
	DateField
}

func (f BirthDayField) Validate(value any) bool {
	if !f.DateField.Validate(value) {
		return false
	}
	if f.IsEmpty(value) {
		return true
	}

	birthday, err := time.Parse(dateLayout, value.(string))
	if err != nil {
		return false
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	earliest := today.AddDate(0, 0, -365*70)

	return !birthday.Before(earliest) && !birthday.After(today)
}

// GenderField целое число из множества значений Gender.
type GenderField struct{}

func (GenderField) Validate(value any) bool {
	gender, ok := IntegerValue(value)
	return ok && Gender(gender).IsValid()
}

func (GenderField) IsEmpty(value any) bool {
	return value == nil
}

// ClientIDsField список, каждый элемент которого — целое число.
type ClientIDsField struct{}

func (ClientIDsField) Validate(value any) bool {
	ids, ok := value.([]any)
	if !ok {
		return false
	}
	for _, id := range ids {
		if _, ok := IntegerValue(id); !ok {
			return false
		}
	}
	return true
}

func (ClientIDsField) IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	ids, ok := value.([]any)
	return ok && len(ids) == 0
}

// IntegerValue приводит значение к целому. Числа из encoding/json
// приходят как float64, поэтому принимается и целочисленный float.
func IntegerValue(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// DecimalString возвращает десятичное строковое представление значения.
// Строки возвращаются как есть, дробные числа не принимаются.
func DecimalString(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	if n, ok := IntegerValue(value); ok {
		return strconv.FormatInt(n, 10), true
	}
	return "", false
}
