package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Add appends ef when it is non-nil.
func (e *Errs) Add(ef *ErrField) {
	if ef != nil {
		*e = append(*e, *ef)
	}
}

// Err returns e as an error, or nil when empty.
func (e Errs) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Helpers

func Present[T any](field string, v *T) *ErrField {
	if v == nil {
		return &ErrField{Field: field, Msg: "field required"}
	}
	return nil
}

// Length counts characters, not bytes.
func Length(field, value string, min, max int) *ErrField {
	n := utf8.RuneCountInString(value)
	if n < min {
		return &ErrField{Field: field, Msg: "must be at least " + strconv.Itoa(min) + " characters"}
	}
	if n > max {
		return &ErrField{Field: field, Msg: "must be at most " + strconv.Itoa(max) + " characters"}
	}
	return nil
}

var emailRe = regexp.MustCompile(
	"^[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
		`@[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?)+$`,
)

func Email(field, value string) *ErrField {
	if len(value) > 254 || !emailRe.MatchString(value) {
		return &ErrField{Field: field, Msg: "value is not a valid email address"}
	}
	return nil
}

func OneOf(field, value string, allowed ...string) *ErrField {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ErrField{Field: field, Msg: "must be one of: " + strings.Join(allowed, ", ")}
}

func MinInt(field string, v, min int64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Msg: "must be >= " + strconv.FormatInt(min, 10)}
	}
	return nil
}

func MaxInt(field string, v, max int64) *ErrField {
	if v > max {
		return &ErrField{Field: field, Msg: "must be <= " + strconv.FormatInt(max, 10)}
	}
	return nil
}
