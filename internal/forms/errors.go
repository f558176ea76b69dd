package forms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var ErrUnknownField = errors.New("unknown form field")

// FieldForm keys a problem that belongs to the whole form rather than to one
// input.
const FieldForm = "form"

// Errors maps a field name to the message displayed next to it. A missing key
// means the field is valid.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Clear returns a copy of e without the entry for field. e itself is left
// untouched.
func (e Errors) Clear(field string) Errors {
	res := make(Errors, len(e))
	for k, v := range e {
		if k != field {
			res[k] = v
		}
	}
	return res
}

func (e Errors) Clone() Errors {
	res := make(Errors, len(e))
	for k, v := range e {
		res[k] = v
	}
	return res
}

func (e Errors) Fields() []string {
	res := make([]string, 0, len(e))
	for k := range e {
		res = append(res, k)
	}
	return res
}

func translate(err error) Errors {
	res := Errors{}
	if err == nil {
		return res
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res[FieldForm] = err.Error()
		return res
	}

	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", field)
		}
		res[field] = msg
	}
	return res
}
