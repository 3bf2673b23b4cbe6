package validation

// Form keeps the raw values and field errors of a login or signup screen.
type Form struct {
	fields []Field
	values map[Field]string
	errs   Errors
}

// NewLoginForm returns an empty email/password form.
func NewLoginForm() *Form {
	return newForm(FieldEmail, FieldPassword)
}

// NewSignupForm returns an empty name/email/password form.
func NewSignupForm() *Form {
	return newForm(FieldName, FieldEmail, FieldPassword)
}

func newForm(fields ...Field) *Form {
	return &Form{
		fields: fields,
		values: make(map[Field]string, len(fields)),
		errs:   Errors{},
	}
}

// Fields lists the form fields in display order.
func (f *Form) Fields() []Field {
	return append([]Field(nil), f.fields...)
}

// Set stores a value and clears that field's error, leaving the others.
func (f *Form) Set(field Field, value string) {
	f.values[field] = value
	delete(f.errs, field)
}

// Value returns the raw value of field.
func (f *Form) Value(field Field) string {
	return f.values[field]
}

// Error returns the current message for field, or "".
func (f *Form) Error(field Field) string {
	return f.errs[field]
}

// Errors returns a copy of the current field errors.
func (f *Form) Errors() Errors {
	out := make(Errors, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// InvalidFields lists the fields that currently carry an error, in display order.
func (f *Form) InvalidFields() []Field {
	var out []Field
	for _, field := range f.fields {
		if _, ok := f.errs[field]; ok {
			out = append(out, field)
		}
	}
	return out
}

// Validate re-runs every rule and reports whether the form is valid.
func (f *Form) Validate() bool {
	if f.has(FieldName) {
		f.errs = ValidateSignup(f.values[FieldName], f.values[FieldEmail], f.values[FieldPassword])
	} else {
		f.errs = ValidateLogin(f.values[FieldEmail], f.values[FieldPassword])
	}
	return f.errs.Valid()
}

func (f *Form) has(field Field) bool {
	for _, x := range f.fields {
		if x == field {
			return true
		}
	}
	return false
}
