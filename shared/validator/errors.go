package validator

import "sort"

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

func (f FieldErrors) Has(field string) bool {
	return len(f[field]) > 0
}

func (f FieldErrors) Get(field string) []string {
	return f[field]
}

func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// Fields returns the names of the failing fields in a stable order.
func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	return fields
}
