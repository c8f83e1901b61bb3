// Package tostring builds compact descriptions of values in the form
// Name[field=value,other=[a,b,c]].
package tostring

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/scalecode-solutions/runecut"
	"github.com/scalecode-solutions/runecut/check"
)

// Builder accumulates named fields. The zero value is not usable; create one
// with [ForName] or [ForType].
//
// Append calls can be chained. The first invalid call is recorded and
// reported by [Builder.Err]; it and any later calls leave the output
// unchanged.
type Builder struct {
	sb     strings.Builder
	fields int
	err    error
}

// ForName starts a description for a value called name.
func ForName(name string) (*Builder, error) {
	if name == "" {
		return nil, check.Fail("name", `""`, "must not be empty")
	}
	b := &Builder{}
	b.sb.WriteString(name)
	b.sb.WriteByte('[')
	return b, nil
}

// ForType starts a description named after the dynamic type of v. Pointer
// types are described by their element type.
func ForType(v any) (*Builder, error) {
	if v == nil {
		return nil, check.Fail("value", "nil", "must not be nil")
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	return ForName(name)
}

// Append adds the field name=value.
//
// Nil values are written as null, values implementing [fmt.Stringer] use
// their String method, slices and arrays are written as [a,b,c], and
// everything else is formatted with [fmt.Sprint].
func (b *Builder) Append(name string, value any) *Builder {
	if b.err != nil {
		return b
	}
	if name == "" {
		b.err = check.Fail("name", `""`, "must not be empty")
		return b
	}
	if b.fields > 0 {
		b.sb.WriteByte(',')
	}
	b.fields++
	b.sb.WriteString(name)
	b.sb.WriteByte('=')
	b.sb.WriteString(formatValue(value))
	return b
}

// Err returns the error recorded by the first invalid [Builder.Append].
func (b *Builder) Err() error {
	return b.err
}

// String returns the description built so far.
func (b *Builder) String() string {
	return b.sb.String() + "]"
}

func formatValue(value any) string {
	if check.IsNil(value) {
		return "null"
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, v.Len())
		for i := range elems {
			elems[i] = v.Index(i).Interface()
		}
		return "[" + runecut.Join(elems, ",") + "]"
	}
	return fmt.Sprint(value)
}
