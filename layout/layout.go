// Package layout describes fixed byte layouts of foreign objects.
//
// A Layout is an ordered list of fields at fixed offsets together with the
// object's total size. Hand-written layouts record what reverse engineering
// says the host's objects look like; Of derives the layout of the Go struct
// used as an overlay, and Verify reports every place where the two disagree.
package layout

import (
	"fmt"
	"reflect"
)

// Kind classifies a field.
type Kind uint8

const (
	KindScalar    Kind = iota // integers, floats and booleans
	KindPointer               // host-owned addresses, never dereferenced
	KindComposite             // small value structs such as vectors
	KindArray                 // arrays of scalars or pointers
	KindOpaque                // byte regions with unmodeled structure
	KindPadding               // alignment filler
)

var kindNames = [...]string{
	KindScalar:    "scalar",
	KindPointer:   "pointer",
	KindComposite: "composite",
	KindArray:     "array",
	KindOpaque:    "opaque",
	KindPadding:   "padding",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Field is one entry of a Layout.
type Field struct {
	Name   string
	Offset uintptr
	Size   uintptr
	Kind   Kind
}

// End returns the offset just past the field.
func (f Field) End() uintptr {
	return f.Offset + f.Size
}

func (f Field) String() string {
	return fmt.Sprintf("%s@%#x[%d]%s", f.Name, f.Offset, f.Size, f.Kind)
}

func Scalar(name string, offset, size uintptr) Field {
	return Field{Name: name, Offset: offset, Size: size, Kind: KindScalar}
}

// Pointer is a pointer-sized field on a 64-bit host.
func Pointer(name string, offset uintptr) Field {
	return Field{Name: name, Offset: offset, Size: 8, Kind: KindPointer}
}

func Composite(name string, offset, size uintptr) Field {
	return Field{Name: name, Offset: offset, Size: size, Kind: KindComposite}
}

func Array(name string, offset, size uintptr) Field {
	return Field{Name: name, Offset: offset, Size: size, Kind: KindArray}
}

func Opaque(name string, offset, size uintptr) Field {
	return Field{Name: name, Offset: offset, Size: size, Kind: KindOpaque}
}

// Layout is the byte layout of one object type.
type Layout struct {
	Name   string
	Size   uintptr
	Fields []Field
}

// Expect builds a hand-written layout. It panics if the fields are not in
// offset order, overlap, or run past size.
func Expect(name string, size uintptr, fields ...Field) *Layout {
	var end uintptr
	for _, f := range fields {
		if f.Offset < end {
			panic(fmt.Sprintf("layout %s: field %s at %#x overlaps previous field ending at %#x", name, f.Name, f.Offset, end))
		}
		end = f.End()
		if end > size {
			panic(fmt.Sprintf("layout %s: field %s ends at %#x, past size %#x", name, f.Name, end, size))
		}
	}

	return &Layout{Name: name, Size: size, Fields: fields}
}

// Field returns the named field.
func (l *Layout) Field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Named returns the fields that are not padding.
func (l *Layout) Named() []Field {
	named := make([]Field, 0, len(l.Fields))
	for _, f := range l.Fields {
		if f.Kind != KindPadding {
			named = append(named, f)
		}
	}
	return named
}

// Of derives the layout of the struct type T. Embedded structs are
// flattened, their fields prefixed with the embedded type's name.
func Of[T any]() *Layout {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("layout.Of: %v is not a struct", t))
	}

	l := &Layout{Name: t.Name(), Size: t.Size()}
	l.Fields = appendFields(l.Fields, t, 0, "")
	return l
}

func appendFields(fields []Field, t reflect.Type, base uintptr, prefix string) []Field {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		offset := base + sf.Offset

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			fields = appendFields(fields, sf.Type, offset, prefix+sf.Name+".")
			continue
		}

		fields = append(fields, Field{
			Name:   prefix + sf.Name,
			Offset: offset,
			Size:   sf.Type.Size(),
			Kind:   kindOf(sf),
		})
	}
	return fields
}

func kindOf(sf reflect.StructField) Kind {
	if sf.Name == "_" {
		return KindPadding
	}

	switch sf.Type.Kind() {
	case reflect.Uintptr, reflect.UnsafePointer, reflect.Pointer:
		return KindPointer
	case reflect.Struct:
		return KindComposite
	case reflect.Array:
		if sf.Type.Elem().Kind() == reflect.Uint8 {
			return KindOpaque
		}
		return KindArray
	default:
		return KindScalar
	}
}

// Verify compares the layout of T against want.
func Verify[T any](want *Layout) error {
	return Diff(want, Of[T]()).Err()
}

// MustVerify is like Verify but panics on any difference.
func MustVerify[T any](want *Layout) {
	if err := Verify[T](want); err != nil {
		panic(err)
	}
}
