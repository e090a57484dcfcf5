package layout

import (
	"errors"
	"fmt"
)

// Differences lists every disagreement between two layouts.
type Differences struct {
	Name   string
	Size   *sizeDifference
	Fields []*FieldDifference
}

type sizeDifference struct {
	Want, Got uintptr
}

// FieldDifference is a field that is missing from one side or placed
// differently. Want or Got is nil when the field is absent there.
type FieldDifference struct {
	Name      string
	Want, Got *Field
}

// Empty reports whether the layouts agree.
func (d *Differences) Empty() bool {
	return d.Size == nil && len(d.Fields) == 0
}

// Err joins the differences into one error, or returns nil.
func (d *Differences) Err() error {
	errs := []error{}
	if d.Size != nil {
		errs = append(errs, fmt.Errorf("%s: size %#x != %#x", d.Name, d.Size.Want, d.Size.Got))
	}
	for _, f := range d.Fields {
		switch {
		case f.Got == nil:
			errs = append(errs, fmt.Errorf("%s: missing field %v", d.Name, *f.Want))
		case f.Want == nil:
			errs = append(errs, fmt.Errorf("%s: unexpected field %v", d.Name, *f.Got))
		default:
			errs = append(errs, fmt.Errorf("%s: field %v != %v", d.Name, *f.Want, *f.Got))
		}
	}

	return errors.Join(errs...)
}

// Diff compares two layouts. Padding is ignored; every other field must
// appear on both sides with the same offset, size and kind.
func Diff(want, got *Layout) *Differences {
	diff := Differences{Name: want.Name}

	if want.Size != got.Size {
		diff.Size = &sizeDifference{Want: want.Size, Got: got.Size}
	}

	gotFields := got.Named()
	seen := make(map[string]bool, len(gotFields))

	for _, w := range want.Named() {
		g, ok := got.Field(w.Name)
		if !ok || g.Kind == KindPadding {
			diff.Fields = append(diff.Fields, &FieldDifference{Name: w.Name, Want: &w})
			continue
		}
		seen[w.Name] = true

		if g.Offset != w.Offset || g.Size != w.Size || g.Kind != w.Kind {
			diff.Fields = append(diff.Fields, &FieldDifference{Name: w.Name, Want: &w, Got: &g})
		}
	}

	for _, g := range gotFields {
		if !seen[g.Name] {
			diff.Fields = append(diff.Fields, &FieldDifference{Name: g.Name, Got: &g})
		}
	}

	return &diff
}
