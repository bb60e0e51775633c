package fwfolder

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the suffix format appended by Transforms.AddDate.
const DateLayout = "20060102"

// Transforms are optional rewrites applied to a raw folder name.
// They are always applied in field order: Lowercase, then ReplaceSpaces,
// then AddDate.
type Transforms struct {
	Lowercase     bool `json:"lowercase"`
	ReplaceSpaces bool `json:"replace_spaces"`
	AddDate       bool `json:"add_date"`
}

// TransformName applies t to name. date is only consulted when t.AddDate is set.
func TransformName(name string, t Transforms, date time.Time) string {
	if t.Lowercase {
		name = strings.ToLower(name)
	}
	if t.ReplaceSpaces {
		name = strings.ReplaceAll(name, " ", "_")
	}
	if t.AddDate {
		name = name + "_" + date.Format(DateLayout)
	}
	return name
}

// MaxRangeSize is the largest number of folders a single range may create.
const MaxRangeSize = 100_000

// RangeSize returns the number of integers in [start, end], or 0 when
// start > end. Ranges larger than MaxRangeSize are rejected with
// ErrInvalidRange.
func RangeSize(start, end int) (int, error) {
	if start > end {
		return 0, nil
	}
	// Unsigned subtraction cannot overflow for start <= end.
	if diff := uint64(end) - uint64(start); diff >= MaxRangeSize {
		return 0, fmt.Errorf("%w: [%d, %d] spans more than %d folders", ErrInvalidRange, start, end, MaxRangeSize)
	}
	return end - start + 1, nil
}

// RangeName is the name of the folder created for i by CreateRange.
func RangeName(i int) string {
	return strconv.Itoa(i)
}

// PrefixedNames concatenates prefix and each name with nothing in between.
func PrefixedNames(names []string, prefix string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = prefix + name
	}
	return out
}

// PeriodicName is the name of the i-th folder created by CreatePeriodic.
func PeriodicName(i int) string {
	return fmt.Sprintf("folder_%d", i)
}

// ValidateName rejects names that would resolve outside the data root.
// Nested relative names such as "projects/2025" are allowed; the empty name
// refers to the data root itself.
func ValidateName(name string) error {
	switch {
	case name == "":
		return nil
	case filepath.IsAbs(name):
		return fmt.Errorf("%w: %q is absolute", ErrInvalidName, name)
	case !filepath.IsLocal(name):
		return fmt.Errorf("%w: %q escapes the data root", ErrInvalidName, name)
	}
	return nil
}
