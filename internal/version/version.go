package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Triple is a three-component version number (major.minor.patch).
type Triple struct {
	Major uint
	Minor uint
	Patch uint
}

// Zero is the absent-version sentinel. Parse returns it for unparseable
// input and a Snapshot Store reports it as the latest version of an
// empty history.
var Zero = Triple{}

// Initial is the version a file gets when tracking starts.
var Initial = Triple{Minor: 1}

// Parse reads "M.m.p", zero-padding missing components. Any component
// that is not an unsigned decimal clamps the whole result to Zero;
// parsing never fails.
func Parse(s string) Triple {
	parts := strings.Split(s, ".")
	nums := make([]uint, 0, 3)
	for _, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return Zero
		}
		nums = append(nums, uint(n))
	}
	for len(nums) < 3 {
		nums = append(nums, 0)
	}
	return Triple{Major: nums[0], Minor: nums[1], Patch: nums[2]}
}

func (t Triple) String() string {
	return fmt.Sprintf("%d.%d.%d", t.Major, t.Minor, t.Patch)
}

// IsZero reports whether t is the absent sentinel.
func (t Triple) IsZero() bool { return t == Zero }

// Compare orders t against o, returning -1, 0 or 1.
func (t Triple) Compare(o Triple) int {
	switch {
	case t.Major != o.Major:
		return cmp(t.Major, o.Major)
	case t.Minor != o.Minor:
		return cmp(t.Minor, o.Minor)
	default:
		return cmp(t.Patch, o.Patch)
	}
}

func cmp(a, b uint) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// MarshalText renders t as "M.m.p" so histories and manifests store
// versions as plain strings.
func (t Triple) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses with the same clamping rules as Parse.
func (t *Triple) UnmarshalText(b []byte) error {
	*t = Parse(string(b))
	return nil
}

// Kind selects which component a bump advances.
type Kind int

const (
	Minor Kind = iota
	Major
	Patch
)

// Bump returns the next version: major resets minor and patch, patch
// keeps both, minor (the default) resets patch.
func (t Triple) Bump(k Kind) Triple {
	switch k {
	case Major:
		return Triple{Major: t.Major + 1}
	case Patch:
		return Triple{Major: t.Major, Minor: t.Minor, Patch: t.Patch + 1}
	default:
		return Triple{Major: t.Major, Minor: t.Minor + 1}
	}
}

// KindFromFlags resolves bump request flags. When several are set the
// precedence is major > patch > minor.
func KindFromFlags(major, minor, patch bool) Kind {
	switch {
	case major:
		return Major
	case patch:
		return Patch
	case minor:
		return Minor
	default:
		return Minor
	}
}
