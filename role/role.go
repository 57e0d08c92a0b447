package role

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ErrUnknownRole is returned when a value does not decode to a member of the
// role universe.
var ErrUnknownRole = errors.New("unknown role")

// Role is an accessibility role code.
type Role uint8

// Valid reports whether r belongs to the role universe.
func (r Role) Valid() bool {
	return int(r) < Count
}

// String returns the AT-SPI display name, or "role(N)" for codes outside the
// universe.
func (r Role) String() string {
	if !r.Valid() {
		return "role(" + strconv.Itoa(int(r)) + ")"
	}
	return names[r]
}

// byName maps normalized display names to roles.
var byName = func() map[string]Role {
	m := make(map[string]Role, Count)
	for i, n := range names {
		m[normalize(n)] = Role(i)
	}
	return m
}()

// normalize folds case and treats '_', '-' and ' ' as the same separator.
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(c rune) rune {
		switch c {
		case '_', '-', ' ':
			return ' '
		}
		return c
	}, name)
}

// Parse resolves a display name such as "push button", "PUSH_BUTTON" or
// "push-button".
func Parse(name string) (Role, error) {
	if r, ok := byName[normalize(name)]; ok {
		return r, nil
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// FromCode converts an integer code, rejecting anything outside 0..Count-1.
func FromCode(code int) (Role, error) {
	if code < 0 || code >= Count {
		return Invalid, fmt.Errorf("%w: code %d", ErrUnknownRole, code)
	}
	return Role(code), nil
}

// All yields every role in ascending code order.
func All() iter.Seq[Role] {
	return func(yield func(Role) bool) {
		for i := range Count {
			if !yield(Role(i)) {
				return
			}
		}
	}
}

// MarshalJSON encodes the role as its integer code.
func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: code %d", ErrUnknownRole, r)
	}
	return strconv.AppendUint(nil, uint64(r), 10), nil
}

// UnmarshalJSON accepts an integer code or a display name.
func (r *Role) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty value", ErrUnknownRole)
	}

	if data[0] == '"' {
		name, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownRole, data)
		}
		parsed, err := Parse(name)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	code, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownRole, data)
	}
	parsed, err := FromCode(code)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
