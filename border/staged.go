package border

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dasdy/tabstyle/grid"
)

// ErrCornerWithoutSides is matched by every CornerError.
var ErrCornerWithoutSides = errors.New("corner color requires both adjacent sides")

// CornerError reports a corner colored before its sides.
type CornerError struct {
	Corner  grid.Slot
	Missing []grid.Slot
}

func (e *CornerError) Error() string {
	missing := make([]string, len(e.Missing))
	for i, s := range e.Missing {
		missing[i] = s.String()
	}

	return fmt.Sprintf("cannot set %s: missing %s", e.Corner, strings.Join(missing, " and "))
}

func (e *CornerError) Is(target error) bool {
	return target == ErrCornerWithoutSides
}

// Staged is the run-time checked counterpart of Builder, for colors coming
// from configuration files, flags or storage. A side counts as set once it
// is present, whatever color it holds.
type Staged struct {
	inner grid.Border[grid.Color]
}

func NewStaged() Staged {
	return Staged{}
}

// StagedFrom starts from an existing descriptor. Its present sides count as set.
func StagedFrom(desc grid.Border[grid.Color]) Staged {
	return Staged{inner: desc}
}

// Set returns a new Staged with the slot colored. Coloring a corner before
// both of its sides fails.
func (s Staged) Set(slot grid.Slot, c grid.Color) (Staged, error) {
	if slot.IsCorner() {
		var missing []grid.Slot

		for _, side := range slot.Sides() {
			if !s.inner.Has(side) {
				missing = append(missing, side)
			}
		}

		if len(missing) > 0 {
			return s, &CornerError{Corner: slot, Missing: missing}
		}
	}

	s.inner = s.inner.With(slot, c)

	return s, nil
}

// SetAll sets every present slot of desc, sides before corners.
func (s Staged) SetAll(desc grid.Border[grid.Color]) (Staged, error) {
	var err error

	for slot, c := range desc.All() {
		s, err = s.Set(slot, c)
		if err != nil {
			return s, err
		}
	}

	return s, nil
}

func (s Staged) Descriptor() grid.Border[grid.Color] {
	return s.inner
}
