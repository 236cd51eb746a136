package grid

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is an opaque styling instruction. The core stores colors without
// interpreting them; the empty color is a valid value.
type Color = lipgloss.Color

// Border describes the attributes of the eight border slots of one cell.
//
//	TopLeft ----> +-------+ <---- TopRight
//	              |       |
//	Left -------> | cell  | <---- Right
//	              |       |
//	BottomLeft -> +-------+ <---- BottomRight
//
// Every slot is either absent or holds a value, including the zero value of T.
// The zero Border has every slot absent. Borders are comparable.
type Border[T comparable] struct {
	values  [slotCount]T
	present uint8
}

// Slot names one of the eight attributes of a Border.
type Slot int

const (
	SlotTop Slot = iota
	SlotBottom
	SlotLeft
	SlotRight
	SlotTopLeft
	SlotTopRight
	SlotBottomLeft
	SlotBottomRight

	slotCount = 8
)

var ErrUnknownSlot = errors.New("unknown border slot")

var slotNames = [...]string{
	SlotTop:         "top",
	SlotBottom:      "bottom",
	SlotLeft:        "left",
	SlotRight:       "right",
	SlotTopLeft:     "top_left",
	SlotTopRight:    "top_right",
	SlotBottomLeft:  "bottom_left",
	SlotBottomRight: "bottom_right",
}

// Slots lists every slot, sides first.
func Slots() []Slot {
	return []Slot{
		SlotTop, SlotBottom, SlotLeft, SlotRight,
		SlotTopLeft, SlotTopRight, SlotBottomLeft, SlotBottomRight,
	}
}

func (s Slot) String() string {
	if s < 0 || int(s) >= len(slotNames) {
		return fmt.Sprintf("slot(%d)", int(s))
	}

	return slotNames[s]
}

// IsCorner reports whether the slot is an intersection of two sides.
func (s Slot) IsCorner() bool {
	return s >= SlotTopLeft && s <= SlotBottomRight
}

// Sides returns the two sides meeting at a corner, or nil for a side.
func (s Slot) Sides() []Slot {
	switch s {
	case SlotTopLeft:
		return []Slot{SlotTop, SlotLeft}
	case SlotTopRight:
		return []Slot{SlotTop, SlotRight}
	case SlotBottomLeft:
		return []Slot{SlotBottom, SlotLeft}
	case SlotBottomRight:
		return []Slot{SlotBottom, SlotRight}
	default:
		return nil
	}
}

// ParseSlot accepts slot names with either '_' or '-' separators, in any case.
func ParseSlot(name string) (Slot, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")

	for i, n := range slotNames {
		if n == normalized {
			return Slot(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSlot, name)
}

// BorderOf returns a Border with exactly the given slots present.
func BorderOf[T comparable](slots map[Slot]T) Border[T] {
	var b Border[T]

	for s, v := range slots {
		b = b.With(s, v)
	}

	return b
}

func (s Slot) valid() bool {
	return s >= 0 && s < slotCount
}

func (s Slot) bit() uint8 {
	return 1 << uint(s)
}

// Get returns the value stored in the slot and whether the slot is present.
func (b Border[T]) Get(s Slot) (T, bool) {
	if !b.Has(s) {
		var zero T

		return zero, false
	}

	return b.values[s], true
}

// With returns a copy of b with the slot present and holding v.
func (b Border[T]) With(s Slot, v T) Border[T] {
	if !s.valid() {
		return b
	}

	b.values[s] = v
	b.present |= s.bit()

	return b
}

// Without returns a copy of b with the slot absent.
func (b Border[T]) Without(s Slot) Border[T] {
	if !s.valid() {
		return b
	}

	var zero T

	b.values[s] = zero
	b.present &^= s.bit()

	return b
}

func (b Border[T]) Has(s Slot) bool {
	return s.valid() && b.present&s.bit() != 0
}

func (b Border[T]) IsEmpty() bool {
	return b.present == 0
}

// All iterates over the present slots, sides before corners.
func (b Border[T]) All() iter.Seq2[Slot, T] {
	return func(yield func(Slot, T) bool) {
		for _, s := range Slots() {
			if v, ok := b.Get(s); ok && !yield(s, v) {
				return
			}
		}
	}
}

// Merge upserts every present attribute of other into b, leaving the rest of b untouched.
func (b Border[T]) Merge(other Border[T]) Border[T] {
	for s, v := range other.All() {
		b = b.With(s, v)
	}

	return b
}
