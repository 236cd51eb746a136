// Package border builds per-cell border colors and applies them to a grid configuration.
//
// Builder tracks in its type parameters which sides have been colored, so a
// corner can only be colored once both of its sides are:
//
//	b := border.New().Top(red).Left(green)
//	desc := border.TopLeft(b, magenta).Descriptor()
//
// border.TopLeft(border.New().Top(red), magenta) does not compile.
package border

import "github.com/dasdy/tabstyle/grid"

// On marks a side as set.
type On struct{}

// Off marks a side as not set.
type Off struct{}

// Marker is the state of one side.
type Marker interface {
	On | Off
}

// Builder assembles a grid.Border of colors. T, B, L and R record whether the
// top, bottom, left and right sides are set. Every method returns a new
// builder; the receiver is never modified. A side set to the empty color is
// still set.
//
// Start from New, Full or Filled. A zero Builder with On markers, such as
// Builder[On, Off, On, Off]{}, claims sides it never stored and bypasses the
// staging.
type Builder[T, B, L, R Marker] struct {
	inner grid.Border[grid.Color]
}

func from[T, B, L, R Marker](inner grid.Border[grid.Color]) Builder[T, B, L, R] {
	return Builder[T, B, L, R]{inner: inner}
}

// New returns a builder with nothing set.
func New() Builder[Off, Off, Off, Off] {
	return Builder[Off, Off, Off, Off]{}
}

// Full sets all eight slots at once.
func Full(top, bottom, left, right, topLeft, topRight, bottomLeft, bottomRight grid.Color) Builder[On, On, On, On] {
	return from[On, On, On, On](grid.Border[grid.Color]{}.
		With(grid.SlotTop, top).
		With(grid.SlotBottom, bottom).
		With(grid.SlotLeft, left).
		With(grid.SlotRight, right).
		With(grid.SlotTopLeft, topLeft).
		With(grid.SlotTopRight, topRight).
		With(grid.SlotBottomLeft, bottomLeft).
		With(grid.SlotBottomRight, bottomRight))
}

// Filled behaves like Full with the same color in every slot.
func Filled(c grid.Color) Builder[On, On, On, On] {
	return Full(c, c, c, c, c, c, c, c)
}

func (b Builder[T, B, L, R]) Top(c grid.Color) Builder[On, B, L, R] {
	b.inner = b.inner.With(grid.SlotTop, c)

	return from[On, B, L, R](b.inner)
}

func (b Builder[T, B, L, R]) Bottom(c grid.Color) Builder[T, On, L, R] {
	b.inner = b.inner.With(grid.SlotBottom, c)

	return from[T, On, L, R](b.inner)
}

func (b Builder[T, B, L, R]) Left(c grid.Color) Builder[T, B, On, R] {
	b.inner = b.inner.With(grid.SlotLeft, c)

	return from[T, B, On, R](b.inner)
}

func (b Builder[T, B, L, R]) Right(c grid.Color) Builder[T, B, L, On] {
	b.inner = b.inner.With(grid.SlotRight, c)

	return from[T, B, L, On](b.inner)
}

// Descriptor returns the assembled border colors.
func (b Builder[T, B, L, R]) Descriptor() grid.Border[grid.Color] {
	return b.inner
}

// Go methods cannot narrow the receiver's type parameters, so the corner
// setters are functions constrained on the builder they accept.

// TopLeft colors the top left corner of a builder with top and left set.
func TopLeft[B, R Marker](b Builder[On, B, On, R], c grid.Color) Builder[On, B, On, R] {
	b.inner = b.inner.With(grid.SlotTopLeft, c)

	return b
}

// TopRight colors the top right corner of a builder with top and right set.
func TopRight[B, L Marker](b Builder[On, B, L, On], c grid.Color) Builder[On, B, L, On] {
	b.inner = b.inner.With(grid.SlotTopRight, c)

	return b
}

// BottomLeft colors the bottom left corner of a builder with bottom and left set.
func BottomLeft[T, R Marker](b Builder[T, On, On, R], c grid.Color) Builder[T, On, On, R] {
	b.inner = b.inner.With(grid.SlotBottomLeft, c)

	return b
}

// BottomRight colors the bottom right corner of a builder with bottom and right set.
func BottomRight[T, L Marker](b Builder[T, On, L, On], c grid.Color) Builder[T, On, L, On] {
	b.inner = b.inner.With(grid.SlotBottomRight, c)

	return b
}
