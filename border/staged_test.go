package border_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/dasdy/tabstyle/border"
	"github.com/dasdy/tabstyle/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagedRejectsCornersWithoutSides(t *testing.T) {
	corners := []grid.Slot{grid.SlotTopLeft, grid.SlotTopRight, grid.SlotBottomLeft, grid.SlotBottomRight}

	for _, corner := range corners {
		sides := corner.Sides()

		// every subset of the two prerequisites except the full one
		subsets := [][]grid.Slot{{}, {sides[0]}, {sides[1]}}

		for _, present := range subsets {
			t.Run(subsetName(corner, present), func(t *testing.T) {
				staged := border.NewStaged()

				var err error
				for _, side := range present {
					staged, err = staged.Set(side, red)
					require.NoError(t, err)
				}

				before := staged.Descriptor()

				_, err = staged.Set(corner, magenta)

				require.ErrorIs(t, err, border.ErrCornerWithoutSides)

				var cornerErr *border.CornerError
				require.True(t, errors.As(err, &cornerErr))
				assert.Equal(t, corner, cornerErr.Corner)
				assert.Len(t, cornerErr.Missing, 2-len(present))
				assert.Contains(t, err.Error(), corner.String())
				assert.Equal(t, before, staged.Descriptor())
			})
		}
	}
}

// subsetName names a case after the corner and the prerequisites it lacks, e.g. top_left/missing_top.
func subsetName(corner grid.Slot, present []grid.Slot) string {
	var missing []string

	for _, side := range corner.Sides() {
		if !slices.Contains(present, side) {
			missing = append(missing, side.String())
		}
	}

	return corner.String() + "/missing_" + strings.Join(missing, "_and_")
}

func TestStagedAcceptsCornersAfterSides(t *testing.T) {
	staged, err := border.NewStaged().Set(grid.SlotTop, red)
	require.NoError(t, err)

	staged, err = staged.Set(grid.SlotLeft, green)
	require.NoError(t, err)

	staged, err = staged.Set(grid.SlotTopLeft, magenta)
	require.NoError(t, err)

	assert.Equal(t,
		border.TopLeft(border.New().Top(red).Left(green), magenta).Descriptor(),
		staged.Descriptor())
}

func TestStagedSetAll(t *testing.T) {
	t.Run("sides are set before corners", func(t *testing.T) {
		desc := grid.BorderOf(slots{grid.SlotBottom: blue, grid.SlotRight: red, grid.SlotBottomRight: green})

		staged, err := border.NewStaged().SetAll(desc)

		require.NoError(t, err)
		assert.Equal(t, desc, staged.Descriptor())
	})

	t.Run("reports the first invalid corner", func(t *testing.T) {
		_, err := border.NewStaged().SetAll(grid.BorderOf(slots{grid.SlotTop: red, grid.SlotTopRight: green}))

		var cornerErr *border.CornerError
		require.ErrorAs(t, err, &cornerErr)
		assert.Equal(t, grid.SlotTopRight, cornerErr.Corner)
		assert.Equal(t, []grid.Slot{grid.SlotRight}, cornerErr.Missing)
		assert.Equal(t, "cannot set top_right: missing right", err.Error())
	})

	t.Run("starting descriptor counts as set sides", func(t *testing.T) {
		staged, err := border.StagedFrom(border.Filled(red).Descriptor()).
			SetAll(grid.BorderOf(slots{grid.SlotBottomLeft: blue}))

		require.NoError(t, err)
		assert.Equal(t, border.BottomLeft(border.Filled(red), blue).Descriptor(), staged.Descriptor())
	})

	t.Run("an empty color still needs the sides of a corner", func(t *testing.T) {
		_, err := border.NewStaged().Set(grid.SlotTopLeft, "")

		require.ErrorIs(t, err, border.ErrCornerWithoutSides)
	})

	t.Run("sides set to the empty color count as set", func(t *testing.T) {
		staged, err := border.NewStaged().SetAll(
			grid.BorderOf(slots{grid.SlotTop: "", grid.SlotLeft: "", grid.SlotTopLeft: magenta}))

		require.NoError(t, err)
		assert.Equal(t, border.TopLeft(border.New().Top("").Left(""), magenta).Descriptor(), staged.Descriptor())
	})
}
