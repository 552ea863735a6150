package scanfill_test

import (
	"fmt"

	"github.com/katalvlaran/floodfill/raster"
	"github.com/katalvlaran/floodfill/scanfill"
)

// ExampleFill fills the left half of a grid split by a wall with a
// one-row gap; the fill squeezes through the gap into the right half.
// No cell is inspected more than twice: the wall above the gap is probed
// once by the run that found the gap and once more by the back-tracking
// work item pushed from the right half.
func ExampleFill() {
	mask, _ := raster.ParseMask(`
		..#..
		..#..
		.....
		..#..
	`)
	counts, _ := raster.NewCounts(mask.Width(), mask.Height())

	stats, err := scanfill.Fill(0, 0, mask, counts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(mask)
	fmt.Println("filled:", stats.Filled)
	fmt.Println("max visits per cell:", counts.Max())

	// Output:
	// #####
	// #####
	// #####
	// #####
	// filled: 17
	// max visits per cell: 2
}

// ExampleWithOnColumn traces the vertical runs in the order they are filled.
func ExampleWithOnColumn() {
	mask, _ := raster.ParseMask(`
		...
		.#.
		...
	`)
	trace := scanfill.WithOnColumn(func(col, top, bottom int) {
		fmt.Printf("col %d rows %d..%d\n", col, top, bottom)
	})

	_, _ = scanfill.Fill(1, 0, mask, nil, trace)

	// Output:
	// col 1 rows 0..0
	// col 0 rows 0..2
	// col 1 rows 2..2
	// col 2 rows 0..2
}
