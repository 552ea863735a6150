package raster_test

import (
	"fmt"

	"github.com/katalvlaran/floodfill/raster"
)

// ExampleParseMask shows the ASCII-art format and the column-major view:
// Column(2) walks the wall from top to bottom.
func ExampleParseMask() {
	m, err := raster.ParseMask(`
		..#..
		..#..
		.....
	`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%dx%d, %d blocked\n", m.Width(), m.Height(), m.CountTrue())
	fmt.Println("column 2:", m.Column(2))
	fmt.Print(m)

	// Output:
	// 5x3, 2 blocked
	// column 2: [true true false]
	// ..#..
	// ..#..
	// .....
}
