package pixel_test

import (
	"fmt"

	"github.com/JaviLunes/AdventCodeTools/pixel"
)

// ExampleParser_Decode reads a two-letter screen print.
func ExampleParser_Decode() {
	p, _ := pixel.New()
	word, _ := p.Decode([]string{
		".##...##..",
		"#..#.#..#.",
		"#....#..#.",
		"#.##.#..#.",
		"#..#.#..#.",
		".###..##..",
	})
	fmt.Println(word)
	// Output:
	// GO
}
