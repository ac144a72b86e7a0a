package fullsearch_test

import (
	"fmt"
	"sort"

	"github.com/JaviLunes/AdventCodeTools/fullsearch"
)

////////////////////////////////////////////////////////////////////////////////
// Example: All over a small successor relation
////////////////////////////////////////////////////////////////////////////////

// ExampleAll sweeps a four-state relation where one state is reachable
// via two different paths and another is not reachable at all.
func ExampleAll() {
	w := web{
		"start": {"B", "C"},
		"B":     {"D"},
		"C":     {"D"},
		"E":     {"start"}, // nothing reaches E
	}

	result, _ := fullsearch.All(w.at("start"))

	reached := make([]string, 0, len(result))
	for id := range result {
		reached = append(reached, id)
	}
	sort.Strings(reached)
	fmt.Println("reached:", reached)

	// Output:
	// reached: [B C D start]
}
