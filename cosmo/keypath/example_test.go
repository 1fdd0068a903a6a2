package keypath_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath/cosmo/keypath"
)

func ExampleClassify() {
	flat, _ := keypath.Classify("grafos/fiducial/graph_000.xml", "000")
	nested, _ := keypath.Classify("grafos/latin_hypercube/17/graph_000.xml", "000")
	fmt.Println(flat.Shape, flat)
	fmt.Println(nested.Shape, nested)
	// Output:
	// flat fiducial/000
	// nested latin_hypercube/17/000
}
