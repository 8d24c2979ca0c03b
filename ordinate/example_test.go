package ordinate_test

import (
	"fmt"

	"github.com/katalvlaran/topology/ordinate"
)

func ExampleOrd_Near() {
	a := ordinate.Ord(1.0)
	b := ordinate.Ord(1.0000001)
	fmt.Println(a.Near(b, ordinate.DefaultEpsilon))
	// Output: true
}
