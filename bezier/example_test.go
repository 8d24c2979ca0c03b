package bezier_test

import (
	"fmt"

	"github.com/katalvlaran/topology/bezier"
	"github.com/katalvlaran/topology/ordinate"
)

func ExampleSegment_Evaluate() {
	s, _ := bezier.New(
		bezier.ControlPoint{In: 0, Out: 0},
		bezier.ControlPoint{In: 1, Out: 1},
		bezier.ControlPoint{In: 2, Out: 2},
		bezier.ControlPoint{In: 3, Out: 3},
	)
	p := s.Evaluate(ordinate.Ord(0.5))
	fmt.Printf("%.2f\n", float64(p.In))
	// Output: 1.50
}
