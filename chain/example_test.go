package chain_test

import (
	"fmt"

	"github.com/katalvlaran/markov/chain"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewFromMatrix
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A two-state chain with the deterministic alternation matrix:
//	from A always move to B, from B always move to A. The output is
//	the same for every seed, which makes it a safe runnable example.
//
// ExampleNewFromMatrix demonstrates the order-1 convenience constructor
// and the typed accessors.
func ExampleNewFromMatrix() {
	c, err := chain.NewFromMatrix([]string{"A", "B"}, [][]float64{
		{0, 1}, // from A
		{1, 0}, // from B
	}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for i := 0; i < 4; i++ {
		fmt.Print(c.Next(), " ")
	}
	fmt.Println()
	fmt.Println("current:", c.Current(), "previous:", c.Previous())

	// Output:
	// B A B A
	// current: A previous: B
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleChain_ResetHistory
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	An order-2 chain whose next state is always the opposite of the
//	current one. After a few steps the history is rewound to the
//	initial window and the sequence restarts identically.
func ExampleChain_ResetHistory() {
	cube := [][][]float64{
		{{0, 1}, {1, 0}}, // previous A
		{{0, 1}, {1, 0}}, // previous B
	}

	c, err := chain.NewFromCube([]string{"A", "B"}, cube, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	first := []string{c.Next(), c.Next(), c.Next()}
	c.ResetHistory()
	second := []string{c.Next(), c.Next(), c.Next()}

	fmt.Println(first)
	fmt.Println(second)

	// Output:
	// [B A B]
	// [B A B]
}
