package transition_test

import (
	"fmt"

	"github.com/katalvlaran/markov/transition"
)

// ExampleTable_Next builds a tiny first-order table, normalizes it and
// samples with hand-picked draws.
//
// Scenario:
//
//	Two states. From state 0 the chain strongly prefers state 1; from
//	state 1 it strongly prefers state 0 (raw weights, unnormalized).
func ExampleTable_Next() {
	tbl, err := transition.New(1, 2, []float64{
		1, 3, // from 0: weights toward 0 and 1
		9, 1, // from 1: weights toward 0 and 1
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("degenerate rows:", tbl.Normalize())

	// Probabilities after normalization.
	p01, _ := tbl.Probability(0, 1)
	p10, _ := tbl.Probability(1, 0)
	fmt.Printf("P(1|0)=%.2f P(0|1)=%.2f\n", p01, p10)

	// A small draw lands in the first weighted band, a large one past it.
	low, _ := tbl.Next([]int{0}, 0.10)
	high, _ := tbl.Next([]int{0}, 0.90)
	fmt.Println("draw 0.10 ->", low)
	fmt.Println("draw 0.90 ->", high)

	// Output:
	// degenerate rows: 0
	// P(1|0)=0.75 P(0|1)=0.90
	// draw 0.10 -> 0
	// draw 0.90 -> 1
}
