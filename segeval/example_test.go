package segeval_test

import (
	"fmt"

	"github.com/katalvlaran/rwseg/segeval"
)

// ExampleEvaluate scores a segmentation on unseeded nodes only.
func ExampleEvaluate() {
	pred := []int{1, 1, 2, 2, 2, 2}
	truth := []int{1, 1, 1, 2, 2, 2}
	seeds := []int{1, 0, 0, 0, 0, 2}

	rep, err := segeval.Evaluate(pred, truth, seeds)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("n=%d accuracy=%.2f\n", rep.N, rep.Accuracy)
	// Output: n=4 accuracy=0.75
}
