package wisdom_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fpt/fpt/wisdom"
)

func ExamplePrecompute() {
	w, err := wisdom.Precompute(16, wisdom.AssociatedLegendre(), wisdom.WithThreshold(math.Inf(1)))
	if err != nil {
		panic(err)
	}
	st, err := w.Stats(0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("t=%d N=%d blocks=%d unstable=%d\n", w.Levels(), w.Size(), st.Blocks, st.Unstable)
	// Output: t=4 N=16 blocks=7 unstable=0
}
