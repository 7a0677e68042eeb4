package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-slidewin/dsp/buffer"
)

func ExamplePlane() {
	p := buffer.New[int](3, 2)
	copy(p.Samples(), []int{1, 2, 3, 4, 5, 6})

	fmt.Println(p.Row(1))
	fmt.Println(p.At(2, 0), p.Len())

	// Output:
	// [4 5 6]
	// 3 6
}
