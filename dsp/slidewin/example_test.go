package slidewin_test

import (
	"fmt"

	"github.com/cwbudde/algo-slidewin/dsp/buffer"
	"github.com/cwbudde/algo-slidewin/dsp/slidewin"
)

func ExampleEngine_ProcessFrame() {
	e, err := slidewin.New(slidewin.Config[int]{
		ImageWidth: 4, ImageHeight: 3,
		WindowWidth: 3, WindowHeight: 3,
		BorderEnabled: true,
	})
	if err != nil {
		panic(err)
	}

	frame := buffer.New[int](4, 3)
	for i := range frame.Samples() {
		frame.Samples()[i] = i
	}

	_ = e.ProcessFrame(frame, func(o slidewin.Output[int]) {
		if o.Col == 1 && o.Row == 1 {
			for r := range o.Window.Height() {
				fmt.Println(o.Window.Row(r))
			}
		}
	})

	// Output:
	// [0 1 2]
	// [4 5 6]
	// [8 9 10]
}

func ExampleEngine_Step() {
	e, _ := slidewin.New(slidewin.Config[int]{
		ImageWidth: 2, ImageHeight: 2,
		WindowWidth: 1, WindowHeight: 1,
	})

	in := []slidewin.Sample[int]{
		{Value: 7, Col: 0, Row: 0, Valid: true},
		{Value: 8, Col: 1, Row: 0, Valid: true},
		{}, {},
	}
	for tick, s := range in {
		o := e.Step(s)
		fmt.Println(tick, o.Valid, o.Window.At(0, 0))
	}

	// Output:
	// 0 false 0
	// 1 false 0
	// 2 true 7
	// 3 true 8
}
