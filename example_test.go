package fixvec_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/fixvec"
)

func ExampleVector_Abs() {
	v, _ := fixvec.Of[float32](10, -10, 5)

	a, _ := v.Abs()
	fmt.Println(a)
	// Output: Vec3(10, 10, 5)
}

func ExampleVector_At() {
	v, _ := fixvec.Of[int32](7, 8, 9)

	x, _ := v.At(1)
	fmt.Println(x)

	_, err := v.At(5)
	fmt.Println(err)
	// Output:
	// 8
	// index out of range: 5 with dimension 3
}

func ExampleAbsAll() {
	a, _ := fixvec.Of[int32](-1, 2)
	b, _ := fixvec.Of[int32](3, -4)

	out, _ := fixvec.AbsAll(context.Background(), []*fixvec.Vector[int32]{a, b})
	for _, v := range out {
		fmt.Println(v)
	}
	// Output:
	// Vec2(1, 2)
	// Vec2(3, 4)
}
