package funcfmt

import "math"

func checkedAdd(a, b int) (int, error) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, ErrOverflow
	}

	return c, nil
}

func checkedSub(a, b int) (int, error) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, ErrOverflow
	}

	return c, nil
}

func checkedMul(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, ErrOverflow
	}
	c := a * b
	if c/b != a {
		return 0, ErrOverflow
	}

	return c, nil
}
