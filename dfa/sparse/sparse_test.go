package sparse

import "testing"

func TestMatrixSetAndGet(t *testing.T) {
	M := NewIntMatrix(13, 13, DefaultNullValue)
	if M.M() != 13 || M.N() != 13 {
		t.Errorf("expected 13 x 13 matrix, have %d x %d", M.M(), M.N())
	}
	M.Set(8, 8, 4).Set(0, 4, 1).Set(5, 10, 3).Set(2, 5, 2)
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 values, have %d", M.ValueCount())
	}
	for _, x := range [][3]int{{0, 4, 1}, {2, 5, 2}, {5, 10, 3}, {8, 8, 4}} {
		if v := M.Value(x[0], x[1]); v != int32(x[2]) {
			t.Errorf("expected M(%d,%d) = %d, is %d", x[0], x[1], x[2], v)
		}
	}
	if v := M.Value(4, 0); v != M.NullValue() {
		t.Errorf("expected null value at (4,0), have %d", v)
	}
}

func TestMatrixOverwrite(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(1, 1, 7)
	M.Set(1, 1, 8)
	if M.ValueCount() != 1 || M.Value(1, 1) != 8 {
		t.Errorf("expected single overwritten value 8, have %d values, M(1,1)=%d", M.ValueCount(), M.Value(1, 1))
	}
}

func TestMatrixEachInOrder(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(3, 1, 1).Set(0, 2, 2).Set(3, 0, 3)
	var rows, cols []int
	M.Each(func(i, j int, v int32) {
		rows = append(rows, i)
		cols = append(cols, j)
	})
	if len(rows) != 3 || rows[0] != 0 || rows[1] != 3 || cols[1] != 0 || cols[2] != 1 {
		t.Errorf("expected row-major order, have rows=%v cols=%v", rows, cols)
	}
}

func TestMatrixSetOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Set outside of matrix to panic")
		}
	}()
	NewIntMatrix(2, 2, -1).Set(2, 0, 1)
}
