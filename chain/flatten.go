package chain

// flattenSquare row-major flattens an n×n matrix into the engine
// layout for order 1: offset(x,y) = x*n + y, with y the candidate next
// state. Returns ErrMatrixShape unless the matrix is square over n.
func flattenSquare(n int, m [][]float64) ([]float64, error) {
	if len(m) != n {
		return nil, ErrMatrixShape
	}

	out := make([]float64, 0, n*n)
	for _, row := range m {
		if len(row) != n {
			return nil, ErrMatrixShape
		}
		out = append(out, row...)
	}

	return out, nil
}

// flattenCube row-major flattens an n×n×n matrix into the engine
// layout for order 2: offset(x,y,z) = (x*n+y)*n + z, with z the
// candidate next state. Returns ErrMatrixShape unless the matrix is
// cubical over n.
func flattenCube(n int, m [][][]float64) ([]float64, error) {
	if len(m) != n {
		return nil, ErrMatrixShape
	}

	out := make([]float64, 0, n*n*n)
	for _, plane := range m {
		if len(plane) != n {
			return nil, ErrMatrixShape
		}
		for _, row := range plane {
			if len(row) != n {
				return nil, ErrMatrixShape
			}
			out = append(out, row...)
		}
	}

	return out, nil
}
