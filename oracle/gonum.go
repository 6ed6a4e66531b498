package oracle

import "gonum.org/v1/gonum/mat"

// Gonum is the default Oracle, backed by gonum's LU-decomposition
// determinant. It is plain floating point: fast, and exact enough for
// the vast majority of inputs, but not immune to catastrophic
// cancellation on genuinely degenerate input. Callers that need a
// hard exactness guarantee should supply their own Oracle (exact
// rational, interval, or adaptive-precision) instead.
type Gonum struct{}

// SignDet implements Oracle using mat.Dense.Det. A 0x0 matrix (every
// column eliminated) has determinant 1 by convention, matching the
// cascade's own fully-degenerate terminal case.
func (Gonum) SignDet(rows [][]float64) float64 {
	n := len(rows)
	if n == 0 {
		return 1
	}
	data := make([]float64, 0, n*n)
	for _, r := range rows {
		data = append(data, r...)
	}
	m := mat.NewDense(n, n, data)
	return mat.Det(m)
}
