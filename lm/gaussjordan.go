package lm

import "math"

// pivotEpsilon is the pivot-magnitude floor below which the normal
// equations are declared singular (§4.10).
const pivotEpsilon = 1e-12

// gaussJordan solves a*x = b for every column of b simultaneously, using
// full pivoting: at each step it searches the entire remaining submatrix
// for the largest-magnitude candidate pivot, not just the current column.
// a and b are overwritten in place; on return a holds a^-1 and b holds
// the solution (or a^-1 * original b). Returns ErrSingular if any pivot
// falls below pivotEpsilon.
func gaussJordan(a, b [][]float64) error {
	n := len(a)
	m := 0
	if n > 0 {
		m = len(b[0])
	}

	ipiv := make([]int, n)
	indxr := make([]int, n)
	indxc := make([]int, n)

	for i := 0; i < n; i++ {
		big := -1.0
		irow, icol := -1, -1
		for j := 0; j < n; j++ {
			if ipiv[j] == 1 {
				continue
			}
			for k := 0; k < n; k++ {
				if ipiv[k] != 0 {
					continue
				}
				if v := math.Abs(a[j][k]); v > big {
					big = v
					irow, icol = j, k
				}
			}
		}
		ipiv[icol]++

		if irow != icol {
			a[irow], a[icol] = a[icol], a[irow]
			b[irow], b[icol] = b[icol], b[irow]
		}
		indxr[i] = irow
		indxc[i] = icol

		if math.Abs(a[icol][icol]) < pivotEpsilon {
			return ErrSingular
		}
		pivinv := 1.0 / a[icol][icol]
		a[icol][icol] = 1
		for k := range a[icol] {
			a[icol][k] *= pivinv
		}
		for k := range b[icol] {
			b[icol][k] *= pivinv
		}

		for ll := 0; ll < n; ll++ {
			if ll == icol {
				continue
			}
			dum := a[ll][icol]
			a[ll][icol] = 0
			for k := 0; k < n; k++ {
				a[ll][k] -= a[icol][k] * dum
			}
			for k := 0; k < m; k++ {
				b[ll][k] -= b[icol][k] * dum
			}
		}
	}

	for l := n - 1; l >= 0; l-- {
		if indxr[l] == indxc[l] {
			continue
		}
		for k := 0; k < n; k++ {
			a[k][indxr[l]], a[k][indxc[l]] = a[k][indxc[l]], a[k][indxr[l]]
		}
	}
	return nil
}

func cloneMatrix(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func identity(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}
	return out
}
