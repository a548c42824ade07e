package matcher

import (
	"math"
	"sort"
)

// assignOptimal picks the set of 1:1 pairs above floor with the largest total composite
// score, using the Hungarian method on a square cost matrix. Ineligible and padding cells
// cost 1 (zero benefit), eligible cells cost 1 - score.
func assignOptimal(ledger, external []record, floor float64) []pair {
	n, m := len(ledger), len(external)
	if n == 0 || m == 0 {
		return nil
	}

	scores := make([][]float64, n)
	eligible := make([][]bool, n)
	for i := range ledger {
		scores[i] = make([]float64, m)
		eligible[i] = make([]bool, m)
		for j := range external {
			s := compositeScore(ledger[i], external[j])
			scores[i][j] = s
			eligible[i][j] = s > floor
		}
	}

	cost := func(i, j int) float64 {
		if i < n && j < m && eligible[i][j] {
			return 1 - scores[i][j]
		}
		return 1
	}

	size := max(n, m)
	// 1-indexed potentials; p[j] is the row assigned to column j, way[] the augmenting path.
	u := make([]float64, size+1)
	v := make([]float64, size+1)
	p := make([]int, size+1)
	way := make([]int, size+1)

	for i := 1; i <= size; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, size+1)
		used := make([]bool, size+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := 0

			for j := 1; j <= size; j++ {
				if used[j] {
					continue
				}
				cur := cost(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= size; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	var pairs []pair
	for j := 1; j <= size; j++ {
		i, col := p[j]-1, j-1
		if i < 0 || i >= n || col >= m || !eligible[i][col] {
			continue
		}
		pairs = append(pairs, pair{ledger: i, external: col, score: scores[i][col]})
	}

	sort.Slice(pairs, func(a, b int) bool { return pairs[a].ledger < pairs[b].ledger })
	return pairs
}
