package metrics

// CleanLabels filters refLabels/currentLabels down to the positions
// where neither side is -1 ("not observed").
func CleanLabels(refLabels, currentLabels []int) (cleanRef, cleanCurrent []int) {
	n := len(refLabels)
	if len(currentLabels) < n {
		n = len(currentLabels)
	}

	for i := 0; i < n; i++ {
		if refLabels[i] != -1 && currentLabels[i] != -1 {
			cleanRef = append(cleanRef, refLabels[i])
			cleanCurrent = append(cleanCurrent, currentLabels[i])
		}
	}

	return cleanRef, cleanCurrent
}

// ARI computes the Adjusted Rand Index between two label assignments of
// equal length, after masking out any position where either label is
// -1 via CleanLabels. Returns 1.0 for the degenerate case where the
// expected and maximum index coincide (e.g. fewer than two comparable
// items, or every item in its own singleton on both sides).
func ARI(refLabels, currentLabels []int) float64 {
	ref, cur := CleanLabels(refLabels, currentLabels)
	n := len(ref)
	if n < 2 {
		return 1.0
	}

	contingency := map[[2]int]int{}
	refCounts := map[int]int{}
	curCounts := map[int]int{}

	for i := 0; i < n; i++ {
		contingency[[2]int{ref[i], cur[i]}]++
		refCounts[ref[i]]++
		curCounts[cur[i]]++
	}

	var index, sumA, sumB float64
	for _, c := range contingency {
		index += choose2(c)
	}
	for _, c := range refCounts {
		sumA += choose2(c)
	}
	for _, c := range curCounts {
		sumB += choose2(c)
	}

	total := choose2(n)
	expectedIndex := (sumA * sumB) / total
	maxIndex := (sumA + sumB) / 2

	denom := maxIndex - expectedIndex
	if denom == 0 {
		return 1.0
	}

	return (index - expectedIndex) / denom
}

// choose2 returns C(n, 2) as a float64.
func choose2(n int) float64 {
	return float64(n*(n-1)) / 2
}
