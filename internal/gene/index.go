package gene

import "sort"

// Index answers position queries over a fixed set of genes, which may
// overlap or nest. Built once and never modified.
type Index struct {
	genes  []Gene // sorted by Start
	maxEnd []int  // maxEnd[i] = max(End) for genes[:i+1]
}

// NewIndex builds an index over genes. The input slice is not modified.
func NewIndex(genes []Gene) *Index {
	if len(genes) == 0 {
		return &Index{}
	}

	sorted := make([]Gene, len(genes))
	copy(sorted, genes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	maxEnd := make([]int, len(sorted))
	maxEnd[0] = sorted[0].End()
	for i := 1; i < len(sorted); i++ {
		maxEnd[i] = max(sorted[i].End(), maxEnd[i-1])
	}

	return &Index{genes: sorted, maxEnd: maxEnd}
}

// Len returns the number of indexed genes.
func (x *Index) Len() int {
	return len(x.genes)
}

// At returns the genes covering pos, in ascending start order.
func (x *Index) At(pos int) []Gene {
	if len(x.genes) == 0 {
		return nil
	}

	// Candidates are genes[0:hi], all with Start <= pos.
	hi := sort.Search(len(x.genes), func(i int) bool {
		return x.genes[i].Start > pos
	})

	var result []Gene
	for i := hi - 1; i >= 0; i-- {
		// Nothing in genes[:i+1] reaches pos.
		if x.maxEnd[i] < pos {
			break
		}
		if x.genes[i].End() >= pos {
			result = append(result, x.genes[i])
		}
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}
