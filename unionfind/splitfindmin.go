package unionfind

import "sort"

// SplitFindMin implements the split-find-min variant: a fixed
// sequence of n labeled elements, initially one segment, that can be cut
// ("split after x") into progressively more segments, while supporting
// "minimum-labeled element of x's current segment" queries throughout.
// It is a standalone structure: no other package in this module calls it
// (the mst package does not use it).
//
// Design note: labels are fixed at construction, so the minimum-query side
// is answered in O(1) via a static sparse table built once. The dynamic
// side — which segment a position currently belongs to — is kept as a
// sorted slice of split points: Find is O(log s) by binary search, Split is
// O(s) to insert in place. A self-balancing order-statistics tree would
// bring Split down to amortized O(log n), but the standard library has no
// such primitive and this structure is a minor helper, not a hot inner
// loop; the simpler slice was chosen over hand-rolling a treap.
type SplitFindMin struct {
	sequence []int // position -> element id
	posOf    []int // element id -> position
	labels   []int64

	// splits holds, in ascending order, the positions after which a cut
	// exists. A segment is the half-open range (splits[i-1], splits[i]].
	splits []int

	// sparse table for O(1) range-minimum-by-label queries over positions.
	table [][]int // table[k][i] = position of the min-label element in [i, i+2^k)
	log2  []int
}

// NewSplitFindMin builds a SplitFindMin over the given sequence of element
// ids (all distinct, defining the fixed order) with one label per element.
func NewSplitFindMin(sequence []int, labels map[int]int64) *SplitFindMin {
	n := len(sequence)
	s := &SplitFindMin{
		sequence: append([]int(nil), sequence...),
		posOf:    make([]int, n),
		labels:   make([]int64, n),
		splits:   []int{n - 1}, // one segment spanning the whole sequence
	}
	for pos, id := range sequence {
		s.posOf[id] = pos
		s.labels[pos] = labels[id]
	}
	s.buildSparseTable()
	return s
}

func (s *SplitFindMin) buildSparseTable() {
	n := len(s.sequence)
	if n == 0 {
		return
	}
	s.log2 = make([]int, n+1)
	for i := 2; i <= n; i++ {
		s.log2[i] = s.log2[i/2] + 1
	}
	k := s.log2[n] + 1
	s.table = make([][]int, k)
	s.table[0] = make([]int, n)
	for i := 0; i < n; i++ {
		s.table[0][i] = i
	}
	for j := 1; j < k; j++ {
		length := 1 << uint(j)
		s.table[j] = make([]int, n-length+1)
		half := 1 << uint(j-1)
		for i := 0; i+length <= n; i++ {
			left, right := s.table[j-1][i], s.table[j-1][i+half]
			if s.labels[left] <= s.labels[right] {
				s.table[j][i] = left
			} else {
				s.table[j][i] = right
			}
		}
	}
}

// rangeMinPos returns the position of the minimum-label element in [lo,hi].
func (s *SplitFindMin) rangeMinPos(lo, hi int) int {
	j := s.log2[hi-lo+1]
	length := 1 << uint(j)
	left, right := s.table[j][lo], s.table[j][hi-length+1]
	if s.labels[left] <= s.labels[right] {
		return left
	}
	return right
}

// Find returns the id of the segment containing element x: the index, in the
// sorted split list, of the first boundary at or after x's position. Ids of
// later segments shift up by one after each Split. Complexity: O(log s).
func (s *SplitFindMin) Find(x int) int {
	pos := s.posOf[x]
	i := sort.SearchInts(s.splits, pos)
	return i
}

// Split cuts the sequence immediately after element x, so x and its
// predecessors stay in one segment and x's successors move to a new one.
// A no-op if that boundary already exists. Complexity: O(s) (sorted insert).
func (s *SplitFindMin) Split(x int) {
	pos := s.posOf[x]
	n := len(s.sequence)
	if pos == n-1 {
		return // already the last position: splitting after it is a no-op
	}
	i := sort.SearchInts(s.splits, pos)
	if i < len(s.splits) && s.splits[i] == pos {
		return // boundary already present
	}
	s.splits = append(s.splits, 0)
	copy(s.splits[i+1:], s.splits[i:])
	s.splits[i] = pos
}

// GetMin returns the element id with the minimum label in the segment
// identified by segmentID (as returned by Find). Complexity: O(1).
func (s *SplitFindMin) GetMin(segmentID int) int {
	hi := s.splits[segmentID]
	lo := 0
	if segmentID > 0 {
		lo = s.splits[segmentID-1] + 1
	}
	return s.sequence[s.rangeMinPos(lo, hi)]
}
