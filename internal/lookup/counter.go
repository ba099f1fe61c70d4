package lookup

import (
	"cmp"
	"slices"
	"sync"
)

type moveCount struct {
	name  string
	count int
}

// MoveCounter counts occurrences of a fixed catalog of moves. It is safe for
// concurrent use. Names outside the catalog are ignored.
type MoveCounter struct {
	mu     sync.Mutex
	index  map[string]int
	counts []moveCount
}

func NewMoveCounter(catalog []string) *MoveCounter {
	c := &MoveCounter{
		index:  make(map[string]int, len(catalog)),
		counts: make([]moveCount, 0, len(catalog)),
	}
	for _, name := range catalog {
		if _, ok := c.index[name]; ok {
			continue
		}
		c.index[name] = len(c.counts)
		c.counts = append(c.counts, moveCount{name: name})
	}
	return c
}

func (c *MoveCounter) Add(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, name := range names {
		if i, ok := c.index[name]; ok {
			c.counts[i].count++
		}
	}
}

func (c *MoveCounter) count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i, ok := c.index[name]; ok {
		return c.counts[i].count
	}
	return 0
}

// Top returns up to k move names by descending count. Equal counts keep catalog order.
func (c *MoveCounter) Top(k int) []string {
	c.mu.Lock()
	sorted := slices.Clone(c.counts)
	c.mu.Unlock()

	slices.SortStableFunc(sorted, func(a, b moveCount) int {
		return cmp.Compare(b.count, a.count)
	})
	if k > len(sorted) {
		k = len(sorted)
	}
	names := make([]string, 0, k)
	for _, mc := range sorted[:k] {
		names = append(names, mc.name)
	}
	return names
}
