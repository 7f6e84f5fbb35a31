package unionfind

// DSU is a disjoint-set forest over int keys. The zero value is not usable;
// construct with New or NewFromKeys.
type DSU struct {
	parent map[int]int
	rank   map[int]int
}

// New returns an empty DSU. Keys are implicitly created, at rank 0 and as
// their own parent, the first time Find or Union sees them.
func New() *DSU {
	return &DSU{parent: make(map[int]int), rank: make(map[int]int)}
}

// NewFromKeys returns a DSU with every key in keys pre-registered as a
// singleton set. Equivalent to calling New and then Find(k) for each k, but
// avoids the first-touch branch inside the hot loop.
func NewFromKeys(keys []int) *DSU {
	d := &DSU{parent: make(map[int]int, len(keys)), rank: make(map[int]int, len(keys))}
	for _, k := range keys {
		d.parent[k] = k
		d.rank[k] = 0
	}

	return d
}

func (d *DSU) ensure(x int) {
	if _, ok := d.parent[x]; !ok {
		d.parent[x] = x
		d.rank[x] = 0
	}
}

// Find returns the representative (root) of x's set, path-compressing along
// the way. x is registered as a new singleton set if never seen before.
func (d *DSU) Find(x int) int {
	d.ensure(x)
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing x and y, attaching the lower-rank root
// under the higher-rank one and breaking rank ties by incrementing. It
// reports true iff x and y were in distinct sets before the call.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}

	return true
}

// Connected reports whether x and y currently belong to the same set.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Groups returns every current set, keyed by root. The order of members
// within a group is not defined. Callers needing a deterministic
// iteration over the groups should sort the returned map's keys themselves;
// Groups does not impose an order on which root comes "first" since map
// iteration in Go is randomized — callers that care about first-encountered
// tie-breaking must track that separately (see consolidate, which does).
func (d *DSU) Groups() map[int][]int {
	out := make(map[int][]int)
	for k := range d.parent {
		r := d.Find(k)
		out[r] = append(out[r], k)
	}

	return out
}
