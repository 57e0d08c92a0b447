package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/roletree/a11y"
	"github.com/hupe1980/roletree/role"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Role returns a role drawn uniformly from the universe.
func (r *RNG) Role() role.Role {
	return role.Role(r.Intn(role.Count))
}

// DocumentOptions shapes a random document.
type DocumentOptions struct {
	// Nodes is the number of nodes. Values below 1 mean 1.
	Nodes int
	// Roles is the palette to draw from. Empty means the whole universe.
	Roles []role.Role
	// Skew is the Zipf exponent over the palette: the first roles are the
	// most frequent. Zero draws uniformly.
	Skew float64
	// Deep is the probability that a node attaches to the most recently
	// created node, producing long chains. The rest attach to a uniformly
	// chosen earlier node.
	Deep float64
}

// Document generates a random document. Generation is iterative, so any
// depth can be produced.
func (r *RNG) Document(opts DocumentOptions) a11y.Node {
	n := max(opts.Nodes, 1)
	palette := opts.Roles
	if len(palette) == 0 {
		palette = make([]role.Role, 0, role.Count)
		for ro := range role.All() {
			palette = append(palette, ro)
		}
	}
	cdf := zipfCDF(len(palette), opts.Skew)

	r.mu.Lock()
	roles := make([]role.Role, n)
	children := make([][]int, n)
	for i := range n {
		roles[i] = palette[sort.SearchFloat64s(cdf, r.rand.Float64()*cdf[len(cdf)-1])]
		if i == 0 {
			continue
		}
		parent := i - 1
		if r.rand.Float64() >= opts.Deep {
			parent = r.rand.Intn(i)
		}
		children[parent] = append(children[parent], i)
	}
	r.mu.Unlock()

	// Parents precede their children, so assembling from the back finishes
	// every child before its parent copies it.
	nodes := make([]a11y.Node, n)
	for i := n - 1; i >= 0; i-- {
		nodes[i].Role = roles[i]
		if len(children[i]) == 0 {
			continue
		}
		nodes[i].Children = make([]a11y.Node, len(children[i]))
		for j, c := range children[i] {
			nodes[i].Children[j] = nodes[c]
		}
	}
	return nodes[0]
}

// zipfCDF returns the cumulative weights of ranks 1..n with P(k) ∝ 1/k^s.
func zipfCDF(n int, s float64) []float64 {
	cdf := make([]float64, n)
	var sum float64
	for k := 1; k <= n; k++ {
		sum += 1.0 / math.Pow(float64(k), s)
		cdf[k-1] = sum
	}
	return cdf
}

// Chain returns a document of depth+1 nodes where each node has exactly one
// child. Roles cycle through the given roles.
func Chain(depth int, roles ...role.Role) a11y.Node {
	if len(roles) == 0 {
		roles = []role.Role{role.Panel}
	}
	nodes := make([]a11y.Node, depth+1)
	for i := depth; i >= 0; i-- {
		nodes[i].Role = roles[i%len(roles)]
		if i < depth {
			nodes[i].Children = []a11y.Node{nodes[i+1]}
		}
	}
	return nodes[0]
}
