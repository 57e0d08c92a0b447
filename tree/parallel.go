package tree

import (
	"runtime"
	"sync/atomic"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/roletree/role"
	"github.com/hupe1980/roletree/roleset"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultMinChunk is the smallest handle range a flat scan hands to one
// worker.
const DefaultMinChunk = 4096

// ParallelOptions tunes the parallel queries of a tree.
type ParallelOptions struct {
	// Workers bounds the number of goroutines. Zero means GOMAXPROCS.
	Workers int
	// MinChunk is the smallest handle range scanned by one worker. Zero
	// means DefaultMinChunk.
	MinChunk int
}

func (o ParallelOptions) normalize() ParallelOptions {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.MinChunk <= 0 {
		o.MinChunk = DefaultMinChunk
	}
	return o
}

// SetParallelism replaces the options used by the Par* queries.
func (t *Tree[S, P]) SetParallelism(o ParallelOptions) {
	t.par = o
}

// Parallelism returns the effective parallel options.
func (t *Tree[S, P]) Parallelism() ParallelOptions {
	return t.par.normalize()
}

// span is a half-open handle range.
type span struct{ lo, hi Handle }

// split cuts [lo, hi) into at most workers*4 spans of at least minChunk
// handles.
func split(lo, hi Handle, o ParallelOptions) []span {
	n := int(hi - lo)
	if n <= 0 {
		return nil
	}
	size := max(o.MinChunk, (n+o.Workers*4-1)/(o.Workers*4))
	spans := make([]span, 0, (n+size-1)/size)
	for start := lo; start < hi; start += Handle(size) {
		spans = append(spans, span{start, min(hi, start+Handle(size))})
	}
	return spans
}

// scan runs fn over the spans of [lo, hi) with at most o.Workers goroutines
// and returns the partial results in span order.
func scan[R any](lo, hi Handle, o ParallelOptions, fn func(s span) R) []R {
	spans := split(lo, hi, o)
	out := make([]R, len(spans))
	if len(spans) == 1 {
		out[0] = fn(spans[0])
		return out
	}

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i, s := range spans {
		g.Go(func() error {
			out[i] = fn(s)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// ParHowMany is HowMany computed by a flat parallel scan.
func (t *Tree[S, P]) ParHowMany(r role.Role) int {
	mustValidRole(r)
	parts := scan(0, Handle(t.Len()), t.Parallelism(), func(s span) int {
		n := 0
		for h := s.lo; h < s.hi; h++ {
			if t.Role(h) == r {
				n++
			}
		}
		return n
	})

	total := 0
	for _, n := range parts {
		total += n
	}
	return total
}

// ParUniqueRoles is UniqueRoles computed by a flat parallel scan.
func (t *Tree[S, P]) ParUniqueRoles() []role.Role {
	parts := scan(0, Handle(t.Len()), t.Parallelism(), func(s span) roleset.RoleSet {
		var rs roleset.RoleSet
		for h := s.lo; h < s.hi; h++ {
			rs.Add(t.Role(h))
		}
		return rs
	})

	var all roleset.RoleSet
	for i := range parts {
		all.Merge(&parts[i])
	}
	return all.Slice()
}

// ParLeaves returns the handles of every leaf, collected by a flat parallel
// scan.
func (t *Tree[S, P]) ParLeaves() *roaring.Bitmap {
	o := t.Parallelism()
	parts := scan(0, Handle(t.Len()), o, func(s span) *roaring.Bitmap {
		bm := roaring.New()
		for h := s.lo; h < s.hi; h++ {
			if t.arena.IsLeaf(h) {
				bm.Add(uint32(h))
			}
		}
		return bm
	})
	if len(parts) == 1 {
		return parts[0]
	}
	return roaring.ParOr(o.Workers, parts...)
}

// ParMaxDepth is MaxDepth computed by a flat parallel scan as the maximum of
// depth(parent)+1 over all non-root nodes.
func (t *Tree[S, P]) ParMaxDepth() int {
	parts := scan(0, Handle(t.Len()), t.Parallelism(), func(s span) int {
		d := 0
		for h := s.lo; h < s.hi; h++ {
			if p, ok := t.arena.Parent(h); ok {
				d = max(d, t.Depth(p)+1)
			}
		}
		return d
	})

	d := 0
	for _, v := range parts {
		d = max(d, v)
	}
	return d
}

// ParFindFirst is FindFirst computed by scanning blocks of growing size from
// the front of the tree, each block in parallel. An early match ends the
// search without touching the rest of the tree.
func (t *Tree[S, P]) ParFindFirst(r role.Role) (Handle, bool) {
	mustValidRole(r)
	o := t.Parallelism()
	n := t.Len()

	// Spans of one block cover ascending handle ranges, so a match in an
	// earlier span beats any later one. best lets later spans stop early.
	for lo, size := 0, o.MinChunk; lo < n; lo, size = lo+size, size*2 {
		hi := min(n, lo+size)

		var best atomic.Uint32
		best.Store(uint32(Nil))
		scan(Handle(lo), Handle(hi), o, func(s span) struct{} {
			for h := s.lo; h < s.hi && uint32(h) < best.Load(); h++ {
				if t.Role(h) == r {
					storeMin(&best, uint32(h))
					break
				}
			}
			return struct{}{}
		})
		if h := Handle(best.Load()); h != Nil {
			return h, true
		}
	}
	return Nil, false
}

// ParFindFirstRoleSet is FindFirstRoleSet computed by a fork/join walk that
// forks one task per qualifying child while workers are free.
func (t *Tree[S, P]) ParFindFirstRoleSet(r role.Role) (Handle, bool) {
	t.mustIndexed()
	mustValidRole(r)
	if !t.qualifies(t.root, r) {
		return Nil, false
	}

	var best atomic.Uint32
	best.Store(uint32(Nil))
	t.forkJoin(r, func() (func(Handle) bool, func()) {
		visit := func(h Handle) bool {
			// Everything still pending in this task follows h in
			// preorder and cannot beat best.
			if uint32(h) > best.Load() {
				return false
			}
			if t.Role(h) == r {
				storeMin(&best, uint32(h))
				return false
			}
			return true
		}
		return visit, func() {}
	})

	if h := Handle(best.Load()); h != Nil {
		return h, true
	}
	return Nil, false
}

// ParHowManyRoleSet is HowManyRoleSet computed by a fork/join walk.
func (t *Tree[S, P]) ParHowManyRoleSet(r role.Role) int {
	t.mustIndexed()
	mustValidRole(r)
	if !t.qualifies(t.root, r) {
		return 0
	}

	var total atomic.Int64
	t.forkJoin(r, func() (func(Handle) bool, func()) {
		local := 0
		visit := func(h Handle) bool {
			if t.Role(h) == r {
				local++
			}
			return true
		}
		return visit, func() { total.Add(int64(local)) }
	})
	return int(total.Load())
}

// forkJoin walks every node reachable from the root through children whose
// summary contains r. Each task walks its subtree in preorder with its own
// stack; sibling subtrees move to new tasks while the semaphore has tokens
// and stay in the current task otherwise. A task stops as soon as visit
// returns false, and done runs when the task ends. forkJoin returns once
// every task has finished.
func (t *Tree[S, P]) forkJoin(r role.Role, newTask func() (visit func(Handle) bool, done func())) {
	o := t.Parallelism()

	var g errgroup.Group
	sem := semaphore.NewWeighted(int64(o.Workers - 1))

	var run func(top Handle)
	run = func(top Handle) {
		visit, done := newTask()
		defer done()

		stack := []Handle{top}
		for len(stack) > 0 {
			h := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !visit(h) {
				return
			}

			mark := len(stack)
			for c := range t.arena.ChildrenReverse(h) {
				if t.qualifies(c, r) {
					stack = append(stack, c)
				}
			}
			if len(stack)-mark < 2 {
				continue
			}

			// stack[mark:] holds the qualifying children right to left.
			// The leftmost stays on top for this task; the others are
			// forked when a token is free.
			keep := mark
			for _, c := range stack[mark : len(stack)-1] {
				if sem.TryAcquire(1) {
					g.Go(func() error {
						defer sem.Release(1)
						run(c)
						return nil
					})
					continue
				}
				stack[keep] = c
				keep++
			}
			stack[keep] = stack[len(stack)-1]
			stack = stack[:keep+1]
		}
	}

	run(t.root)
	_ = g.Wait()
}

// storeMin lowers v to x if x is smaller.
func storeMin(v *atomic.Uint32, x uint32) {
	for {
		cur := v.Load()
		if x >= cur || v.CompareAndSwap(cur, x) {
			return
		}
	}
}
