package roletree

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/roletree/role"
	"github.com/hupe1980/roletree/tree"
)

// Verify runs every query strategy on both trees and compares the results
// with the plain sequential queries. It returns a *MismatchError for the
// first disagreement and the context error if ctx ends first.
func (d *Document) Verify(ctx context.Context) error {
	defer d.observe("verify", time.Now())

	checks, err := verify(ctx, "bool", d.Bool)
	if err == nil {
		var n int
		n, err = verify(ctx, "count", d.Count)
		checks += n
	}
	if err == nil {
		var n int
		n, err = verifyOccurrences(ctx, d.Count)
		checks += n
	}
	d.logger.LogVerify(ctx, checks, err)
	return err
}

func verify[S comparable, P tree.Summary[S]](ctx context.Context, flavor string, t *tree.Tree[S, P]) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, fmt.Errorf("%s tree: %w", flavor, err)
	}

	checks := 0
	mismatch := func(query string, r role.Role, want, got any) error {
		return &MismatchError{
			Flavor: flavor,
			Query:  query,
			Role:   r,
			Want:   fmt.Sprint(want),
			Got:    fmt.Sprint(got),
		}
	}

	want := t.UniqueRoles()
	for query, got := range map[string][]role.Role{
		"UniqueRolesRoleSet": t.UniqueRolesRoleSet(),
		"ParUniqueRoles":     t.ParUniqueRoles(),
	} {
		checks++
		if !slices.Equal(want, got) {
			return checks, mismatch(query, role.Invalid, want, got)
		}
	}

	checks++
	if want, got := t.MaxDepth(), t.ParMaxDepth(); want != got {
		return checks, mismatch("ParMaxDepth", role.Invalid, want, got)
	}

	checks++
	leaves := roaring.New()
	for h := range t.Leaves() {
		leaves.Add(uint32(h))
	}
	if got := t.ParLeaves(); !leaves.Equals(got) {
		return checks, mismatch("ParLeaves", role.Invalid, leaves.GetCardinality(), got.GetCardinality())
	}

	type find func(role.Role) (tree.Handle, bool)
	finds := []struct {
		name string
		fn   find
	}{
		{"FindFirstRoleSet", t.FindFirstRoleSet},
		{"FindFirstStack", t.FindFirstStack},
		{"ParFindFirst", t.ParFindFirst},
		{"ParFindFirstRoleSet", t.ParFindFirstRoleSet},
	}
	counts := []struct {
		name string
		fn   func(role.Role) int
	}{
		{"HowManyRoleSet", t.HowManyRoleSet},
		{"ParHowMany", t.ParHowMany},
		{"ParHowManyRoleSet", t.ParHowManyRoleSet},
	}

	for r := range role.All() {
		if err := ctx.Err(); err != nil {
			return checks, err
		}

		wantH, wantOK := t.FindFirst(r)
		for _, f := range finds {
			checks++
			if h, ok := f.fn(r); h != wantH || ok != wantOK {
				return checks, mismatch(f.name, r, wantH, h)
			}
		}

		wantN := t.HowMany(r)
		for _, c := range counts {
			checks++
			if n := c.fn(r); n != wantN {
				return checks, mismatch(c.name, r, wantN, n)
			}
		}
	}
	return checks, nil
}

func verifyOccurrences(ctx context.Context, t *tree.CountTree) (int, error) {
	checks := 0
	for r := range role.All() {
		if err := ctx.Err(); err != nil {
			return checks, err
		}
		checks++
		if want, got := t.HowMany(r), tree.Occurrences(t, r); want != got {
			return checks, &MismatchError{
				Flavor: "count",
				Query:  "Occurrences",
				Role:   r,
				Want:   fmt.Sprint(want),
				Got:    fmt.Sprint(got),
			}
		}
	}
	return checks, nil
}
