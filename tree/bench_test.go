package tree

import (
	"testing"

	"github.com/hupe1980/roletree/role"
	"github.com/hupe1980/roletree/roleset"
	"github.com/hupe1980/roletree/testutil"
)

func BenchmarkBuildIndex(b *testing.B) {
	doc := testutil.Large()
	b.Run("bool", func(b *testing.B) {
		tr := NewBool(&doc)
		b.ReportAllocs()
		for b.Loop() {
			tr.BuildIndex()
		}
	})
	b.Run("count", func(b *testing.B) {
		tr := NewCount(&doc)
		b.ReportAllocs()
		for b.Loop() {
			tr.BuildIndex()
		}
	})
}

func BenchmarkFindFirst(b *testing.B) {
	tr := indexed[roleset.RoleSet, *roleset.RoleSet](testutil.Large())

	// A rare role keeps most of the tree prunable.
	var target role.Role
	for r := range role.All() {
		if n := tr.HowMany(r); n > 0 && n < 10 {
			target = r
			break
		}
	}

	for name, find := range finders(tr) {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				find(target)
			}
		})
	}
}

func BenchmarkHowMany(b *testing.B) {
	tr := indexed[roleset.RoleCount, *roleset.RoleCount](testutil.Large())
	r := role.Role(5)

	b.Run("plain", func(b *testing.B) {
		for b.Loop() {
			tr.HowMany(r)
		}
	})
	b.Run("roleset", func(b *testing.B) {
		for b.Loop() {
			tr.HowManyRoleSet(r)
		}
	})
	b.Run("par", func(b *testing.B) {
		for b.Loop() {
			tr.ParHowMany(r)
		}
	})
	b.Run("par-roleset", func(b *testing.B) {
		for b.Loop() {
			tr.ParHowManyRoleSet(r)
		}
	})
	b.Run("occurrences", func(b *testing.B) {
		for b.Loop() {
			Occurrences(tr, r)
		}
	})
}
