package testutil

import (
	_ "embed"
	"sync"

	"github.com/hupe1980/roletree/a11y"
	"github.com/hupe1980/roletree/codec"
	"github.com/hupe1980/roletree/role"
)

// Roles of the Sample document.
const (
	SampleA = role.Role(1)
	SampleB = role.Role(2)
	SampleC = role.Role(3)
	SampleD = role.Role(2)
)

// Sample returns the document A(B, C(D)) with roles A=1, B=2, C=3, D=2.
func Sample() a11y.Node {
	return a11y.New(SampleA,
		a11y.New(SampleB),
		a11y.New(SampleC,
			a11y.New(SampleD),
		),
	)
}

// LargeSeed is the seed of the Large fixture.
const LargeSeed = 4711

// Large returns a 50k node document with Zipf distributed roles drawn from
// the whole universe. It is generated once per process; callers must not
// modify it.
var Large = sync.OnceValue(func() a11y.Node {
	return NewRNG(LargeSeed).Document(DocumentOptions{
		Nodes: 50_000,
		Skew:  1.1,
		Deep:  0.3,
	})
})

//go:embed testdata/page.json
var pageJSON []byte

// PageJSON returns the raw bytes of the Page fixture.
func PageJSON() []byte {
	return pageJSON
}

// Page decodes testdata/page.json, a small document shaped like a web page
// that mixes integer codes and role names. It is decoded once per process.
var Page = sync.OnceValues(func() (a11y.Node, error) {
	return a11y.Unmarshal(pageJSON, codec.JSON{})
})
