package roletree_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/roletree"
	"github.com/hupe1980/roletree/a11y"
	"github.com/hupe1980/roletree/blobstore"
	"github.com/hupe1980/roletree/role"
	"github.com/hupe1980/roletree/tree"
)

func dialog() a11y.Node {
	return a11y.New(role.Window,
		a11y.New(role.Panel,
			a11y.New(role.PushButton),
			a11y.New(role.Label),
		),
		a11y.New(role.PushButton),
	)
}

func Example() {
	n := dialog()
	doc := roletree.New(context.Background(), &n)

	h, ok := doc.Bool.FindFirstStack(role.PushButton)
	fmt.Println(h, ok)
	fmt.Println(tree.Occurrences(doc.Count, role.PushButton))
	fmt.Println(doc.Bool.UniqueRolesRoleSet())
	fmt.Println(doc.Bool.Summary(1))
	// Output:
	// #2 true
	// 2
	// [label panel push button window]
	// {label, panel, push button}
}

func ExampleFromStore() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	if err := roletree.Save(ctx, store, "dialog.json.zst", dialog()); err != nil {
		panic(err)
	}
	doc, err := roletree.FromStore(ctx, store, "dialog.json.zst")
	if err != nil {
		panic(err)
	}

	fmt.Printf("%+v\n", doc.Stats())
	fmt.Println(doc.Verify(ctx))
	// Output:
	// {Nodes:5 Leaves:3 MaxDepth:2 UniqueRoles:4}
	// <nil>
}
