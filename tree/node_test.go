package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestAddChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery")
	defer teardown()
	//
	root := NewNode("root")
	a, b := NewNode("a"), NewNode("b")
	root.AddChild(a).AddChild(b)
	assert.Equal(t, 2, root.ChildCount())
	ch, ok := root.Child(1)
	assert.True(t, ok)
	assert.Equal(t, "b", ch.Payload)
	_, ok = root.Child(2)
	assert.False(t, ok)
	assert.Equal(t, root, a.Parent())
	assert.Nil(t, root.Parent())
	assert.Equal(t, []*Node[string]{a, b}, root.Children())
}

func TestAncestorWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery")
	defer teardown()
	//
	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	found := leaf.AncestorWith(func(n *Node[string]) bool { return n.Payload == "root" })
	assert.Equal(t, root, found)
	none := leaf.AncestorWith(func(n *Node[string]) bool { return n.Payload == "leaf" })
	if none != nil {
		t.Errorf("expected node itself not to be tested, found %v", none)
	}
}
