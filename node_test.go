package treekv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string {
	return &s
}

func TestProject_Leaf(t *testing.T) {
	n := &Node{Key: "/foo", Value: strptr("1"), ModifiedIndex: 3, CreatedIndex: 3}
	assert.Equal(t, "1", Project(n))
}

func TestProject_EmptyStringLeaf(t *testing.T) {
	n := &Node{Key: "/foo", Value: strptr("")}
	assert.Equal(t, "", Project(n), "an empty value is not the same as an absent one")
}

func TestProject_Nil(t *testing.T) {
	assert.Nil(t, Project(nil))
}

func TestProject_ValuelessLeaf(t *testing.T) {
	// A directory child from a non-recursive listing has neither value
	// nor children.
	n := &Node{Key: "/folder", Dir: true}
	assert.Nil(t, Project(n))
}

func TestProject_RootNonRecursive(t *testing.T) {
	root := &Node{
		Key: "/",
		Dir: true,
		Nodes: []*Node{
			{Key: "/foo", Value: strptr("1")},
			{Key: "/bar", Value: strptr("2")},
			{Key: "/folder", Dir: true},
		},
	}

	assert.Equal(t, map[string]any{
		"foo":    "1",
		"bar":    "2",
		"folder": nil,
	}, Project(root))
}

func TestProject_RootRecursive(t *testing.T) {
	root := &Node{
		Key: "/",
		Dir: true,
		Nodes: []*Node{
			{Key: "/foo", Value: strptr("1")},
			{Key: "/bar", Value: strptr("2")},
			{
				Key: "/folder",
				Dir: true,
				Nodes: []*Node{
					{
						Key: "/folder/of",
						Dir: true,
						Nodes: []*Node{
							{Key: "/folder/of/stuff", Value: strptr("hi")},
						},
					},
				},
			},
		},
	}

	assert.Equal(t, map[string]any{
		"foo": "1",
		"bar": "2",
		"folder": map[string]any{
			"of": map[string]any{
				"stuff": "hi",
			},
		},
	}, Project(root))
}

func TestProject_NonRootDirectory(t *testing.T) {
	// Children of a non-root directory strip the parent path plus the
	// separating slash.
	dir := &Node{
		Key: "/config",
		Dir: true,
		Nodes: []*Node{
			{Key: "/config/debug", Value: strptr("true")},
			{Key: "/config/port", Value: strptr("4001")},
		},
	}

	assert.Equal(t, map[string]any{
		"debug": "true",
		"port":  "4001",
	}, Project(dir))
}
