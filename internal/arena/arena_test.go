package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_AddAndGet(t *testing.T) {
	a := New[string](2)
	root := a.Add("root", 0, 4, NoParent)
	child := a.Add("child", 1, 3, root)

	require.Equal(t, 2, a.Len())
	assert.Equal(t, Handle(0), root)
	assert.Equal(t, Handle(1), child)

	node := a.Get(child)
	assert.Equal(t, "child", node.Value)
	assert.Equal(t, root, node.Parent)
	assert.Equal(t, 4, node.F())
}

func TestArena_Trace(t *testing.T) {
	tests := []struct {
		name  string
		build func(a *Arena[int]) Handle
		want  []int
	}{
		{
			name: "root only",
			build: func(a *Arena[int]) Handle {
				return a.Add(7, 0, 0, NoParent)
			},
			want: []int{7},
		},
		{
			name: "chain",
			build: func(a *Arena[int]) Handle {
				h := a.Add(1, 0, 0, NoParent)
				h = a.Add(2, 1, 0, h)
				return a.Add(3, 2, 0, h)
			},
			want: []int{1, 2, 3},
		},
		{
			name: "branch ignores siblings",
			build: func(a *Arena[int]) Handle {
				root := a.Add(1, 0, 0, NoParent)
				a.Add(10, 1, 0, root)
				mid := a.Add(2, 1, 0, root)
				a.Add(20, 2, 0, mid)
				return a.Add(3, 2, 0, mid)
			},
			want: []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[int](0)
			leaf := tt.build(a)
			assert.Equal(t, tt.want, a.Trace(leaf))
		})
	}
}
