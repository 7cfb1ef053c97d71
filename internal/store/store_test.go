package store

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T, names ...string) CustomStore[string, string] {
	t.Helper()
	s := NewOrderedStore[string, string]()
	for _, name := range names {
		err := s.AddVertex(name, name, graph.VertexProperties{})
		assert.NoError(t, err)
	}
	return s
}

func TestListVerticesKeepsInsertionOrder(t *testing.T) {
	s := newTestStore(t, "profile", "input_dir", "outdir", "do_norm")

	got, err := s.ListVertices()
	assert.NoError(t, err)
	assert.Equal(t, []string{"profile", "input_dir", "outdir", "do_norm"}, got)
	assert.Equal(t, 0, s.Position("profile"))
	assert.Equal(t, 3, s.Position("do_norm"))
	assert.Equal(t, -1, s.Position("missing"))

	count, err := s.VertexCount()
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestAddVertexTwice(t *testing.T) {
	s := newTestStore(t, "input_dir")
	err := s.AddVertex("input_dir", "again", graph.VertexProperties{})
	assert.ErrorIs(t, err, graph.ErrVertexAlreadyExists)
}

func TestRemoveVertex(t *testing.T) {
	s := newTestStore(t, "a", "b", "c")
	assert.NoError(t, s.AddEdge("a", "b", graph.Edge[string]{Source: "a", Target: "b"}))

	assert.ErrorIs(t, s.RemoveVertex("b"), graph.ErrVertexHasEdges)
	assert.ErrorIs(t, s.RemoveVertex("missing"), graph.ErrVertexNotFound)

	assert.NoError(t, s.RemoveVertex("c"))
	got, err := s.ListVertices()
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, -1, s.Position("c"))
}

func TestUpdateVertex(t *testing.T) {
	s := newTestStore(t, "a")

	err := s.UpdateVertex("a", func(p *graph.VertexProperties) {
		p.Attributes["xlabel"] = "1s"
		p.Weight = 3
	})
	assert.NoError(t, err)

	_, props, err := s.Vertex("a")
	assert.NoError(t, err)
	assert.Equal(t, "1s", props.Attributes["xlabel"])
	assert.Equal(t, 3, props.Weight)

	assert.ErrorIs(t, s.UpdateVertex("missing"), graph.ErrVertexNotFound)
}

func TestEdges(t *testing.T) {
	s := newTestStore(t, "a", "b", "c")
	assert.NoError(t, s.AddEdge("b", "c", graph.Edge[string]{Source: "b", Target: "c"}))
	assert.NoError(t, s.AddEdge("a", "b", graph.Edge[string]{Source: "a", Target: "b"}))

	edges, err := s.ListEdges()
	assert.NoError(t, err)
	assert.Len(t, edges, 2)
	assert.Equal(t, "a", edges[0].Source)
	assert.Equal(t, "b", edges[1].Source)

	_, err = s.Edge("a", "c")
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)

	updated := graph.Edge[string]{Source: "a", Target: "b", Properties: graph.EdgeProperties{Weight: 7}}
	assert.NoError(t, s.UpdateEdge("a", "b", updated))
	edge, err := s.Edge("a", "b")
	assert.NoError(t, err)
	assert.Equal(t, 7, edge.Properties.Weight)

	assert.NoError(t, s.RemoveEdge("a", "b"))
	_, err = s.Edge("a", "b")
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

func TestCreatesCycle(t *testing.T) {
	s := newTestStore(t, "a", "b", "c")
	assert.NoError(t, s.AddEdge("a", "b", graph.Edge[string]{Source: "a", Target: "b"}))
	assert.NoError(t, s.AddEdge("b", "c", graph.Edge[string]{Source: "b", Target: "c"}))

	tcs := map[string]struct {
		source, target string
		want           bool
	}{
		"back edge":    {source: "c", target: "a", want: true},
		"self loop":    {source: "b", target: "b", want: true},
		"forward edge": {source: "a", target: "c", want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := s.CreatesCycle(tc.source, tc.target)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := s.CreatesCycle("a", "missing")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}
