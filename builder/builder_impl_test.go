// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// validation order and determinism.
package builder_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/igris/builder"
	"github.com/katalvlaran/igris/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cells = 20

var testHubs = []builder.HubSpec{
	{ID: "MemoryHub", Label: "Memory Hub"},
	{ID: "PlanningHub", Label: "Planning Hub"},
}

func hubIDs() []string {
	ids := make([]string, len(testHubs))
	for i, h := range testHubs {
		ids[i] = h.ID
	}
	return ids
}

func multi() []core.GraphOption { return []core.GraphOption{core.WithMultiEdges()} }

// edgeKey identifies an edge by its endpoints and kind.
type edgeKey struct {
	U, V string
	K    core.EdgeKind
}

func edgeKeys(g *core.Graph) []edgeKey {
	var out []edgeKey
	for _, e := range g.Edges() {
		out = append(out, edgeKey{e.Source, e.Target, e.Kind})
	}
	return out
}

// TestCells verifies IDs, labels and insertion order of generic cells.
func TestCells(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Cells(cells))
	require.NoError(t, err)
	nodes := g.Nodes()
	require.Len(t, nodes, cells)
	for i, n := range nodes {
		assert.Equal(t, fmt.Sprintf("cell_%d", i), n.ID)
		assert.Equal(t, fmt.Sprintf("Cell %d", i), n.Label)
		assert.Equal(t, builder.CellDescription, n.Description)
		assert.Equal(t, core.KindCell, n.Kind)
	}
	assert.Zero(t, g.EdgeCount())

	_, err = builder.BuildGraph(nil, nil, builder.Cells(2))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

// TestHubs verifies hub order, kind and duplicate detection.
func TestHubs(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Hubs(testHubs))
	require.NoError(t, err)
	assert.Equal(t, hubIDs(), g.NodeIDs())
	assert.Len(t, g.NodesByKind(core.KindHub), len(testHubs))

	_, err = builder.BuildGraph(nil, nil, builder.Hubs(nil))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	dup := []builder.HubSpec{{ID: "X"}, {ID: "X"}}
	_, err = builder.BuildGraph(nil, nil, builder.Hubs(dup))
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
}

// TestRingLattice_PureRing verifies that p=0 yields the canonical lattice
// without needing an RNG.
func TestRingLattice_PureRing(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(multi(), nil, builder.Cells(cells), builder.RingLattice(cells, 0))
	require.NoError(t, err)

	var want []edgeKey
	for i := 0; i < cells; i++ {
		for _, off := range builder.RingOffsets {
			want = append(want, edgeKey{
				U: fmt.Sprintf("cell_%d", i),
				V: fmt.Sprintf("cell_%d", (i+off)%cells),
				K: core.EdgeLocal,
			})
		}
	}
	assert.Equal(t, want, edgeKeys(g))
	assert.Len(t, want, 40)
}

// TestRingLattice_Validation verifies the validation order and sentinels.
func TestRingLattice_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		n      int
		p      float64
		opts   []builder.BuilderOption
		target error
	}{
		{"too few cells", 2, 0.5, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewNodes},
		{"negative p", cells, -0.1, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"p above one", cells, 1.1, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"NaN p", cells, math.NaN(), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"missing rng", cells, 0.3, nil, builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(multi(), tc.opts, builder.Cells(cells), builder.RingLattice(tc.n, tc.p))
			require.ErrorIs(t, err, tc.target)
			assert.Nil(t, g, "no partial graph on error")
		})
	}
}

// TestRingLattice_FullRewireDrop verifies p=1 under the drop policy: every
// emitted edge is a shortcut, no self-loops, and dropped slots are never
// replaced by local edges.
func TestRingLattice_FullRewireDrop(t *testing.T) {
	t.Parallel()

	dropped := 0
	for seed := int64(0); seed < 50; seed++ {
		g, err := builder.BuildGraph(multi(), []builder.BuilderOption{builder.WithSeed(seed)},
			builder.Cells(cells), builder.RingLattice(cells, 1))
		require.NoError(t, err)
		for _, e := range g.Edges() {
			require.Equal(t, core.EdgeShortcut, e.Kind)
			require.NotEqual(t, e.Source, e.Target)
		}
		require.LessOrEqual(t, g.EdgeCount(), 2*cells)
		dropped += 2*cells - g.EdgeCount()
	}
	// 50 runs × 40 slots × 1/20 ≈ 100 expected drops.
	assert.Greater(t, dropped, 0)
}

// TestRingLattice_FullRewireResample verifies that resampling never loses a slot.
func TestRingLattice_FullRewireResample(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 20; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithRewirePolicy(builder.RewireResample)}
		g, err := builder.BuildGraph(multi(), opts, builder.Cells(cells), builder.RingLattice(cells, 1))
		require.NoError(t, err)
		require.Equal(t, 2*cells, g.EdgeCount())
		assert.Len(t, g.EdgesByKind(core.EdgeShortcut), 2*cells)
		for _, e := range g.Edges() {
			require.NotEqual(t, e.Source, e.Target)
		}
	}
}

// TestRingLattice_Deterministic verifies equal seeds yield equal edge lists.
func TestRingLattice_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []edgeKey {
		g, err := builder.BuildGraph(multi(), []builder.BuilderOption{builder.WithSeed(seed)},
			builder.Cells(cells), builder.RingLattice(cells, 0.3))
		require.NoError(t, err)
		return edgeKeys(g)
	}
	assert.Equal(t, build(42), build(42))
}

// TestHubOverlay verifies exact fan-out with pairwise distinct targets.
func TestHubOverlay(t *testing.T) {
	t.Parallel()

	for _, k := range []int{1, 3, 4, 19, cells} {
		k := k
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(multi(), []builder.BuilderOption{builder.WithSeed(int64(k))},
				builder.Hubs(testHubs), builder.Cells(cells), builder.HubOverlay(hubIDs(), cells, k))
			require.NoError(t, err)

			targets := make(map[string]map[string]bool)
			for _, e := range g.EdgesByKind(core.EdgeHubConnection) {
				if targets[e.Source] == nil {
					targets[e.Source] = make(map[string]bool)
				}
				require.False(t, targets[e.Source][e.Target], "duplicate target %s for %s", e.Target, e.Source)
				targets[e.Source][e.Target] = true
			}
			for _, h := range hubIDs() {
				assert.Len(t, targets[h], k)
			}
			assert.Equal(t, len(testHubs)*k, g.EdgeCount())
		})
	}
}

// TestHubOverlay_Validation verifies range, size and RNG sentinels.
func TestHubOverlay_Validation(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name   string
		hubs   []string
		k      int
		opts   []builder.BuilderOption
		target error
	}{
		{"no hubs", nil, 3, seeded, builder.ErrTooFewNodes},
		{"k zero", hubIDs(), 0, seeded, builder.ErrParameterOutOfRange},
		{"k negative", hubIDs(), -1, seeded, builder.ErrParameterOutOfRange},
		{"k above pool", hubIDs(), cells + 1, seeded, builder.ErrParameterOutOfRange},
		{"missing rng", hubIDs(), 3, nil, builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(multi(), tc.opts,
				builder.Hubs(testHubs), builder.Cells(cells), builder.HubOverlay(tc.hubs, cells, tc.k))
			require.ErrorIs(t, err, tc.target)
		})
	}
}

// TestHubOverlay_FullFanOutWithoutRNG verifies k == n needs no randomness and
// connects cells in ascending order.
func TestHubOverlay_FullFanOutWithoutRNG(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(multi(), nil,
		builder.Hubs(testHubs[:1]), builder.Cells(cells), builder.HubOverlay(hubIDs()[:1], cells, cells))
	require.NoError(t, err)
	edges := g.Edges()
	require.Len(t, edges, cells)
	for i, e := range edges {
		assert.Equal(t, "MemoryHub", e.Source)
		assert.Equal(t, fmt.Sprintf("cell_%d", i), e.Target)
	}
}

// TestLayerStack verifies the forward chain.
func TestLayerStack(t *testing.T) {
	t.Parallel()

	layers := []builder.LayerSpec{
		{ID: "input", Kind: core.KindInput, Label: "Input"},
		{ID: "L1", Kind: core.KindLayer, Label: "Layer 1"},
		{ID: "output", Kind: core.KindOutput, Label: "Output"},
	}
	g, err := builder.BuildGraph(nil, nil, builder.LayerStack(layers))
	require.NoError(t, err)
	assert.Equal(t, []edgeKey{
		{"input", "L1", core.EdgeForward},
		{"L1", "output", core.EdgeForward},
	}, edgeKeys(g))

	_, err = builder.BuildGraph(nil, nil, builder.LayerStack(layers[:1]))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

// TestBuildGraph_NilConstructor verifies the programmer-error path.
func TestBuildGraph_NilConstructor(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Cells(3), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Nil(t, g)
}

// TestRingLattice_RequiresMultigraph verifies that a shortcut duplicating a
// local pair surfaces the core policy error on simple graphs.
func TestRingLattice_RequiresMultigraph(t *testing.T) {
	t.Parallel()

	// Seed search keeps the test independent of the exact RNG stream.
	for seed := int64(0); seed < 200; seed++ {
		_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)},
			builder.Cells(3), builder.RingLattice(3, 1))
		if err != nil {
			require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
			return
		}
	}
	t.Fatal("expected at least one duplicate shortcut on a 3-cell ring")
}
