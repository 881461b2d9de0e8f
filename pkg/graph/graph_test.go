package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teklund/barrelint/pkg/classifier"
	"github.com/teklund/barrelint/pkg/logger"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func newBuilder() *Builder {
	return NewBuilder(classifier.Default()).WithLogger(logger.NewSilent())
}

func TestFindCycles_ThreeFeatureLoop(t *testing.T) {
	// A→B, B→C, C→A must yield exactly one cycle containing all three.
	g := NewGraph([]string{"a", "b", "c"})
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	cycles := FindCycles(g)
	require.Len(t, cycles, 1)
	assert.ElementsMatch(t, []int{0, 1, 2}, cycles[0])
}

func TestFindCycles_NoBackEdge(t *testing.T) {
	g := NewGraph([]string{"a", "b", "c"})
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	assert.Empty(t, FindCycles(g))
}

func TestFindCycles_DirectCycle(t *testing.T) {
	g := NewGraph([]string{"a", "b"})
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)

	cycles := FindCycles(g)
	require.Len(t, cycles, 1)
	assert.ElementsMatch(t, []int{0, 1}, cycles[0])
}

func TestFindCycles_SelfEdgeNeverExists(t *testing.T) {
	g := NewGraph([]string{"a"})
	g.AddEdge(0, 0)

	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, FindCycles(g))
}

func TestFindCycles_Idempotent(t *testing.T) {
	g := NewGraph([]string{"a", "b", "c", "d", "e"})
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(3, 4)
	g.AddEdge(4, 3)

	first := FindCycles(g)
	second := FindCycles(g)
	assert.Equal(t, first, second)
}

func TestFindCycles_TwoDisjointCycles(t *testing.T) {
	g := NewGraph([]string{"a", "b", "c", "d"})
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 3)
	g.AddEdge(3, 2)

	assert.Len(t, FindCycles(g), 2)
}

func TestFindCycles_SharedNodeReportedOnce(t *testing.T) {
	// The b↔c loop is reachable from both a and d. Nodes visited by an
	// earlier search are never restarted as roots, so the cycle is
	// reported once, not once per entry point.
	g := NewGraph([]string{"a", "b", "c", "d"})
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(3, 2)

	cycles := FindCycles(g)
	require.Len(t, cycles, 1)
	assert.ElementsMatch(t, []int{1, 2}, cycles[0])
}

func TestBuild_RelativeAndPackageExports(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"feature_auth/auth.dart":       "export '../feature_billing/billing.dart';\n",
		"feature_billing/billing.dart": "export 'package:app/feature_cart/cart.dart';\n",
		"feature_cart/cart.dart":       "export '../feature_auth/auth.dart';\n",
	})

	g, err := newBuilder().Build(tmpDir)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
	assert.Equal(t, 3, g.EdgeCount())

	cycles := FindCycles(g)
	require.Len(t, cycles, 1)
	assert.Len(t, cycles[0], 3)
}

func TestBuild_SelfExportDropped(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"feature_auth/auth.dart": "export 'auth.dart';\nexport 'package:app/feature_auth/auth.dart';\n",
	})

	g, err := newBuilder().Build(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, FindCycles(g))
}

func TestBuild_DanglingExportIgnored(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"feature_auth/auth.dart": "export 'data/auth_service.dart';\nexport 'package:app/feature_gone/gone.dart';\n",
	})

	g, err := newBuilder().Build(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuild_LayerBarrelsNotNodes(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"feature_auth/auth.dart":      "",
		"feature_auth/auth_data.dart": "export '../feature_billing/billing.dart';\n",
	})

	g, err := newBuilder().Build(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuild_ExcludedFilesSkipped(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"test/feature_auth/auth.dart": "export '../feature_billing/billing.dart';\n",
		"feature_billing/billing.dart": "",
	})

	g, err := newBuilder().Build(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
}

func TestBuild_MissingRoot(t *testing.T) {
	_, err := newBuilder().Build(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestBuild_RootIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.dart")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := newBuilder().Build(file)
	assert.Error(t, err)
}

func TestBuild_DeterministicNodeOrder(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"feature_zeta/zeta.dart":   "",
		"feature_alpha/alpha.dart": "",
		"feature_mid/mid.dart":     "",
	})

	g, err := newBuilder().Build(tmpDir)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
	assert.Equal(t, "feature_alpha/alpha.dart", g.Path(0))
	assert.Equal(t, "feature_mid/mid.dart", g.Path(1))
	assert.Equal(t, "feature_zeta/zeta.dart", g.Path(2))
}

func TestFormatCycle(t *testing.T) {
	g := NewGraph([]string{"feature_a/a.dart", "feature_b/b.dart"})
	got := g.FormatCycle([]int{0, 1})
	assert.Equal(t, "feature_a/a.dart → feature_b/b.dart → feature_a/a.dart", got)
}
