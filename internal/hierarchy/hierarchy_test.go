package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartEntries() []Entry {
	return []Entry{
		{"1", "Assets"},
		{"14", "Loans"},
		{"1401", "Commercial Loans"},
		{"140199", "Provision"},
		{"2", "Liabilities"},
		{"21", "Public Obligations"},
	}
}

func TestBuildPaths(t *testing.T) {
	tree := Build(chartEntries())

	children := tree.ChildrenOf("14")
	require.Len(t, children, 1)
	assert.Equal(t, "1401", children[0].Code)

	assert.Equal(t, []string{"1", "14", "1401", "140199"}, tree.PathTo("140199"))
	assert.Equal(t, []string{"1"}, tree.PathTo("1"))
}

func TestBuildRoots(t *testing.T) {
	tree := Build(append(chartEntries(),
		Entry{"6", "Contingents"},
		Entry{"5", "Income"}, // not an allowed root class
	))

	roots := tree.Roots()
	codes := make([]string, len(roots))
	for i, r := range roots {
		codes[i] = r.Code
	}
	assert.Equal(t, []string{"1", "2", "6"}, codes)
}

func TestOrphansDropped(t *testing.T) {
	tree := Build([]Entry{
		{"1", "Assets"},
		{"1401", "Commercial Loans"}, // parent "14" never filed
	})

	_, ok := tree.Node("1401")
	assert.False(t, ok)
	assert.Equal(t, 1, tree.Size())
}

func TestNonNumericDiscarded(t *testing.T) {
	tree := Build([]Entry{
		{"1", "Assets"},
		{"MNI", "Net Interest Margin"},
		{"1a", "Bad Code"},
	})
	assert.Equal(t, 1, tree.Size())
}

func TestUnknownCodeQueries(t *testing.T) {
	tree := Build(chartEntries())

	assert.Nil(t, tree.ChildrenOf("99"))
	assert.Nil(t, tree.PathTo("99"))
	assert.False(t, tree.IsLeaf("99"))
}

func TestIsLeaf(t *testing.T) {
	tree := Build(chartEntries())

	assert.True(t, tree.IsLeaf("140199"))
	assert.False(t, tree.IsLeaf("14"))
	assert.True(t, tree.IsLeaf("21"))
}

func TestDuplicateEntriesKeepFirst(t *testing.T) {
	tree := Build([]Entry{
		{"1", "Assets"},
		{"1", "ASSETS RENAMED"},
	})

	n, ok := tree.Node("1")
	require.True(t, ok)
	assert.Equal(t, "Assets", n.Name)
}
