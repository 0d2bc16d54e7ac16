package livemd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marker = `<!-- livebook:{"force_markdown":true} -->`

func TestCodeCells_SkipsForceMarkdownCells(t *testing.T) {
	notebook := "```elixir\na = 1\n```\n\n" +
		marker + "\n\n" +
		"```elixir\nb = 2\n```\n\n" +
		"```elixir\nc = 3\n```\n"

	sources, err := CodeCells(notebook)

	require.NoError(t, err)
	assert.Equal(t, []string{"a = 1\n", "c = 3\n"}, sources)
}

func TestAllCells_KeepsForceMarkdownCells(t *testing.T) {
	notebook := "```elixir\na = 1\n```\n\n" +
		marker + "\n\n" +
		"```elixir\nb = 2\n```\n\n" +
		"```elixir\nc = 3\n```\n"

	cells, err := AllCells(notebook)

	require.NoError(t, err)
	require.Len(t, cells, 3)

	assert.Equal(t, "a = 1\n", cells[0].Source)
	assert.False(t, cells[0].DocOnly)

	assert.Equal(t, "b = 2\n", cells[1].Source)
	assert.True(t, cells[1].DocOnly)

	assert.Equal(t, "c = 3\n", cells[2].Source)
	assert.False(t, cells[2].DocOnly)
}

func TestExecutableSource_JoinsWithOneBlankLine(t *testing.T) {
	notebook := "```elixir\na = 1\n```\n\n" +
		marker + "\n\n" +
		"```elixir\nb = 2\n```\n\n" +
		"```elixir\nc = 3\n```\n"

	assert.Equal(t, "a = 1\n\nc = 3", ExecutableSource(notebook))
}

func TestExecutableSource_ThreeConsecutiveCells(t *testing.T) {
	notebook := "```elixir\nfirst = 1\n```\n" +
		"```elixir\nsecond = 2\n```\n" +
		"```elixir\nthird = 3\n```\n"

	assert.Equal(t, "first = 1\n\nsecond = 2\n\nthird = 3", ExecutableSource(notebook))
}

func TestEmptyNotebook(t *testing.T) {
	cells, err := AllCells("")
	require.NoError(t, err)
	assert.Empty(t, cells)

	sources, err := CodeCells("")
	require.NoError(t, err)
	assert.Empty(t, sources)

	assert.Equal(t, "", ExecutableSource(""))
}

func TestProseOnlyNotebook(t *testing.T) {
	notebook := "# Guide\n\nJust prose, `inline code`, and a list:\n\n- one\n- two\n"

	cells, err := AllCells(notebook)
	require.NoError(t, err)
	assert.Empty(t, cells)

	sources, err := CodeCells(notebook)
	require.NoError(t, err)
	assert.Empty(t, sources)

	assert.Equal(t, "", ExecutableSource(notebook))
}

func TestDanglingMarkerAtEndOfNotebook(t *testing.T) {
	notebook := "Some prose.\n\n" + marker + "\n"

	cells, err := AllCells(notebook)
	require.NoError(t, err)
	assert.Empty(t, cells)

	sources, err := CodeCells(notebook)
	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestAllCells_EmptyCell(t *testing.T) {
	cells, err := AllCells("```elixir\n```")

	require.NoError(t, err)
	require.Len(t, cells, 1)

	// The newline after the tag belongs to the opening fence line, so an
	// immediately closed cell has empty content.
	assert.Equal(t, "", cells[0].Source)

	sources, err := CodeCells("```elixir\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{""}, sources)
}

func TestAllCells_BlankLinesPreserved(t *testing.T) {
	cells, err := AllCells("```elixir\na = 1\n\n\nb = 2\n```")

	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, "a = 1\n\n\nb = 2\n", cells[0].Source)
}

func TestFilteredIsSubsequenceOfAnnotated(t *testing.T) {
	notebook := marker + "\n\n```elixir\none\n```\n\n" +
		"```elixir\ntwo\n```\n\n" +
		marker + "\n\n```elixir\nthree\n```\n\n" +
		"```elixir\nfour\n```\n"

	cells, err := AllCells(notebook)
	require.NoError(t, err)

	sources, err := CodeCells(notebook)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(sources), len(cells))

	var executable []string

	for _, cell := range cells {
		if !cell.DocOnly {
			executable = append(executable, cell.Source)
		}
	}

	assert.Equal(t, executable, sources)
}

func TestIdempotence(t *testing.T) {
	notebook := "Intro.\n\n" + marker + "\n\n```elixir\nx = :ok\n```\n\n```elixir\ny = 1\n```\n"

	first, err := AllCells(notebook)
	require.NoError(t, err)

	second, err := AllCells(notebook)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, ExecutableSource(notebook), ExecutableSource(notebook))
}

func TestExecutableSource_SwallowsScanErrors(t *testing.T) {
	notebook := "```elixir\na = 1\n"

	_, err := CodeCells(notebook)
	require.Error(t, err)

	_, err = AllCells(notebook)
	require.Error(t, err)

	assert.Equal(t, "", ExecutableSource(notebook))
}

func TestNew_CustomTag(t *testing.T) {
	ext := New("python")

	sources, err := ext.CodeCells("```python\nprint(1)\n```\n\n```elixir\nx = 1\n```\n")

	require.NoError(t, err)
	assert.Equal(t, []string{"print(1)\n"}, sources)
}

func TestNew_EmptyTagFallsBackToDefault(t *testing.T) {
	sources, err := New("").CodeCells("```elixir\nx = 1\n```\n")

	require.NoError(t, err)
	assert.Equal(t, []string{"x = 1\n"}, sources)
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
		want    string
	}{
		{name: "empty", sources: nil, want: ""},
		{name: "single", sources: []string{"a = 1\n"}, want: "a = 1"},
		{name: "trailing whitespace trimmed", sources: []string{"a = 1  \n\n", "b = 2\t\n"}, want: "a = 1\n\nb = 2"},
		{name: "internal blank lines kept", sources: []string{"a = 1\n\nb = 2\n"}, want: "a = 1\n\nb = 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.sources))
		})
	}
}
