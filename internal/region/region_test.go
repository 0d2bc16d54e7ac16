package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const script = "defmodule Demo do\n" +
	"  # #region livemd\n" +
	"  old = :stale\n" +
	"  # #endregion\n" +
	"end\n"

func TestRead(t *testing.T) {
	body, found, err := Read([]byte(script), "livemd")

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "  old = :stale\n", string(body))
}

func TestRead_NotFound(t *testing.T) {
	_, found, err := Read([]byte(script), "other")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestRead_MissingEndregion(t *testing.T) {
	source := "# #region livemd\nbody\n"

	_, _, err := Read([]byte(source), "livemd")

	assert.ErrorIs(t, err, ErrMissingEndregion)
}

func TestReplace(t *testing.T) {
	updated, found, err := Replace([]byte(script), "livemd", []byte("new = :fresh"))

	require.NoError(t, err)
	require.True(t, found)

	want := "defmodule Demo do\n" +
		"  # #region livemd\n" +
		"new = :fresh\n" +
		"  # #endregion\n" +
		"end\n"
	assert.Equal(t, want, string(updated))
}

func TestReplace_EmptyValue(t *testing.T) {
	updated, found, err := Replace([]byte(script), "livemd", nil)

	require.NoError(t, err)
	require.True(t, found)

	want := "defmodule Demo do\n" +
		"  # #region livemd\n" +
		"  # #endregion\n" +
		"end\n"
	assert.Equal(t, want, string(updated))
}

func TestReplace_SlashCommentStyle(t *testing.T) {
	source := "// #region livemd\nold\n// #endregion\n"

	updated, found, err := Replace([]byte(source), "livemd", []byte("new\n"))

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "// #region livemd\nnew\n// #endregion\n", string(updated))
}

func TestReplace_NameIsExact(t *testing.T) {
	source := "# #region livemd2\nold\n# #endregion\n"

	_, found, err := Replace([]byte(source), "livemd", []byte("new\n"))

	require.NoError(t, err)
	assert.False(t, found)
}
