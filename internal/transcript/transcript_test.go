package transcript_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/moesim/internal/transcript"
)

func Test_Append_Creates_File_On_First_Call(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.log")
	w := transcript.Open(path)

	require.NoError(t, w.Append("read cache=0 addr=5 -> 0"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "read cache=0 addr=5 -> 0\n", string(got))
}

func Test_Append_Accumulates_Entries_In_Order(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.log")
	w := transcript.Open(path)

	require.NoError(t, w.Append("first"))
	require.NoError(t, w.Append("second"))
	require.NoError(t, w.Append("third"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(got), "\n"), "\n\n")
	require.Equal(t, []string{"first", "second", "third"}, lines)
}
