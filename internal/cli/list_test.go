package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bettercalldasappan/countdown/internal/countdown"
	"github.com/bettercalldasappan/countdown/internal/store"
)

// listRef is the pinned reference instant for listing tests.
var listRef = time.Unix(1700000000, 0)

// writeFixture stores one expired and two upcoming events and returns the
// event file path.
func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".countdown.toml")
	cfg := store.Config{Events: []countdown.Event{
		{Name: "launch", Time: uint32(listRef.Unix()) + 172800},
		{Name: "expired", Time: uint32(listRef.Unix()) - 100},
		{Name: "conference", Time: uint32(listRef.Unix()) + 86400},
	}}
	require.NoError(t, store.Open(path).Save(cfg))
	return path
}

func executeList(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(func() time.Time { return listRef })
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList_TextOutput(t *testing.T) {
	path := writeFixture(t)

	out, err := executeList(t, "--config", path)

	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "list_text", []byte(out))
}

func TestList_JSONOutput(t *testing.T) {
	path := writeFixture(t)

	out, err := executeList(t, "--config", path, "--format", "json")

	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "list_json", []byte(out))
}

func TestList_Descending(t *testing.T) {
	path := writeFixture(t)

	out, err := executeList(t, "--config", path, "-o", "time-desc")

	require.NoError(t, err)
	assert.Equal(t, "2 days until launch\n1 days until conference\n", out)
}

func TestList_Limit(t *testing.T) {
	path := writeFixture(t)

	out, err := executeList(t, "--config", path, "-n", "1")

	require.NoError(t, err)
	assert.Equal(t, "1 days until conference\n", out)
}

func TestList_LimitZero(t *testing.T) {
	path := writeFixture(t)

	out, err := executeList(t, "--config", path, "-n", "0")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestList_NegativeLimitRejected(t *testing.T) {
	path := writeFixture(t)

	out, err := executeList(t, "--config", path, "-n", "-5")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid --limit")
	assert.Empty(t, out)
}

func TestList_ShufflePrintsEveryUpcomingEvent(t *testing.T) {
	path := writeFixture(t)

	out, err := executeList(t, "--config", path, "-o", "shuffle")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, out, "1 days until conference")
	assert.Contains(t, out, "2 days until launch")
	assert.NotContains(t, out, "expired")
}

func TestList_MissingEventFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".countdown.toml")

	out, err := executeList(t, "--config", path)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestList_UnreadableEventFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".countdown.toml")
	require.NoError(t, os.WriteFile(path, []byte("events = not toml"), 0o644))

	_, err := executeList(t, "--config", path)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "couldn't load events")
}
