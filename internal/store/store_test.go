package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data", "commands.json"))
}

func TestLoadCreatesDefaultShape(t *testing.T) {
	s := tempStore(t)

	doc, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, doc.TextCommands)
	require.NotNil(t, doc.SlashCommands)
	assert.Empty(t, doc.TextCommands)
	assert.Empty(t, doc.SlashCommands)

	// The default shape must have been written back to disk.
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"textCommands":[],"slashCommands":[]}`, string(data))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	in := &Document{
		TextCommands:  []TextCommand{{Keyword: "hello", Response: "world"}},
		SlashCommands: []SlashCommand{{Name: "ping", Response: "pong"}},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in.TextCommands, out.TextCommands)
	assert.Equal(t, in.SlashCommands, out.SlashCommands)
}

func TestLoadNormalizesMissingKeys(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"textCommands":[{"keyword":"hi","response":"yo"}]}`), 0o644))

	doc, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, doc.SlashCommands)
	assert.Empty(t, doc.SlashCommands)
	assert.Len(t, doc.TextCommands, 1)

	// The corrected shape is persisted.
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	var onDisk map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Contains(t, onDisk, "slashCommands")
}

func TestLoadReplacesMalformedDocument(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{nonsense`), 0o644))

	doc, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.TextCommands)
	assert.Empty(t, doc.SlashCommands)
}

func TestAddTextCommandKeepsExistingEntries(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.AddTextCommand("foo", "bar"))
	require.NoError(t, s.AddTextCommand("baz", "qux"))

	doc, err := s.Load()
	require.NoError(t, err)
	require.Len(t, doc.TextCommands, 2)
	assert.Equal(t, TextCommand{Keyword: "foo", Response: "bar"}, doc.TextCommands[0])
	assert.Equal(t, TextCommand{Keyword: "baz", Response: "qux"}, doc.TextCommands[1])
}

func TestAddSlashCommandRejectsDuplicate(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.AddSlashCommand("ping", "pong"))

	err := s.AddSlashCommand("ping", "other")
	require.ErrorIs(t, err, ErrDuplicateName)

	doc, err := s.Load()
	require.NoError(t, err)
	require.Len(t, doc.SlashCommands, 1)
	assert.Equal(t, "pong", doc.SlashCommands[0].Response)
}

func TestConcurrentAddSlashCommandSingleWinner(t *testing.T) {
	s := tempStore(t)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.AddSlashCommand("race", "response")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateName)
		}
	}
	assert.Equal(t, 1, winners)

	doc, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, doc.SlashCommands, 1)
}

func TestUpdateErrorAbortsWrite(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.AddTextCommand("keep", "me"))

	sentinel := assert.AnError
	err := s.Update(func(doc *Document) error {
		doc.TextCommands = nil
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	doc, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, doc.TextCommands, 1)
}
