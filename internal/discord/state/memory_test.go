package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsIdleForUnknownUser(t *testing.T) {
	m := NewMemoryManager(0)

	sess := m.Get("100")
	assert.Equal(t, FlowIdle, sess.Flow)
	assert.Nil(t, sess.Embed)
	assert.False(t, m.InProgress("100"))
}

func TestFlowTransitions(t *testing.T) {
	m := NewMemoryManager(0)

	m.SetFlow("100", FlowAwaitingKind)
	assert.Equal(t, FlowAwaitingKind, m.Flow("100"))
	assert.True(t, m.InProgress("100"))

	m.SetFlow("100", FlowAwaitingEmbedChannel)
	assert.Equal(t, FlowAwaitingEmbedChannel, m.Flow("100"))

	m.Clear("100")
	assert.Equal(t, FlowIdle, m.Flow("100"))
	assert.False(t, m.InProgress("100"))
}

func TestDraftsAreScopedPerUser(t *testing.T) {
	m := NewMemoryManager(0)

	m.SetEmbed("100", &EmbedDraft{Title: "Rules"})
	m.SetAnnounce("200", &AnnouncementDraft{Text: "hello"})

	d, ok := m.Embed("100")
	require.True(t, ok)
	assert.Equal(t, "Rules", d.Title)

	_, ok = m.Embed("200")
	assert.False(t, ok)

	a, ok := m.Announce("200")
	require.True(t, ok)
	assert.Equal(t, "hello", a.Text)

	_, ok = m.Announce("100")
	assert.False(t, ok)
}

func TestClearDropsDrafts(t *testing.T) {
	m := NewMemoryManager(0)

	m.SetFlow("100", FlowAwaitingAnnounceChannel)
	m.SetAnnounce("100", &AnnouncementDraft{Text: "hello"})
	m.Clear("100")

	_, ok := m.Announce("100")
	assert.False(t, ok)
	assert.Equal(t, FlowIdle, m.Flow("100"))
}

func TestSweepRemovesExpiredSessions(t *testing.T) {
	m := NewMemoryManager(time.Minute)

	m.SetFlow("100", FlowAwaitingKind)
	m.SetFlow("200", FlowAwaitingEmbedForm)

	assert.Zero(t, m.Sweep(time.Now()))

	swept := m.Sweep(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 2, swept)
	assert.False(t, m.InProgress("100"))
	assert.False(t, m.InProgress("200"))
}

func TestSweepIgnoresSessionsWithoutDeadline(t *testing.T) {
	m := NewMemoryManager(0)

	m.SetFlow("100", FlowAwaitingKind)

	assert.Zero(t, m.Sweep(time.Now().Add(24*time.Hour)))
	assert.True(t, m.InProgress("100"))
}

func TestWritesRefreshDeadline(t *testing.T) {
	m := NewMemoryManager(time.Minute)

	m.SetFlow("100", FlowAwaitingEmbedForm)
	first := m.Get("100").Deadline

	time.Sleep(5 * time.Millisecond)
	m.SetEmbed("100", &EmbedDraft{Title: "x"})
	second := m.Get("100").Deadline

	assert.True(t, second.After(first))
}
