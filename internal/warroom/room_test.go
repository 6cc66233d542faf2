package warroom

import (
	"context"
	"strings"
	"testing"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingCollaborator lets the test control when a prediction completes
type blockingCollaborator struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingCollaborator) IsAvailable() bool { return true }

func (b *blockingCollaborator) PredictExecution(_ context.Context, _, _ string) (*models.RunCodeResponse, error) {
	if b.started != nil {
		close(b.started)
	}
	<-b.release
	return &models.RunCodeResponse{Output: "42", Explanation: "predicted", Mode: "ai"}, nil
}

func (b *blockingCollaborator) MatchMentors(_ context.Context, _ string, mentors []models.Mentor) ([]models.Mentor, string, error) {
	return mentors, "ai", nil
}

func newTestRoom() *Room {
	return NewRoom("s1", "Alex", "function f() {}")
}

func TestRoomOpensWithSystemMessage(t *testing.T) {
	r := newTestRoom()
	defer r.Close()

	chat := r.Chat()
	require.Len(t, chat, 1)
	assert.True(t, chat[0].IsSystem)
	assert.Contains(t, chat[0].Text, "Alex")
	assert.Equal(t, "function f() {}", r.Code())
}

func TestSendChatValidation(t *testing.T) {
	r := newTestRoom()
	defer r.Close()

	_, err := r.SendChat("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = r.SendChat(strings.Repeat("x", validation.MaxChatMessageLength+1))
	assert.Error(t, err)

	msg, err := r.SendChat("how do I start?")
	require.NoError(t, err)
	assert.Equal(t, "Alex", msg.Sender)
	assert.Len(t, r.Chat(), 2)
}

func TestUpdateCodeRejectsOversizedBuffer(t *testing.T) {
	r := newTestRoom()
	defer r.Close()

	err := r.UpdateCode(strings.Repeat("x", validation.MaxCodeLength+1))
	require.Error(t, err)
	assert.Equal(t, "function f() {}", r.Code(), "buffer must be untouched after a rejected edit")

	require.NoError(t, r.UpdateCode("let x = 1;"))
	assert.Equal(t, "let x = 1;", r.Code())
}

func TestRunCodeDiscardedAfterLeave(t *testing.T) {
	r := newTestRoom()
	collab := &blockingCollaborator{started: make(chan struct{}), release: make(chan struct{})}

	done := make(chan error, 1)
	go func() {
		_, err := r.RunCode(context.Background(), collab, "javascript")
		done <- err
	}()

	// Leave while the prediction is in flight, then let it complete
	<-collab.started
	r.Close()
	close(collab.release)

	assert.ErrorIs(t, <-done, ErrStaleRun)
}

func TestRunCodeDeliversWhileActive(t *testing.T) {
	r := newTestRoom()
	defer r.Close()

	collab := &blockingCollaborator{release: make(chan struct{})}
	close(collab.release)

	res, err := r.RunCode(context.Background(), collab, "javascript")
	require.NoError(t, err)
	assert.Equal(t, "42", res.Output)
}

func TestClosedRoomRejectsEverything(t *testing.T) {
	r := newTestRoom()
	r.Close()
	r.Close() // idempotent

	_, err := r.SendChat("hello")
	assert.ErrorIs(t, err, ErrRoomClosed)
	assert.ErrorIs(t, r.UpdateCode("x"), ErrRoomClosed)

	collab := &blockingCollaborator{release: make(chan struct{})}
	close(collab.release)
	_, err = r.RunCode(context.Background(), collab, "javascript")
	assert.ErrorIs(t, err, ErrRoomClosed)
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	_, err := m.Get("sub-1")
	assert.ErrorIs(t, err, ErrNoRoom)

	first := m.Open("sub-1", "s1", "Alex", "")
	got, err := m.Get("sub-1")
	require.NoError(t, err)
	assert.Same(t, first, got)

	// Opening again closes the previous room
	second := m.Open("sub-1", "s2", "Alex", "")
	assert.False(t, first.Active())
	assert.True(t, second.Active())

	m.Close("sub-1")
	assert.False(t, second.Active())
	_, err = m.Get("sub-1")
	assert.ErrorIs(t, err, ErrNoRoom)
}

func TestMediaFlags(t *testing.T) {
	r := newTestRoom()
	defer r.Close()

	mic, cam := r.Media()
	assert.False(t, mic)
	assert.False(t, cam)

	r.SetMedia(true, false)
	mic, cam = r.Media()
	assert.True(t, mic)
	assert.False(t, cam)
}
