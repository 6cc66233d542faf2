// Package warroom holds the live session state: ephemeral chat, the shared
// code buffer, a simulated connection-quality sampler and AI-assisted code
// runs. Everything here is in-memory and dies with the room.
package warroom

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/codementor/codementor-api/internal/ai"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/validation"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/codementor/codementor-api/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrRoomClosed   = errors.New("war room is closed")
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrStaleRun     = errors.New("run finished after the room was left")
)

const samplerInterval = 2 * time.Second

// ConnectionQuality is the latest sampled link state
type ConnectionQuality struct {
	LatencyMS int    `json:"latencyMs"`
	Status    string `json:"status"` // good, degraded, disconnected
}

// Room is one live war room session. A mutex serializes all mutations;
// the sampler goroutine and stale AI completions check the generation
// counter so they cannot touch a room that moved on without them.
type Room struct {
	mu sync.Mutex

	SessionID string
	UserName  string

	chat       []models.ChatMessage
	code       string
	quality    ConnectionQuality
	micOn      bool
	camOn      bool
	active     bool
	generation int

	samplerStop chan struct{}
}

// NewRoom opens a room with the starter code and a system join message,
// and starts the connection sampler.
func NewRoom(sessionID, userName, starterCode string) *Room {
	r := &Room{
		SessionID:   sessionID,
		UserName:    userName,
		code:        starterCode,
		quality:     ConnectionQuality{LatencyMS: 40, Status: "good"},
		active:      true,
		samplerStop: make(chan struct{}),
	}

	r.chat = append(r.chat, models.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    "system",
		Text:      userName + " joined the session",
		Timestamp: time.Now(),
		IsSystem:  true,
	})

	go r.runSampler()
	metrics.ActiveWarRooms.Inc()

	return r
}

// SendChat validates and appends a message from the user
func (r *Room) SendChat(text string) (*models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	if err := validation.WithinLimit("message", text, validation.MaxChatMessageLength); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return nil, ErrRoomClosed
	}

	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    r.UserName,
		Text:      text,
		Timestamp: time.Now(),
	}
	r.chat = append(r.chat, msg)
	return &msg, nil
}

// Chat returns the conversation so far
func (r *Room) Chat() []models.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.ChatMessage, len(r.chat))
	copy(out, r.chat)
	return out
}

// UpdateCode replaces the code buffer. Edits past the length limit are
// rejected without touching the buffer.
func (r *Room) UpdateCode(code string) error {
	if err := validation.WithinLimit("code", code, validation.MaxCodeLength); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return ErrRoomClosed
	}
	r.code = code
	return nil
}

// Code returns the current buffer
func (r *Room) Code() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code
}

// RunCode predicts the execution of the current buffer. If the room is
// left while the prediction is in flight, the completion is discarded.
func (r *Room) RunCode(ctx context.Context, collaborator ai.Collaborator, language string) (*models.RunCodeResponse, error) {
	r.mu.Lock()
	if !r.active {
		r.mu.Unlock()
		return nil, ErrRoomClosed
	}
	code := r.code
	gen := r.generation
	r.mu.Unlock()

	result, err := collaborator.PredictExecution(ctx, code, language)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active || r.generation != gen {
		logger.Debug("Discarding stale run result", zap.String("session_id", r.SessionID))
		return nil, ErrStaleRun
	}

	return result, nil
}

// Quality returns the latest sampled connection quality
func (r *Room) Quality() ConnectionQuality {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quality
}

// SetMedia toggles the mic and camera placeholder flags
func (r *Room) SetMedia(mic, cam bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.micOn = mic
	r.camOn = cam
}

// Media returns the mic and camera flags
func (r *Room) Media() (mic, cam bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.micOn, r.camOn
}

// Close stops the sampler and marks the room dead. Closing twice is a no-op.
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return
	}
	r.active = false
	r.generation++
	close(r.samplerStop)
	metrics.ActiveWarRooms.Dec()
}

// Active reports whether the room is still live
func (r *Room) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *Room) runSampler() {
	ticker := time.NewTicker(samplerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.samplerStop:
			return
		case <-ticker.C:
			r.sample()
		}
	}
}

func (r *Room) sample() {
	//nolint:gosec // G404: simulated latency, not security sensitive
	latency := 20 + rand.Intn(81)
	// Occasional spike models a flaky link
	//nolint:gosec // G404
	if rand.Intn(20) == 0 {
		latency += 500
	}

	status := "good"
	switch {
	case latency > 500:
		status = "disconnected"
	case latency > 100:
		status = "degraded"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return
	}
	r.quality = ConnectionQuality{LatencyMS: latency, Status: status}
}
