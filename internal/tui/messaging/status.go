package messaging

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/tripguide/internal/animation"
	"github.com/HaiFongPan/tripguide/internal/tui/theme"
)

// DefaultMessageTTL is how long a status message stays on screen
const DefaultMessageTTL = 3 * time.Second

// MessageType represents different message types for status display
type MessageType int

// Message type constants
const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// StatusManager manages the status line shown above the tab bar
type StatusManager interface {
	SetMessage(message string, msgType MessageType)
	ClearMessage()
	GetMessage() (string, MessageType, bool)
	RenderMessage() string
	HasMessage() bool
	Expire(now time.Time) bool
}

// StatusManagerImpl implements the StatusManager interface
type StatusManagerImpl struct {
	statusMessage string
	messageType   MessageType
	setAt         time.Time
	ttl           time.Duration
	clock         animation.Clock
}

// NewStatusManager creates a status manager whose messages expire after ttl.
// A zero ttl keeps messages until cleared.
func NewStatusManager(clock animation.Clock, ttl time.Duration) StatusManager {
	if clock == nil {
		clock = animation.NewSystemClock()
	}
	return &StatusManagerImpl{
		messageType: MessageInfo,
		ttl:         ttl,
		clock:       clock,
	}
}

// SetMessage sets a status message with type
func (sm *StatusManagerImpl) SetMessage(message string, msgType MessageType) {
	sm.statusMessage = message
	sm.messageType = msgType
	sm.setAt = sm.clock.Now()

	logrus.Debugf("StatusManager: setMessage called with message='%s', type=%d", message, msgType)
}

// ClearMessage clears the status message
func (sm *StatusManagerImpl) ClearMessage() {
	sm.statusMessage = ""
}

// Expire clears the message once its ttl has passed and reports whether it did
func (sm *StatusManagerImpl) Expire(now time.Time) bool {
	if sm.statusMessage == "" || sm.ttl <= 0 {
		return false
	}
	if now.Sub(sm.setAt) < sm.ttl {
		return false
	}
	sm.ClearMessage()
	return true
}

// GetMessage returns the current message, type, and whether a message exists
func (sm *StatusManagerImpl) GetMessage() (string, MessageType, bool) {
	return sm.statusMessage, sm.messageType, sm.statusMessage != ""
}

// HasMessage returns whether there is currently a status message
func (sm *StatusManagerImpl) HasMessage() bool {
	return sm.statusMessage != ""
}

// RenderMessage renders the current status message with appropriate styling
func (sm *StatusManagerImpl) RenderMessage() string {
	if !sm.HasMessage() {
		return ""
	}

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetMessageColor(int(sm.messageType)))).
		Bold(true)

	return messageStyle.Render(fmt.Sprintf("%s %s", theme.GetMessageIcon(int(sm.messageType)), sm.statusMessage))
}
