package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/tripguide/internal/tui/messaging"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// copyToClipboard copies content off the update loop and reports the result as a status
func copyToClipboard(content string) tea.Cmd {
	return func() tea.Msg {
		if clipboard.Unsupported {
			return statusMsg{text: "Clipboard is not available on this system", msgType: messaging.MessageWarning}
		}
		if err := writeClipboard(content); err != nil {
			logrus.Warnf("Clipboard write failed: %v", err)
			return statusMsg{text: fmt.Sprintf("Failed to copy: %v", err), msgType: messaging.MessageError}
		}
		return statusMsg{text: "Plan copied to clipboard", msgType: messaging.MessageSuccess}
	}
}
