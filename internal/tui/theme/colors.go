package theme

// App palette (dark, iOS system colors)
const (
	ColorPrimary        = "#0A84FF"
	ColorSecondary      = "#323236"
	ColorBackground     = "#000000"
	ColorCardBackground = "#1C1C1E"
	ColorBorder         = "#3A3A3C"
	ColorInput          = "#2C2C2E"
	ColorDisabled       = "#636366"
	ColorTabBar         = "#1E1E1E"

	// Text colors
	ColorTextPrimary   = "#FFFFFF"
	ColorTextSecondary = "#DDDDDD"
	ColorTextTertiary  = "#8E8E93"

	// Status colors
	ColorSuccess = "#30D158"
	ColorWarning = "#FFD60A"
	ColorError   = "#FF453A"
	ColorInfo    = "#64D2FF"
)

// Message types, in the same order as messaging.MessageType
const (
	MessageInfo = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// GetMessageColor returns the color for a given message type
func GetMessageColor(messageType int) string {
	switch messageType {
	case MessageError:
		return ColorError
	case MessageSuccess:
		return ColorSuccess
	case MessageWarning:
		return ColorWarning
	default: // MessageInfo
		return ColorInfo
	}
}

// GetMessageIcon returns the icon for a given message type
func GetMessageIcon(messageType int) string {
	switch messageType {
	case MessageError:
		return "✗"
	case MessageSuccess:
		return "✓"
	case MessageWarning:
		return "!"
	default: // MessageInfo
		return "i"
	}
}
