package config

// Layout constants in baseline units (390x844 design viewport)
const (
	// Screen padding
	ScreenPadding           = 16
	ScreenPaddingTop        = 32
	ScreenPaddingHorizontal = 20

	// Cards
	CardPadding       = 16
	CardGap           = 16
	TabletCardColumns = 2
	PhoneCardColumns  = 1

	// Tab bar reserve below the content
	TabBarHeight = 80

	// Plan form
	MapPreviewHeight  = 200
	InterestBoxHeight = 120

	// Help dialog
	DialogWidth = 240
)
