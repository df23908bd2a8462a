package theme

// Font sizes in baseline units
const (
	FontXS  = 10
	FontSM  = 12
	FontMD  = 14
	FontLG  = 16
	FontXL  = 18
	FontXXL = 20
	FontH3  = 22
	FontH2  = 24
	FontH1  = 32
)

// Spacing in baseline units
const (
	SpacingXS  = 4
	SpacingSM  = 8
	SpacingMD  = 16
	SpacingLG  = 24
	SpacingXL  = 32
	SpacingXXL = 48
)
