package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the top bar in lines
	HeaderHeight = 1

	// FooterHeight is the height of the status bar in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TabBarHeight is the editor's file tab line
	TabBarHeight = 1

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// MinTerminalWidth and MinTerminalHeight guard against negative layouts
	MinTerminalWidth  = 60
	MinTerminalHeight = 16

	// DefaultWrapWidth is the default width for text wrapping when the panel width is unknown
	DefaultWrapWidth = 80
)

// Output panel limits
const (
	// MaxTerminalLines is the number of log lines kept in the output panel
	MaxTerminalLines = 5000
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// HelpModalMaxVisible is the number of rows in the shortcuts list
	HelpModalMaxVisible = 16
)
