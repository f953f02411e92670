package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like strategy descriptions
)

// Contact Specific Colors
var (
	ContactNameColor = color.New(color.FgYellow).SprintFunc()
	StoreNameColor   = color.New(color.FgBlue, color.Bold).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Menu Colors
var (
	MenuKeyColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	MenuItemColor = color.New(color.FgWhite).SprintFunc()
)
