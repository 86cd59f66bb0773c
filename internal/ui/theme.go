package ui

import "github.com/gdamore/tcell/v2"

// The viewer's fixed color theme.
var (
	styleDefault  = tcell.StyleDefault
	styleHeader   = tcell.StyleDefault.Bold(true)
	styleRuler    = tcell.StyleDefault.Underline(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOngoing  = tcell.StyleDefault.Reverse(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleCell     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleToday    = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorGreen)
)
