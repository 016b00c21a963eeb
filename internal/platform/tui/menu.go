package tui

import (
	"fmt"
	"strings"
)

// menuItem is an entry of the main menu.
type menuItem int

const (
	itemPlay menuItem = iota
	itemRules
	itemSound
	itemQuit
)

var menuItems = []menuItem{itemPlay, itemRules, itemSound, itemQuit}

// label returns the text shown for the item.
func (i menuItem) label(muted bool) string {
	switch i {
	case itemPlay:
		return "Play"
	case itemRules:
		return "Rules"
	case itemSound:
		if muted {
			return "Sound: off"
		}
		return "Sound: on"
	case itemQuit:
		return "Quit"
	default:
		return ""
	}
}

// description returns the hint shown under the active item.
func (i menuItem) description() string {
	switch i {
	case itemPlay:
		return "Start a new run"
	case itemRules:
		return "How to play"
	case itemSound:
		return "Toggle music and effects"
	case itemQuit:
		return "Leave the game"
	default:
		return ""
	}
}

const gameTitle = "C L I F F   R U N N E R"

var rulesText = []string{
	"Run as far as you can.",
	"",
	"Press SPACE to jump.",
	"Land on the ground blocks; missing them drops you into the water.",
	"Do not touch the fires.",
	"",
	"The world speeds up the longer you survive.",
	"Your score is the distance you covered, in metres.",
}

// renderMenu draws the title, menu items and the active item's hint.
func renderMenu(th Theme, cursor int, muted bool, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(th.Title.Render(gameTitle), len(gameTitle), width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		label := item.label(muted)
		line := "  " + label
		style := th.MenuItemNormal
		if i == cursor {
			line = "> " + label
			style = th.MenuItemActive
		}
		b.WriteString(centerText(style.Render(line), len([]rune(line)), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	desc := menuItems[cursor].description()
	b.WriteString(centerText(th.MenuDescription.Render(desc), len(desc), width))
	b.WriteString("\n")
	return b.String()
}

// renderRules draws the rules page.
func renderRules(th Theme, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(th.Title.Render("RULES"), len("RULES"), width))
	b.WriteString("\n\n")
	for _, line := range rulesText {
		b.WriteString(centerText(th.Text.Render(line), len(line), width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderLoading draws the loader: a counter and the progress bar.
func renderLoading(th Theme, bar string, loaded, total, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(th.Title.Render(gameTitle), len(gameTitle), width))
	b.WriteString("\n\n")

	pct := 0
	if total > 0 {
		pct = loaded * 100 / total
	}
	status := fmt.Sprintf("Loading assets %d/%d (%d%%)", loaded, total, pct)
	b.WriteString(centerText(th.Subtitle.Render(status), len(status), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(bar, progressWidth, width))
	b.WriteString("\n")
	return b.String()
}

// centerText pads styled text of the given visible width to the centre.
func centerText(text string, visible, width int) string {
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}
