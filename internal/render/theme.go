// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "github.com/fatih/color"

// Theme groups the colors applied to each field of a rendered record.
// Themes are plain values handed to the renderer, not global state.
type Theme struct {
	Title     *color.Color
	Authors   *color.Color
	Subjects  *color.Color
	Link      *color.Color
	Abstract  *color.Color
	Highlight *color.Color
}

// DefaultTheme is used when no theme or an unknown theme is configured.
const DefaultTheme = "nordic"

var themes = map[string]Theme{
	"nordic": {
		Title:     color.New(color.FgCyan, color.Bold),
		Authors:   color.New(color.FgBlue),
		Subjects:  color.New(color.FgHiBlack),
		Link:      color.New(color.FgHiBlue, color.Underline),
		Abstract:  color.New(color.FgWhite),
		Highlight: color.New(color.FgHiCyan, color.Bold, color.Underline),
	},
	"vibrant": {
		Title:     color.New(color.FgHiMagenta, color.Bold),
		Authors:   color.New(color.FgHiGreen),
		Subjects:  color.New(color.FgHiYellow),
		Link:      color.New(color.FgHiBlue, color.Underline),
		Abstract:  color.New(color.FgHiWhite),
		Highlight: color.New(color.BgHiYellow, color.FgBlack),
	},
	"solarized": {
		Title:     color.New(color.FgYellow, color.Bold),
		Authors:   color.New(color.FgGreen),
		Subjects:  color.New(color.FgCyan),
		Link:      color.New(color.FgBlue, color.Underline),
		Abstract:  color.New(color.FgWhite),
		Highlight: color.New(color.FgRed, color.Bold),
	},
	"classic": {
		Title:     color.New(color.Bold),
		Authors:   color.New(),
		Subjects:  color.New(color.Faint),
		Link:      color.New(color.Underline),
		Abstract:  color.New(),
		Highlight: color.New(color.Bold, color.Underline),
	},
}

// ThemeFor returns the named theme, falling back to the default for
// unknown names.
func ThemeFor(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	return []string{"classic", "nordic", "solarized", "vibrant"}
}
