package weather

import "strings"

// Style is the background color and icon chosen for a weather description.
type Style struct {
	Color string
	Icon  string
}

// DefaultStyle applies when no rule matches.
var DefaultStyle = Style{Color: "white", Icon: ""}

type styleRule struct {
	match string
	style Style
}

// Specific substrings must precede the general ones they contain
// ("broken clouds" before "cloud").
var styleRules = []styleRule{
	{match: "broken clouds", style: Style{Color: "#607D8B", Icon: "broken-clouds"}},
	{match: "cloud", style: Style{Color: "#607D8B", Icon: "cloudy"}},
	{match: "rain", style: Style{Color: "#66959f", Icon: "rain"}},
	{match: "sunny", style: Style{Color: "yellow", Icon: "sunny"}},
	{match: "smoke", style: Style{Color: "grey", Icon: "smoke"}},
	{match: "clear", style: Style{Color: "#fbf8ae", Icon: "clear-sky"}},
	{match: "fog", style: Style{Color: "#a6a6a6", Icon: "fog"}},
	{match: "storm", style: Style{Color: "#a6a6a6", Icon: "storm"}},
}

// StyleFor returns the style of the first rule whose substring appears in
// description. Matching is case-sensitive.
func StyleFor(description string) Style {
	for _, r := range styleRules {
		if strings.Contains(description, r.match) {
			return r.style
		}
	}
	return DefaultStyle
}
