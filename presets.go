package pixedit

import "strings"

// Style is the categorical look tag of a preset.
type Style string

// Preset styles.
const (
	StyleNatural  Style = "natural"
	StyleVintage  Style = "vintage"
	StyleMono     Style = "mono"
	StyleWarm     Style = "warm"
	StyleCool     Style = "cool"
	StyleDramatic Style = "dramatic"
	StyleSoft     Style = "soft"
	StyleVivid    Style = "vivid"
)

// Preset is a named bundle of adjustments applied wholesale.
type Preset struct {
	Name        string      `json:"name"`
	Style       Style       `json:"style"`
	Adjustments Adjustments `json:"adjustments"`
}

var presets = []Preset{
	{Name: "Original", Style: StyleNatural, Adjustments: Identity()},
	{Name: "Vintage", Style: StyleVintage, Adjustments: Adjustments{
		Brightness: 110, Contrast: 90, Saturation: 80, Sepia: 60,
	}},
	{Name: "Black & White", Style: StyleMono, Adjustments: Adjustments{
		Brightness: 100, Contrast: 120, Saturation: 100, Grayscale: 100,
	}},
	{Name: "Warm", Style: StyleWarm, Adjustments: Adjustments{
		Brightness: 105, Contrast: 100, Saturation: 120, Hue: -10, Sepia: 20,
	}},
	{Name: "Cool", Style: StyleCool, Adjustments: Adjustments{
		Brightness: 100, Contrast: 105, Saturation: 90, Hue: 20,
	}},
	{Name: "Dramatic", Style: StyleDramatic, Adjustments: Adjustments{
		Brightness: 90, Contrast: 150, Saturation: 110, Sharpen: 40,
	}},
	{Name: "Soft", Style: StyleSoft, Adjustments: Adjustments{
		Brightness: 110, Contrast: 85, Saturation: 90, Blur: 1,
	}},
	{Name: "Vivid", Style: StyleVivid, Adjustments: Adjustments{
		Brightness: 105, Contrast: 115, Saturation: 160, Sharpen: 20,
	}},
}

// Presets returns a copy of the built-in presets.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// PresetByName looks a preset up by case-insensitive name.
func PresetByName(name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}
