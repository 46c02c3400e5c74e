package render

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an 8-bit RGB color.
type Color struct {
	R int `yaml:"r"`
	G int `yaml:"g"`
	B int `yaml:"b"`
}

// Theme holds the metrics of the single resume layout. All distances are
// PDF points. A theme file may override any subset of the defaults.
type Theme struct {
	PageSize string `yaml:"page_size"`

	MarginX      float64 `yaml:"margin_x"`
	IndentX      float64 `yaml:"indent_x"`
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`

	HeaderHeight  float64 `yaml:"header_height"`
	HeaderPadding float64 `yaml:"header_padding"`
	NameGap       float64 `yaml:"name_gap"`
	HeaderGap     float64 `yaml:"header_gap"`

	NameSize    float64 `yaml:"name_size"`
	ContactSize float64 `yaml:"contact_size"`
	SectionSize float64 `yaml:"section_size"`
	BodySize    float64 `yaml:"body_size"`

	SectionGap   float64 `yaml:"section_gap"`
	LineGap      float64 `yaml:"line_gap"`
	EntryGap     float64 `yaml:"entry_gap"`
	SeparatorGap float64 `yaml:"separator_gap"`
	LineWidth    float64 `yaml:"line_width"`

	SkillLabelGap     float64 `yaml:"skill_label_gap"`
	SkillBarHeight    float64 `yaml:"skill_bar_height"`
	SkillLabelReserve float64 `yaml:"skill_label_reserve"`

	HeaderColor     Color `yaml:"header_color"`
	HeaderTextColor Color `yaml:"header_text_color"`
	TextColor       Color `yaml:"text_color"`
	BarColor        Color `yaml:"bar_color"`
}

// DefaultTheme returns the stock resume layout on an A4 page.
func DefaultTheme() Theme {
	return Theme{
		PageSize: "A4",

		MarginX:      16,
		IndentX:      32,
		TopMargin:    40,
		BottomMargin: 36,

		HeaderHeight:  78,
		HeaderPadding: 16,
		NameGap:       18,
		HeaderGap:     42,

		NameSize:    28,
		ContactSize: 10,
		SectionSize: 12,
		BodySize:    10,

		SectionGap:   20,
		LineGap:      14,
		EntryGap:     8,
		SeparatorGap: 25,
		LineWidth:    1,

		SkillLabelGap:     10,
		SkillBarHeight:    5,
		SkillLabelReserve: 40,

		HeaderColor:     Color{R: 51, G: 51, B: 51},
		HeaderTextColor: Color{R: 255, G: 255, B: 255},
		TextColor:       Color{R: 26, G: 26, B: 26},
		BarColor:        Color{R: 26, G: 26, B: 26},
	}
}

// LoadTheme reads a YAML theme file on top of DefaultTheme.
// An empty path returns the defaults.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if err := theme.validate(); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return theme, nil
}

func (t Theme) validate() error {
	switch strings.ToLower(t.PageSize) {
	case "a4", "letter":
	default:
		return fmt.Errorf("unsupported page size %q", t.PageSize)
	}
	if t.LineGap <= 0 || t.BodySize <= 0 || t.SectionSize <= 0 {
		return fmt.Errorf("font sizes and line gap must be positive")
	}
	if t.BottomMargin < 0 || t.TopMargin < 0 {
		return fmt.Errorf("margins must not be negative")
	}
	return nil
}
