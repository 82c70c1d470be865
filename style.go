package vlist

// Style defines the visual appearance of a list view. Name identifies
// the theme in row cache keys, so two styles that render rows
// differently must not share a name.
type Style struct {
	Name string

	// Text
	TextColor         uint32
	TextDisabledColor uint32

	// Rows
	BgColor        uint32
	RowBgAltColor  uint32
	BorderColor    uint32
	HoveredBgColor uint32

	// Selection
	SelectedBgColor   uint32
	SelectedTextColor uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32
	ScrollbarGrabActive  uint32
	ScrollbarSize        float32

	// Sizing
	CharWidth  float32
	CharHeight float32
	RowPadding float32
	BorderSize float32
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		Name: "dark",

		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		BgColor:        RGBA(20, 20, 20, 255),
		RowBgAltColor:  RGBA(35, 35, 35, 255),
		BorderColor:    RGBA(80, 80, 80, 255),
		HoveredBgColor: RGBA(60, 60, 60, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),
		ScrollbarGrabActive:  RGBA(120, 120, 120, 255),
		ScrollbarSize:        12,

		CharWidth:  8,
		CharHeight: 8,
		RowPadding: 4,
		BorderSize: 1,
	}
}

// LightStyle returns a light variant for bright backgrounds.
func LightStyle() Style {
	return Style{
		Name: "light",

		TextColor:         RGBA(20, 20, 20, 255),
		TextDisabledColor: RGBA(130, 130, 130, 255),

		BgColor:        RGBA(245, 245, 245, 255),
		RowBgAltColor:  RGBA(232, 232, 232, 255),
		BorderColor:    RGBA(180, 180, 180, 255),
		HoveredBgColor: RGBA(215, 215, 215, 255),

		SelectedBgColor:   RGBA(70, 130, 190, 255),
		SelectedTextColor: ColorWhite,

		ScrollbarBgColor:     RGBA(225, 225, 225, 255),
		ScrollbarGrabColor:   RGBA(170, 170, 170, 255),
		ScrollbarGrabHovered: RGBA(140, 140, 140, 255),
		ScrollbarGrabActive:  RGBA(110, 110, 110, 255),
		ScrollbarSize:        12,

		CharWidth:  8,
		CharHeight: 8,
		RowPadding: 4,
		BorderSize: 1,
	}
}

// RowHeight returns the pixel height of one text row under this
// style.
func (s Style) RowHeight() float32 {
	return s.CharHeight + 2*s.RowPadding
}
