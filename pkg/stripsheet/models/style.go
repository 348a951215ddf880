package models

// BorderThin is the line style code of a thin border.
const BorderThin = 1

// OptionalInt is an int that may be unset. The zero value is unset.
type OptionalInt struct {
	Set   bool `json:"set,omitempty"`
	Value int  `json:"value,omitempty"`
}

// Some returns a set OptionalInt holding v.
func Some(v int) OptionalInt {
	return OptionalInt{Set: true, Value: v}
}

// Font is the font part of a cell style. A theme color applies on top of
// Color; Excel writes theme colors for most default fonts.
type Font struct {
	Bold         bool        `json:"bold,omitempty"`
	Italic       bool        `json:"italic,omitempty"`
	Underline    string      `json:"underline,omitempty"`
	Strike       bool        `json:"strike,omitempty"`
	Family       string      `json:"family,omitempty"`
	Size         float64     `json:"size,omitempty"`
	Color        string      `json:"color,omitempty"`
	ColorIndexed int         `json:"color_indexed,omitempty"`
	ColorTheme   OptionalInt `json:"color_theme"`
	ColorTint    float64     `json:"color_tint,omitempty"`
	VertAlign    string      `json:"vert_align,omitempty"`
	Charset      OptionalInt `json:"charset"`
}

// Fill types. An empty type with a Color is a solid fill.
const (
	FillPattern  = "pattern"
	FillGradient = "gradient"
)

// Fill is the cell background. The zero value means no fill and
// Fill{Color: c} is a solid fill. Pattern fills carry their pattern id and
// one color; gradient fills carry a shading variant and two colors.
type Fill struct {
	Type    string `json:"type,omitempty"`
	Pattern int    `json:"pattern,omitempty"`
	Shading int    `json:"shading,omitempty"`
	Color   string `json:"color,omitempty"`
	Color2  string `json:"color2,omitempty"`
}

// Edge is one side of a cell border. Style 0 means no line.
type Edge struct {
	Style int    `json:"style,omitempty"`
	Color string `json:"color,omitempty"`
}

// Border holds the four cell edges.
type Border struct {
	Left   Edge `json:"left"`
	Top    Edge `json:"top"`
	Right  Edge `json:"right"`
	Bottom Edge `json:"bottom"`
}

// Alignment is the cell text alignment.
type Alignment struct {
	Horizontal      string `json:"horizontal,omitempty"`
	Vertical        string `json:"vertical,omitempty"`
	WrapText        bool   `json:"wrap_text,omitempty"`
	Indent          int    `json:"indent,omitempty"`
	RelativeIndent  int    `json:"relative_indent,omitempty"`
	JustifyLastLine bool   `json:"justify_last_line,omitempty"`
	ReadingOrder    uint64 `json:"reading_order,omitempty"`
	ShrinkToFit     bool   `json:"shrink_to_fit,omitempty"`
	TextRotation    int    `json:"text_rotation,omitempty"`
}

// CellStyle is a plain value description of a cell's formatting.
// It is comparable and copied by assignment.
type CellStyle struct {
	Font      Font      `json:"font"`
	Fill      Fill      `json:"fill"`
	Border    Border    `json:"border"`
	Alignment Alignment `json:"alignment"`
	// NumFmt is a built-in number format id, passed through untouched.
	NumFmt int `json:"num_fmt,omitempty"`
	// CustomNumFmt is a custom number format code, passed through untouched.
	CustomNumFmt string `json:"custom_num_fmt,omitempty"`
}

// IsZero reports whether the style carries no formatting.
func (s CellStyle) IsZero() bool {
	return s == CellStyle{}
}

// ThinBorder returns a border with thin lines on all four sides.
func ThinBorder() Border {
	e := Edge{Style: BorderThin}
	return Border{Left: e, Top: e, Right: e, Bottom: e}
}

// Centered returns horizontally and vertically centered alignment.
func Centered() Alignment {
	return Alignment{Horizontal: "center", Vertical: "center"}
}
