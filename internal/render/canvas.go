package render

// Font selects a face of the document font and its size in points.
type Font struct {
	Bold bool
	Size float64
}

// Canvas is the drawing surface the layout writes to. Coordinates are points
// with the origin at the bottom-left corner of the current page, so a cursor
// moving down the page decreases Y. Text is placed on its baseline.
type Canvas interface {
	PageSize() (w, h float64)
	// AddPage starts a new page; subsequent calls draw on it.
	AddPage()
	Text(x, y float64, s string, f Font, c Color)
	TextWidth(s string, f Font) float64
	// Rect fills a rectangle whose lower-left corner is (x, y).
	Rect(x, y, w, h float64, c Color)
	Line(x1, y1, x2, y2, width float64, c Color)
}
