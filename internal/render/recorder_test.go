package render

// op is one recorded drawing call.
type op struct {
	kind string // text | rect | line
	page int
	x, y float64
	w, h float64
	text string
	font Font
}

// recorder is a Canvas that keeps every call for inspection. Text width is
// approximated as half the font size per rune.
type recorder struct {
	w, h float64
	page int
	ops  []op
}

func newRecorder() *recorder { return &recorder{w: 595.28, h: 841.89} }

func (r *recorder) PageSize() (float64, float64) { return r.w, r.h }
func (r *recorder) AddPage()                      { r.page++ }

func (r *recorder) Text(x, y float64, s string, f Font, _ Color) {
	r.ops = append(r.ops, op{kind: "text", page: r.page, x: x, y: y, text: s, font: f})
}

func (r *recorder) TextWidth(s string, f Font) float64 {
	return float64(len([]rune(s))) * f.Size * 0.5
}

func (r *recorder) Rect(x, y, w, h float64, _ Color) {
	r.ops = append(r.ops, op{kind: "rect", page: r.page, x: x, y: y, w: w, h: h})
}

func (r *recorder) Line(x1, y1, x2, _ float64, _ float64, _ Color) {
	r.ops = append(r.ops, op{kind: "line", page: r.page, x: x1, y: y1, w: x2 - x1})
}

func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.kind == "text" {
			out = append(out, o.text)
		}
	}
	return out
}

func (r *recorder) find(text string) (op, bool) {
	for _, o := range r.ops {
		if o.kind == "text" && o.text == text {
			return o, true
		}
	}
	return op{}, false
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}
