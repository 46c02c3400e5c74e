package render

import (
	"fmt"
	"strings"

	"resumebuilder/internal/model"
)

// Cursor is the running position of the layout: the page being drawn on
// (1-based) and the baseline of the next line, measured from the page bottom.
type Cursor struct {
	Page int
	Y    float64
}

// Layout places a ResumeRecord onto a Canvas. Every step takes the current
// Cursor and returns the advanced one; the Layout itself holds no position.
type Layout struct {
	canvas        Canvas
	theme         Theme
	width, height float64
}

// NewLayout binds a theme to a canvas.
func NewLayout(c Canvas, t Theme) *Layout {
	w, h := c.PageSize()
	return &Layout{canvas: c, theme: t, width: w, height: h}
}

type sectionFunc func(Cursor) Cursor

// Draw renders the whole record starting on a fresh page and returns the
// final cursor. Sections are separated by a rule.
func (l *Layout) Draw(rec model.ResumeRecord) Cursor {
	cur := l.newPage(Cursor{})
	cur = l.header(cur, rec)

	sections := make([]sectionFunc, 0, 8)
	if strings.TrimSpace(rec.Summary) != "" {
		sections = append(sections, func(c Cursor) Cursor { return l.summary(c, rec.Summary) })
	}
	sections = append(sections,
		func(c Cursor) Cursor { return l.experience(c, rec.Experience) },
		func(c Cursor) Cursor { return l.education(c, rec.Education) },
		func(c Cursor) Cursor { return l.skills(c, rec.Skills) },
	)
	if projects := filledProjects(rec.Projects); len(projects) > 0 {
		sections = append(sections, func(c Cursor) Cursor { return l.projects(c, projects) })
	}
	if items := nonEmpty(rec.Languages); len(items) > 0 {
		sections = append(sections, func(c Cursor) Cursor { return l.inlineList(c, "LANGUAGES:", items) })
	}
	if items := nonEmpty(rec.Certifications); len(items) > 0 {
		sections = append(sections, func(c Cursor) Cursor { return l.lineList(c, "CERTIFICATIONS:", items) })
	}
	if items := nonEmpty(rec.Hobbies); len(items) > 0 {
		sections = append(sections, func(c Cursor) Cursor { return l.inlineList(c, "HOBBIES:", items) })
	}

	for i, draw := range sections {
		if i > 0 {
			cur = l.separator(cur)
		}
		cur = draw(cur)
	}
	return cur
}

func (l *Layout) body() Font    { return Font{Size: l.theme.BodySize} }
func (l *Layout) bold() Font    { return Font{Bold: true, Size: l.theme.BodySize} }
func (l *Layout) section() Font { return Font{Bold: true, Size: l.theme.SectionSize} }

func (l *Layout) newPage(cur Cursor) Cursor {
	l.canvas.AddPage()
	return Cursor{Page: cur.Page + 1, Y: l.height - l.theme.TopMargin}
}

// fit moves to a new page when a block extending need points below the
// current baseline would cross the bottom margin.
func (l *Layout) fit(cur Cursor, need float64) Cursor {
	if cur.Y-need < l.theme.BottomMargin {
		return l.newPage(cur)
	}
	return cur
}

func (l *Layout) header(cur Cursor, rec model.ResumeRecord) Cursor {
	t := l.theme
	l.canvas.Rect(0, l.height-t.HeaderHeight, l.width, t.HeaderHeight, t.HeaderColor)

	cur.Y = l.height - t.NameSize - t.HeaderPadding
	l.canvas.Text(t.HeaderPadding, cur.Y, rec.Name, Font{Size: t.NameSize}, t.HeaderTextColor)
	cur.Y -= t.NameGap

	contact := joinNonEmpty(" | ", rec.Email, rec.Phone, rec.Address)
	l.canvas.Text(t.HeaderPadding, cur.Y, contact, Font{Size: t.ContactSize}, t.HeaderTextColor)
	cur.Y -= t.HeaderGap
	return cur
}

func (l *Layout) heading(cur Cursor, title string) Cursor {
	cur = l.fit(cur, l.theme.SectionGap+l.theme.LineGap)
	l.canvas.Text(l.theme.MarginX, cur.Y, title, l.section(), l.theme.TextColor)
	cur.Y -= l.theme.SectionGap
	return cur
}

func (l *Layout) separator(cur Cursor) Cursor {
	cur = l.fit(cur, l.theme.SeparatorGap)
	l.canvas.Line(l.theme.MarginX, cur.Y, l.width-l.theme.MarginX, cur.Y, l.theme.LineWidth, l.theme.TextColor)
	cur.Y -= l.theme.SeparatorGap
	return cur
}

// line draws one line of text at x and advances by LineGap.
func (l *Layout) line(cur Cursor, x float64, s string, f Font) Cursor {
	cur = l.fit(cur, 0)
	l.canvas.Text(x, cur.Y, s, f, l.theme.TextColor)
	cur.Y -= l.theme.LineGap
	return cur
}

type run struct {
	text string
	bold bool
}

// runs draws mixed-weight text on a single baseline and advances by LineGap.
func (l *Layout) runs(cur Cursor, x float64, parts ...run) Cursor {
	cur = l.fit(cur, 0)
	for _, p := range parts {
		f := l.body()
		if p.bold {
			f = l.bold()
		}
		l.canvas.Text(x, cur.Y, p.text, f, l.theme.TextColor)
		x += l.canvas.TextWidth(p.text, f)
	}
	cur.Y -= l.theme.LineGap
	return cur
}

// paragraph word-wraps text between x and the right margin.
func (l *Layout) paragraph(cur Cursor, x float64, text string) Cursor {
	f := l.body()
	width := l.width - x - l.theme.MarginX
	measure := func(s string) float64 { return l.canvas.TextWidth(s, f) }
	for _, ln := range wrapText(text, width, measure) {
		cur = l.line(cur, x, ln, f)
	}
	return cur
}

func (l *Layout) summary(cur Cursor, text string) Cursor {
	cur = l.heading(cur, "SUMMARY:")
	return l.paragraph(cur, l.theme.IndentX, text)
}

func (l *Layout) experience(cur Cursor, entries []model.ExperienceEntry) Cursor {
	cur = l.heading(cur, "EXPERIENCE:")
	for _, e := range entries {
		if blank(e.JobTitle, e.Company, e.StartDate, e.EndDate, e.Description) {
			continue
		}
		cur = l.entry(cur, e.JobTitle, e.Company, e.StartDate, e.EndDate, e.Description)
	}
	return cur
}

func (l *Layout) education(cur Cursor, entries []model.EducationEntry) Cursor {
	cur = l.heading(cur, "EDUCATION:")
	for _, e := range entries {
		if blank(e.Degree, e.Institution, e.StartDate, e.EndDate, e.Description) {
			continue
		}
		cur = l.entry(cur, e.Degree, e.Institution, e.StartDate, e.EndDate, e.Description)
	}
	return cur
}

// entry draws the shared experience/education shape:
// "<role> at <place>", the date range, then the wrapped description.
// Each draw fits itself, so an entry never opens a page it leaves empty.
func (l *Layout) entry(cur Cursor, role, place, start, end, desc string) Cursor {
	t := l.theme
	role, place = strings.TrimSpace(role), strings.TrimSpace(place)
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)

	switch {
	case role != "" && place != "":
		cur = l.runs(cur, t.IndentX, run{role, true}, run{" at ", false}, run{place, true})
	case role != "" || place != "":
		cur = l.runs(cur, t.IndentX, run{role + place, true})
	}
	if dates := dateRange(start, end); dates != "" {
		cur = l.line(cur, t.IndentX, dates, l.body())
	}
	if strings.TrimSpace(desc) != "" {
		cur = l.paragraph(cur, t.IndentX, desc)
	}
	cur.Y -= t.EntryGap
	return cur
}

// SkillTrackWidth is the width of a full (level 5) skill bar on this page.
func (l *Layout) SkillTrackWidth() float64 {
	return l.width - 2*l.theme.IndentX - l.theme.SkillLabelReserve
}

func (l *Layout) skills(cur Cursor, skills []model.SkillEntry) Cursor {
	t := l.theme
	cur = l.heading(cur, "SKILLS:")
	track := l.SkillTrackWidth()
	for _, s := range skills {
		if blank(s.Name, s.Level) {
			continue
		}
		cur = l.fit(cur, t.SkillLabelGap+t.SkillBarHeight)
		l.canvas.Text(t.IndentX, cur.Y, s.Name+":", l.body(), t.TextColor)
		cur.Y -= t.SkillLabelGap

		l.canvas.Rect(t.IndentX, cur.Y, SkillFraction(s.Level)*track, t.SkillBarHeight, t.BarColor)

		label := fmt.Sprintf("%s/%d", strings.TrimSpace(s.Level), MaxSkillLevel)
		labelX := l.width - t.IndentX - l.canvas.TextWidth(label, l.body())
		l.canvas.Text(labelX, cur.Y, label, l.body(), t.TextColor)
		cur.Y -= t.LineGap
	}
	return cur
}

func (l *Layout) projects(cur Cursor, projects []model.ProjectEntry) Cursor {
	t := l.theme
	cur = l.heading(cur, "PROJECTS:")
	for _, p := range projects {
		if title := strings.TrimSpace(p.Title); title != "" {
			cur = l.line(cur, t.IndentX, title, l.bold())
		}
		if strings.TrimSpace(p.Description) != "" {
			cur = l.paragraph(cur, t.IndentX, p.Description)
		}
		if url := strings.TrimSpace(p.URL); url != "" {
			cur = l.line(cur, t.IndentX, "URL: "+url, l.body())
		}
		if techs := nonEmpty(p.Technologies); len(techs) > 0 {
			cur = l.paragraph(cur, t.IndentX, "Technologies: "+strings.Join(techs, ", "))
		}
		cur.Y -= t.EntryGap
	}
	return cur
}

// inlineList draws all items comma-joined and wrapped.
func (l *Layout) inlineList(cur Cursor, title string, items []string) Cursor {
	cur = l.heading(cur, title)
	return l.paragraph(cur, l.theme.IndentX, strings.Join(items, ", "))
}

// lineList draws one item per line.
func (l *Layout) lineList(cur Cursor, title string, items []string) Cursor {
	cur = l.heading(cur, title)
	for _, it := range items {
		cur = l.paragraph(cur, l.theme.IndentX, it)
	}
	return cur
}

func dateRange(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " to " + end
	case start != "":
		return start
	default:
		return end
	}
}

// filledProjects drops projects that would draw nothing.
func filledProjects(in []model.ProjectEntry) []model.ProjectEntry {
	out := make([]model.ProjectEntry, 0, len(in))
	for _, p := range in {
		if blank(p.Title, p.Description, p.URL) && len(nonEmpty(p.Technologies)) == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

func blank(fields ...string) bool {
	return len(nonEmpty(fields)) == 0
}

func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(nonEmpty(parts), sep)
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
