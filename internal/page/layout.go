// Package page lays out the landing page copy as lines of monospace text
// over the backdrop. Everything here is a pure function of the content,
// the UI state and the viewport width.
package page

import (
	"fmt"
	"strings"

	"github.com/iburimskiy/blxck-backdrop/internal/content"
	"github.com/iburimskiy/blxck-backdrop/internal/theme"
)

// Metrics of ebiten's debug font.
const (
	GlyphWidth = 6
	LineHeight = 16

	Margin    = 48
	NavHeight = 40
	heroTop   = NavHeight + 96
	gap       = 48
)

type Style int

const (
	Body Style = iota
	Title
	Accent
	Muted
)

type Section int

const (
	Hero Section = iota
	Features
	Card
	FAQ
	Footer
)

// Line is one row of text in page coordinates (y grows down the page).
type Line struct {
	Text    string
	X, Y    int
	Style   Style
	Section Section
}

// Width is the line's extent in pixels.
func (l Line) Width() int { return len(l.Text) * GlyphWidth }

type builder struct {
	lines []Line
	y     int
	x     int
	cols  int
	sec   Section
}

func (b *builder) add(text string, st Style) {
	b.lines = append(b.lines, Line{Text: text, X: b.x, Y: b.y, Style: st, Section: b.sec})
	b.y += LineHeight
}

func (b *builder) para(text string, st Style) {
	for _, l := range content.Wrap(text, b.cols) {
		b.add(l, st)
	}
}

func (b *builder) space(px int) { b.y += px }

// Layout places the scrolling sections and returns them with the total page
// height. open reports whether FAQ item i is expanded.
func Layout(c content.Content, open func(int) bool, width int) ([]Line, int) {
	cols := (width - 2*Margin) / GlyphWidth
	if cols < 16 {
		cols = 16
	}
	c = Fold(c)
	b := &builder{y: heroTop, x: Margin, cols: min(cols, 72)}

	b.sec = Hero
	b.add(c.Hero.Tagline, Accent)
	b.space(8)
	b.add(c.Hero.TitleLine1, Title)
	b.add(c.Hero.TitleLine2, Title)
	b.space(8)
	b.para(c.Hero.Description, Body)
	b.space(8)
	b.add(fmt.Sprintf("[ %s ]  [ %s ]", c.Hero.CTAPrimary, c.Hero.CTASecondary), Accent)
	b.add(c.Hero.Trust, Muted)
	b.space(gap * 2)

	b.sec = Features
	b.add(c.Features.Subtitle, Accent)
	b.add(c.Features.Title, Title)
	b.space(8)
	for _, card := range c.Features.Cards {
		b.add("> "+card.Title, Body)
		b.x += 2 * GlyphWidth
		b.para(card.Desc, Muted)
		b.x -= 2 * GlyphWidth
		b.space(8)
	}
	b.space(gap)

	b.sec = Card
	b.add(c.CardSection.Subtitle, Accent)
	b.add(c.CardSection.Title, Title)
	b.space(8)
	b.para(c.CardSection.Desc, Body)
	for _, item := range c.CardSection.List {
		b.add("  * "+item, Muted)
	}
	b.space(8)
	b.add("[ "+c.CardSection.CTA+" ]", Accent)
	b.space(gap)

	b.sec = FAQ
	b.add(c.FAQ.Subtitle, Accent)
	b.add(c.FAQ.Title, Title)
	b.space(8)
	for i, item := range c.FAQ.Items {
		isOpen := open != nil && open(i)
		mark, st := "+", Body
		if isOpen {
			mark, st = "x", Accent
		}
		b.add(fmt.Sprintf("[%d] %s %s", i+1, mark, item.Question), st)
		if isOpen {
			b.x += 6 * GlyphWidth
			b.para(item.Answer, Muted)
			b.x -= 6 * GlyphWidth
		}
		b.space(8)
	}
	b.para(c.FAQ.CTA, Muted)
	b.add("[ "+c.FAQ.CTAButton+" ]", Accent)
	b.space(gap)

	b.sec = Footer
	b.add(c.Footer, Muted)
	b.space(gap)

	return b.lines, b.y
}

// Navbar returns the fixed top bar, right-aligning the menu to width.
func Navbar(c content.Content, lang content.Language, th theme.Theme, width int) []Line {
	c = Fold(c)
	y := (NavHeight - LineHeight) / 2
	lines := []Line{{Text: "BLXCKPAY", X: Margin, Y: y, Style: Title}}

	menu := strings.Join([]string{c.Nav.Home, c.Nav.Features, c.Nav.Card, c.Nav.FAQ}, "   ")
	toggles := fmt.Sprintf("[L] %s  [T] %s", strings.ToUpper(string(lang.Toggle())), th.Toggle())

	right := width - Margin - len(toggles)*GlyphWidth
	lines = append(lines, Line{Text: toggles, X: right, Y: y, Style: Accent})
	if mx := right - (len(menu)+4)*GlyphWidth; mx > Margin+12*GlyphWidth {
		lines = append(lines, Line{Text: menu, X: mx, Y: y, Style: Body})
	}
	return lines
}
