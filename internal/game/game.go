package game

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/blxck-backdrop/internal/audio"
	"github.com/iburimskiy/blxck-backdrop/internal/config"
	"github.com/iburimskiy/blxck-backdrop/internal/content"
	"github.com/iburimskiy/blxck-backdrop/internal/page"
	"github.com/iburimskiy/blxck-backdrop/internal/render"
	"github.com/iburimskiy/blxck-backdrop/internal/scene"
	"github.com/iburimskiy/blxck-backdrop/internal/theme"
	"github.com/iburimskiy/blxck-backdrop/internal/viewstate"
)

const (
	arrowStep = 40.0
	faqKeys   = 5
)

var faqDigits = [faqKeys]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

type Game struct {
	cfg    config.Config
	scene  *scene.Scene
	player *audio.Player

	// state cells, one writer each: Update
	pointer viewstate.Pointer
	scroll  *viewstate.Scroll
	ui      *viewstate.UI

	// page layout, rebuilt when language, FAQ state or width change
	lines      []page.Line
	pageHeight int
	dirty      bool

	// draw resources
	textLayer  *ebiten.Image
	vignette   *ebiten.Image
	vignetteOf theme.Theme

	width, height int
	frame         int
	status        string
	lastErr       error
}

// New builds the game and mounts the scene. player may be nil.
func New(cfg config.Config, player *audio.Player) *Game {
	if player == nil {
		player = &audio.Player{}
	}
	lang := cfg.LanguageTag()
	g := &Game{
		cfg:    cfg,
		scene:  scene.New(scene.ParamsFrom(cfg)),
		player: player,
		scroll: viewstate.NewScroll(cfg.MaxScroll),
		ui:     viewstate.NewUI(lang, cfg.ThemeValue(), len(content.For(lang).FAQ.Items)),
		width:  cfg.Width,
		height: cfg.Height,
		dirty:  true,
	}
	g.scene.Mount()
	fp := g.scene.Field().Params()
	log.Printf("scene mounted: %d particles, radius %v..%v, radial=%s, seed=%d", len(g.scene.Points()), fp.RMin, fp.RMax, fp.Radial, fp.Seed)
	return g
}

// View is the snapshot of pointer and scroll the scene steps with.
func (g *Game) View() viewstate.View {
	x, y := g.pointer.Position()
	return viewstate.NewView(x, y, g.scroll.Y())
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	g.pointer.Move(mouseX, mouseY, g.width, g.height)

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		g.scroll.By(-wheelY * config.ScrollWheelStep)
	}
	g.handleScrollKeys()

	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		lang := g.ui.ToggleLanguage()
		g.player.Chime(lang == content.English)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		th := g.ui.ToggleTheme()
		g.player.Chime(th == theme.Light)
	}
	for i, k := range faqDigits {
		if inpututil.IsKeyJustPressed(k) {
			g.player.Chime(g.ui.ToggleFAQ(i))
			g.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.player.ToggleMute() {
			g.status = "Sound off"
		} else {
			g.status = "Sound on"
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveSnapshotDialog(); err != nil {
			g.lastErr = err
			log.Printf("snapshot failed: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.relayout()
	g.scene.Step(g.View())
	g.frame++
	return nil
}

func (g *Game) handleScrollKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.scroll.Set(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.scroll.Set(float64(g.pageHeight))
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.scroll.By(float64(g.height) * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.scroll.By(-float64(g.height) * 0.9)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.scroll.By(arrowStep / 4)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.scroll.By(-arrowStep / 4)
	}
}

// relayout rebuilds the page lines and the scroll bound.
func (g *Game) relayout() {
	if !g.dirty {
		return
	}
	g.lines, g.pageHeight = page.Layout(g.ui.Content(), g.ui.FAQOpen, g.width)
	g.scroll.SetMax(viewstate.ScrollBound(g.pageHeight, g.height, g.cfg.MaxScroll))
	g.dirty = false
}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := g.ui.Theme().Palette()
	screen.Fill(pal.Background)

	for _, sp := range g.scene.Project(g.width, g.height) {
		c := pal.Particle
		if sp.Kind == scene.KindSphere {
			c = pal.Sphere
		}
		vector.DrawFilledCircle(screen, float32(sp.X), float32(sp.Y), float32(sp.Radius), c, true)
	}

	screen.DrawImage(g.vignetteImage(pal), nil)

	g.drawPage(screen, pal)
	g.drawNavbar(screen, pal)
	g.drawStatus(screen, pal)
}

func (g *Game) vignetteImage(pal theme.Palette) *ebiten.Image {
	b := image.Rect(0, 0, g.width, g.height)
	if g.vignette == nil || g.vignetteOf != g.ui.Theme() || g.vignette.Bounds() != b {
		g.vignette = ebiten.NewImageFromImage(render.VignetteMask(g.width, g.height, pal.Vignette))
		g.vignetteOf = g.ui.Theme()
	}
	return g.vignette
}

// layer returns the scratch image text is printed on before tinting.
func (g *Game) layer() *ebiten.Image {
	b := image.Rect(0, 0, g.width, g.height)
	if g.textLayer == nil || g.textLayer.Bounds() != b {
		g.textLayer = ebiten.NewImage(g.width, g.height)
	}
	return g.textLayer
}

func (g *Game) drawPage(screen *ebiten.Image, pal theme.Palette) {
	scrollY := int(g.scroll.Y())
	var visible []page.Line
	for _, l := range g.lines {
		y := l.Y - scrollY
		if y+page.LineHeight < page.NavHeight || y > g.height {
			continue
		}
		l.Y = y
		visible = append(visible, l)
	}

	g.drawLines(screen, visible, pal, func(l page.Line) (float64, float64) {
		return page.Reveal(g.frame, l.Section)
	})
}

func (g *Game) drawNavbar(screen *ebiten.Image, pal theme.Palette) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), page.NavHeight, pal.Panel, false)
	vector.StrokeLine(screen, 0, page.NavHeight, float32(g.width), page.NavHeight, 1, withAlpha(pal.Muted, 0.3), false)

	lines := page.Navbar(g.ui.Content(), g.ui.Language(), g.ui.Theme(), g.width)
	g.drawLines(screen, lines, pal, func(page.Line) (float64, float64) { return 1, 0 })
}

// drawLines prints every line on the scratch layer, then copies each line's
// rectangle to the screen tinted by its style.
func (g *Game) drawLines(screen *ebiten.Image, lines []page.Line, pal theme.Palette, reveal func(page.Line) (alpha, slide float64)) {
	layer := g.layer()
	layer.Clear()
	for _, l := range lines {
		ebitenutil.DebugPrintAt(layer, l.Text, l.X, l.Y)
	}

	for _, l := range lines {
		alpha, slide := reveal(l)
		if alpha <= 0 {
			continue
		}
		r := image.Rect(l.X, l.Y, l.X+l.Width(), l.Y+page.LineHeight).Intersect(layer.Bounds())
		if r.Empty() {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y)+slide)
		op.ColorScale.ScaleWithColor(styleColor(pal, l.Style))
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(layer.SubImage(r).(*ebiten.Image), op)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image, pal theme.Palette) {
	sound := "on"
	if g.player.Muted() {
		sound = "off"
	}
	status := "Move: parallax  Wheel: scroll  1-5: FAQ  S: snapshot  M: sound (" + sound + ")  Esc/Q: quit"
	if g.status != "" {
		status = g.status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	line := page.Line{Text: status, X: 12, Y: g.height - page.LineHeight - 8, Style: page.Muted}
	g.drawLines(screen, []page.Line{line}, pal, func(page.Line) (float64, float64) { return 1, 0 })
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.dirty = true
	}
	return g.width, g.height
}

func (g *Game) saveSnapshotDialog() error {
	patterns := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		patterns[i] = "*." + string(f)
	}
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("backdrop.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.SaveSnapshot(filename)
}

// SaveSnapshot renders the current frame at the configured snapshot size.
func (g *Game) SaveSnapshot(path string) error {
	w := g.cfg.SnapshotSize
	h := max(1, w*g.height/max(1, g.width))
	img := render.Rasterize(g.scene.Project(w, h), w, h, g.ui.Theme().Palette(), g.cfg.SnapshotSupersample)
	if err := render.Save(path, img); err != nil {
		return err
	}
	g.status = fmt.Sprintf("Saved snapshot to %s", path)
	g.lastErr = nil
	log.Printf("snapshot saved: %s (%dx%d)", path, w, h)
	return nil
}
