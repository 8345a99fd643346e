package game

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/planet-shader/internal/config"
	"github.com/iburimskiy/planet-shader/internal/dispatch"
	"github.com/iburimskiy/planet-shader/internal/panel"
	"github.com/iburimskiy/planet-shader/internal/params"
	"github.com/iburimskiy/planet-shader/internal/shader"
	"github.com/iburimskiy/planet-shader/internal/texture"
	"github.com/iburimskiy/planet-shader/internal/uniform"
)

type Game struct {
	opts config.Options

	store   *params.Store
	queue   *dispatch.Queue
	bank    *texture.Bank
	loader  *texture.Loader
	program *shader.Program
	panel   *panel.Panel

	// GPU copies of the bank, re-uploaded when a slot's version moves.
	textures [texture.SlotCount]*ebiten.Image
	versions [texture.SlotCount]uint64

	frame uniform.Uniforms
	start time.Time

	snapshotPending bool
	status          string
	lastErr         error
}

// New builds the game around a bank of startup textures. It compiles the
// planet shader, so a broken shader fails here rather than at first draw.
func New(opts config.Options, bank *texture.Bank) (*Game, error) {
	return newGame(opts, bank, shader.NewProgram(nil))
}

func newGame(opts config.Options, bank *texture.Bank, program *shader.Program) (*Game, error) {
	g := &Game{
		opts:    opts,
		store:   params.NewStore(params.Defaults()),
		queue:   dispatch.NewQueue(),
		bank:    bank,
		program: program,
		start:   time.Now(),
	}

	g.loader = texture.NewLoader(bank, g.queue, nil)
	g.loader.Notify = g.notify
	g.loader.OnResult = g.onTextureResult

	g.panel = panel.New(g.store,
		image.Pt(config.WindowWidth-config.PanelWidth, 0),
		config.PanelWidth,
		panel.Actions{
			PickColor: g.pickColor,
			PickFile:  g.pickFile,
			EnterURL:  g.enterURL,
		})

	if err := g.program.Sync(g.store.Get().Features); err != nil {
		return nil, err
	}
	g.frame = uniform.Project(g.store.Get(), 0)
	g.store.Subscribe(g.onParamsChanged)
	return g, nil
}

// onParamsChanged runs synchronously after every panel change.
func (g *Game) onParamsChanged(p params.Params) {
	g.frame = uniform.Project(p, g.elapsed())
	if err := g.program.Sync(p.Features); err != nil {
		g.lastErr = err
		log.Printf("game: %v", err)
	}
}

func (g *Game) onTextureResult(r texture.Result) {
	switch {
	case r.Reverted:
		g.status = r.Slot.String() + ": not an image, restored default"
	case r.Err != nil:
		g.lastErr = r.Err
	default:
		g.status = r.Slot.String() + " map loaded"
		g.lastErr = nil
	}
}

func (g *Game) elapsed() float64 {
	return time.Since(g.start).Seconds()
}

func (g *Game) Update() error {
	g.queue.Drain()

	x, y := ebiten.CursorPosition()
	cursor := image.Pt(x, y)

	g.handleDrops(cursor)

	g.panel.Update(panel.Input{
		Cursor:       cursor,
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	})

	_, dy := ebiten.Wheel()
	g.zoom(dy, cursor)

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.panel.ToggleHidden()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.snapshotPending = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// handleDrops loads dropped files into the slot under the cursor, or the
// day slot when the drop lands elsewhere.
func (g *Game) handleDrops(cursor image.Point) {
	if dropped := ebiten.DroppedFiles(); dropped != nil {
		g.loadDropped(dropped, cursor)
	}
}

// loadDropped only lists the drop; file contents are read by the loader's
// background tasks.
func (g *Game) loadDropped(dropped fs.FS, cursor image.Point) {
	slot := texture.SlotDay
	if s, ok := g.panel.SlotAt(cursor); ok {
		slot = s
	}

	entries, err := fs.ReadDir(dropped, ".")
	if err != nil {
		g.lastErr = err
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		g.loader.LoadFS(slot, dropped, e.Name())
	}
}

// zoom moves the camera in and out. The wheel is ignored over the panel and
// while a slider is being dragged.
func (g *Game) zoom(dy float64, cursor image.Point) {
	if dy == 0 || g.panel.Contains(cursor) || g.panel.Busy() {
		return
	}
	g.store.Set(func(p *params.Params) {
		p.PlanetSize = clamp(p.PlanetSize+dy*config.ZoomStep, config.PlanetSizeRange)
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.syncTextures()
	g.frame.Time = g.elapsed()

	vp := g.viewport()
	side := quadSide(g.store.Get().PlanetSize, float64(vp.Dy()))
	center := vp.Min.Add(vp.Size().Div(2))
	g.drawPlanet(screen, side, float64(center.X), float64(center.Y))

	if g.snapshotPending {
		g.snapshotPending = false
		g.snapshot()
	}

	g.panel.Draw(screen, g.thumb)
	ebitenutil.DebugPrintAt(screen, g.statusLine(), 12, config.WindowHeight-20)
}

// drawPlanet issues the frame's single shader draw: the texture rect scaled
// to a side×side square centred on (cx, cy).
func (g *Game) drawPlanet(dst *ebiten.Image, side, cx, cy float64) {
	sh := g.program.Shader()
	if sh == nil {
		return
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Scale(side/config.TextureWidth, side/config.TextureHeight)
	op.GeoM.Translate(cx-side/2, cy-side/2)
	op.Uniforms = g.frame.Map()
	for i, img := range g.textures {
		op.Images[i] = img
	}
	dst.DrawRectShader(config.TextureWidth, config.TextureHeight, sh, op)
}

func (g *Game) syncTextures() {
	for _, s := range texture.Slots {
		v := g.bank.Version(s)
		if g.textures[s] != nil && g.versions[s] == v {
			continue
		}
		if g.textures[s] != nil {
			g.textures[s].Deallocate()
		}
		g.textures[s] = ebiten.NewImageFromImage(g.bank.Image(s))
		g.versions[s] = v
	}
}

func (g *Game) thumb(s texture.Slot) *ebiten.Image { return g.textures[s] }

// viewport is the window area left of the panel.
func (g *Game) viewport() image.Rectangle {
	r := image.Rect(0, 0, config.WindowWidth, config.WindowHeight)
	if !g.panel.Hidden() {
		r.Max.X = g.panel.Bounds().Min.X
	}
	return r
}

func (g *Game) statusLine() string {
	status := "Drop an image on a slot - H: panel, S: snapshot, wheel: zoom, Esc/Q: quit"
	if g.status != "" {
		status = g.status
	}
	status += " | " + formatDuration(time.Duration(g.elapsed()*float64(time.Second)))
	status += " | " + g.program.Features().String()
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Run opens the window and blocks until it closes.
func (g *Game) Run() error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Planet Shader - drop images on the texture slots, H: panel, S: snapshot, Esc/Q: quit")
	ebiten.SetTPS(g.opts.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
