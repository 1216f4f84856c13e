// Package window shows the box row in a desktop window.
package window

import (
	"errors"
	"image/color"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"github.com/marcus/boxrow/internal/config"
	"github.com/marcus/boxrow/internal/edit"
	"github.com/marcus/boxrow/internal/events"
	"github.com/marcus/boxrow/internal/fonts"
	"github.com/marcus/boxrow/internal/geometry"
	"github.com/marcus/boxrow/internal/layout"
	"github.com/marcus/boxrow/internal/pointer"
	"github.com/marcus/boxrow/internal/row"
)

const (
	margin       = 24
	statusHeight = 28
	minWidth     = 480
	minHeight    = 160
)

var (
	background  = color.RGBA{R: 250, G: 250, B: 252, A: 255}
	rowBorder   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	boxFill     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	boxHover    = color.RGBA{R: 244, G: 247, B: 252, A: 255}
	boxBorder   = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	activeFill  = color.RGBA{R: 232, G: 242, B: 255, A: 255}
	activeEdge  = color.RGBA{R: 40, G: 110, B: 220, A: 255}
	labelColor  = color.RGBA{R: 30, G: 34, B: 44, A: 255}
	mutedColor  = color.RGBA{R: 120, G: 128, B: 140, A: 255}
	statusColor = color.RGBA{R: 42, G: 56, B: 80, A: 255}
)

// Window is an ebiten game that hosts one row.
type Window struct {
	row        *row.Row
	dispatcher *pointer.Dispatcher
	metrics    layout.Metrics
	face       font.Face
	statusFace font.Face
	log        *slog.Logger

	draft  string
	status string
	hover  int

	screenW int
	screenH int

	initialW int
	initialH int
}

// New builds a window and mounts its row.
func New(cfg *config.Config, logger *slog.Logger) (*Window, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	face, err := fonts.Face(cfg.FontSize)
	if err != nil {
		return nil, err
	}

	w := &Window{
		dispatcher: pointer.NewDispatcher(),
		metrics:    layout.PixelMetrics(face, margin, margin, cfg.PixelGap),
		face:       face,
		statusFace: fonts.FaceOrFallback(12),
		log:        logger,
		hover:      -1,
	}
	w.row = row.New(row.Options{
		Count:       cfg.InitialCount,
		Format:      cfg.LabelFormat,
		Placeholder: cfg.Placeholder,
		Sink:        w.onEvent,
		Logger:      logger,
	})
	w.row.SetGeometry(layout.Provider{Texts: w.row.DisplayTexts, Active: w.row.Active, Metrics: w.metrics})
	if err := w.row.Mount(w.dispatcher); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// Close unmounts the row and releases the font faces. Calling it again does
// nothing.
func (w *Window) Close() error {
	w.row.Unmount()
	var errs []error
	for _, f := range []*font.Face{&w.face, &w.statusFace} {
		if *f == nil {
			continue
		}
		if err := (*f).Close(); err != nil {
			errs = append(errs, err)
		}
		*f = nil
	}
	return errors.Join(errs...)
}

// Run opens the window and blocks until it is closed, then calls Close.
func (w *Window) Run() error {
	defer func() {
		if err := w.Close(); err != nil {
			w.log.Warn("close window", "err", err)
		}
	}()

	width, height := w.preferredSize()
	ebiten.SetWindowTitle("boxrow")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(minWidth, minHeight, -1, -1)

	w.log.Info("window opened", "width", width, "height", height, "boxes", w.row.Len())
	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	w.log.Info("window closed", "labels", w.row.Labels())
	return nil
}

// Row returns the hosted row.
func (w *Window) Row() *row.Row {
	return w.row
}

// SetInitialSize overrides the window size computed from the row. Zero keeps
// the computed value.
func (w *Window) SetInitialSize(width, height int) {
	w.initialW = width
	w.initialH = height
}

func (w *Window) preferredSize() (int, int) {
	if w.initialW > 0 && w.initialH > 0 {
		return max(w.initialW, minWidth), max(w.initialH, minHeight)
	}
	width, height := layout.Extent(w.row.Geometry(), w.metrics)
	return max(width, minWidth), max(height+statusHeight, minHeight)
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	x, y := ebiten.CursorPosition()
	w.hover = -1
	if i, ok := geometry.HitBox(geometry.Point{X: x, Y: y}, w.row.Geometry()); ok {
		w.hover = i
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.dispatcher.Dispatch(geometry.Point{X: x, Y: y})
	}

	if _, editing := w.row.Active(); editing {
		w.handleTextInput(ctrl)
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(strings.Join(w.row.Labels(), "\n")); err != nil {
			w.status = "copy failed: " + err.Error()
			w.log.Warn("clipboard write failed", "err", err)
		} else {
			w.status = "labels copied"
		}
	}
	return nil
}

func (w *Window) handleTextInput(ctrl bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		w.row.Blur()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyKPEnter):
		w.row.Confirm(w.draft)
		return
	}

	draft := w.draft
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		draft = edit.Backspace(draft)
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if clip, err := clipboard.ReadAll(); err == nil && clip != "" {
			draft = edit.AppendRunes(draft, []rune(edit.PasteText(clip)), edit.MaxDraft)
		}
	}
	if !ctrl {
		draft = edit.AppendRunes(draft, ebiten.AppendInputChars(nil), edit.MaxDraft)
	}
	if draft != w.draft {
		w.draft = draft
		w.row.UpdateDraft(draft)
	}
}

// Layout implements ebiten.Game.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.screenW = max(outsideWidth, minWidth)
	w.screenH = max(outsideHeight, minHeight)
	return w.screenW, w.screenH
}

func (w *Window) onEvent(e events.Event) {
	switch e.Action {
	case events.ActionEditBegin:
		w.draft = e.Label
	case events.ActionEditConfirm, events.ActionEditCancel:
		w.draft = ""
	}
	if e.Action != events.ActionIgnored {
		w.status = e.String()
	}
}

