package model

import (
	"bufio"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	cellGlyph = '*'

	ansiClearHome = "\x1b[H\x1b[2J"
)

var (
	// ErrRendererClosed is returned when drawing to a renderer after Close
	ErrRendererClosed = errors.New("renderer closed")
	// ErrQuit is returned by WaitForQuit when the user asks to exit
	ErrQuit = errors.New("quit requested")
)

// Renderer draws generations to some output
type Renderer interface {
	// Size returns the drawable area in cells
	Size() (width, height int)
	// Display draws g and a status line below the grid
	Display(g *Generation, bounds Bounds, status string) error
	Close()
}

// TerminalRenderer draws generations with cursor positioning on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	style  tcell.Style

	mu     sync.Mutex
	closed bool
	once   sync.Once
}

// NewTerminalRenderer opens the controlling terminal
func NewTerminalRenderer() (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewTerminalRenderer] failed to create screen")
	}
	return NewTerminalRendererWithScreen(screen)
}

// NewTerminalRendererWithScreen initialises and takes ownership of screen
func NewTerminalRendererWithScreen(screen tcell.Screen) (*TerminalRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewTerminalRenderer] failed to initialise screen")
	}
	screen.HideCursor()
	screen.Clear()

	return &TerminalRenderer{
		screen: screen,
		style:  tcell.StyleDefault,
	}, nil
}

// Size returns the current terminal size
func (r *TerminalRenderer) Size() (int, int) {
	return r.screen.Size()
}

// Display clears the screen and draws one glyph per live cell
func (r *TerminalRenderer) Display(g *Generation, bounds Bounds, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRendererClosed
	}

	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	for c := range g.All() {
		if c.X < 0 || c.X >= screenW || c.Y < 0 || c.Y >= screenH {
			continue
		}
		r.screen.SetContent(c.X, c.Y, cellGlyph, nil, r.style)
	}

	if status != "" && bounds.Height < screenH {
		for i, ch := range []rune(status) {
			if i >= screenW {
				break
			}
			r.screen.SetContent(i, bounds.Height, ch, nil, r.style.Dim(true))
		}
	}

	r.screen.Show()
	return nil
}

// WaitForQuit blocks on terminal input until the user presses q, Esc or Ctrl-C,
// returning ErrQuit, or until the screen is closed, returning nil.
func (r *TerminalRenderer) WaitForQuit() error {
	for {
		ev := r.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return ErrQuit
			}
		case *tcell.EventResize:
			r.mu.Lock()
			if !r.closed {
				r.screen.Sync()
			}
			r.mu.Unlock()
		}
	}
}

// Close restores the terminal. Safe to call more than once.
func (r *TerminalRenderer) Close() {
	r.once.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.mu.Unlock()
		r.screen.Fini()
	})
}

// PlainRenderer writes each frame as text rows to a writer
type PlainRenderer struct {
	out           io.Writer
	width, height int
	clear         bool
}

// NewPlainRenderer creates a text renderer with a fixed drawable area.
// With clear set every frame starts with an ANSI clear-screen sequence.
func NewPlainRenderer(out io.Writer, width, height int, clear bool) *PlainRenderer {
	return &PlainRenderer{out: out, width: width, height: height, clear: clear}
}

// Size returns the fixed drawable area
func (r *PlainRenderer) Size() (int, int) {
	return r.width, r.height
}

// Display renders the grid as rows of blocks followed by the status line
func (r *PlainRenderer) Display(g *Generation, bounds Bounds, status string) error {
	w := bufio.NewWriter(r.out)
	if r.clear {
		w.WriteString(ansiClearHome)
	}
	for y := range max(bounds.Height, 0) {
		for x := range max(bounds.Width, 0) {
			if g.Contains(x, y) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	if status != "" {
		w.WriteString(status)
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[PlainRenderer.Display] failed to write frame")
	}
	return nil
}

func (r *PlainRenderer) Close() {}

// HeadlessRenderer draws nothing. It stands in when no terminal is available.
type HeadlessRenderer struct {
	width, height int
}

func NewHeadlessRenderer(width, height int) *HeadlessRenderer {
	return &HeadlessRenderer{width: width, height: height}
}

func (r *HeadlessRenderer) Size() (int, int) {
	return r.width, r.height
}

func (r *HeadlessRenderer) Display(*Generation, Bounds, string) error {
	return nil
}

func (r *HeadlessRenderer) Close() {}
