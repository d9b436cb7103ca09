package pixedit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// EditorOptions controls an Editor.
type EditorOptions struct {
	// MaxPixels rejects sources and buffers larger than this many pixels, 0 disables the check.
	MaxPixels int
	// PreviewWidth and PreviewHeight downscale opened images to fit, 0 keeps natural size.
	PreviewWidth  uint
	PreviewHeight uint
	// Interpolation is used for preview downscaling.
	Interpolation Interpolation
	// HistoryLimit caps history entries, see History.Limit.
	HistoryLimit int
	// Workers bounds row parallelism of a single stage, 0 means GOMAXPROCS.
	Workers int
	// Logger overrides the package logger set with SetLogger.
	Logger *slog.Logger
	// Now is the clock used for download names and entry timestamps.
	Now func() time.Time
}

// Editor sequences render passes over one current image and owns its history.
//
// Every state change (open, adjustment change, preset, undo, redo, reset) takes
// a new request token. Stages run outside the lock on fresh buffers; only the
// pass holding the latest token may commit, older passes return ErrSuperseded.
// Decode and render failures move the editor to StateError, keep the previous
// frame and are returned to the caller. Editor is safe for concurrent use.
type Editor struct {
	opt EditorOptions

	mu      sync.Mutex
	source  *Buffer
	adj     Adjustments
	frame   *Frame
	history History
	token   uint64
	state   State
	err     error
}

// NewEditor creates an editor with no image loaded.
func NewEditor(opts ...func(o *EditorOptions)) *Editor {
	opt := EditorOptions{
		MaxPixels:     defaultMaxPixels,
		HistoryLimit:  defaultHistoryLimit,
		Interpolation: InterpolationLanczos2,
		Now:           time.Now,
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}

	e := &Editor{opt: opt, adj: Identity()}
	e.history.Limit = opt.HistoryLimit
	return e
}

func (e *Editor) logger() *slog.Logger {
	if e.opt.Logger != nil {
		return e.opt.Logger
	}
	return Logger()
}

func (e *Editor) config() renderConfig {
	return renderConfig{workers: e.opt.Workers, maxPixels: e.opt.MaxPixels}
}

// Open decodes a new source image, renders it, and on commit replaces the source,
// resets adjustments and history. On *DecodeError or *RenderError the previous
// image, history and frame stay in place.
func (e *Editor) Open(ctx context.Context, r io.Reader) (*Frame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, e.fail(&DecodeError{Format: FormatUnknown, Err: fmt.Errorf("read: %w", err)})
	}
	src, err := decodeBuffer(data, e.opt.MaxPixels)
	if err != nil {
		return nil, e.fail(err)
	}
	src = Fit(src, e.opt.PreviewWidth, e.opt.PreviewHeight, e.opt.Interpolation)

	orig, err := encodePNGBytes(src)
	if err != nil {
		return nil, e.fail(&RenderError{Stage: "snapshot", Err: err})
	}
	entry := NewEntry(originalLabel, orig, Identity())
	entry.CreatedAt = e.opt.Now()

	e.mu.Lock()
	t := e.nextTokenLocked()
	e.mu.Unlock()

	e.logger().Info("image decoded",
		"format", DetectFormat(data), "width", src.Width, "height", src.Height)

	return e.render(ctx, t, renderRequest{base: src, adj: Identity(), original: &entry})
}

// SetAdjustments clamps a, makes it current and renders the source with it.
func (e *Editor) SetAdjustments(ctx context.Context, a Adjustments) (*Frame, error) {
	a = a.Clamp()

	e.mu.Lock()
	if e.source == nil {
		e.mu.Unlock()
		return nil, ErrNoImage
	}
	e.adj = a
	src := e.source
	t := e.nextTokenLocked()
	e.mu.Unlock()

	return e.render(ctx, t, renderRequest{base: src, adj: a})
}

// ApplyPreset overwrites the adjustments with the named preset, renders,
// and pushes the result to history.
func (e *Editor) ApplyPreset(ctx context.Context, name string) (*Frame, error) {
	p, ok := PresetByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	a := p.Adjustments.Clamp()

	e.mu.Lock()
	if e.source == nil {
		e.mu.Unlock()
		return nil, ErrNoImage
	}
	e.adj = a
	src := e.source
	t := e.nextTokenLocked()
	e.mu.Unlock()

	return e.render(ctx, t, renderRequest{base: src, adj: a, pushLabel: p.Name})
}

// Save pushes the committed frame to history.
// It returns ErrSuperseded while a newer render request is pending.
func (e *Editor) Save(ctx context.Context, label string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	if label == "" {
		label = "save"
	}

	e.mu.Lock()
	fr := e.frame
	pending := e.state == StateRendering
	e.mu.Unlock()
	if fr == nil {
		return Entry{}, ErrNoImage
	}
	if pending {
		return Entry{}, ErrSuperseded
	}

	data, err := encodePNGBytes(fr.Buffer)
	if err != nil {
		return Entry{}, &RenderError{Stage: "snapshot", Err: err}
	}
	entry := NewEntry(label, data, fr.Adjustments)
	entry.CreatedAt = e.opt.Now()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.frame != fr || e.state == StateRendering {
		return Entry{}, ErrSuperseded
	}
	e.history.Push(entry)
	e.logger().Info("history push", "label", label, "len", e.history.Len())

	return entry, nil
}

// Undo selects the previous history entry and renders it.
// At the first entry it is a no-op returning the current frame.
func (e *Editor) Undo(ctx context.Context) (*Frame, error) {
	return e.selectEntry(ctx, (*History).Undo)
}

// Redo selects the next history entry and renders it.
// At the last entry it is a no-op returning the current frame.
func (e *Editor) Redo(ctx context.Context) (*Frame, error) {
	return e.selectEntry(ctx, (*History).Redo)
}

// ResetHistory drops every entry but the original and renders it.
func (e *Editor) ResetHistory(ctx context.Context) (*Frame, error) {
	return e.selectEntry(ctx, (*History).Reset)
}

func (e *Editor) selectEntry(ctx context.Context, move func(h *History) (Entry, bool)) (*Frame, error) {
	e.mu.Lock()
	if e.source == nil {
		e.mu.Unlock()
		return nil, ErrNoImage
	}
	entry, ok := move(&e.history)
	if !ok {
		fr := e.frame
		e.mu.Unlock()
		return fr, nil
	}
	e.adj = entry.Adjustments
	src := e.source
	t := e.nextTokenLocked()
	e.mu.Unlock()

	base, err := decodeBuffer(entry.Data, e.opt.MaxPixels)
	if err != nil {
		e.logger().Warn("history snapshot unreadable, showing source unfiltered",
			"entry", entry.ID, "error", err)
		base = src
	}

	return e.render(ctx, t, renderRequest{base: base, adj: Identity(), frameAdj: &entry.Adjustments})
}

// Download encodes the committed frame as PNG into w and returns the file name.
func (e *Editor) Download(w io.Writer) (string, error) {
	e.mu.Lock()
	fr := e.frame
	e.mu.Unlock()
	if fr == nil {
		return "", ErrNoImage
	}
	if err := EncodePNG(w, fr.Buffer); err != nil {
		return "", err
	}
	return DownloadName(e.opt.Now()), nil
}

// Frame returns the last committed frame, nil before the first render.
func (e *Editor) Frame() *Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

// Adjustments returns the current adjustments.
func (e *Editor) Adjustments() Adjustments {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.adj
}

// State returns the orchestrator state.
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Err returns the diagnostic of the failed pass while in StateError.
func (e *Editor) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Acknowledge clears an error state back to idle.
func (e *Editor) Acknowledge() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateError {
		e.state = StateIdle
		e.err = nil
	}
}

// History returns a copy of the history entries and the active index.
func (e *Editor) History() ([]Entry, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Entries(), e.history.Index()
}

func (e *Editor) nextTokenLocked() uint64 {
	e.token++
	e.state = StateRendering
	return e.token
}

func (e *Editor) fail(err error) error {
	e.mu.Lock()
	e.state = StateError
	e.err = err
	e.mu.Unlock()
	e.logger().Warn("render failed", "error", err)
	return err
}

type renderRequest struct {
	base *Buffer
	adj  Adjustments
	// frameAdj, when set, is recorded on the frame instead of adj.
	frameAdj *Adjustments
	// pushLabel, when set, pushes the committed frame to history.
	pushLabel string
	// original, when set, makes base the new source and resets history to it.
	original *Entry
}

func (e *Editor) render(ctx context.Context, t uint64, req renderRequest) (*Frame, error) {
	start := time.Now()
	cfg := e.config()

	out, err := adjust(ctx, req.base, req.adj, cfg)
	if err == nil && req.adj.Sharpen > 0 {
		out, err = sharpen(ctx, out, req.adj.Sharpen, cfg)
	}

	var entry Entry
	if err == nil && req.pushLabel != "" {
		var data []byte
		if data, err = encodePNGBytes(out); err != nil {
			err = &RenderError{Stage: "snapshot", Err: err}
		} else {
			entry = NewEntry(req.pushLabel, data, req.adj)
			entry.CreatedAt = e.opt.Now()
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if t != e.token {
		e.logger().Debug("render superseded", "token", t, "latest", e.token)
		return nil, ErrSuperseded
	}
	if err != nil {
		e.state = StateError
		e.err = err
		e.logger().Warn("render failed", "token", t, "error", err)
		return nil, err
	}

	fr := &Frame{Buffer: out, Adjustments: req.adj, Token: t}
	if req.frameAdj != nil {
		fr.Adjustments = *req.frameAdj
	}
	e.frame = fr
	e.state = StateIdle
	e.err = nil

	if req.original != nil {
		e.source = req.base
		e.adj = Identity()
		e.history.Clear()
		e.history.Push(*req.original)
		e.logger().Info("image opened", "width", out.Width, "height", out.Height)
	}

	if req.pushLabel != "" {
		e.history.Push(entry)
		e.logger().Info("history push", "label", req.pushLabel, "len", e.history.Len())
	}
	e.logger().Debug("render pass", "token", t, "elapsed", time.Since(start),
		"width", out.Width, "height", out.Height)

	return fr, nil
}
