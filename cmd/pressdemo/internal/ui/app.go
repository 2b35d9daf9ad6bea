package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/press/cmd/pressdemo/internal/config"
	"github.com/go-drift/press/cmd/pressdemo/internal/scene"
	"github.com/go-drift/press/pkg/errors"
	"github.com/go-drift/press/pkg/geometry"
	"github.com/go-drift/press/pkg/inspect"
	"github.com/go-drift/press/pkg/pointer"
	"github.com/go-drift/press/pkg/press"
	"github.com/go-drift/press/pkg/schedule"
)

// Rows above the scene canvas: title and status.
const sceneTop = 2

// How many log entries the event pane keeps on screen.
const logLines = 8

// Options configures a demo run.
type Options struct {
	Config    *config.Config
	Nodes     []config.NodeConfig
	SceneName string
	AppName   string
	Version   string
	Verbose   bool
	Watcher   *config.Watcher
}

type logKind int

const (
	logInfo logKind = iota
	logPress
	logRelease
	logError
)

type logEntry struct {
	at   time.Duration
	kind logKind
	text string
}

// timerMsg delivers a fired scheduler callback to the update loop, which
// keeps every detector interaction on one goroutine.
type timerMsg struct{ fn func() }

type reloadMsg struct{ cfg *config.Config }

type errorMsg struct{ text string }

// Model is the demo's Bubble Tea model.
type Model struct {
	appName   string
	version   string
	sceneName string
	verbose   bool

	cfg         *config.Config
	sourceNodes []config.NodeConfig

	sc      *scene.Scene
	det     *press.Detector
	sched   *schedule.TimerScheduler
	tracker *pointer.Tracker

	width     int
	height    int
	lastPos   geometry.Offset
	mouseDown bool
	start     time.Time
	entries   []logEntry
	quitting  bool
}

func newModel(opts Options, sc *scene.Scene, det *press.Detector, sched *schedule.TimerScheduler) *Model {
	m := &Model{
		appName:     opts.AppName,
		version:     opts.Version,
		sceneName:   opts.SceneName,
		verbose:     opts.Verbose,
		cfg:         opts.Config,
		sourceNodes: opts.Nodes,
		sc:          sc,
		det:         det,
		sched:       sched,
		tracker:     pointer.NewTracker(),
		start:       time.Now(),
	}
	det.AddCallback(m.pressCallback())
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case timerMsg:
		msg.fn()

	case reloadMsg:
		m.applyConfig(msg.cfg)

	case errorMsg:
		m.log(logError, msg.text)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "c":
		if m.mouseDown {
			m.pump(pointer.PhaseCancel, m.lastPos)
			m.mouseDown = false
		} else {
			m.log(logInfo, "no active pointer stream to cancel")
		}

	case "x":
		m.excludeAtCursor()

	case "s":
		m.snapshot()

	case "r":
		m.sc.Reset()
		m.det.Detach()
		m.mouseDown = false
		m.log(logInfo, "scene and detector reset")
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := geometry.Offset{X: float64(msg.X), Y: float64(msg.Y - sceneTop)}
	m.lastPos = pos

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.mouseDown = true
		m.pump(pointer.PhaseDown, pos)

	case tea.MouseActionMotion:
		if m.mouseDown {
			m.pump(pointer.PhaseMove, pos)
		}

	case tea.MouseActionRelease:
		if m.mouseDown {
			m.pump(pointer.PhaseUp, pos)
			m.mouseDown = false
		}
	}
}

// pump runs one pointer event through the scene and then the detector,
// the order the press contract requires.
func (m *Model) pump(phase pointer.Phase, pos geometry.Offset) {
	defer errors.Recover("pressdemo.pointer")

	ev := m.tracker.Track(pointer.Event{PointerID: 1, Position: pos, Phase: phase})
	m.sc.Apply(ev)
	m.det.HandlePointer(ev)

	if m.verbose {
		m.log(logInfo, ev.String())
	}
}

func (m *Model) pressCallback() press.Callback {
	return &press.CallbackFuncs{
		Pressed: func(el press.Element) {
			m.log(logPress, fmt.Sprintf("pressed %v", el))
		},
		Unpressed: func(el press.Element) {
			m.log(logRelease, fmt.Sprintf("unpressed %v", el))
		},
	}
}

func (m *Model) excludeAtCursor() {
	n := m.sc.HitTest(m.lastPos)
	if n == nil {
		m.log(logInfo, "nothing under the cursor to exclude")
		return
	}
	if press.IsExcluded(n) {
		m.log(logInfo, fmt.Sprintf("%s is already excluded", n.Name()))
		return
	}
	press.Exclude(n)
	m.log(logInfo, fmt.Sprintf("excluded %s (exclusion is permanent)", n.Name()))
}

func (m *Model) snapshot() {
	root := m.sc.Root()
	var err error
	if w, h := m.cfg.Snapshot.Width, m.cfg.Snapshot.Height; w > 0 && h > 0 {
		err = inspect.Snapshot(root, w, h, m.cfg.Snapshot.Path)
	} else {
		err = inspect.SnapshotFit(root, m.cfg.Snapshot.Path)
	}
	if err != nil {
		errors.Report(&errors.PressError{
			Op:   "pressdemo.snapshot",
			Kind: errors.KindSnapshot,
			Err:  err,
		})
		return
	}
	m.log(logInfo, "snapshot written to "+m.cfg.Snapshot.Path)
}

// applyConfig swaps in a reloaded config. The scene source keeps its
// current nodes when the new file has none (scenario runs).
func (m *Model) applyConfig(cfg *config.Config) {
	nodes := cfg.Scene
	if len(nodes) == 0 {
		nodes = m.sourceNodes
	}

	root, err := scene.Build(nodes)
	if err != nil {
		errors.Report(&errors.PressError{
			Op:   "pressdemo.reload",
			Kind: errors.KindScene,
			Err:  err,
		})
		return
	}

	m.sc.Reset()
	m.det.Detach()

	timings := cfg.Timings.Timings()
	m.sc = scene.New(root, m.sched, timings)
	det := press.NewDetector(root, m.sched, timings)
	det.AddCallback(m.pressCallback())
	m.det = det

	m.cfg = cfg
	m.sourceNodes = nodes
	m.mouseDown = false
	m.tracker = pointer.NewTracker()
	m.log(logInfo, "config reloaded")
}

func (m *Model) log(kind logKind, text string) {
	m.entries = append(m.entries, logEntry{
		at:   time.Since(m.start),
		kind: kind,
		text: text,
	})
	if len(m.entries) > 200 {
		m.entries = m.entries[len(m.entries)-200:]
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.titleLine())
	sb.WriteByte('\n')
	sb.WriteString(m.statusLine())
	sb.WriteByte('\n')
	sb.WriteString(m.sceneView())
	sb.WriteByte('\n')
	sb.WriteString(m.logView())
	sb.WriteByte('\n')
	sb.WriteString(Muted("drag: press · c: cancel · x: exclude · s: snapshot · r: reset · q: quit"))
	return sb.String()
}

func (m *Model) titleLine() string {
	title := Title(m.appName) + " " + Muted("v"+m.version)
	if m.sceneName != "" {
		title += "  " + Subtitle(m.sceneName)
	}
	return title
}

func (m *Model) statusLine() string {
	pressed := "none"
	if el := m.det.PressedElement(); el != nil {
		pressed = fmt.Sprintf("%v", el)
	}
	timings := m.det.Timings()
	return fmt.Sprintf("%s %s   %s %s   %s tap %v, clear %v",
		Muted("pressed:"), Bold(pressed),
		Muted("pointer:"), fmt.Sprintf("(%.0f, %.0f)", m.lastPos.X, m.lastPos.Y),
		Muted("timings:"), timings.TapTimeout, timings.PressedStateDuration)
}

func (m *Model) sceneView() string {
	root := m.sc.Root()
	w := int(root.Frame().Right)
	h := int(root.Frame().Bottom)
	if m.width > 0 && w > m.width {
		w = m.width
	}
	c := newCanvas(w, h)

	root.Walk(func(n *scene.Node) bool {
		if !n.Visible() {
			return false
		}
		st, fill := nodeStyle(n)
		c.box(n.Frame(), st, fill)

		label := n.Name()
		if press.IsExcluded(n) {
			label += " ✗"
		}
		lw := len([]rune(label)) + 2
		if lw+2 <= int(n.Frame().Width()) {
			c.text(labelCol(n.Frame(), lw), int(n.Frame().Top), " "+label+" ", st)
		}
		return true
	})

	return c.String()
}

func nodeStyle(n *scene.Node) (*lipgloss.Style, bool) {
	switch {
	case press.IsExcluded(n) && n.Pressed():
		return &excludedPressedNodeStyle, true
	case press.IsExcluded(n):
		return &excludedNodeStyle, false
	case n.Pressed():
		return &pressedNodeStyle, true
	case n.PrePressed():
		return &prePressedNodeStyle, false
	default:
		return &idleNodeStyle, false
	}
}

func (m *Model) logView() string {
	var sb strings.Builder
	sb.WriteString(Bold("Events"))
	sb.WriteByte('\n')

	entries := m.entries
	if len(entries) > logLines {
		entries = entries[len(entries)-logLines:]
	}
	if len(entries) == 0 {
		sb.WriteString(Muted("  (none yet: drag on a node)"))
		return sb.String()
	}

	for i, e := range entries {
		stamp := Muted(fmt.Sprintf("%7.2fs", e.at.Seconds()))
		var line string
		switch e.kind {
		case logPress:
			line = logPressStyle.Render(e.text)
		case logRelease:
			line = logReleaseStyle.Render(e.text)
		case logError:
			line = logErrorStyle.Render(e.text)
		default:
			line = logInfoStyle.Render(e.text)
		}
		sb.WriteString("  " + stamp + "  " + line)
		if i < len(entries)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Run builds the scene, wires the detector to a real-time scheduler that
// dispatches through the program's message loop, and runs the TUI.
func Run(opts Options) error {
	root, err := scene.Build(opts.Nodes)
	if err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}

	timings := opts.Config.Timings.Timings()
	sched := schedule.NewTimerScheduler(nil)
	sc := scene.New(root, sched, timings)
	det := press.NewDetector(root, sched, timings)

	m := newModel(opts, sc, det, sched)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	sched.Dispatch = func(fn func()) {
		p.Send(timerMsg{fn: fn})
	}

	prev := errors.DefaultHandler
	errors.SetHandler(&teaErrorHandler{send: p.Send})
	defer errors.SetHandler(prev)

	if opts.Watcher != nil {
		opts.Watcher.OnReload(func(cfg *config.Config) {
			p.Send(reloadMsg{cfg: cfg})
		})
		opts.Watcher.Start()
		defer opts.Watcher.Stop()
	}

	_, err = p.Run()
	m.det.Detach()
	return err
}

// teaErrorHandler forwards reported errors into the update loop so they
// land in the on-screen event log instead of corrupting the alt screen.
type teaErrorHandler struct {
	send func(tea.Msg)
}

func (h *teaErrorHandler) HandleError(err *errors.PressError) {
	h.send(errorMsg{text: err.Error()})
}

func (h *teaErrorHandler) HandlePanic(err *errors.PanicError) {
	h.send(errorMsg{text: err.Error()})
}
