// Package tui provides a Bubble Tea terminal user interface for exploring
// scales on the fretboard.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/catoryutarow/guitar-scale-app/internal/batch"
	"github.com/catoryutarow/guitar-scale-app/internal/catalog"
	"github.com/catoryutarow/guitar-scale-app/internal/config"
	"github.com/catoryutarow/guitar-scale-app/internal/fretboard"
	"github.com/catoryutarow/guitar-scale-app/internal/pitch"
	"github.com/catoryutarow/guitar-scale-app/internal/scale"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	scaleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	rootStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
)

// State represents the current UI state.
type State int

const (
	StateExplore State = iota
	StateExporting
	StateComplete
	StateError
)

// Focus selects which part of the explorer receives key presses.
type Focus int

const (
	// FocusInput sends keys to the root note input.
	FocusInput Focus = iota

	// FocusBrowse binds single keys to scale, display and tuning controls.
	FocusBrowse
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	focus     Focus
	textInput textinput.Model
	table     table.Model
	spinner   spinner.Model
	progress  progress.Model

	catalog  *catalog.Catalog
	settings *config.Settings

	// Selection
	presets   []scale.Preset
	presetIdx int // -1 while scaleName is not in the catalog
	scaleName string
	tunings   []string
	tuningIdx int // -1 for a custom tuning from settings
	tuning    fretboard.Tuning

	// Display options
	mode    scale.DisplayMode
	unicode bool
	degrees bool

	// Derived from the selection
	tones   []scale.Tone
	diagram []string
	rootErr error

	// Export context
	ctx     context.Context
	cancel  context.CancelFunc
	manager *batch.Manager
	written int32
	total   int32
	err     error

	width  int
	height int
}

// NewModel creates a new TUI model showing the default root and scale
// from settings.
func NewModel(cat *catalog.Catalog, settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "C, F#, Bb, E𝄫 ..."
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 12
	ti.SetValue(settings.DefaultRoot)

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Degree", Width: 6},
			{Title: "Note", Width: 6},
			{Title: "Pitch class", Width: 11},
		}),
		table.WithHeight(9),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()
	tbl.SetStyles(styles)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		state:     StateExplore,
		focus:     FocusInput,
		textInput: ti,
		table:     tbl,
		spinner:   sp,
		progress:  prog,
		catalog:   cat,
		settings:  settings,
		presets:   cat.Presets(),
		scaleName: settings.DefaultScale,
		tunings:   fretboard.TuningNames(),
		mode:      settings.Mode(),
		unicode:   settings.Unicode,
		ctx:       ctx,
		cancel:    cancel,
	}

	m.presetIdx = -1
	if p, ok := cat.Lookup(settings.DefaultScale); ok {
		for i := range m.presets {
			if m.presets[i].ID == p.ID {
				m.presetIdx = i
			}
		}
	}

	m.tuningIdx = -1
	tuning, err := fretboard.LookupTuning(settings.Tuning)
	if err != nil {
		tuning, _ = fretboard.LookupTuning("standard")
	}
	m.tuning = tuning
	for i, name := range m.tunings {
		if name == tuning.Name {
			m.tuningIdx = i
		}
	}

	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Message types
type (
	// ExportDoneMsg is sent when a batch export completes.
	ExportDoneMsg struct {
		Written int32
		Total   int32
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}

		switch m.state {
		case StateExporting:
			if msg.String() == "esc" {
				m.cancel()
			}
			return m, nil
		case StateComplete, StateError:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "r", "esc", "enter":
				m.state = StateExplore
				m.err = nil
				m.manager = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
			}
			return m, nil
		}

		if m.focus == FocusBrowse {
			return m.updateBrowse(msg)
		}

		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "enter", "tab":
			m.focus = FocusBrowse
			m.textInput.Blur()
			return m, nil
		case "up":
			m.cyclePreset(-1)
			return m, nil
		case "down":
			m.cyclePreset(1)
			return m, nil
		}

	case spinner.TickMsg:
		if m.state == StateExporting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case ExportDoneMsg:
		m.written = msg.Written
		m.total = msg.Total
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateExporting {
			m.written, m.total = m.manager.Progress()

			var percent float64
			if m.total > 0 {
				percent = float64(m.written) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateExplore && m.focus == FocusInput {
		before := m.textInput.Value()
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
		if m.textInput.Value() != before {
			m.refresh()
		}
	}

	return m, tea.Batch(cmds...)
}

// updateBrowse handles single-key controls.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "tab", "/", "i":
		m.focus = FocusInput
		return m, m.textInput.Focus()
	case "left", "h":
		m.cyclePreset(-1)
	case "right", "l":
		m.cyclePreset(1)
	case "f":
		if m.mode == scale.Friendly {
			m.mode = scale.Strict
		} else {
			m.mode = scale.Friendly
		}
		m.refresh()
	case "u":
		m.unicode = !m.unicode
		m.refresh()
	case "d":
		m.degrees = !m.degrees
		m.refresh()
	case "t":
		m.tuningIdx = (m.tuningIdx + 1) % len(m.tunings)
		m.tuning, _ = fretboard.LookupTuning(m.tunings[m.tuningIdx])
		m.refresh()
	case "e":
		return m.startExport()
	}
	return m, nil
}

func (m *Model) cyclePreset(delta int) {
	n := len(m.presets)
	if n == 0 {
		return
	}
	if m.presetIdx < 0 {
		m.presetIdx = 0
	} else {
		m.presetIdx = ((m.presetIdx+delta)%n + n) % n
	}
	m.scaleName = m.presets[m.presetIdx].ID
	m.refresh()
}

// refresh regenerates the tones, table rows and diagram.
func (m *Model) refresh() {
	m.tones = nil
	m.diagram = nil
	m.rootErr = nil

	root := strings.TrimSpace(m.textInput.Value())
	if root == "" {
		m.table.SetRows(nil)
		return
	}

	tones, err := m.catalog.Generate(root, m.scaleName)
	switch {
	case errors.Is(err, pitch.ErrInvalidNote):
		m.rootErr = err
	case errors.Is(err, catalog.ErrUnknownScale):
		// shown as an empty scale
	case err != nil:
		m.rootErr = err
	default:
		m.tones = tones
	}

	rows := make([]table.Row, len(m.tones))
	for i, t := range m.tones {
		rows[i] = table.Row{t.Degree, scale.FormatTone(t, m.mode, m.unicode), fmt.Sprintf("%d", t.PitchClass())}
	}
	m.table.SetRows(rows)

	if len(m.tones) > 0 {
		positions := fretboard.Layout(m.tones, m.tuning, m.settings.Frets)
		m.diagram = fretboard.Diagram(positions, m.tuning, m.settings.Frets, fretboard.DiagramOptions{
			Degrees: m.degrees,
			Mode:    m.mode,
			Unicode: m.unicode,
			Root:    func(s string) string { return rootStyle.Render(s) },
		})
	}
}

// startExport renders the current scale in every key signature root.
func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.presetIdx < 0 {
		return m, nil
	}

	settings := *m.settings
	settings.DisplayMode = m.mode.String()
	settings.Unicode = m.unicode

	manager := batch.NewManager(m.catalog, &settings, nil, nil)
	if err := manager.Plan(batch.DefaultRoots(), []string{m.presets[m.presetIdx].ID}); err != nil {
		m.state = StateError
		m.err = err
		return m, nil
	}

	m.manager = manager
	m.state = StateExporting
	m.written, m.total = manager.Progress()
	return m, tea.Batch(runExport(m.ctx, manager), m.tickProgress(), m.spinner.Tick)
}

// runExport runs the export in the background.
func runExport(ctx context.Context, manager *batch.Manager) tea.Cmd {
	return func() tea.Msg {
		err := manager.Run(ctx)
		written, total := manager.Progress()
		return ExportDoneMsg{Written: written, Total: total, Err: err}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// Tones returns the tones currently shown.
func (m Model) Tones() []scale.Tone {
	return m.tones
}

// Err returns the root input validation error, if any.
func (m Model) Err() error {
	return m.rootErr
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ Guitar Scale Explorer"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Scales spelled by degree, laid out on the neck"))
	b.WriteString("\n\n")

	switch m.state {
	case StateExplore:
		b.WriteString(m.viewExplore())
	case StateExporting:
		b.WriteString(m.viewExporting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewExplore() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Root: "))
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	b.WriteString(subtitleStyle.Render("Scale: "))
	if m.presetIdx >= 0 {
		b.WriteString(fmt.Sprintf("◀ %s ▶ ", m.presets[m.presetIdx].Name))
		b.WriteString(dimStyle.Render(fmt.Sprintf("(%d/%d)", m.presetIdx+1, len(m.presets))))
	} else {
		b.WriteString(warningStyle.Render(fmt.Sprintf("unknown scale %q", m.scaleName)))
	}
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Friendly spelling (f)\n", check(m.mode == scale.Friendly)))
	b.WriteString(fmt.Sprintf("  %s Unicode accidentals (u)\n", check(m.unicode)))
	b.WriteString(fmt.Sprintf("  %s Degrees on the neck (d)\n", check(m.degrees)))
	b.WriteString(fmt.Sprintf("      Tuning: %s (t)\n", m.tuning.Name))
	b.WriteString("\n")

	if m.rootErr != nil {
		b.WriteString(errorStyle.Render("✗ " + m.rootErr.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.tones) > 0 {
		b.WriteString(scaleStyle.Render(strings.Join(scale.FormatScale(m.tones, m.mode, m.unicode), " ")))
		b.WriteString("\n\n")
	}
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if len(m.diagram) > 0 {
		b.WriteString(boxStyle.Render(strings.Join(m.diagram, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewExporting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Exporting " + m.presets[m.presetIdx].Name + " in every key..."))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.written) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.written, m.total)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewComplete() string {
	return boxStyle.Render(fmt.Sprintf(
		"✓ Export Complete!\n\nFiles: %d\nPath: %s",
		m.written,
		m.settings.ExportPath,
	)) + "\n"
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")
	if m.total > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("  %d/%d files written", m.written, m.total)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateExplore:
		if m.focus == FocusInput {
			return "type a root • ↑/↓: scale • enter/tab: controls • esc: quit"
		}
		return "←/→: scale • f: friendly • u: unicode • d: degrees • t: tuning • e: export • tab: edit root • q: quit"
	case StateExporting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: back • q: quit"
	}
	return ""
}

func check(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

// Run starts the TUI application.
func Run(cat *catalog.Catalog, settings *config.Settings) error {
	p := tea.NewProgram(NewModel(cat, settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
