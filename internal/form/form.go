// Package form is an interactive terminal form for the shot settings.
//
// Every field is edited as text and committed through the validating setters
// of package input, so a rejected value leaves the previous one in place.
package form

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gehtsoft-usa/go_shotcalc"
	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
	"github.com/gehtsoft-usa/go_shotcalc/internal/chart"
	"github.com/gehtsoft-usa/go_shotcalc/internal/input"
	"github.com/gehtsoft-usa/go_shotcalc/internal/report"
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	resultStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

const (
	sparklineWidth  = 50
	sparklineHeight = 8
)

// FireFunc is called after every calculation.
type FireFunc func(s input.Settings, result go_shotcalc.TrajectoryResult)

// Options configure the form.
type Options struct {
	ExportDir string
	OnFire    FireFunc
}

// Model is the bubbletea model of the form.
type Model struct {
	settings  input.Settings
	fields    []string
	selected  int
	editing   bool
	buffer    []rune
	message   string
	isError   bool
	result    go_shotcalc.TrajectoryResult
	fired     input.Settings
	hasResult bool
	opts      Options
}

// NewModel creates the form for the settings.
func NewModel(s input.Settings, opts Options) Model {
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	return Model{
		settings: s,
		fields:   input.Fields(),
		opts:     opts,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles the key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.editing {
		return m.updateEditing(key)
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k", "shift+tab":
		m.selected = (m.selected + len(m.fields) - 1) % len(m.fields)
	case "down", "j", "tab":
		m.selected = (m.selected + 1) % len(m.fields)
	case "left", "h":
		m.cycle(-1)
	case "right", "l":
		m.cycle(1)
	case "enter":
		m.editing = true
		m.buffer = []rune(m.settings.Value(m.Selected()))
		m.message = ""
	case "f", "ctrl+f":
		m.fire()
	case "e":
		m.export()
	}
	return m, nil
}

func (m Model) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.editing = false
		m.buffer = nil
	case tea.KeyEnter:
		m.commit()
	case tea.KeyBackspace:
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
	case tea.KeySpace:
		m.buffer = append(m.buffer, ' ')
	case tea.KeyRunes:
		m.buffer = append(m.buffer, key.Runes...)
	}
	return m, nil
}

func (m *Model) commit() {
	field := m.Selected()
	text := string(m.buffer)
	m.editing = false
	m.buffer = nil

	before := m.settings
	if err := m.settings.Set(field, text); err != nil {
		m.message = err.Error()
		m.isError = true
		return
	}
	m.message = ""
	m.isError = false
	m.discardStale(before)
}

// discardStale drops the last result once the settings no longer describe it.
func (m *Model) discardStale(before input.Settings) {
	if m.settings != before {
		m.hasResult = false
	}
}

// cycle steps through the choices of the shot size, material and altitude fields.
func (m *Model) cycle(dir int) {
	var choices []string
	switch m.Selected() {
	case input.FieldShotSize:
		for _, s := range go_shotcalc.ShotSizes() {
			choices = append(choices, s.String())
		}
	case input.FieldMaterial:
		for _, mat := range go_shotcalc.ShotMaterials() {
			choices = append(choices, mat.String())
		}
	case input.FieldAltitude:
		for _, alt := range go_shotcalc.AltitudeChoices() {
			choices = append(choices, go_shotcalc.AltitudeChoiceName(alt))
		}
	default:
		return
	}

	current := m.settings.Value(m.Selected())
	next := 0
	for i, c := range choices {
		if c == current {
			next = (i + dir + len(choices)) % len(choices)
			break
		}
	}
	before := m.settings
	if err := m.settings.Set(m.Selected(), choices[next]); err != nil {
		m.message = err.Error()
		m.isError = true
		return
	}
	m.discardStale(before)
}

func (m *Model) fire() {
	result, err := m.settings.Simulate()
	if err != nil {
		m.message = err.Error()
		m.isError = true
		return
	}
	m.result = result
	m.fired = m.settings
	m.hasResult = true
	m.message = ""
	m.isError = false
	if m.opts.OnFire != nil {
		m.opts.OnFire(m.settings, result)
	}
}

func (m *Model) export() {
	if !m.hasResult {
		m.message = "Fire first, there is nothing to export"
		m.isError = true
		return
	}
	name := report.FileName(m.fired.Diameter(), m.result.PelletWeight(),
		m.fired.MuzzleVelocity(), m.fired.Crosswind())
	path, err := report.Export(m.opts.ExportDir, name, m.result)
	if err != nil {
		m.message = err.Error()
		m.isError = true
		return
	}
	m.message = "Saved " + path
	m.isError = false
}

// Settings returns the current settings.
func (m Model) Settings() input.Settings { return m.settings }

// Selected returns the name of the selected field.
func (m Model) Selected() string { return m.fields[m.selected] }

// Editing reports whether the selected field is being edited.
func (m Model) Editing() bool { return m.editing }

// Message returns the last error or information message.
func (m Model) Message() string { return m.message }

// Result returns the last calculated trajectory.
func (m Model) Result() (go_shotcalc.TrajectoryResult, bool) { return m.result, m.hasResult }

// View renders the form.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("SHOTGUNNER") + "\n")

	for i, field := range m.fields {
		value := m.settings.Value(field)
		if i == m.selected && m.editing {
			value = string(m.buffer) + "_"
		}
		line := labelStyle.Render(field) + valueStyle.Render(value)
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> ") + line + "\n")
		} else {
			s.WriteString("  " + line + "\n")
		}
	}

	minimum := go_shotcalc.MinimumEffectiveVelocity(m.settings.Weight()).In(unit.VelocityFPS)
	s.WriteString("\n" + labelStyle.Render("1 ft-lb at") + valueStyle.Render(fmt.Sprintf("%.0f fps", minimum)) + "\n")

	if m.message != "" {
		style := infoStyle
		if m.isError {
			style = errorStyle
		}
		s.WriteString("\n" + style.Render(m.message) + "\n")
	}

	s.WriteString(helpStyle.Render("↑↓:Field  ←→:Choice  Enter:Edit  F:Fire  E:Export  Q:Quit"))
	formView := s.String()

	if !m.hasResult {
		return formView
	}
	resultView := report.RenderTable(m.result)
	if plot := chart.VelocitySparkline(m.result, sparklineWidth, sparklineHeight); plot != "" {
		resultView += "\n\n" + plot
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, formView, resultStyle.Render(resultView))
}
