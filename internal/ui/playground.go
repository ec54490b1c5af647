// Package ui contains the interactive formatter playground: type a value,
// cycle through scaling, rounding, sign, and separator options, and watch
// every scaling mode render it live.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"scaler"
)

var scalingNames = []string{"none", "scientific", "decimal", "binary"}

type playgroundModel struct {
	input textinput.Model

	scalingIdx    int // index into scalingNames
	spaced        bool
	significant   int // significant digits when magnitudeMode is off
	magnitude     int // magnitude target when magnitudeMode is on
	magnitudeMode bool
	signAlways    bool
	trailingZeros bool

	width int
}

// NewPlayground returns a Bubble Tea model seeded with the library defaults.
func NewPlayground() tea.Model {
	in := textinput.New()
	in.Placeholder = "123456.789"
	in.Prompt = "> "
	in.Focus()
	return &playgroundModel{
		input:         in,
		scalingIdx:    2, // decimal
		spaced:        true,
		significant:   4,
		trailingZeros: true,
		width:         80,
	}
}

func (m *playgroundModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.scalingIdx = (m.scalingIdx + 1) % len(scalingNames)
			return m, nil
		case "ctrl+r":
			m.magnitudeMode = !m.magnitudeMode
			return m, nil
		case "up":
			m.adjustPrecision(1)
			return m, nil
		case "down":
			m.adjustPrecision(-1)
			return m, nil
		case "ctrl+s":
			m.spaced = !m.spaced
			return m, nil
		case "ctrl+g":
			m.signAlways = !m.signAlways
			return m, nil
		case "ctrl+t":
			m.trailingZeros = !m.trailingZeros
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playgroundModel) adjustPrecision(delta int) {
	if m.magnitudeMode {
		m.magnitude += delta
		return
	}
	m.significant += delta
	if m.significant < 0 {
		m.significant = 0
	}
	if m.significant > 17 {
		m.significant = 17
	}
}

func (m *playgroundModel) formatter(scalingName string) scaler.Formatter {
	var s scaler.Scaling
	switch scalingName {
	case "none":
		s = scaler.ScalingNone()
	case "scientific":
		s = scaler.ScalingScientific()
	case "binary":
		s = scaler.ScalingBinary(m.spaced)
	default:
		s = scaler.ScalingDecimal(m.spaced)
	}
	f := scaler.New().SetScaling(s).SetTrailingZeros(m.trailingZeros)
	if m.magnitudeMode {
		f = f.SetRounding(scaler.RoundingMagnitude(m.magnitude))
	} else {
		f = f.SetRounding(scaler.RoundingSignificantDigits(uint8(m.significant)))
	}
	if m.signAlways {
		f = f.SetSign(scaler.SignAlways)
	}
	return f
}

func (m *playgroundModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("scaler playground"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	value, parseErr := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64)

	nameWidth := 12
	for i, name := range scalingNames {
		label := runewidth.FillRight(name, nameWidth)
		out := "—"
		if m.input.Value() != "" && parseErr == nil {
			out = m.formatter(name).Format(value)
		}
		line := label + out
		if i == m.scalingIdx {
			line = activeStyle.Render(line)
		}
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.input.Value() != "" && parseErr != nil {
		b.WriteString(dimStyle.Render("  not a number"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("tab scaling · ↑/↓ precision · ^R rounding · ^S spaced · ^G sign · ^T zeros · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *playgroundModel) statusLine() string {
	rounding := fmt.Sprintf("significant(%d)", m.significant)
	if m.magnitudeMode {
		rounding = fmt.Sprintf("magnitude(%d)", m.magnitude)
	}
	sign := "only-minus"
	if m.signAlways {
		sign = "always"
	}
	return fmt.Sprintf("scaling=%s spaced=%v rounding=%s sign=%s trailing_zeros=%v",
		scalingNames[m.scalingIdx], m.spaced, rounding, sign, m.trailingZeros)
}
