// Package tui provides the interactive unit-converter screen for the
// physkit CLI.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/physkit/internal/angle"
	"github.com/san-kum/physkit/internal/units"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type screen int

const (
	screenMenu screen = iota
	screenConvert
)

type category struct {
	name  string
	units []string
}

var categories = []category{
	{name: "temperature", units: []string{"K", "°C", "°F"}},
	{name: "pressure", units: []string{"Pa", "bar", "atm", "mmHg"}},
	{name: "angle", units: []string{"deg", "rad"}},
}

type model struct {
	screen   screen
	cursor   int
	selected int
	fromUnit int
	input    string
	results  []string
	errMsg   string
	width    int
	height   int
}

// NewConverter returns the initial converter model.
func NewConverter() tea.Model {
	return model{screen: screenMenu, width: 80, height: 24}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMenu:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(categories)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.cursor
			m.screen = screenConvert
			m.fromUnit = 0
			m.input = ""
			m.results = nil
			m.errMsg = ""
		}
	case screenConvert:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.screen = screenMenu
		case "tab":
			m.fromUnit = (m.fromUnit + 1) % len(categories[m.selected].units)
			m.results = nil
			m.errMsg = ""
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case "enter":
			m = m.convert()
		default:
			if len(msg.String()) == 1 && strings.ContainsAny(msg.String(), "0123456789.-e+") {
				m.input += msg.String()
			}
		}
	}
	return m, nil
}

func (m model) convert() model {
	v, err := strconv.ParseFloat(m.input, 64)
	if err != nil {
		m.errMsg = fmt.Sprintf("not a number: %q", m.input)
		m.results = nil
		return m
	}
	m.errMsg = ""

	switch categories[m.selected].name {
	case "temperature":
		from := []units.TemperatureUnit{units.Kelvin, units.Celsius, units.Fahrenheit}[m.fromUnit]
		k, err1 := units.ToKelvin(v, from)
		c, err2 := units.ToCelsius(v, from)
		f, err3 := units.ToFahrenheit(v, from)
		if err1 != nil || err2 != nil || err3 != nil {
			m.errMsg = firstError(err1, err2, err3).Error()
			m.results = nil
			return m
		}
		m.results = []string{
			fmt.Sprintf("%.6g K", k),
			fmt.Sprintf("%.6g °C", c),
			fmt.Sprintf("%.6g °F", f),
		}
	case "pressure":
		from := []units.PressureUnit{units.Pascal, units.Bar, units.Atmosphere, units.MillimeterOfMercury}[m.fromUnit]
		pa, err1 := units.ToPascal(v, from)
		bar, err2 := units.ToBar(v, from)
		atm, err3 := units.ToAtmosphere(v, from)
		mm, err4 := units.ToMillimeterOfMercury(v, from)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			m.errMsg = firstError(err1, err2, err3, err4).Error()
			m.results = nil
			return m
		}
		m.results = []string{
			fmt.Sprintf("%.6g Pa", pa),
			fmt.Sprintf("%.6g bar", bar),
			fmt.Sprintf("%.6g atm", atm),
			fmt.Sprintf("%.6g mmHg", mm),
		}
	case "angle":
		if m.fromUnit == 0 {
			m.results = []string{
				fmt.Sprintf("%.6g deg", v),
				fmt.Sprintf("%.6g rad", angle.DegToRad(v)),
				fmt.Sprintf("wrapped: %.6g deg", angle.WrapDeg(v)),
			}
		} else {
			m.results = []string{
				fmt.Sprintf("%.6g deg", angle.RadToDeg(v)),
				fmt.Sprintf("%.6g rad", v),
				fmt.Sprintf("wrapped: %.6g rad", angle.WrapRad(v)),
			}
		}
	}
	return m
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (m model) View() string {
	var b strings.Builder

	switch m.screen {
	case screenMenu:
		b.WriteString(cyan.Render("physkit convert") + "\n\n")
		for i, c := range categories {
			cursor := "  "
			style := white
			if i == m.cursor {
				cursor = magenta.Render("> ")
				style = magenta
			}
			b.WriteString(cursor + style.Render(c.name) + "\n")
		}
		b.WriteString("\n" + dim.Render("↑/↓ select · enter open · q quit"))
	case screenConvert:
		cat := categories[m.selected]
		b.WriteString(cyan.Render("convert "+cat.name) + "\n\n")

		b.WriteString(white.Render("from: "))
		for i, u := range cat.units {
			if i == m.fromUnit {
				b.WriteString(yellow.Render("["+u+"] "))
			} else {
				b.WriteString(dim.Render(u + " "))
			}
		}
		b.WriteString("\n\n")
		b.WriteString(white.Render("value: ") + m.input + white.Render("▌") + "\n\n")

		if m.errMsg != "" {
			b.WriteString(yellow.Render(m.errMsg) + "\n")
		}
		for _, r := range m.results {
			b.WriteString(green.Render(r) + "\n")
		}
		b.WriteString("\n" + dim.Render("tab switch unit · enter convert · esc back"))
	}

	return b.String()
}
