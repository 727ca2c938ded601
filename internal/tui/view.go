package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/deckcalc/internal/ui"
)

// Title is the form heading
const Title = "Floating Deck Calculator"

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	header := ui.HeaderTitleStyle.Render(strings.ToUpper(Title))
	if m.serverURL != "" {
		header = lipgloss.JoinVertical(lipgloss.Left, header, ui.HeaderCommandStyle.Render(m.serverURL))
	}
	sections = append(sections, header, "")

	sections = append(sections,
		m.viewField(focusLength, "Length (ft)", 0),
		m.viewField(focusWidth, "Width (ft)", 1),
		m.viewCheckbox(),
		"",
		m.viewButton(),
	)

	if alert := m.page.Alerts.Message(); alert != "" {
		sections = append(sections, "", ui.ErrorTitleStyle.Render(ui.FailureMarker+" "+alert))
	}

	if m.page.Results.Visible() {
		sections = append(sections, "", m.viewResults())
	}

	sections = append(sections, "", m.help.View(m.keys))

	return ui.FormBoxStyle(m.width).Render(strings.Join(sections, "\n"))
}

func (m Model) label(f focus, text string) string {
	if m.focus == f {
		return ui.FocusedLabelStyle.Render(text)
	}
	return ui.FieldLabelStyle.Render(text)
}

func (m Model) viewField(f focus, label string, i int) string {
	line := m.label(f, label) + " " + m.inputs[i].View()
	if msg := m.field(i).InlineError(); msg != "" {
		line += "\n" + ui.FieldLabelStyle.Render("") + " " + ui.ErrorMessageStyle.Render(msg)
	}
	return line
}

func (m Model) viewCheckbox() string {
	box := "[ ]"
	if m.page.UseTwoBySix.Checked() {
		box = "[x]"
	}
	return m.label(focusTwoBySix, "Joists") + " " + box + ` Use 2x6 joists at 12" spacing`
}

func (m Model) viewButton() string {
	b := m.page.Submit
	switch {
	case !b.Enabled():
		return ui.DisabledButtonStyle.Render(m.spinner.View() + " " + b.Label())
	case m.focus == focusSubmit:
		return ui.FocusedButtonStyle.Render(b.Label())
	default:
		return ui.ButtonStyle.Render(b.Label())
	}
}

func (m Model) viewResults() string {
	p := m.page

	framing := p.BaseWood.String() + " pieces"
	if info := p.FramingInfo.String(); info != "" {
		framing += "  " + info
	}

	lines := []string{
		ui.SuccessTitleStyle.Render(ui.SuccessMarker + " Materials"),
		ui.ResultKeyStyle.Render("Deck boards:") + " " + ui.ResultValueStyle.Render(p.DeckBoards.String()+" ("+p.DeckBoardsLinearFeet.String()+" linear ft)"),
		ui.ResultKeyStyle.Render("Framing lumber:") + " " + ui.ResultValueStyle.Render(framing),
		ui.ResultKeyStyle.Render("Deck screws:") + " " + ui.ResultValueStyle.Render(p.Screws.String()),
	}

	if p.FastenersSection.Visible() {
		lines = append(lines, "", ui.TroubleshootingTitleStyle.Render("Additional fasteners:"))
		for _, entry := range p.Fasteners.Entries() {
			lines = append(lines, ui.ResultValueStyle.Render("  "+ui.BulletMarker+" "+entry))
		}
	}

	border := lipgloss.RoundedBorder()
	color := ui.MutedColor
	if p.Results.Highlighted() {
		border = lipgloss.DoubleBorder()
		color = ui.SuccessColor
	}

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
