package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmoreno/datebook/models"
)

type pwStage int

const (
	pwName pwStage = iota
	pwAge
	pwIndustry
	pwHowMet
	pwReview
)

// personWizard drives the add-person flow: name → age → industry → how-met →
// review. Every confirmed step lands in the session's person draft, so
// navigating away keeps the entered values until the draft is cleared.
type personWizard struct {
	stage    pwStage
	input    textinput.Model
	optIdx   int
	freeText bool
	saving   bool
	errMsg   string
}

const howMetOtherOption = "Other (type it in)"

func newPersonWizard() personWizard {
	return personWizard{stage: pwName, input: newWizardInput("name")}
}

func newWizardInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	in.Focus()
	return in
}

func (m mainModel) updatePersonWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			return m.personWizardBack()
		case "enter":
			return m.personWizardAdvance()
		}
		if m.pw.stage == pwHowMet && !m.pw.freeText {
			switch keyMsg.String() {
			case "up", "k":
				if m.pw.optIdx > 0 {
					m.pw.optIdx--
				}
			case "down", "j":
				if m.pw.optIdx < len(models.MeetingOptions) {
					m.pw.optIdx++
				}
			}
			return m, nil
		}
	}

	if m.pw.stage == pwReview || (m.pw.stage == pwHowMet && !m.pw.freeText) {
		return m, nil
	}

	var cmd tea.Cmd
	m.pw.input, cmd = m.pw.input.Update(msg)
	return m, cmd
}

func (m mainModel) personWizardBack() (tea.Model, tea.Cmd) {
	m.pw.errMsg = ""

	switch m.pw.stage {
	case pwName:
		m.session.ClearPersonDraft()
		m.screen = screenHome
		return m, nil
	case pwAge:
		m.pw.stage = pwName
		m.pw.input = newWizardInput("name")
		m.pw.input.SetValue(m.session.PersonDraft().Name)
	case pwIndustry:
		m.pw.stage = pwAge
		m.pw.input = newWizardInput("age")
		m.pw.input.SetValue(m.session.PersonDraft().Age)
	case pwHowMet:
		if m.pw.freeText {
			m.pw.freeText = false
			return m, nil
		}
		m.pw.stage = pwIndustry
		m.pw.input = newWizardInput("industry")
		m.pw.input.SetValue(m.session.PersonDraft().Industry)
	case pwReview:
		m.pw.stage = pwHowMet
		m.pw.freeText = false
	}
	return m, nil
}

func (m mainModel) personWizardAdvance() (tea.Model, tea.Cmd) {
	switch m.pw.stage {
	case pwName:
		name := strings.TrimSpace(m.pw.input.Value())
		if name == "" {
			m.pw.errMsg = "name is required"
			return m, nil
		}
		if err := m.session.SetPersonField(models.PersonFieldName, name); err != nil {
			m.pw.errMsg = err.Error()
			return m, nil
		}
		m.pw.errMsg = ""
		m.pw.stage = pwAge
		m.pw.input = newWizardInput("age")
		m.pw.input.SetValue(m.session.PersonDraft().Age)
	case pwAge:
		if err := m.session.SetPersonField(models.PersonFieldAge, strings.TrimSpace(m.pw.input.Value())); err != nil {
			m.pw.errMsg = err.Error()
			return m, nil
		}
		m.pw.errMsg = ""
		m.pw.stage = pwIndustry
		m.pw.input = newWizardInput("industry")
		m.pw.input.SetValue(m.session.PersonDraft().Industry)
	case pwIndustry:
		if err := m.session.SetPersonField(models.PersonFieldIndustry, strings.TrimSpace(m.pw.input.Value())); err != nil {
			m.pw.errMsg = err.Error()
			return m, nil
		}
		m.pw.errMsg = ""
		m.pw.stage = pwHowMet
		m.pw.optIdx = 0
		m.pw.freeText = false
	case pwHowMet:
		var howMet string
		if m.pw.freeText {
			howMet = strings.TrimSpace(m.pw.input.Value())
		} else if m.pw.optIdx == len(models.MeetingOptions) {
			m.pw.freeText = true
			m.pw.input = newWizardInput("how you met")
			return m, textinput.Blink
		} else {
			howMet = models.MeetingOptions[m.pw.optIdx]
		}
		if err := m.session.SetPersonField(models.PersonFieldHowMet, howMet); err != nil {
			m.pw.errMsg = err.Error()
			return m, nil
		}
		m.pw.errMsg = ""
		m.pw.stage = pwReview
	case pwReview:
		if m.pw.saving {
			return m, nil
		}
		m.pw.saving = true
		m.pw.errMsg = ""
		return m, tea.Batch(m.spin.Tick, m.cmdSavePerson())
	}
	return m, nil
}

func (m mainModel) viewPersonWizard() string {
	switch m.pw.stage {
	case pwName:
		return m.viewWizardInput("NEW PERSON: NAME", "Name", "Who did you meet?")
	case pwAge:
		return m.viewWizardInput("NEW PERSON: AGE", "Age", "How old are they? (optional)")
	case pwIndustry:
		return m.viewWizardInput("NEW PERSON: INDUSTRY", "Industry", "What do they do? (optional)")
	case pwHowMet:
		if m.pw.freeText {
			return m.viewWizardInput("NEW PERSON: HOW YOU MET", "How met", "")
		}
		var b strings.Builder
		for i, option := range append(append([]string{}, models.MeetingOptions...), howMetOtherOption) {
			cursor := "  "
			if i == m.pw.optIdx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(option)
			b.WriteString("\n")
		}
		return renderPage("NEW PERSON: HOW YOU MET", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ esc: back")
	case pwReview:
		draft := m.session.PersonDraft()
		var b strings.Builder
		b.WriteString("Name      │ " + valueOrDash(draft.Name) + "\n")
		b.WriteString("Age       │ " + valueOrDash(draft.Age) + "\n")
		b.WriteString("Industry  │ " + valueOrDash(draft.Industry) + "\n")
		b.WriteString("How met   │ " + valueOrDash(draft.HowMet) + "\n")
		if m.pw.saving {
			b.WriteString("\n" + m.spin.View() + " Saving...\n")
		} else {
			b.WriteString("\n[Save]\n")
		}
		if m.pw.errMsg != "" {
			b.WriteString("\n" + errorStyle.Render("Error: "+m.pw.errMsg) + "\n")
		}
		return renderPage("NEW PERSON: REVIEW", strings.TrimRight(b.String(), "\n"), "enter: save │ esc: back")
	}
	return renderPage("NEW PERSON", "", "esc: back")
}

func (m mainModel) viewWizardInput(title, label, hint string) string {
	var b strings.Builder
	if hint != "" {
		b.WriteString(hint)
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("%-9s │ [%s]\n", label, m.pw.input.View()))
	if m.pw.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.pw.errMsg) + "\n")
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: next │ esc: back")
}
