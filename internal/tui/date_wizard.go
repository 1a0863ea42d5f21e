package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmoreno/datebook/models"
)

type dwStage int

const (
	dwPerson dwStage = iota
	dwDay
	dwActivity
	dwLocation
	dwTimeOfDay
	dwRating
	dwEmoji
	dwIcks
	dwLiked
	dwMutuals
	dwReview
)

const emojiColumns = 8

// dateWizard drives the record-a-date flow. The person picked in the first
// step is snapshotted into the draft by id and by display name, so renaming
// the person later never rewrites this date.
type dateWizard struct {
	stage  dwStage
	people []models.Person

	input    textinput.Model
	optIdx   int
	freeText bool
	saving   bool
	errMsg   string
}

const activityOtherOption = "Other (type it in)"

func newDateWizard(people []models.Person) dateWizard {
	return dateWizard{stage: dwPerson, people: people}
}

func (m mainModel) updateDateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			return m.dateWizardBack()
		case "enter":
			return m.dateWizardAdvance()
		}

		if options, ok := m.dw.currentOptions(); ok {
			m.dw.moveCursor(keyMsg.String(), len(options))
			return m, nil
		}
	}

	if !m.dw.textStage() {
		return m, nil
	}

	var cmd tea.Cmd
	m.dw.input, cmd = m.dw.input.Update(msg)
	return m, cmd
}

// currentOptions returns the option set of the active stage, or false when
// the stage reads free text.
func (w dateWizard) currentOptions() ([]string, bool) {
	switch w.stage {
	case dwPerson:
		names := make([]string, 0, len(w.people))
		for _, person := range w.people {
			names = append(names, person.Name)
		}
		return names, true
	case dwActivity:
		if w.freeText {
			return nil, false
		}
		return append(append([]string{}, models.ActivityOptions...), activityOtherOption), true
	case dwTimeOfDay:
		return models.TimeOfDayOptions, true
	case dwRating:
		return models.RatingOptions, true
	case dwEmoji:
		return models.EmojiOptions, true
	case dwMutuals:
		return models.MutualsOptions, true
	}
	return nil, false
}

func (w dateWizard) textStage() bool {
	switch w.stage {
	case dwDay, dwLocation, dwIcks, dwLiked:
		return true
	case dwActivity:
		return w.freeText
	}
	return false
}

func (w *dateWizard) moveCursor(keyName string, count int) {
	step := 1
	if w.stage == dwEmoji {
		step = emojiColumns
	}

	switch keyName {
	case "up", "k":
		w.optIdx -= step
	case "down", "j":
		w.optIdx += step
	case "left", "h":
		w.optIdx--
	case "right", "l":
		w.optIdx++
	}
	if w.optIdx < 0 {
		w.optIdx = 0
	}
	if w.optIdx > count-1 {
		w.optIdx = count - 1
	}
}

func (m mainModel) dateWizardBack() (tea.Model, tea.Cmd) {
	m.dw.errMsg = ""

	if m.dw.stage == dwPerson {
		m.session.ClearDateDraft()
		m.screen = screenHome
		return m, nil
	}
	if m.dw.stage == dwActivity && m.dw.freeText {
		m.dw.freeText = false
		return m, nil
	}

	m.dw.stage--
	m.dw.optIdx = 0
	m.dw.freeText = false
	m.dw.prepareStage(m.session.DateDraft())
	return m, nil
}

func (m mainModel) dateWizardAdvance() (tea.Model, tea.Cmd) {
	draft := m.session.DateDraft()

	switch m.dw.stage {
	case dwPerson:
		if len(m.dw.people) == 0 {
			m.dw.errMsg = "no people to pick from"
			return m, nil
		}
		person := m.dw.people[m.dw.optIdx]
		if err := m.setDateFields(map[string]string{
			models.DateFieldPersonID:   person.ID,
			models.DateFieldPersonName: person.Name,
		}); err != nil {
			return m, nil
		}
	case dwDay:
		day := strings.TrimSpace(m.dw.input.Value())
		if day == "" {
			m.dw.errMsg = "when was the date?"
			return m, nil
		}
		if err := m.setDateFields(map[string]string{
			models.DateFieldDay:        day,
			models.DateFieldDayEpochMS: dayToEpochMS(day),
		}); err != nil {
			return m, nil
		}
	case dwActivity:
		if !m.dw.freeText && m.dw.optIdx == len(models.ActivityOptions) {
			m.dw.freeText = true
			m.dw.input = newWizardInput("activity")
			return m, textinput.Blink
		}
		activity := models.ActivityOptions[min(m.dw.optIdx, len(models.ActivityOptions)-1)]
		if m.dw.freeText {
			activity = strings.TrimSpace(m.dw.input.Value())
		}
		if err := m.setDateFields(map[string]string{models.DateFieldActivity: activity}); err != nil {
			return m, nil
		}
	case dwLocation:
		if err := m.setDateFields(map[string]string{models.DateFieldLocation: strings.TrimSpace(m.dw.input.Value())}); err != nil {
			return m, nil
		}
	case dwTimeOfDay:
		if err := m.setDateFields(map[string]string{models.DateFieldTimeOfDay: models.TimeOfDayOptions[m.dw.optIdx]}); err != nil {
			return m, nil
		}
	case dwRating:
		if err := m.setDateFields(map[string]string{models.DateFieldRating: models.RatingOptions[m.dw.optIdx]}); err != nil {
			return m, nil
		}
	case dwEmoji:
		if err := m.setDateFields(map[string]string{models.DateFieldEmoji: models.EmojiOptions[m.dw.optIdx]}); err != nil {
			return m, nil
		}
	case dwIcks:
		if err := m.setDateFields(map[string]string{models.DateFieldIcks: strings.TrimSpace(m.dw.input.Value())}); err != nil {
			return m, nil
		}
	case dwLiked:
		if err := m.setDateFields(map[string]string{models.DateFieldLiked: strings.TrimSpace(m.dw.input.Value())}); err != nil {
			return m, nil
		}
	case dwMutuals:
		if err := m.setDateFields(map[string]string{models.DateFieldMutuals: models.MutualsOptions[m.dw.optIdx]}); err != nil {
			return m, nil
		}
	case dwReview:
		if m.dw.saving {
			return m, nil
		}
		m.dw.saving = true
		m.dw.errMsg = ""
		return m, tea.Batch(m.spin.Tick, m.cmdSaveDate())
	}

	m.dw.errMsg = ""
	m.dw.stage++
	m.dw.optIdx = 0
	m.dw.freeText = false
	m.dw.prepareStage(draft)
	return m, nil
}

// prepareStage re-seeds the text input for stages that read free text,
// keeping any value already in the draft.
func (w *dateWizard) prepareStage(draft models.DateRecord) {
	switch w.stage {
	case dwDay:
		w.input = newWizardInput("YYYY-MM-DD")
		w.input.SetValue(draft.Day)
	case dwLocation:
		w.input = newWizardInput("location")
		w.input.SetValue(draft.Location)
	case dwIcks:
		w.input = newWizardInput("any icks? (optional)")
		w.input.SetValue(draft.Icks)
	case dwLiked:
		w.input = newWizardInput("what did you like? (optional)")
		w.input.SetValue(draft.Liked)
	}
}

func (m *mainModel) setDateFields(fields map[string]string) error {
	for key, value := range fields {
		if err := m.session.SetDateField(key, value); err != nil {
			m.dw.errMsg = err.Error()
			return err
		}
	}
	return nil
}

// dayToEpochMS shadows a parseable calendar day as epoch milliseconds for
// sorting; free-text days get an empty shadow.
func dayToEpochMS(day string) string {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return ""
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func (m mainModel) viewDateWizard() string {
	switch m.dw.stage {
	case dwPerson:
		return m.viewDateOptions("NEW DATE: WHO WITH", "")
	case dwDay:
		return m.viewDateInput("NEW DATE: WHEN", "When")
	case dwActivity:
		if m.dw.freeText {
			return m.viewDateInput("NEW DATE: ACTIVITY", "Activity")
		}
		return m.viewDateOptions("NEW DATE: ACTIVITY", "")
	case dwLocation:
		return m.viewDateInput("NEW DATE: WHERE", "Where")
	case dwTimeOfDay:
		return m.viewDateOptions("NEW DATE: TIME OF DAY", "")
	case dwRating:
		return m.viewDateOptions("NEW DATE: RATING", "How did it go, 1-5?")
	case dwEmoji:
		return m.viewEmojiPicker()
	case dwIcks:
		return m.viewDateInput("NEW DATE: ICKS", "Icks")
	case dwLiked:
		return m.viewDateInput("NEW DATE: LIKED", "Liked")
	case dwMutuals:
		return m.viewDateOptions("NEW DATE: MUTUALS", "Did you have mutual connections?")
	case dwReview:
		return m.viewDateReview()
	}
	return renderPage("NEW DATE", "", "esc: back")
}

func (m mainModel) viewDateOptions(title, hint string) string {
	options, _ := m.dw.currentOptions()

	var b strings.Builder
	if hint != "" {
		b.WriteString(hint)
		b.WriteString("\n\n")
	}
	for i, option := range options {
		cursor := "  "
		if i == m.dw.optIdx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(option)
		b.WriteString("\n")
	}
	if m.dw.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.dw.errMsg) + "\n")
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ esc: back")
}

func (m mainModel) viewDateInput(title, label string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-9s │ [%s]\n", label, m.dw.input.View()))
	if m.dw.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.dw.errMsg) + "\n")
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: next │ esc: back")
}

func (m mainModel) viewEmojiPicker() string {
	var b strings.Builder
	for i, emoji := range models.EmojiOptions {
		if i > 0 && i%emojiColumns == 0 {
			b.WriteString("\n")
		}
		if i == m.dw.optIdx {
			b.WriteString("[" + emoji + "]")
		} else {
			b.WriteString(" " + emoji + " ")
		}
	}
	return renderPage("NEW DATE: MOOD", b.String(), "enter: select │ arrows: navigate │ esc: back")
}

func (m mainModel) viewDateReview() string {
	draft := m.session.DateDraft()

	var b strings.Builder
	b.WriteString("With       │ " + valueOrDash(draft.PersonName) + "\n")
	b.WriteString("When       │ " + valueOrDash(draft.Day) + "\n")
	b.WriteString("Activity   │ " + valueOrDash(draft.Activity) + "\n")
	b.WriteString("Where      │ " + valueOrDash(draft.Location) + "\n")
	b.WriteString("Time       │ " + valueOrDash(draft.TimeOfDay) + "\n")
	b.WriteString("Rating     │ " + valueOrDash(draft.Rating) + " " + draft.Emoji + "\n")
	b.WriteString("Liked      │ " + valueOrDash(draft.Liked) + "\n")
	b.WriteString("Icks       │ " + valueOrDash(draft.Icks) + "\n")
	b.WriteString("Mutuals    │ " + valueOrDash(draft.Mutuals) + "\n")
	if m.dw.saving {
		b.WriteString("\n" + m.spin.View() + " Saving...\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	if m.dw.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.dw.errMsg) + "\n")
	}
	return renderPage("NEW DATE: REVIEW", strings.TrimRight(b.String(), "\n"), "enter: save │ esc: back")
}
