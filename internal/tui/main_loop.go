package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmoreno/datebook/internal/adapter"
	"github.com/jmoreno/datebook/internal/session"
	"github.com/jmoreno/datebook/models"
)

type screen int

const (
	screenHome screen = iota
	screenPeople
	screenPersonDetail
	screenPersonEdit
	screenDates
	screenDateDetail
	screenPersonWizard
	screenDateWizard
)

var homeItems = []string{
	"Add a person",
	"Record a date",
	"People",
	"Dates",
	"Sign out",
	"Quit",
}

type mainModel struct {
	ctx      context.Context
	session  *session.Session
	identity adapter.ServerAdapter

	screen  screen
	menuIdx int
	loading bool
	spin    spinner.Model
	status  string
	errMsg  string

	people    []models.Person
	dates     []models.DateRecord
	peopleIdx int
	datesIdx  int

	editInputs     []textinput.Model
	editFocus      int
	editPersonID   string
	editSubmitting bool

	pw personWizard
	dw dateWizard

	logout bool
}

func newMainModel(ctx context.Context, sess *session.Session, identity adapter.ServerAdapter) mainModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return mainModel{
		ctx:      ctx,
		session:  sess,
		identity: identity,
		loading:  true,
		spin:     s,
	}
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.cmdLoadAll())
}

// waiting reports whether some store call is in flight and the spinner
// should keep ticking.
func (m mainModel) waiting() bool {
	return m.loading || m.editSubmitting || m.pw.saving || m.dw.saving
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listsLoadedMsg:
		m.loading = false
		m.refreshFromSession()
		return m, nil
	case personSavedMsg:
		m.pw.saving = false
		if msg.err != nil {
			m.pw.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.session.ClearPersonDraft()
		m.refreshFromSession()
		m.status = fmt.Sprintf("Saved %s", valueOrDash(msg.person.Name))
		m.errMsg = ""
		m.screen = screenHome
		return m, nil
	case dateSavedMsg:
		m.dw.saving = false
		if msg.err != nil {
			m.dw.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.session.ClearDateDraft()
		m.refreshFromSession()
		m.status = fmt.Sprintf("Date with %s recorded", valueOrDash(msg.date.PersonName))
		m.errMsg = ""
		m.screen = screenHome
		return m, nil
	case personUpdatedMsg:
		m.editSubmitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.refreshFromSession()
		m.status = "Person updated"
		m.errMsg = ""
		m.screen = screenPersonDetail
		return m, nil
	case spinner.TickMsg:
		if !m.waiting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		switch m.screen {
		case screenPersonWizard:
			return m.updatePersonWizard(msg)
		case screenDateWizard:
			return m.updateDateWizard(msg)
		case screenPersonEdit:
			return m.updatePersonEdit(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenHome:
		return m.updateHome(keyMsg)
	case screenPeople:
		return m.updatePeopleList(keyMsg)
	case screenPersonDetail:
		return m.updatePersonDetail(keyMsg)
	case screenPersonEdit:
		return m.updatePersonEdit(msg)
	case screenDates:
		return m.updateDatesList(keyMsg)
	case screenDateDetail:
		return m.updateDateDetail(keyMsg)
	case screenPersonWizard:
		return m.updatePersonWizard(msg)
	case screenDateWizard:
		return m.updateDateWizard(msg)
	}

	return m, nil
}

// ── Home ────────────────────────────────────────────────────────────────────

func (m mainModel) updateHome(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menuIdx < len(homeItems)-1 {
			m.menuIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.selectHomeItem()
	}
	return m, nil
}

func (m mainModel) selectHomeItem() (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = ""

	switch m.menuIdx {
	case 0:
		m.session.ClearPersonDraft()
		m.pw = newPersonWizard()
		m.screen = screenPersonWizard
		return m, textinput.Blink
	case 1:
		if len(m.people) == 0 {
			m.status = "Add a person before recording a date"
			return m, nil
		}
		m.session.ClearDateDraft()
		m.dw = newDateWizard(m.people)
		m.screen = screenDateWizard
		return m, nil
	case 2:
		m.peopleIdx = 0
		m.screen = screenPeople
		return m, nil
	case 3:
		m.datesIdx = 0
		m.screen = screenDates
		return m, nil
	case 4:
		m.logout = true
		return m, tea.Quit
	default:
		return m, tea.Quit
	}
}

// ── People list and detail ──────────────────────────────────────────────────

func (m mainModel) updatePeopleList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenHome
	case key.Matches(keyMsg, keys.up):
		if m.peopleIdx > 0 {
			m.peopleIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.peopleIdx < len(m.people)-1 {
			m.peopleIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.currentPerson(); ok {
			m.screen = screenPersonDetail
		}
	case key.Matches(keyMsg, keys.edit):
		if person, ok := m.currentPerson(); ok {
			m.startPersonEdit(person)
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m mainModel) updatePersonDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	person, ok := m.currentPerson()
	if !ok {
		m.screen = screenPeople
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenPeople
	case key.Matches(keyMsg, keys.edit):
		m.startPersonEdit(person)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copy):
		if err := clipboard.WriteAll(personSummary(person)); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied"
	}
	return m, nil
}

func (m *mainModel) startPersonEdit(person models.Person) {
	// Seed the draft so the edited values land in the same place the
	// wizard writes to.
	if err := m.session.UsePerson(person.ID); err != nil {
		m.errMsg = err.Error()
		return
	}

	makeInput := func(placeholder, value string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Width = 40
		in.SetValue(value)
		return in
	}

	name := makeInput("name", person.Name)
	name.Focus()

	m.editInputs = []textinput.Model{
		name,
		makeInput("age", person.Age),
		makeInput("industry", person.Industry),
		makeInput("how you met", person.HowMet),
	}
	m.editFocus = 0
	m.editSubmitting = false
	m.editPersonID = person.ID
	m.errMsg = ""
	m.screen = screenPersonEdit
}

func (m mainModel) updatePersonEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenPersonDetail
			return m, nil
		case "tab":
			m.editInputs[m.editFocus].Blur()
			m.editFocus = (m.editFocus + 1) % len(m.editInputs)
			m.editInputs[m.editFocus].Focus()
			return m, nil
		case "shift+tab":
			m.editInputs[m.editFocus].Blur()
			m.editFocus = (m.editFocus - 1 + len(m.editInputs)) % len(m.editInputs)
			m.editInputs[m.editFocus].Focus()
			return m, nil
		case "enter":
			if m.editSubmitting {
				return m, nil
			}

			person, ok := m.currentPerson()
			if !ok {
				m.screen = screenPeople
				return m, nil
			}

			patch := map[string]string{}
			entered := []string{
				m.editInputs[0].Value(),
				m.editInputs[1].Value(),
				m.editInputs[2].Value(),
				m.editInputs[3].Value(),
			}
			stored := []string{person.Name, person.Age, person.Industry, person.HowMet}
			wireKeys := []string{
				models.PersonFieldName,
				models.PersonFieldAge,
				models.PersonFieldIndustry,
				models.PersonFieldHowMet,
			}
			for i, value := range entered {
				if value != stored[i] {
					patch[wireKeys[i]] = value
				}
			}
			if len(patch) == 0 {
				m.screen = screenPersonDetail
				return m, nil
			}
			if strings.TrimSpace(entered[0]) == "" {
				m.errMsg = "name cannot be empty"
				return m, nil
			}

			m.errMsg = ""
			m.editSubmitting = true
			return m, tea.Batch(m.spin.Tick, m.cmdUpdatePerson(m.editPersonID, patch))
		}
	}

	var cmd tea.Cmd
	m.editInputs[m.editFocus], cmd = m.editInputs[m.editFocus].Update(msg)
	return m, cmd
}

// ── Dates list and detail ───────────────────────────────────────────────────

func (m mainModel) updateDatesList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenHome
	case key.Matches(keyMsg, keys.up):
		if m.datesIdx > 0 {
			m.datesIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.datesIdx < len(m.dates)-1 {
			m.datesIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.currentDate(); ok {
			m.screen = screenDateDetail
		}
	}
	return m, nil
}

func (m mainModel) updateDateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	date, ok := m.currentDate()
	if !ok {
		m.screen = screenDates
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenDates
	case key.Matches(keyMsg, keys.copy):
		if err := clipboard.WriteAll(dateSummary(date)); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied"
	}
	return m, nil
}

// ── Views ───────────────────────────────────────────────────────────────────

func (m mainModel) View() string {
	switch m.screen {
	case screenPeople:
		return m.viewPeopleList()
	case screenPersonDetail:
		return m.viewPersonDetail()
	case screenPersonEdit:
		return m.viewPersonEdit()
	case screenDates:
		return m.viewDatesList()
	case screenDateDetail:
		return m.viewDateDetail()
	case screenPersonWizard:
		return m.viewPersonWizard()
	case screenDateWizard:
		return m.viewDateWizard()
	}
	return m.viewHome()
}

func (m mainModel) viewHome() string {
	var b strings.Builder

	if m.loading || m.session.Busy() {
		b.WriteString(m.spin.View() + " Loading...\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	for i, item := range homeItems {
		cursor := "  "
		if i == m.menuIdx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("\n%d people │ %d dates", len(m.people), len(m.dates)))

	return renderPage("DATEBOOK", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ l: sign out │ q: quit")
}

func (m mainModel) viewPeopleList() string {
	if len(m.people) == 0 {
		return renderPage("PEOPLE", "No people yet", "esc: back")
	}

	var b strings.Builder
	b.WriteString("     Name                     │ Age  │ Industry\n")
	b.WriteString("──────────────────────────────┼──────┼─────────────────\n")
	for i, person := range m.people {
		cursor := " "
		if i == m.peopleIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf(
			"%s %-3d %-24s │ %-4s │ %s\n",
			cursor, i+1,
			fitText(person.Name, 24),
			fitText(valueOrDash(person.Age), 4),
			fitText(valueOrDash(person.Industry), 16),
		))
	}

	return renderPage("PEOPLE", strings.TrimRight(b.String(), "\n"), "enter: open │ e: edit │ ↑/↓: navigate │ esc: back")
}

func (m mainModel) viewPersonDetail() string {
	person, ok := m.currentPerson()
	if !ok {
		return renderPage("PERSON", "Record not found", "esc: back")
	}

	var b strings.Builder
	b.WriteString("Name      │ " + valueOrDash(person.Name) + "\n")
	b.WriteString("Age       │ " + valueOrDash(person.Age) + "\n")
	b.WriteString("Industry  │ " + valueOrDash(person.Industry) + "\n")
	b.WriteString("How met   │ " + valueOrDash(person.HowMet) + "\n")
	if !person.CreatedAt.IsZero() {
		b.WriteString("Added     │ " + person.CreatedAt.Format("2006-01-02") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("PERSON", strings.TrimRight(b.String(), "\n"), "e: edit │ c: copy │ esc: back")
}

func (m mainModel) viewPersonEdit() string {
	labels := []string{"Name", "Age", "Industry", "How met"}

	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(fmt.Sprintf("%-9s │ [%s]\n", label, m.editInputs[i].View()))
	}
	if m.editSubmitting {
		b.WriteString("\n" + m.spin.View() + " Saving...\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("EDIT PERSON", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: save │ esc: cancel")
}

func (m mainModel) viewDatesList() string {
	if len(m.dates) == 0 {
		return renderPage("DATES", "No dates yet", "esc: back")
	}

	var b strings.Builder
	b.WriteString("     With                │ When       │ Activity     │ ★\n")
	b.WriteString("─────────────────────────┼────────────┼──────────────┼───\n")
	for i, date := range m.dates {
		cursor := " "
		if i == m.datesIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf(
			"%s %-3d %-19s │ %-10s │ %-12s │ %s\n",
			cursor, i+1,
			fitText(date.PersonName, 19),
			fitText(valueOrDash(date.Day), 10),
			fitText(valueOrDash(date.Activity), 12),
			valueOrDash(date.Rating),
		))
	}

	return renderPage("DATES", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ esc: back")
}

func (m mainModel) viewDateDetail() string {
	date, ok := m.currentDate()
	if !ok {
		return renderPage("DATE", "Record not found", "esc: back")
	}

	var b strings.Builder
	b.WriteString("With       │ " + valueOrDash(date.PersonName) + "\n")
	b.WriteString("When       │ " + valueOrDash(date.Day) + "\n")
	b.WriteString("Activity   │ " + valueOrDash(date.Activity) + "\n")
	b.WriteString("Where      │ " + valueOrDash(date.Location) + "\n")
	b.WriteString("Time       │ " + valueOrDash(date.TimeOfDay) + "\n")
	b.WriteString("Rating     │ " + valueOrDash(date.Rating) + " " + date.Emoji + "\n")
	b.WriteString("Liked      │ " + valueOrDash(date.Liked) + "\n")
	b.WriteString("Icks       │ " + valueOrDash(date.Icks) + "\n")
	b.WriteString("Mutuals    │ " + valueOrDash(date.Mutuals) + "\n")
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("DATE", strings.TrimRight(b.String(), "\n"), "c: copy │ esc: back")
}

// ── Commands and helpers ────────────────────────────────────────────────────

func (m *mainModel) refreshFromSession() {
	m.people = m.session.People()
	m.dates = m.session.Dates()
	if m.peopleIdx >= len(m.people) {
		m.peopleIdx = len(m.people) - 1
	}
	if m.peopleIdx < 0 {
		m.peopleIdx = 0
	}
	if m.datesIdx >= len(m.dates) {
		m.datesIdx = len(m.dates) - 1
	}
	if m.datesIdx < 0 {
		m.datesIdx = 0
	}
}

func (m mainModel) currentPerson() (models.Person, bool) {
	if len(m.people) == 0 || m.peopleIdx < 0 || m.peopleIdx >= len(m.people) {
		return models.Person{}, false
	}
	return m.people[m.peopleIdx], true
}

func (m mainModel) currentDate() (models.DateRecord, bool) {
	if len(m.dates) == 0 || m.datesIdx < 0 || m.datesIdx >= len(m.dates) {
		return models.DateRecord{}, false
	}
	return m.dates[m.datesIdx], true
}

func (m mainModel) cmdLoadAll() tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		_ = sess.LoadPeople(ctx)
		_ = sess.LoadDates(ctx)
		return listsLoadedMsg{}
	}
}

func (m mainModel) cmdSavePerson() tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		saved, err := sess.SavePerson(ctx, sess.PersonDraft())
		return personSavedMsg{person: saved, err: err}
	}
}

func (m mainModel) cmdSaveDate() tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		saved, err := sess.SaveDate(ctx, sess.DateDraft())
		return dateSavedMsg{date: saved, err: err}
	}
}

func (m mainModel) cmdUpdatePerson(id string, patch map[string]string) tea.Cmd {
	ctx := m.ctx
	sess := m.session

	return func() tea.Msg {
		return personUpdatedMsg{err: sess.UpdatePerson(ctx, id, patch)}
	}
}

func personSummary(person models.Person) string {
	return fmt.Sprintf("%s — %s, %s, met %s",
		valueOrDash(person.Name), valueOrDash(person.Age),
		valueOrDash(person.Industry), valueOrDash(person.HowMet))
}

func dateSummary(date models.DateRecord) string {
	return fmt.Sprintf("Date with %s on %s: %s at %s, rated %s/5 %s",
		valueOrDash(date.PersonName), valueOrDash(date.Day),
		valueOrDash(date.Activity), valueOrDash(date.Location),
		valueOrDash(date.Rating), date.Emoji)
}
