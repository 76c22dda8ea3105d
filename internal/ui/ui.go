package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasktrack/internal/config"
	"tasktrack/internal/input"
	"tasktrack/internal/manager"
	"tasktrack/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeLookup
)

const (
	fieldDescription = iota
	fieldPriority
)

type Model struct {
	mgr      *manager.Manager
	cfg      config.Config
	mode     mode
	view     string
	fields   []textinput.Model
	field    int
	lookup   textinput.Model
	status   string
	statusOK bool
}

// NewModel builds the UI over mgr. The caller owns mgr.
func NewModel(mgr *manager.Manager, cfg config.Config) Model {
	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 256
	desc.Width = 40

	prio := textinput.New()
	prio.Placeholder = "Priority"
	prio.CharLimit = 12
	prio.Width = 12

	lookup := textinput.New()
	lookup.Placeholder = "Task ID"
	lookup.CharLimit = 12
	lookup.Width = 12

	k := cfg.Keys
	return Model{
		mgr:      mgr,
		cfg:      cfg,
		mode:     modeList,
		view:     cfg.DefaultView,
		fields:   []textinput.Model{desc, prio},
		lookup:   lookup,
		status:   fmt.Sprintf("Press '%s' to add, '%s' to complete the top task.", k.Add, k.Complete),
		statusOK: true,
	}
}

func Run(mgr *manager.Manager, cfg config.Config) error {
	program := tea.NewProgram(NewModel(mgr, cfg))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeLookup:
			return m.updateLookupMode(msg)
		default:
			return m.updateListMode(msg.String())
		}
	case tea.WindowSizeMsg:
		m.fields[fieldDescription].Width = max(msg.Width-20, 10)
	}
	return m, nil
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	switch key {
	case k.Quit:
		return m, tea.Quit
	case k.Add:
		m.mode = modeAdd
		m.field = fieldDescription
		m.fields[fieldDescription].Focus()
		m.fields[fieldPriority].Blur()
		m.setInfo(fmt.Sprintf("Add mode: %s switches field, %s saves, %s cancels", k.NextField, k.Confirm, k.Cancel))
	case k.Lookup:
		m.mode = modeLookup
		m.lookup.Focus()
		m.setInfo("Lookup: type a task id and press " + k.Confirm)
	case k.Complete:
		done, ok := m.mgr.CompleteHighestPriority()
		if !ok {
			m.setInfo("No task to mark as completed.")
			return m, nil
		}
		m.setInfo(fmt.Sprintf("Task '%s' marked as completed.", done.Description()))
	case k.All:
		m.view = config.ViewAll
		m.setInfo("Showing all tasks")
	case k.Incomplete:
		m.view = config.ViewIncomplete
		m.setInfo("Showing incomplete tasks")
	case k.Last:
		last, ok := m.mgr.LastCompleted()
		if !ok {
			m.setInfo("No task has been completed yet.")
			return m, nil
		}
		m.setInfo(fmt.Sprintf("Last completed: %s, Priority: %d", last.Description(), last.Priority()))
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	switch msg.String() {
	case k.Cancel:
		m.resetAdd()
		m.setInfo("Cancelled")
		return m, nil
	case k.NextField:
		m.fields[m.field].Blur()
		m.field = (m.field + 1) % len(m.fields)
		m.fields[m.field].Focus()
		return m, nil
	case "shift+tab":
		m.fields[m.field].Blur()
		m.field = (m.field + len(m.fields) - 1) % len(m.fields)
		m.fields[m.field].Focus()
		return m, nil
	case k.Confirm:
		desc, err := input.Description(m.fields[fieldDescription].Value())
		if err != nil {
			m.setError(err)
			return m, nil
		}
		prio, err := input.Priority(m.fields[fieldPriority].Value())
		if err != nil {
			m.setError(err)
			return m, nil
		}
		created := m.mgr.Create(desc, prio)
		m.resetAdd()
		m.setInfo(fmt.Sprintf("Added task #%d", created.ID()))
		return m, nil
	default:
		var cmd tea.Cmd
		m.fields[m.field], cmd = m.fields[m.field].Update(msg)
		return m, cmd
	}
}

func (m Model) updateLookupMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	switch msg.String() {
	case k.Cancel:
		m.resetLookup()
		m.setInfo("Cancelled")
		return m, nil
	case k.Confirm:
		id, err := input.ID(m.lookup.Value())
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.resetLookup()
		t, ok := m.mgr.FindByID(id)
		if !ok {
			m.setInfo("Task with the provided ID not found.")
			return m, nil
		}
		m.setInfo(fmt.Sprintf("Task: %s, Priority: %d, Completed: %t", t.Description(), t.Priority(), t.Completed()))
		return m, nil
	default:
		var cmd tea.Cmd
		m.lookup, cmd = m.lookup.Update(msg)
		return m, cmd
	}
}

func (m *Model) resetAdd() {
	for i := range m.fields {
		m.fields[i].SetValue("")
		m.fields[i].Blur()
	}
	m.field = fieldDescription
	m.mode = modeList
}

func (m *Model) resetLookup() {
	m.lookup.SetValue("")
	m.lookup.Blur()
	m.mode = modeList
}

func (m *Model) setInfo(s string) {
	m.status = s
	m.statusOK = true
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusOK = false
}

func (m Model) visibleTasks() []task.Task {
	if m.view == config.ViewIncomplete {
		return m.mgr.ListIncomplete()
	}
	return m.mgr.ListAll()
}

func (m Model) View() string {
	var b strings.Builder

	stats := m.mgr.Stats()
	b.WriteString(titleStyle.Render("Task Manager"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s • %d pending • %d completed", m.view, stats.Pending, stats.Completed)))
	b.WriteString("\n\n")

	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("No pending tasks. Press '%s' to add one.", m.cfg.Keys.Add)))
		b.WriteString("\n")
	} else {
		b.WriteString(renderTaskList(tasks))
	}

	b.WriteString("\n")
	switch m.mode {
	case modeAdd:
		b.WriteString("Description: " + m.fields[fieldDescription].View() + "\n")
		b.WriteString("Priority:    " + m.fields[fieldPriority].View() + "\n")
	case modeLookup:
		b.WriteString("Task ID: " + m.lookup.View() + "\n")
	}

	if m.statusOK {
		b.WriteString(statusStyle.Render(m.status))
	} else {
		b.WriteString(errorStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(renderHelp(m.cfg.Keys)))
	return b.String()
}

func renderTaskList(tasks []task.Task) string {
	var b strings.Builder
	for i, t := range tasks {
		line := t.String()
		if i == 0 {
			b.WriteString(topStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s add • %s get • %s complete • %s all • %s incomplete • %s last completed • %s quit",
		k.Add, k.Lookup, k.Complete, k.All, k.Incomplete, k.Last, k.Quit)
}
