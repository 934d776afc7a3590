package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"menu-manager/internal/controllers"
	"menu-manager/internal/models"
	"menu-manager/internal/navigation"
)

const (
	focusName = iota
	focusDescription
	focusPrice
	focusCourse
	focusCount
)

// Model is the terminal front end. It renders the same controllers as the
// desktop views and implements their view interfaces.
type Model struct {
	main   *controllers.MainController
	timers Waiter

	home    controllers.HomeState
	addDish controllers.AddDishState
	filter  controllers.FilterState

	inputs [focusCourse]textinput.Model
	focus  int
	cursor int

	width    int
	quitting bool
}

// New binds the three screens of main to a terminal model. timers may be nil
// when the controllers run on a scheduler the caller drives itself.
func New(main *controllers.MainController, timers Waiter) *Model {
	m := &Model{
		main:   main,
		timers: timers,
	}

	placeholders := [focusCourse]string{"Dish name", "Description", "Price"}
	prompts := [focusCourse]string{"Name: ", "Description: ", "Price: "}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.Prompt = prompts[i]
		m.inputs[i] = input
	}
	m.inputs[focusName].Focus()

	main.Home.Bind(m)
	main.AddDish.Bind(m)
	main.Filter.Bind(m)
	return m
}

func (m *Model) RenderHome(state controllers.HomeState) {
	m.home = state
}

func (m *Model) RenderAddDish(state controllers.AddDishState) {
	m.addDish = state
	values := [focusCourse]string{state.Name, state.Description, state.Price}
	for i, value := range values {
		if m.inputs[i].Value() != value {
			m.inputs[i].SetValue(value)
		}
	}
}

func (m *Model) RenderFilter(state controllers.FilterState) {
	m.filter = state
	if m.cursor >= len(state.Items) {
		m.cursor = len(state.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.timers != nil {
		cmds = append(cmds, m.timers.Wait())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerFiredMsg:
		msg.fn()
		if m.timers != nil {
			return m, m.timers.Wait()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.main.Route() {
		case navigation.AddItems:
			return m.updateAddDish(msg)
		case navigation.Filter:
			return m.updateFilter(msg)
		default:
			return m.updateHome(msg)
		}
	}

	if m.main.Route() == navigation.AddItems && m.focus < focusCourse {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "a":
		m.main.Home.AddDish()
		m.setFocus(focusName)
	case "f":
		m.main.Home.FilterCourses()
	}
	return m, nil
}

func (m *Model) updateAddDish(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.main.Back()
		return m, nil
	case "enter":
		m.main.AddDish.Submit()
		if len(m.addDish.Errors) > 0 {
			m.setFocus(m.firstErrorField())
		} else {
			m.setFocus(focusName)
		}
		return m, nil
	case "tab", "down":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	}

	if m.focus == focusCourse {
		switch msg.String() {
		case "left", "h":
			m.cycleCourse(-1)
		case "right", "l", " ":
			m.cycleCourse(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	value := m.inputs[m.focus].Value()
	switch m.focus {
	case focusName:
		if value != m.addDish.Name {
			m.main.AddDish.SetName(value)
		}
	case focusDescription:
		if value != m.addDish.Description {
			m.main.AddDish.SetDescription(value)
		}
	case focusPrice:
		if value != m.addDish.Price {
			m.main.AddDish.SetPrice(value)
		}
	}
	return m, cmd
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filter.Prompt != nil {
		switch msg.String() {
		case "y", "Y", "enter":
			m.main.Filter.ConfirmRemoval()
		case "n", "N", "esc":
			m.main.Filter.CancelRemoval()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.main.Back()
	case "a":
		m.main.Filter.AddDish()
		m.setFocus(focusName)
	case "left", "h":
		m.cycleFilter(-1)
	case "right", "l", "tab":
		m.cycleFilter(1)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filter.Items)-1 {
			m.cursor++
		}
	case "d", "x", "delete", "backspace":
		if m.cursor < len(m.filter.Items) {
			m.main.Filter.RequestRemoval(m.filter.Items[m.cursor].ID)
		}
	}
	return m, nil
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *Model) firstErrorField() int {
	order := []controllers.Field{controllers.FieldName, controllers.FieldDescription, controllers.FieldPrice}
	for i, field := range order {
		if _, ok := m.addDish.Errors[field]; ok {
			return i
		}
	}
	return focusName
}

func (m *Model) cycleCourse(step int) {
	courses := models.Courses()
	current := 0
	for i, course := range courses {
		if course == m.addDish.Course {
			current = i
		}
	}
	next := (current + step + len(courses)) % len(courses)
	_ = m.main.AddDish.SelectCourse(string(courses[next]))
}

func (m *Model) cycleFilter(step int) {
	choices := m.filter.Choices
	if len(choices) == 0 {
		return
	}
	current := 0
	for i, choice := range choices {
		if choice.Value == m.filter.Selected {
			current = i
		}
	}
	next := (current + step + len(choices)) % len(choices)
	_ = m.main.Filter.SelectFilter(choices[next].Value)
	m.cursor = 0
}
