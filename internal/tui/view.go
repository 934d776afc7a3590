package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"menu-manager/internal/controllers"
	"menu-manager/internal/navigation"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	route := m.main.Route()
	var body string
	switch route {
	case navigation.AddItems:
		body = m.addDishView()
	case navigation.Filter:
		body = m.filterView()
	default:
		body = m.homeView()
	}

	b := &strings.Builder{}
	fmt.Fprintln(b, titleStyle.Render(route.Title()))
	fmt.Fprintln(b, body)
	fmt.Fprintln(b, statusStyle.Render(m.statusText()))
	fmt.Fprint(b, faintStyle.Render(m.helpText(route)))
	return b.String()
}

func (m *Model) homeView() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, headingStyle.Render("Average Prices"))
	for _, avg := range m.home.Averages {
		fmt.Fprintf(b, "  %s\n", avg.Line())
	}
	fmt.Fprintln(b)
	fmt.Fprintln(b, headingStyle.Render("All Dishes:"))
	if m.home.Empty {
		fmt.Fprintf(b, "  %s\n", faintStyle.Render(m.home.EmptyMessage))
	}
	for _, dish := range m.home.Dishes {
		fmt.Fprintf(b, "  %s\n", dish.Line())
	}
	return b.String()
}

func (m *Model) addDishView() string {
	b := &strings.Builder{}
	fields := []controllers.Field{controllers.FieldName, controllers.FieldDescription, controllers.FieldPrice}
	for i, field := range fields {
		fmt.Fprintf(b, "%s%s\n", m.marker(i), m.inputs[i].View())
		if msg, ok := m.addDish.Errors[field]; ok {
			fmt.Fprintf(b, "  %s\n", errorStyle.Render(msg))
		}
	}

	courses := make([]string, 0, len(m.addDish.Courses))
	for _, course := range m.addDish.Courses {
		if course == m.addDish.Course {
			courses = append(courses, activeStyle.Render(course.Label()))
		} else {
			courses = append(courses, choiceStyle.Render(course.Label()))
		}
	}
	fmt.Fprintf(b, "%sCourse: %s\n", m.marker(focusCourse), strings.Join(courses, " "))

	if m.addDish.Acknowledgement != "" {
		fmt.Fprintln(b)
		fmt.Fprintln(b, ackStyle.Render(m.addDish.Acknowledgement))
	}
	return b.String()
}

func (m *Model) filterView() string {
	b := &strings.Builder{}
	choices := make([]string, 0, len(m.filter.Choices))
	for _, choice := range m.filter.Choices {
		if choice.Value == m.filter.Selected {
			choices = append(choices, activeStyle.Render(choice.Label))
		} else {
			choices = append(choices, choiceStyle.Render(choice.Label))
		}
	}
	fmt.Fprintln(b, strings.Join(choices, " "))
	fmt.Fprintln(b)

	if m.filter.Empty {
		fmt.Fprintf(b, "  %s\n", faintStyle.Render(m.filter.EmptyMessage))
	}
	for i, item := range m.filter.Items {
		line := item.ShortLine()
		if item.PendingRemoval {
			line = pendingStyle.Render(line + " (remove?)")
		}
		if i == m.cursor {
			fmt.Fprintf(b, "%s %s\n", cursorStyle.Render(">"), line)
		} else {
			fmt.Fprintf(b, "  %s\n", line)
		}
	}

	if m.filter.Acknowledgement != "" {
		fmt.Fprintln(b)
		fmt.Fprintln(b, ackStyle.Render(m.filter.Acknowledgement))
	}

	if prompt := m.filter.Prompt; prompt != nil {
		modal := modalStyle.Render(fmt.Sprintf("%s\n\n%s\n\n[y] %s   [n] %s",
			headingStyle.Render(prompt.Title), prompt.Message, prompt.ConfirmLabel, prompt.CancelLabel))
		if m.width > 0 {
			modal = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, modal)
		}
		fmt.Fprintln(b)
		fmt.Fprintln(b, modal)
	}
	return b.String()
}

func (m *Model) marker(focus int) string {
	if m.focus == focus {
		return cursorStyle.Render("> ")
	}
	return "  "
}

func (m *Model) statusText() string {
	stats := m.main.Stats()
	if stats.Total == 0 {
		return "No dishes"
	}
	return fmt.Sprintf("%d dishes", stats.Total)
}

func (m *Model) helpText(route navigation.Route) string {
	switch route {
	case navigation.AddItems:
		return "tab/shift+tab: field  left/right: course  enter: add  esc: back"
	case navigation.Filter:
		if m.filter.Prompt != nil {
			return "y: remove  n: cancel"
		}
		return "left/right: course  up/down: select  d: remove  a: add  esc: back"
	default:
		return "a: add dish  f: filter  q: quit"
	}
}
