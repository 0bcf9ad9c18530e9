package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/keeper/pkg/core"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	ownerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func errNoContact(name string) error {
	return fmt.Errorf("%w: %s", core.ErrNotFound, name)
}

func success(format string, args ...any) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// renderRecord renders r as a single line.
func renderRecord(r *core.Record) string {
	name := titleStyle.Render(r.Name())
	if r.Owner {
		name += " " + ownerStyle.Render("(owner)")
	}

	var parts []string
	fields := r.Fields()
	for _, key := range []string{core.FieldPhones, core.FieldBirthday, core.FieldEmail, core.FieldAddress} {
		if v := fields[key]; v != "" {
			parts = append(parts, key+": "+v)
		}
	}
	if len(parts) == 0 {
		return name
	}
	return name + "  " + helpStyle.Render(strings.Join(parts, ", "))
}

// renderCard renders r with all of its notes inside a bordered box.
func renderCard(r *core.Record, today time.Time) string {
	lines := []string{renderRecord(r)}
	if days, ok := r.DaysToBirthday(today); ok {
		lines = append(lines, fmt.Sprintf("next birthday in %d days", days))
	}
	for _, n := range r.Notes {
		lines = append(lines, "- "+renderNote(n))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderNote(n *core.Note) string {
	s := titleStyle.Render(n.Title)
	if n.Body != "" {
		s += ": " + n.Body
	}
	if len(n.Tags) > 0 {
		s += " " + helpStyle.Render("["+strings.Join(n.Tags, ", ")+"]")
	}
	return s
}

func printRecords(records []*core.Record) {
	if len(records) == 0 {
		fmt.Println(helpStyle.Render("No contacts found."))
		return
	}
	for _, r := range records {
		fmt.Println(renderRecord(r))
	}
}
