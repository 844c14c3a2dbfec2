// Package prompt renders the system instruction handed to the chat
// assistant before the user's message. The output is deterministic for
// a given task list and date.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	model "pomoplanner.com/pomoplanner/internal/models"
)

const preamble = `You are the PomoPlanner assistant. You help the user plan their day and answer questions about their tasks and schedule. Keep answers short, friendly and specific to the tasks listed below. A pomodoro is a 25-minute focused work interval.`

const (
	noTasksToday    = "The user has no tasks scheduled for today."
	noUpcomingTasks = "The user has no upcoming tasks."
)

// Build partitions tasks into today's and upcoming buckets and renders
// the system prompt. Tasks dated before today are left out entirely.
// Dates are zero-padded ISO strings, so plain string comparison orders
// them correctly.
func Build(today string, tasks []model.Task) string {
	var todays, upcoming []model.Task
	for _, t := range tasks {
		switch {
		case t.Date == today:
			todays = append(todays, t)
		case t.Date > today:
			upcoming = append(upcoming, t)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})

	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Today's date is %s.\n\n", today)

	if len(todays) == 0 {
		b.WriteString(noTasksToday)
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "The user has %d task(s) scheduled for today:\n", len(todays))
		for i, t := range todays {
			status := "not completed"
			if t.Completed {
				status = "completed"
			}
			fmt.Fprintf(&b, "%d. %s (time: %s, pomodoros: %d, %s)\n",
				i+1, t.Title, orUnset(t.Time), t.Pomodoros, status)
		}
	}
	b.WriteString("\n")

	if len(upcoming) == 0 {
		b.WriteString(noUpcomingTasks)
		b.WriteString("\n")
	} else {
		b.WriteString("Upcoming tasks:\n")
		for i, t := range upcoming {
			fmt.Fprintf(&b, "%d. %s on %s (time: %s)\n",
				i+1, t.Title, t.Date, orUnset(t.Time))
		}
	}

	return b.String()
}

func orUnset(s string) string {
	if s == "" {
		return "unset"
	}
	return s
}
