package service

import (
	"fmt"
	"strings"

	"stepcount/internal/modules/session/dto"
	weekdto "stepcount/internal/modules/week/dto"
	"stepcount/internal/platform/clock"
	"stepcount/internal/platform/id"
	"stepcount/internal/platform/numfmt"
	"stepcount/internal/platform/theme"
)

const (
	MsgInvalidNumber  = "Please enter a valid number."
	MsgNegativeSample = "Please enter a positive number."
	MsgDayMet         = "   ✓ Great job! You met your goal for today! 💪"
	MsgDayShortFormat = "   You need %s more steps to reach your goal. Keep going!"
)

type SessionService struct {
	clock  clock.Clock
	idGen  id.Generator
	styles theme.Styles
}

func NewSessionService(clock clock.Clock, idGen id.Generator, styles theme.Styles) *SessionService {
	return &SessionService{clock: clock, idGen: idGen, styles: styles}
}

func (s *SessionService) Clock() clock.Clock { return s.clock }

func (s *SessionService) NewID() string { return s.idGen.New() }

func (s *SessionService) Banner() string {
	return s.styles.Title.Render("===== WEEKLY STEP COUNTER =====") + "\n\n"
}

func (s *SessionService) GoalPrompt(defaultGoal float64) string {
	return fmt.Sprintf("Enter your daily step goal (healthy goal %s): ", numfmt.Count(defaultGoal))
}

func (s *SessionService) GoalChosen(goal float64) string {
	return fmt.Sprintf("Goal: %s steps\n\n", numfmt.Count(goal))
}

func (s *SessionService) DaysPrompt(defaultDays int) string {
	return fmt.Sprintf("How many days do you want to track? (default %d): ", defaultDays)
}

func (s *SessionService) DaysChosen(days int) string {
	return fmt.Sprintf("Tracking %d days\n\n", days)
}

func (s *SessionService) DayPrompt(day int) string {
	return fmt.Sprintf("Day %d - Enter steps: ", day)
}

func (s *SessionService) Rejected(msg string) string {
	return s.styles.Error.Render(msg) + "\n"
}

// DayFeedback is the immediate response to an accepted sample.
func (s *SessionService) DayFeedback(day weekdto.DayOutput) string {
	if day.Met {
		return s.styles.Good.Render(MsgDayMet)
	}
	return fmt.Sprintf(MsgDayShortFormat, numfmt.Truncated(day.Remaining))
}

func (s *SessionService) Report(out dto.RunOutput) string {
	sum := out.Summary
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.styles.Title.Render("===== RESULTS ====="))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Total Steps: %s\n", numfmt.Count(sum.Total))
	fmt.Fprintf(&b, "Average: %s\n", numfmt.Count(sum.Average))
	fmt.Fprintf(&b, "Highest Day: %s\n", numfmt.Count(sum.Max))
	fmt.Fprintf(&b, "Lowest Day: %s\n", numfmt.Count(sum.Min))
	b.WriteString("\n")
	b.WriteString(sum.Breakdown)
	b.WriteString("\n")
	b.WriteString(s.styles.Title.Render("===== FEEDBACK ====="))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Goal Achievement: %d out of %d days\n\n", sum.DaysGoalMet, sum.Days)
	if sum.Headline != "" {
		b.WriteString(s.styles.Hot.Render(sum.Headline))
		b.WriteString("\n")
	}
	for _, line := range sum.Encouragement {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Next week's goal: Beat your best day of %s steps!\n", numfmt.Count(sum.Max))
	return b.String()
}
