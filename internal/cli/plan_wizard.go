package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/attuneapp/attune/internal/cli/formatter"
	"github.com/attuneapp/attune/internal/contract"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// attuneHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func attuneHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runPlanWizard collects a full planning request from interactive forms.
func runPlanWizard() (contract.PlanRequest, error) {
	var req contract.PlanRequest

	stress := "4"
	mood := "focused"
	ctxForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Stress level (0-10)").
				Value(&stress).
				Validate(validateIntRange(0, 10)),
			huh.NewSelect[string]().
				Title("Current mood").
				Options(
					huh.NewOption("Focused", "focused"),
					huh.NewOption("Energetic", "energetic"),
					huh.NewOption("Tired", "tired"),
					huh.NewOption("Scattered", "scattered"),
				).
				Value(&mood),
		),
	).WithTheme(attuneHuhTheme()).WithShowHelp(false)
	if err := ctxForm.Run(); err != nil {
		return req, err
	}
	req.StressLevel, _ = strconv.Atoi(stress)
	req.Mood = mood

	for {
		task, more, err := wizardTask(len(req.Tasks))
		if err != nil {
			return req, err
		}
		req.Tasks = append(req.Tasks, task)
		if !more {
			break
		}
	}

	for {
		block, more, err := wizardBlock(len(req.TimeBlocks))
		if err != nil {
			return req, err
		}
		req.TimeBlocks = append(req.TimeBlocks, block)
		if !more {
			break
		}
	}

	return req, nil
}

func wizardTask(index int) (contract.TaskInput, bool, error) {
	var task contract.TaskInput
	priority := "medium"
	duration := "60"
	more := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Task %d — title", index+1)).
				Value(&task.Title).
				Validate(validateNonEmpty),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("High", "high"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("Low", "low"),
				).
				Value(&priority),
			huh.NewInput().
				Title("Estimated minutes").
				Value(&duration).
				Validate(validateIntRange(1, 24*60)),
			huh.NewInput().
				Title("Deadline (optional, e.g. 2026-03-05 17:00)").
				Value(&task.Deadline),
			huh.NewConfirm().
				Title("Add another task?").
				Value(&more),
		),
	).WithTheme(attuneHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return task, false, err
	}

	task.Priority = priority
	task.Duration = json.RawMessage(duration)
	return task, more, nil
}

func wizardBlock(index int) (contract.TimeBlockInput, bool, error) {
	var block contract.TimeBlockInput
	more := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Time block %d — start (e.g. 2026-03-05 09:00)", index+1)).
				Value(&block.Start).
				Validate(validateTimestamp),
			huh.NewInput().
				Title("End").
				Value(&block.End).
				Validate(validateTimestamp),
			huh.NewConfirm().
				Title("Add another block?").
				Value(&more),
		),
	).WithTheme(attuneHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return block, false, err
	}
	return block, more, nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func validateIntRange(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func validateTimestamp(s string) error {
	if _, err := contract.ParseDeadline(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use a format like 2026-03-05 09:00")
	}
	return nil
}
