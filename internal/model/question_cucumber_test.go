//go:build cucumber

package model

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestQuestionFeatures executes the grading feature scenarios via godog.
func TestQuestionFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "question",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{filepath.Join("features", "question.feature")},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeScenario wires step definitions for the question feature tests.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &questionState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = questionState{}
		return ctx, nil
	})

	ctx.Step(`^a question "([^"]+)" allowing (\d+) selections?$`, state.givenQuestion)
	ctx.Step(`^a choice "([^"]+)" that is (correct|wrong)$`, state.givenChoice)
	ctx.Step(`^I select choices "([^"]*)"$`, state.selectChoices)
	ctx.Step(`^I mark choices "([^"]*)" as correct$`, state.markCorrect)
	ctx.Step(`^I add a choice with (\d+) characters$`, state.addChoiceOfLength)
	ctx.Step(`^I remove choice (\d+)$`, state.removeChoice)
	ctx.Step(`^the correct selection is "([^"]+)"$`, state.correctSelectionIs)
	ctx.Step(`^the correct selection is empty$`, state.correctSelectionEmpty)
	ctx.Step(`^the question has choice ids "([^"]*)"$`, state.choiceIDsAre)
	ctx.Step(`^grading fails with "([^"]+)"$`, state.gradingFails)
	ctx.Step(`^adding fails with "([^"]+)"$`, state.addingFails)
	ctx.Step(`^removing fails with "([^"]+)"$`, state.removingFails)
}

// questionState holds scenario state for the feature tests.
type questionState struct {
	question  *Question
	graded    []int
	gradeErr  error
	addErr    error
	removeErr error
}

func (s *questionState) givenQuestion(title string, maxSelections int) error {
	q, err := NewQuestion(title, WithMaxSelections(maxSelections))
	if err != nil {
		return err
	}
	s.question = q
	return nil
}

func (s *questionState) givenChoice(text, kind string) error {
	_, err := s.question.AddChoice(text, kind == "correct")
	return err
}

func (s *questionState) selectChoices(raw string) error {
	ids, err := parseIDs(raw)
	if err != nil {
		return err
	}
	s.graded, s.gradeErr = s.question.CorrectSelectedChoices(ids)
	return nil
}

func (s *questionState) markCorrect(raw string) error {
	ids, err := parseIDs(raw)
	if err != nil {
		return err
	}
	s.question.SetCorrectChoices(ids)
	return nil
}

func (s *questionState) addChoiceOfLength(n int) error {
	_, s.addErr = s.question.AddChoice(strings.Repeat("a", n), false)
	return nil
}

func (s *questionState) removeChoice(id int) error {
	s.removeErr = s.question.RemoveChoiceByID(id)
	return nil
}

func (s *questionState) correctSelectionIs(raw string) error {
	want, err := parseIDs(raw)
	if err != nil {
		return err
	}
	if s.gradeErr != nil {
		return fmt.Errorf("unexpected grading error: %w", s.gradeErr)
	}
	if !slices.Equal(s.graded, want) {
		return fmt.Errorf("expected %v, got %v", want, s.graded)
	}
	return nil
}

func (s *questionState) correctSelectionEmpty() error {
	if s.gradeErr != nil {
		return fmt.Errorf("unexpected grading error: %w", s.gradeErr)
	}
	if len(s.graded) != 0 {
		return fmt.Errorf("expected no correct ids, got %v", s.graded)
	}
	return nil
}

func (s *questionState) choiceIDsAre(raw string) error {
	want, err := parseIDs(raw)
	if err != nil {
		return err
	}
	got := make([]int, 0, len(want))
	for _, c := range s.question.Choices() {
		got = append(got, c.ID())
	}
	if !slices.Equal(got, want) {
		return fmt.Errorf("expected ids %v, got %v", want, got)
	}
	return nil
}

func (s *questionState) gradingFails(msg string) error {
	return expectMessage(s.gradeErr, msg)
}

func (s *questionState) addingFails(msg string) error {
	return expectMessage(s.addErr, msg)
}

func (s *questionState) removingFails(msg string) error {
	return expectMessage(s.removeErr, msg)
}

func expectMessage(err error, msg string) error {
	if err == nil {
		return fmt.Errorf("expected error %q, got none", msg)
	}
	if err.Error() != msg {
		return fmt.Errorf("expected error %q, got %q", msg, err.Error())
	}
	return nil
}

func parseIDs(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
