package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-question/internal/config"
	"github.com/stemsi/exstem-question/internal/logger"
	"github.com/stemsi/exstem-question/internal/model"
)

// scenario is a reference question with expected grading outcomes.
type scenario struct {
	name          string
	maxSelections int
	choices       []choiceDef
	grades        []gradeCase
}

type choiceDef struct {
	text    string
	correct bool
}

type gradeCase struct {
	selected []int
	want     []int
	wantErr  string
}

var scenarios = []scenario{
	{
		name:          "single correct answer",
		maxSelections: 1,
		choices:       []choiceDef{{"a_correct", true}, {"b_wrong", false}},
		grades: []gradeCase{
			{selected: []int{1}, want: []int{1}},
			{selected: []int{2}, want: []int{}},
			{selected: []int{1, 2}, wantErr: "Cannot select more than 1 choices"},
		},
	},
	{
		name:          "two of four correct",
		maxSelections: 2,
		choices:       []choiceDef{{"a", true}, {"b", false}, {"c", true}, {"d", false}},
		grades: []gradeCase{
			{selected: []int{1, 2}, want: []int{1}},
			{selected: []int{3, 1}, want: []int{3, 1}},
		},
	},
}

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// ─── Run Scenarios ─────────────────────────────────────────────────
	failures := 0
	for _, sc := range scenarios {
		if err := run(sc, cfg, log); err != nil {
			log.Error().Err(err).Str("scenario", sc.name).Msg("Scenario failed")
			failures++
			continue
		}
		log.Info().Str("scenario", sc.name).Msg("Scenario passed")
	}

	if failures > 0 {
		log.Error().Int("failures", failures).Msg("Self-check failed")
		os.Exit(1)
	}
	log.Info().Int("scenarios", len(scenarios)).Msg("Self-check passed")
}

func run(sc scenario, cfg *config.Config, log zerolog.Logger) error {
	maxSelections := sc.maxSelections
	if maxSelections == 0 {
		maxSelections = cfg.DefaultMaxSelections
	}

	q, err := model.NewQuestion(sc.name,
		model.WithPoints(cfg.DefaultPoints),
		model.WithMaxSelections(maxSelections),
		model.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("create question: %w", err)
	}

	for _, c := range sc.choices {
		if _, err := q.AddChoice(c.text, c.correct); err != nil {
			return fmt.Errorf("add choice %q: %w", c.text, err)
		}
	}

	for _, g := range sc.grades {
		got, err := q.CorrectSelectedChoices(g.selected)
		if g.wantErr != "" {
			if err == nil || err.Error() != g.wantErr {
				return fmt.Errorf("select %v: expected error %q, got %v", g.selected, g.wantErr, err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("select %v: %w", g.selected, err)
		}
		if !slices.Equal(got, g.want) {
			return fmt.Errorf("select %v: expected %v, got %v", g.selected, g.want, got)
		}
	}
	return nil
}
