package model

import (
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-question/internal/apperr"
	"github.com/stemsi/exstem-question/internal/validator"
)

const (
	MaxTitleLength       = 200
	MaxChoiceTextLength  = 100
	DefaultPoints        = 1
	DefaultMaxSelections = 1
)

// validate is shared by every Question; go-playground validators are safe
// for concurrent use.
var validate = validator.New()

// questionInput mirrors the constructor arguments for validation.
type questionInput struct {
	Title         string `label:"Title" validate:"required,max=200"`
	Points        int    `label:"Points" validate:"min=1"`
	MaxSelections int    `label:"Max selections" validate:"min=1"`
}

// choiceInput mirrors the AddChoice arguments for validation.
type choiceInput struct {
	Text string `label:"Text" validate:"required,max=100"`
}

// Question is a graded prompt owning an ordered set of choices.
type Question struct {
	id            uuid.UUID
	title         string
	points        int
	maxSelections int
	choices       []*Choice
	lastChoiceID  int
	log           zerolog.Logger
}

// Option configures optional Question fields at construction.
type Option func(*Question)

// WithPoints sets the points awarded for the question.
func WithPoints(points int) Option {
	return func(q *Question) { q.points = points }
}

// WithMaxSelections caps how many choice ids may be submitted for grading.
func WithMaxSelections(n int) Option {
	return func(q *Question) { q.maxSelections = n }
}

// WithLogger attaches a logger for mutation and grading events.
func WithLogger(log zerolog.Logger) Option {
	return func(q *Question) { q.log = log }
}

// NewQuestion creates a question with a fresh id and no choices.
// Points and max selections default to 1.
func NewQuestion(title string, opts ...Option) (*Question, error) {
	q := &Question{
		title:         title,
		points:        DefaultPoints,
		maxSelections: DefaultMaxSelections,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(q)
	}

	in := questionInput{Title: q.title, Points: q.points, MaxSelections: q.maxSelections}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	q.id = uuid.New()
	q.log = q.log.With().
		Str("component", "question").
		Str("question_id", q.id.String()).
		Logger()

	return q, nil
}

func (q *Question) ID() uuid.UUID      { return q.id }
func (q *Question) Title() string      { return q.title }
func (q *Question) Points() int        { return q.points }
func (q *Question) MaxSelections() int { return q.maxSelections }

// Choices returns the choices in insertion order. The returned slice is a
// copy; the choices themselves reflect later correctness changes.
func (q *Question) Choices() []*Choice {
	return slices.Clone(q.choices)
}

// AddChoice appends a new choice with the next sequential id.
func (q *Question) AddChoice(text string, isCorrect bool) (*Choice, error) {
	if err := validate.Struct(choiceInput{Text: text}); err != nil {
		return nil, err
	}

	q.lastChoiceID++
	c := &Choice{id: q.lastChoiceID, text: text, isCorrect: isCorrect}
	q.choices = append(q.choices, c)

	q.log.Debug().
		Int("choice_id", c.id).
		Bool("is_correct", isCorrect).
		Msg("choice added")

	return c, nil
}

// ChoiceByID returns the choice with the given id.
func (q *Question) ChoiceByID(id int) (*Choice, error) {
	i := q.indexOf(id)
	if i < 0 {
		return nil, apperr.NotFound("Invalid choice id %d", id)
	}
	return q.choices[i], nil
}

// RemoveChoiceByID removes a single choice. Ids are never reused.
func (q *Question) RemoveChoiceByID(id int) error {
	i := q.indexOf(id)
	if i < 0 {
		return apperr.NotFound("Invalid choice id %d", id)
	}

	q.choices = slices.Delete(q.choices, i, i+1)
	q.log.Debug().Int("choice_id", id).Msg("choice removed")
	return nil
}

// RemoveAllChoices drops every choice. The id sequence keeps counting.
func (q *Question) RemoveAllChoices() {
	n := len(q.choices)
	q.choices = nil
	q.log.Debug().Int("removed", n).Msg("all choices removed")
}

// SetCorrectChoices marks exactly the given ids as correct and every other
// choice as incorrect. Unknown ids are ignored.
func (q *Question) SetCorrectChoices(ids []int) {
	correct := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		correct[id] = struct{}{}
	}

	for _, c := range q.choices {
		_, ok := correct[c.id]
		c.isCorrect = ok
	}

	q.log.Debug().Ints("correct_ids", q.CorrectChoiceIDs()).Msg("correct choices set")
}

// CorrectChoiceIDs returns the ids of the correct choices in insertion order.
func (q *Question) CorrectChoiceIDs() []int {
	ids := make([]int, 0, len(q.choices))
	for _, c := range q.choices {
		if c.isCorrect {
			ids = append(ids, c.id)
		}
	}
	return ids
}

// CorrectSelectedChoices grades a selection: it returns, in input order,
// the selected ids that refer to a correct choice. Unknown ids are skipped.
func (q *Question) CorrectSelectedChoices(selected []int) ([]int, error) {
	if len(selected) > q.maxSelections {
		return nil, apperr.Validation("Cannot select more than %d choices", q.maxSelections)
	}

	result := make([]int, 0, len(selected))
	for _, id := range selected {
		if i := q.indexOf(id); i >= 0 && q.choices[i].isCorrect {
			result = append(result, id)
		}
	}

	q.log.Debug().
		Ints("selected", selected).
		Ints("correct", result).
		Msg("selection graded")

	return result, nil
}

func (q *Question) indexOf(id int) int {
	return slices.IndexFunc(q.choices, func(c *Choice) bool { return c.id == id })
}
