package model

// Choice is an answer option owned by a Question. Choices are only created
// through Question.AddChoice.
type Choice struct {
	id        int
	text      string
	isCorrect bool
}

func (c *Choice) ID() int         { return c.id }
func (c *Choice) Text() string    { return c.text }
func (c *Choice) IsCorrect() bool { return c.isCorrect }
