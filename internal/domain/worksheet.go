package domain

import "fmt"

// WorksheetItem is one stored problem: operands plus the operator to apply.
type WorksheetItem struct {
	Left  int      `json:"left" yaml:"left"`
	Right int      `json:"right" yaml:"right"`
	Op    Operator `json:"op" yaml:"op"`
}

// Worksheet is a named, fixed list of problems.
type Worksheet struct {
	ID    string          `json:"id" yaml:"id"`
	Title string          `json:"title,omitempty" yaml:"title,omitempty"`
	Items []WorksheetItem `json:"items" yaml:"items"`
}

// Validate rejects sheets that could not be turned into problems, including
// division items with a zero divisor.
func (w Worksheet) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidWorksheet)
	}
	if len(w.Items) == 0 {
		return fmt.Errorf("%w: %s has no items", ErrInvalidWorksheet, w.ID)
	}
	for i, item := range w.Items {
		if !item.Op.valid() {
			return fmt.Errorf("%w: %s item %d: operator %q", ErrInvalidWorksheet, w.ID, i+1, item.Op)
		}
		if item.Op == OpDiv && item.Right == 0 {
			return fmt.Errorf("%w: %s item %d divides by zero", ErrInvalidWorksheet, w.ID, i+1)
		}
	}
	return nil
}

// Problems builds a fresh, applied Problem per item.
func (w Worksheet) Problems() ([]*Problem, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	problems := make([]*Problem, 0, len(w.Items))
	for _, item := range w.Items {
		p := NewProblem(item.Left, item.Right)
		if err := p.Apply(item.Op); err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, nil
}
