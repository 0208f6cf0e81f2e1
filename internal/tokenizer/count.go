package tokenizer

import (
	"errors"
)

// CountResult captures the outcome of counting a piece of content.
type CountResult struct {
	Tokens  int
	Counted bool
}

// CountText estimates tokens for the provided decoded text using counter.
func CountText(counter Counter, text string) (CountResult, error) {
	if counter == nil {
		return CountResult{}, errors.New("nil tokenizer counter")
	}
	tokens, countError := counter.CountString(text)
	if countError != nil {
		return CountResult{}, countError
	}
	return CountResult{Tokens: tokens, Counted: true}, nil
}
