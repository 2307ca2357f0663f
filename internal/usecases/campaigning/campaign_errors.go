package campaigning

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable indica falha ao ler a fonte de campanhas
var ErrSourceUnavailable = errors.New("campaign source unavailable")

// SourceError carrega o nome da fonte que falhou
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s (%s): %s", ErrSourceUnavailable.Error(), e.Source, e.Err.Error())
}

func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
