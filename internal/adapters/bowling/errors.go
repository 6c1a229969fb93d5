package bowling

import (
	"errors"
	"fmt"
)

// HTTPError: el backend respondió fuera de 2xx. Body es el texto crudo, sin parsear.
// Se leen como mucho 1 MiB; si el body era más largo Truncated queda en true.
type HTTPError struct {
	Status    int
	Body      string
	Truncated bool
}

// errReadBody: el 2xx llegó pero el body no se pudo leer entero.
var errReadBody = errors.New("read body")

func (e *HTTPError) Error() string {
	return fmt.Sprintf("bowling api status %d: %s", e.Status, e.Body)
}

// IsStatus reporta si err (o algo que envuelve) es un *HTTPError con ese código.
func IsStatus(err error, code int) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == code
}
