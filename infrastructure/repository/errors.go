package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// wrapDBError adiciona a operação e, quando disponível, o código do postgres
func wrapDBError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: database error: %w (code: %s)", op, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%s: failed to execute query: %w", op, err)
}
