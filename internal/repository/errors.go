package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"lokerhub/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// storeErr classifies transport and connection failures as
// domain.ErrStoreUnavailable so callers can answer with a retryable status
// instead of a generic failure. Query, not-found and domain errors pass
// through untouched.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, mysql.ErrInvalidConn),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.As(err, &netErr):
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return err
}
