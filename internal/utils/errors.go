package internal

import "github.com/pkg/errors"

func WrapError(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// RecoveredError turns a recovered panic value into an error.
func RecoveredError(r interface{}, msg string) error {
	if err, ok := r.(error); ok {
		return errors.Wrap(err, msg)
	}

	return errors.Errorf("%s: %v", msg, r)
}
