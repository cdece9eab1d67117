// Package common provides shared error helpers.
package common

import (
	"errors"
	"fmt"

	"goblog/logger"
)

func NewErrorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return errors.New(msg)
}

func NewError(a ...any) error {
	msg := fmt.Sprintln(a...)
	return errors.New(msg)
}

// Combine merges multiple errors into one, skipping nils.
func Combine(errs ...error) error {
	var errorsText []string
	for _, err := range errs {
		if err != nil {
			errorsText = append(errorsText, err.Error())
		}
	}
	if len(errorsText) == 0 {
		return nil
	}
	return errors.New(fmt.Sprint(errorsText))
}

func Recover(msg string) any {
	panicErr := recover()
	if panicErr != nil {
		if msg != "" {
			logger.Error(msg, "panic:", panicErr)
		}
	}
	return panicErr
}
