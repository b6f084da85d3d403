package main

import (
	"errors"
	"fmt"

	"github.com/vertti/fileview/pkg/display"
)

// Displayer is implemented by display.Display.
type Displayer interface {
	Run() error
}

// ErrDisplayFailed wraps every error a Displayer has already reported to the user.
var ErrDisplayFailed = errors.New("display failed")

// runDisplay runs d and returns a non-nil error if anything was reported.
// The returned error causes Cobra to exit with code 1.
func runDisplay(d Displayer) error {
	if err := d.Run(); err != nil {
		return fmt.Errorf("%w: %w", ErrDisplayFailed, err)
	}
	return nil
}

var _ Displayer = (*display.Display)(nil)
