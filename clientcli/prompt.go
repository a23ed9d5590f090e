package clientcli

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// ErrPromptCancelled is returned when the user aborts a prompt.
var ErrPromptCancelled = errors.New("prompt cancelled")

// PromptPassword asks for a password on the terminal with masked input.
func PromptPassword(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
	}
	val, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
			return "", ErrPromptCancelled
		}
		return "", fmt.Errorf("read password: %w", err)
	}
	return val, nil
}
