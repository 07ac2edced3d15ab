// Package prompt provides utilities for interactive user input.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ForInput displays a prompt and reads user input from stdin.
// Returns the trimmed input string or an error if reading fails.
func ForInput(promptText string) (string, error) {
	fmt.Print(promptText)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// ForConfirmation asks a yes/no question with a default answer. An empty
// response selects the default; "y" and "yes" confirm (case-insensitive).
func ForConfirmation(question string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	response, err := ForInput(fmt.Sprintf("%s (%s): ", question, hint))
	if err != nil {
		return false, err
	}

	if response == "" {
		return defaultYes, nil
	}

	response = strings.ToLower(response)
	return response == "y" || response == "yes", nil
}

// WithDefault displays a prompt with a default value and reads user input.
// If the user presses Enter without typing anything, the default value is
// returned.
func WithDefault(promptText, defaultValue string) (string, error) {
	input, err := ForInput(fmt.Sprintf("%s [%s]: ", promptText, defaultValue))
	if err != nil {
		return "", err
	}

	if input == "" {
		return defaultValue, nil
	}

	return input, nil
}

// ForChoice prompts until the user enters one of the allowed options.
// An empty response selects the default.
func ForChoice(promptText string, options []string, defaultValue string) (string, error) {
	for {
		input, err := ForInput(fmt.Sprintf("%s (%s) [%s]: ", promptText, strings.Join(options, "|"), defaultValue))
		if err != nil {
			return "", err
		}

		if input == "" {
			return defaultValue, nil
		}

		for _, option := range options {
			if input == option {
				return option, nil
			}
		}

		fmt.Printf("Invalid choice. Please enter one of: %s.\n", strings.Join(options, ", "))
	}
}
