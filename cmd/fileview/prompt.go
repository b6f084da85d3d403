package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const promptText = "Enter the path to the text file: "

// promptForPath asks for a path on out and reads a single line from in.
// End of input without a line counts as an empty answer.
func promptForPath(in io.Reader, out io.Writer) (string, error) {
	_, _ = fmt.Fprint(out, promptText)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read file path: %w", err)
	}
	return strings.TrimSpace(line), nil
}
