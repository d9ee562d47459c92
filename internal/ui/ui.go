// Package ui provides a secure fzf launcher abstraction.
// All items are piped to fzf via stdin as plain text; no shell-interpreted
// preview strings or commands carry remote data.
package ui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// ErrCancelled is returned when the user aborts the picker.
var ErrCancelled = errors.New("selection cancelled")

// Select presents items to the user via fzf and returns the selected item's index.
func Select(prompt string, items []string) (int, error) {
	idx, err := run(prompt, items, false)
	if err != nil {
		return -1, err
	}
	return idx[0], nil
}

// SelectMany lets the user mark any number of items with tab and returns
// their indices in list order.
func SelectMany(prompt string, items []string) ([]int, error) {
	return run(prompt, items, true)
}

func run(prompt string, items []string, multi bool) ([]int, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items to select from")
	}

	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return nil, fmt.Errorf("fzf not found in PATH: %w", err)
	}

	// Build fzf command with safe arguments only
	args := []string{
		"--prompt", prompt + " > ",
		"--height", "40%",
		"--reverse",
		"--with-nth", "2..", // hide the index column
		"--delimiter", "\t",
		"--cycle",
	}
	if multi {
		args = append(args, "--multi", "--bind", "ctrl-a:select-all")
	} else {
		args = append(args, "--no-multi")
	}

	cmd := exec.Command(fzfPath, args...)
	cmd.Stdin = strings.NewReader(formatItems(items))
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 130 {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("fzf failed: %w", err)
	}

	return parseSelection(stdout.String(), len(items))
}

// formatItems numbers items so the selection can be mapped back reliably
// even when two items share the same text.
func formatItems(items []string) string {
	var b strings.Builder
	for i, item := range items {
		item = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(item)
		fmt.Fprintf(&b, "%d\t%s\n", i, item)
	}
	return b.String()
}

// parseSelection maps fzf output lines back to item indices.
func parseSelection(out string, n int) ([]int, error) {
	var selected []int
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		field, _, _ := strings.Cut(line, "\t")
		idx, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parsing selection index: %w", err)
		}
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("selection index %d out of range", idx)
		}
		selected = append(selected, idx)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no selection made")
	}
	return selected, nil
}
