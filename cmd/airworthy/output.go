package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/sgirard84/airworthy/internal/model"
)

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func isInteractive(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

func formatStatus(status model.Status, useUnicode bool) string {
	if useUnicode {
		return fmt.Sprintf("%s %s", status.Icon(), status.String())
	}
	return fmt.Sprintf("%s %s", status.IconFallback(), status.String())
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
