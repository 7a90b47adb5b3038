package main

import "fmt"

// ANSI colors for terminal output
const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

func printLine(color, symbol, format string, a ...interface{}) {
	fmt.Println(color + symbol + " " + fmt.Sprintf(format, a...) + colorReset)
}

func PrintInfo(format string, a ...interface{})    { printLine(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { printLine(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { printLine(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { printLine(colorRed, "✗", format, a...) }

// PrintHeader opens a section of command output
func PrintHeader(title string) {
	fmt.Println()
	fmt.Println(colorYellow + "=== " + title + " ===" + colorReset)
}
