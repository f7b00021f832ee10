package main

import (
	"fmt"
	"io"
	"os"
)

const (
	ansiGreen  = "\033[0;32m"
	ansiRed    = "\033[0;31m"
	ansiYellow = "\033[1;33m"
	ansiBlue   = "\033[0;34m"
	ansiReset  = "\033[0m"
)

// console writes status lines, coloured unless NO_COLOR is set.
type console struct {
	out   io.Writer
	color bool
}

var stdout = &console{out: os.Stdout, color: os.Getenv("NO_COLOR") == ""}

func (c *console) line(ansi, marker, format string, a ...interface{}) {
	msg := marker + " " + fmt.Sprintf(format, a...)
	if c.color {
		msg = ansi + msg + ansiReset
	}
	fmt.Fprintln(c.out, msg)
}

func PrintInfo(format string, a ...interface{})    { stdout.line(ansiBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { stdout.line(ansiGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { stdout.line(ansiYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { stdout.line(ansiRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Fprintln(stdout.out)
	stdout.line(ansiYellow, "===", "%s ===", title)
}
