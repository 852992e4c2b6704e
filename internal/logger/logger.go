package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	timeColor    = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func stamp() string {
	return timeColor.Sprintf("[%s]", time.Now().Format("15:04:05"))
}

// Info logs general information (blue).
func Info(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), infoColor.Sprintf(message, args...))
}

// Success logs a success (green).
func Success(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), successColor.Sprintf("✓ "+message, args...))
}

// Warning logs a warning (yellow).
func Warning(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), warningColor.Sprintf("⚠ "+message, args...))
}

// Error logs an error (red).
func Error(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", stamp(), errorColor.Sprintf("✗ "+message, args...))
}

// Request logs a served HTTP request with its status and duration, colored by
// status class.
func Request(method, path string, statusCode int, duration time.Duration) {
	c := successColor
	switch {
	case statusCode >= 500:
		c = errorColor
	case statusCode >= 400:
		c = warningColor
	case statusCode >= 300:
		c = infoColor
	}
	fmt.Printf("%s %s\n", stamp(), c.Sprintf("%s %s - %d (%s)", method, path, statusCode, duration))
}
