package utils

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	cgoAvailable  bool
)

// ClipboardError reports a copy that could not be performed
type ClipboardError struct {
	Message string
}

func (e *ClipboardError) Error() string {
	return "clipboard: " + e.Message
}

// NewClipboardError creates a ClipboardError
func NewClipboardError(message string) error {
	return &ClipboardError{Message: message}
}

// IsClipboardError reports whether err is a ClipboardError
func IsClipboardError(err error) bool {
	var clipErr *ClipboardError
	return errors.As(err, &clipErr)
}

// InitClipboard detects whether the native clipboard can be used.
// Builds without CGO panic inside clipboard.Init; that is recovered and the
// OS command fallback is used instead.
func InitClipboard() {
	clipboardOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				cgoAvailable = false
			}
		}()
		cgoAvailable = clipboard.Init() == nil
	})
}

// WriteToClipboard writes text to the system clipboard
func WriteToClipboard(text string) error {
	if text == "" {
		return NewClipboardError("no content to copy")
	}

	InitClipboard()

	if cgoAvailable {
		// The returned channel only fires when another program overwrites the
		// clipboard, so it is not waited on.
		_ = clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}

	return writeToClipboardFallback(text)
}

// clipboardCommand picks the OS tool used when the native clipboard is unavailable
func clipboardCommand(goos string, getenv func(string) string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "pbcopy", nil, nil
	case "linux":
		if getenv("WAYLAND_DISPLAY") != "" {
			return "wl-copy", nil, nil
		}
		return "xclip", []string{"-selection", "clipboard"}, nil
	case "windows":
		return "clip", nil, nil
	default:
		return "", nil, NewClipboardError(fmt.Sprintf("unsupported operating system: %s", goos))
	}
}

func writeToClipboardFallback(text string) error {
	name, args, err := clipboardCommand(runtime.GOOS, os.Getenv)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return NewClipboardError(fmt.Sprintf("%s failed: %v", name, err))
	}
	return nil
}
