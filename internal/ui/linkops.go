package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
	"github.com/skratchdot/open-golang/open"
)

// LinkOps handles the side effects that leave the application: the browser,
// the system clipboard and the pager
type LinkOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management

	openURL   func(string) error
	writeClip func(string) error
	pager     func(io.Reader) error
}

// NewLinkOps creates a LinkOps backed by the system browser, clipboard and ov
func NewLinkOps() *LinkOps {
	l := &LinkOps{
		openURL:   open.Start,
		writeClip: writeClipboard,
	}
	l.pager = l.runPager
	return l
}

// SetProgram sets the program reference for terminal management
func (l *LinkOps) SetProgram(p *tea.Program) {
	l.program = p
}

// OpenLink opens url with the system handler
func (l *LinkOps) OpenLink(url string) error {
	if url == "" {
		return fmt.Errorf("event has no link")
	}
	if err := l.openURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// CopyLink writes url to the system clipboard
func (l *LinkOps) CopyLink(url string) error {
	if url == "" {
		return fmt.Errorf("event has no link")
	}
	if err := l.writeClip(url); err != nil {
		return fmt.Errorf("copy link: %w", err)
	}
	return nil
}

func writeClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not available on this system")
	}
	return clipboard.WriteAll(text)
}

// ShowInPager shows content in the ov pager
func (l *LinkOps) ShowInPager(content string) error {
	return l.pager(strings.NewReader(content))
}

// runPager hands the terminal to ov until the user quits it
func (l *LinkOps) runPager(r io.Reader) error {
	if l.program == nil {
		return fmt.Errorf("program not set")
	}

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if err := l.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = l.program.RestoreTerminal()
	}()

	return root.Run()
}
