// Package cli handles cmd line input for debugging the assist pipeline in real-time
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/codeassist/pkg/editor"
	"github.com/bastiangx/codeassist/pkg/session"
)

// commands map the navigation commands onto keys
var commands = map[string]session.Key{
	":n":   session.KeyDown,
	":p":   session.KeyUp,
	":ok":  session.KeyEnter,
	":esc": session.KeyEscape,
}

// InputHandler reads lines from stdin. Each line becomes the whole text with
// the caret at its end; lines starting with ':' drive the open session.
type InputHandler struct {
	editor   *editor.Editor
	prompt   string
	renderer *Renderer
	in       io.Reader
	out      io.Writer
}

// NewInputHandler creates a handler over stdin/stdout
func NewInputHandler(ed *editor.Editor, prompt string, noColor bool) *InputHandler {
	return NewInputHandlerWithIO(ed, prompt, noColor, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO creates a handler over the given streams
func NewInputHandlerWithIO(ed *editor.Editor, prompt string, noColor bool, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		editor:   ed,
		prompt:   prompt,
		renderer: NewRenderer(out, noColor),
		in:       in,
		out:      out,
	}
}

// Start begins the interface loop and returns nil when input ends
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, "codeassist CLI")
	fmt.Fprintln(h.out, "type code and press Enter; :n :p :ok :esc drive the list, :stats, :q to quit")

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, h.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == ":q" {
			return nil
		}
		h.handleInput(line)
	}
}

// handleInput runs one line through the editor and prints the result
func (h *InputHandler) handleInput(line string) {
	h.editor.Tick()

	if strings.HasPrefix(line, ":") {
		h.handleCommand(strings.TrimSpace(line))
		return
	}

	start := time.Now()
	st := h.editor.Set(line, len(line))
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), line)
	h.renderer.State(st)
}

func (h *InputHandler) handleCommand(cmd string) {
	if cmd == ":stats" {
		h.renderer.Stats(h.editor.Stats())
		return
	}
	k, ok := commands[cmd]
	if !ok {
		log.Errorf("Unknown command: %s", cmd)
		return
	}
	st, consumed := h.editor.Key(k)
	if !consumed {
		log.Warnf("No open suggestion list for %s", cmd)
		return
	}
	h.renderer.State(st)
}
