package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvEditor prepares an external editor command using $VISUAL or $EDITOR
// (fallback: "vi"). It does NOT run the editor itself; callers use
// tea.ExecProcess with the returned *exec.Cmd.
type EnvEditor struct {
	lookup func(string) string
}

// NewEnvEditor creates an EnvEditor reading the process environment.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{lookup: os.Getenv}
}

const instructionComment = `<!--
TerminalConfess: write your confession below.

- SAVE and EXIT to post (e.g., :wq in vi).
- Leave it empty to cancel.
- Confessions are limited to 1000 characters.
-->

`

func (e *EnvEditor) program() string {
	lookup := e.lookup
	if lookup == nil {
		lookup = os.Getenv
	}
	for _, k := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(lookup(k)); v != "" {
			return v
		}
	}
	return "vi"
}

// Cmd prepares an *exec.Cmd for the editor and a temp file path.
// It writes the provided content (and an instruction comment) to the temp file.
func (e *EnvEditor) Cmd(content string) (*exec.Cmd, string, error) {
	tmpFile, err := os.CreateTemp("", "terminalconfess-*.md")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(instructionComment + content); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	fields := strings.Fields(e.program())
	args := append(fields[1:], tmpPath)
	return exec.Command(fields[0], args...), tmpPath, nil
}

// ReadContent reads the temp file, strips the instruction comment, trims
// whitespace and removes the file.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := string(data)
	if idx := strings.Index(content, "-->"); idx != -1 {
		content = content[idx+3:]
	}
	return strings.TrimSpace(content), nil
}
