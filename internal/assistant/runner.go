package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"github.com/MKhiriev/go-fubon-cli/internal/logger"
)

// Runner executes extracted fubon commands by spawning the CLI binary. Each
// run is a fresh process, so the command goes through exactly the same
// session and validation path as one typed by hand.
type Runner struct {
	binary string
	log    *logger.Logger
}

// NewRunner returns a Runner invoking the current executable, falling back
// to "fubon" on PATH when the executable path cannot be resolved.
func NewRunner(log *logger.Logger) *Runner {
	binary, err := os.Executable()
	if err != nil {
		binary = "fubon"
	}
	return &Runner{binary: binary, log: log.GetChildLogger()}
}

// Run executes cmd and returns its combined output with any JSON
// re-indented for reading. The command must start with "fubon".
func (r *Runner) Run(ctx context.Context, cmd string) (string, error) {
	fields := strings.Fields(cmd)
	if len(fields) < 2 || fields[0] != "fubon" {
		return "", &invalidCommandError{cmd: cmd}
	}

	r.log.Debug().Str("command", cmd).Msg("running extracted command")

	out, err := exec.CommandContext(ctx, r.binary, fields[1:]...).CombinedOutput()
	text := prettyJSON(out)
	if err != nil {
		// The CLI emits its error envelope on stdout before exiting
		// non-zero; surface that output rather than the exit status.
		if text != "" {
			return text, nil
		}
		return "", err
	}

	return text, nil
}

func prettyJSON(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return string(trimmed)
	}
	return buf.String()
}

type invalidCommandError struct {
	cmd string
}

func (e *invalidCommandError) Error() string {
	return "not a fubon command: " + e.cmd
}
