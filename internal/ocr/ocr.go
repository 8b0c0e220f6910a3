package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"mpvnotes/internal/config"
)

// ErrEngineMissing marks an OCR binary that is not installed.
var ErrEngineMissing = errors.New("ocr engine not found")

// Runner invokes the configured OCR engine over image files.
type Runner struct {
	binary    string
	languages string
	timeout   time.Duration
}

// NewRunner builds a runner from config.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		binary:    cfg.OCR.Binary,
		languages: cfg.OCR.Languages,
		timeout:   time.Duration(cfg.OCR.TimeoutSeconds) * time.Second,
	}
}

// Recognize runs the engine over imagePath and returns the extracted text
// with surrounding whitespace trimmed.
func (r *Runner) Recognize(ctx context.Context, imagePath string) (string, error) {
	if _, err := exec.LookPath(r.binary); err != nil {
		return "", fmt.Errorf("%w: %q", ErrEngineMissing, r.binary)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := []string{imagePath, "stdout"}
	if strings.TrimSpace(r.languages) != "" {
		args = append(args, "-l", r.languages)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("ocr %s: %w: %s", r.binary, err, detail)
		}
		return "", fmt.Errorf("ocr %s: %w", r.binary, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
