// Package deps probes the external binaries mpvnotes shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"mpvnotes/internal/config"
)

// Requirement defines an external dependency mpvnotes relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists the binaries the configured setup needs. mpv is only
// required by the managed backend; the attached backend just needs its
// socket. OCR is always optional.
func Requirements(cfg *config.Config) []Requirement {
	reqs := []Requirement{
		{
			Name:        "mpv",
			Command:     cfg.Player.Binary,
			Description: "media player (managed backend launches it)",
			Optional:    cfg.Player.Backend != "managed",
		},
		{
			Name:        "OCR engine",
			Command:     cfg.OCR.Binary,
			Description: "text recognition for captured frames",
			Optional:    true,
		},
	}
	return reqs
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
