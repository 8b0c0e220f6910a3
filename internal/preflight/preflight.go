// Package preflight verifies the environment before commands that need it.
package preflight

import (
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"mpvnotes/internal/config"
)

// minShotDirBytes is the free-space floor for the screenshot directory.
// Below this, shot commands refuse to run rather than fill the disk.
const minShotDirBytes = 64 << 20

// Result is one environment check outcome.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Run evaluates every check relevant to the configuration.
func Run(cfg *config.Config) []Result {
	results := []Result{
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
		CheckDirectoryAccess("Screenshot directory", cfg.Paths.ShotDir),
		CheckFreeSpace("Screenshot free space", cfg.Paths.ShotDir, minShotDirBytes),
	}
	if cfg.Player.Backend == "attached" {
		results = append(results, CheckPlayerSocket("Player socket", cfg.Player.Socket))
	}
	return results
}

// CheckDirectoryAccess verifies the directory exists and is read/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace verifies the filesystem holding path has at least minBytes
// available.
func CheckFreeSpace(name, path string, minBytes uint64) Result {
	var fs unix.Statfs_t
	if err := unix.Statfs(path, &fs); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	free := fs.Bavail * uint64(fs.Bsize)
	if free < minBytes {
		return Result{Name: name, Detail: fmt.Sprintf("%s (%d MiB free, need %d MiB)", path, free>>20, minBytes>>20)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d MiB free)", path, free>>20)}
}

// CheckPlayerSocket probes an attached mpv's IPC socket.
func CheckPlayerSocket(name, socket string) Result {
	conn, err := net.DialTimeout("unix", socket, time.Second)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (not reachable; start mpv with --input-ipc-server=%s)", socket, socket)}
	}
	_ = conn.Close()
	return Result{Name: name, Passed: true, Detail: socket}
}
