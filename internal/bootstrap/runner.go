package bootstrap

import (
	"context"
	"os/exec"

	"github.com/zulutools/zulusetup/internal/archive"
)

// execRunner is the real process collaborator.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (int, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), string(out), nil
		}
		return -1, string(out), err
	}
	return 0, string(out), nil
}

// archiveUnpacker adapts the archive package to the Unpacker contract.
type archiveUnpacker struct{}

func (archiveUnpacker) Unpack(archivePath, destDir string) error {
	return archive.Unpack(archivePath, destDir)
}
