package install

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/zulutools/zulusetup/internal/platform"
)

// ErrExtractionEmpty indicates the scratch directory held no extracted
// distribution directory at all.
var ErrExtractionEmpty = errors.New("extraction produced no contents")

// Location is the terminal artifact of a portable install: where the runtime
// ended up and the executable to invoke.
type Location struct {
	RootDir        string `json:"root_dir"`
	ExecPath       string `json:"exec_path"`
	Scope          Scope  `json:"scope"`
	ReusedExisting bool   `json:"reused_existing"`
}

// Relocate moves the single extracted distribution directory found under
// scratchRoot into target.BaseDir, preserving its name.
//
// If the destination already exists the move is skipped and the existing
// install is treated as authoritative; the caller sees ReusedExisting=true.
// A corrupted prior install is therefore never auto-repaired.
func Relocate(scratchRoot string, target Target, osKind platform.OS) (*Location, error) {
	entries, err := os.ReadDir(scratchRoot)
	if err != nil {
		return nil, fmt.Errorf("reading extraction directory: %w", err)
	}

	var name string
	for _, e := range entries {
		if e.IsDir() {
			name = e.Name()
			break
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w in %s", ErrExtractionEmpty, scratchRoot)
	}

	dest := filepath.Join(target.BaseDir, name)
	reused := false

	if _, err := os.Stat(dest); err == nil {
		logrus.WithField("path", dest).Warn("destination already exists, keeping existing install")
		reused = true
	} else {
		if err := os.MkdirAll(target.BaseDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating install directory: %w", err)
		}
		if err := move(filepath.Join(scratchRoot, name), dest); err != nil {
			return nil, fmt.Errorf("relocating %s: %w", name, err)
		}
	}

	return &Location{
		RootDir:        dest,
		ExecPath:       javaExecPath(dest, osKind),
		Scope:          target.Scope,
		ReusedExisting: reused,
	}, nil
}

// javaExecPath returns the OS-appropriate java executable under root. macOS
// Zulu archives ship the bundle layout with the real home nested under
// Contents/Home.
func javaExecPath(root string, osKind platform.OS) string {
	if osKind == platform.Windows {
		return filepath.Join(root, "bin", "java.exe")
	}
	if osKind == platform.MacOS {
		bundled := filepath.Join(root, "Contents", "Home", "bin", "java")
		if _, err := os.Stat(bundled); err == nil {
			return bundled
		}
	}
	return filepath.Join(root, "bin", "java")
}

// move renames src to dest, falling back to a recursive copy when scratch
// space and the install base live on different filesystems.
func move(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	if err := copyTree(src, dest); err != nil {
		os.RemoveAll(dest)
		return err
	}
	return os.RemoveAll(src)
}

func copyTree(src, dest string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		switch {
		case info.IsDir():
			return os.MkdirAll(target, info.Mode())
		case info.Mode()&os.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		default:
			return copyFile(path, target, info.Mode())
		}
	})
}

func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
