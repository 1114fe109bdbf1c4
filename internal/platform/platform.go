package platform

import (
	"fmt"
	"os"
	"runtime"
)

// OS is the normalized operating system name used by the Azul metadata API.
type OS string

const (
	Windows OS = "windows"
	Linux   OS = "linux"
	MacOS   OS = "macos"
)

// Arch is the normalized CPU architecture name used by the Azul metadata API.
type Arch string

const (
	X8664   Arch = "x86_64"
	AArch64 Arch = "aarch64"
)

// Identity describes the host platform. Derived once per run; immutable.
type Identity struct {
	OS   OS   `json:"os"`
	Arch Arch `json:"arch"`
}

func (id Identity) String() string {
	return string(id.OS) + "/" + string(id.Arch)
}

// UnsupportedError is returned when the host OS or architecture has no
// normalized equivalent. There is no fallback; callers must abort.
type UnsupportedError struct {
	GOOS   string
	GOARCH string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported platform: %s/%s", e.GOOS, e.GOARCH)
}

var osNames = map[string]OS{
	"linux":   Linux,
	"darwin":  MacOS,
	"windows": Windows,
}

var archNames = map[string]Arch{
	"amd64": X8664,
	"arm64": AArch64,
}

// Detect normalizes the host OS/arch into an Identity.
func Detect() (Identity, error) {
	return identityFrom(runtime.GOOS, runtime.GOARCH)
}

func identityFrom(goos, goarch string) (Identity, error) {
	osName, ok := osNames[goos]
	if !ok {
		return Identity{}, &UnsupportedError{GOOS: goos, GOARCH: goarch}
	}
	archName, ok := archNames[goarch]
	if !ok {
		return Identity{}, &UnsupportedError{GOOS: goos, GOARCH: goarch}
	}
	return Identity{OS: osName, Arch: archName}, nil
}

// Context captures the ambient host state the install path depends on:
// platform identity, privilege level, home directory, login shell, and the
// Program Files root on Windows. It is built once and passed explicitly so
// placement and environment code stay pure and testable.
type Context struct {
	Identity     Identity
	Elevated     bool
	Home         string
	LoginShell   string
	ProgramFiles string
}

// Current builds the Context for the running process.
func Current() (*Context, error) {
	id, err := Detect()
	if err != nil {
		return nil, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return &Context{
		Identity:     id,
		Elevated:     isElevated(),
		Home:         home,
		LoginShell:   os.Getenv("SHELL"),
		ProgramFiles: os.Getenv("ProgramFiles"),
	}, nil
}
