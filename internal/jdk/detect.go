// Package jdk probes Java executables and locates existing installations.
package jdk

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ExecCommand is a wrapper around exec.Command for testability.
var ExecCommand = exec.Command

// Info describes a Java installation.
type Info struct {
	Found   bool   `json:"found"`
	Version string `json:"version"`
	Path    string `json:"path"`
	Home    string `json:"home"`
	Source  string `json:"source"`
}

// Detect locates Java on the system by checking, in order:
//  1. $JAVA_HOME/bin/java
//  2. java on $PATH
//  3. managed installs under each of managedBases
func Detect(managedBases ...string) *Info {
	if javaHome := os.Getenv("JAVA_HOME"); javaHome != "" {
		javaPath := filepath.Join(javaHome, "bin", javaExe(runtime.GOOS))
		if info, err := Probe(javaPath, javaHome, "JAVA_HOME"); err == nil {
			return info
		}
	}

	if javaPath, err := exec.LookPath("java"); err == nil {
		resolved, _ := filepath.EvalSymlinks(javaPath)
		if resolved == "" {
			resolved = javaPath
		}
		if info, err := Probe(resolved, homeFromBin(resolved), "PATH"); err == nil {
			return info
		}
	}

	for _, base := range managedBases {
		for _, pattern := range managedGlobs(base, runtime.GOOS) {
			matches, _ := filepath.Glob(pattern)
			for _, m := range matches {
				if info, err := Probe(m, homeFromBin(m), "managed"); err == nil {
					return info
				}
			}
		}
	}

	return &Info{Found: false}
}

// Probe runs `java -version` against javaPath and returns an Info if the
// binary exists and responds.
func Probe(javaPath, home, source string) (*Info, error) {
	cmd := ExecCommand(javaPath, "-version")
	// java -version writes to stderr
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, err
	}
	version, err := ParseVersion(string(out))
	if err != nil {
		return nil, err
	}
	return &Info{
		Found:   true,
		Version: version,
		Path:    javaPath,
		Home:    home,
		Source:  source,
	}, nil
}

// javaExe returns the executable file name for an OS.
func javaExe(goos string) string {
	if goos == "windows" {
		return "java.exe"
	}
	return "java"
}

// managedGlobs builds the glob patterns for java executables under a managed
// base directory, including the macOS bundle layout.
func managedGlobs(base, goos string) []string {
	exe := javaExe(goos)
	return []string{
		filepath.Join(base, "*", "bin", exe),
		filepath.Join(base, "*", "Contents", "Home", "bin", exe),
	}
}

// homeFromBin derives JAVA_HOME from a path like /usr/lib/jvm/java-21/bin/java.
func homeFromBin(binJava string) string {
	dir := filepath.Dir(binJava)
	if strings.HasSuffix(dir, "bin") {
		return filepath.Dir(dir)
	}
	return filepath.Dir(binJava)
}
