package envwire

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/zulutools/zulusetup/internal/install"
)

// Marker lines delimiting the managed block. The opening marker doubles as
// the idempotency probe: if it is anywhere in the file, the block is
// considered applied and nothing is written.
const (
	markerBegin = "# >>> zulusetup managed block >>>"
	markerEnd   = "# <<< zulusetup managed block <<<"
)

// posixIntegrator appends a managed export block to one shell startup file.
type posixIntegrator struct {
	home       string
	loginShell string
}

func (p *posixIntegrator) Apply(loc *install.Location) error {
	profile := p.profilePath()

	data, err := os.ReadFile(profile)
	if err != nil && !os.IsNotExist(err) {
		return &PersistError{Target: profile, Err: err}
	}
	if strings.Contains(string(data), markerBegin) {
		logrus.WithField("profile", profile).Debug("managed block already present")
		return nil
	}

	javaHome := javaHomeFor(loc)
	block := fmt.Sprintf("\n%s\nexport JAVA_HOME=%q\nexport PATH=\"$JAVA_HOME/bin:$PATH\"\n%s\n",
		markerBegin, javaHome, markerEnd)

	f, err := os.OpenFile(profile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &PersistError{Target: profile, Err: err}
	}
	defer f.Close()

	if _, err := f.WriteString(block); err != nil {
		return &PersistError{Target: profile, Err: err}
	}
	logrus.WithField("profile", profile).Debug("wrote managed environment block")
	return nil
}

func (p *posixIntegrator) Note() string {
	return fmt.Sprintf("restart your shell or `source %s` to pick up JAVA_HOME", p.profilePath())
}

// profilePath selects the startup file: a zsh-specific file when the login
// shell is zsh, else generic POSIX files; the first that exists wins, with a
// per-shell default when none do.
func (p *posixIntegrator) profilePath() string {
	candidates := []string{".profile", ".bashrc"}
	fallback := ".profile"
	if strings.HasSuffix(p.loginShell, "zsh") {
		candidates = []string{".zshrc", ".profile"}
		fallback = ".zshrc"
	}

	for _, name := range candidates {
		path := filepath.Join(p.home, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(p.home, fallback)
}

// javaHomeFor derives JAVA_HOME from the runtime location, peeling the
// trailing bin/<exe> off the executable path so macOS bundle layouts resolve
// to Contents/Home rather than the archive root.
func javaHomeFor(loc *install.Location) string {
	if loc.ExecPath != "" {
		return filepath.Dir(filepath.Dir(loc.ExecPath))
	}
	return loc.RootDir
}
