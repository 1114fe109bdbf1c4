//go:build windows

package envwire

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows/registry"

	"github.com/zulutools/zulusetup/internal/install"
)

const javaBinRef = `%JAVA_HOME%\bin`

// registryIntegrator writes the per-user environment store under
// HKCU\Environment. Changes apply to newly launched processes only.
type registryIntegrator struct{}

func newRegistryIntegrator() Integrator { return &registryIntegrator{} }

func (r *registryIntegrator) Apply(loc *install.Location) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, "Environment",
		registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return &PersistError{Target: `HKCU\Environment`, Err: err}
	}
	defer key.Close()

	javaHome := loc.RootDir
	if loc.ExecPath != "" {
		javaHome = filepath.Dir(filepath.Dir(loc.ExecPath))
	}
	if err := key.SetStringValue("JAVA_HOME", javaHome); err != nil {
		return &PersistError{Target: `HKCU\Environment`, Err: err}
	}

	path, _, err := key.GetStringValue("Path")
	if err != nil && err != registry.ErrNotExist {
		return &PersistError{Target: `HKCU\Environment`, Err: err}
	}
	if pathContains(path, javaBinRef) {
		logrus.Debug("user Path already references %JAVA_HOME%\\bin")
		return nil
	}

	newPath := javaBinRef
	if path != "" {
		newPath += ";" + path
	}
	// Path entries may embed %JAVA_HOME%, so the value must stay expandable.
	if err := key.SetExpandStringValue("Path", newPath); err != nil {
		return &PersistError{Target: `HKCU\Environment`, Err: err}
	}
	return nil
}

func (r *registryIntegrator) Note() string {
	return "JAVA_HOME and Path were set for your user account; open a new terminal to use them"
}

func pathContains(path, entry string) bool {
	for _, p := range strings.Split(path, ";") {
		if strings.EqualFold(strings.TrimSpace(p), entry) {
			return true
		}
	}
	return false
}
