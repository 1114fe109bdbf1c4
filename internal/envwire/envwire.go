// Package envwire persists JAVA_HOME and PATH changes so processes started
// after the install can find the runtime. Three mechanisms exist: a managed
// block in a POSIX shell startup file, the Windows per-user environment
// store, and MSI-driven registration (handled by the installer itself, not
// here). All of them are idempotent across runs.
package envwire

import (
	"fmt"

	"github.com/zulutools/zulusetup/internal/install"
	"github.com/zulutools/zulusetup/internal/platform"
)

// PersistError marks a failed environment write. It is non-fatal by
// contract: the install itself has already succeeded and callers downgrade
// this to an "installed but not wired" status.
type PersistError struct {
	Target string
	Err    error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persisting environment to %s: %v", e.Target, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Integrator applies the environment patch for one platform mechanism.
type Integrator interface {
	// Apply wires loc into the persistent environment. Calling it again
	// for the same location must not accumulate duplicate state.
	Apply(loc *install.Location) error

	// Note describes how and when the change takes effect, for the user.
	Note() string
}

// For selects the integrator variant for the platform.
func For(pctx *platform.Context) Integrator {
	if pctx.Identity.OS == platform.Windows {
		return newRegistryIntegrator()
	}
	return &posixIntegrator{home: pctx.Home, loginShell: pctx.LoginShell}
}
