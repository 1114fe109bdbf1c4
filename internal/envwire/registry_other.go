//go:build !windows

package envwire

import (
	"errors"

	"github.com/zulutools/zulusetup/internal/install"
)

// The registry variant only exists on Windows builds; selecting it anywhere
// else is a programming error surfaced as a persist failure.
type registryIntegrator struct{}

func newRegistryIntegrator() Integrator { return &registryIntegrator{} }

func (r *registryIntegrator) Apply(loc *install.Location) error {
	return &PersistError{
		Target: "user environment",
		Err:    errors.New("windows registry is not available on this platform"),
	}
}

func (r *registryIntegrator) Note() string { return "" }
