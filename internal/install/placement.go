// Package install decides where a runtime lives permanently and moves an
// extracted distribution into that location.
package install

import (
	"path/filepath"

	"github.com/zulutools/zulusetup/internal/platform"
)

// Scope says whether an install location is machine-wide or per-user.
type Scope string

const (
	ScopeSystem Scope = "system"
	ScopeUser   Scope = "user"
)

// Target is the permanent base directory chosen for this run. It is
// recomputed every run and never persisted; only its on-disk effects are.
type Target struct {
	BaseDir string `json:"base_dir"`
	Scope   Scope  `json:"scope"`
}

// ChooseBase picks the permanent base directory for the platform and
// privilege level. Pure: no filesystem access, no failure modes; the
// directory need not exist yet. Unprivileged runs degrade to a user-writable
// location instead of failing.
func ChooseBase(pctx *platform.Context) Target {
	switch pctx.Identity.OS {
	case platform.Windows:
		pf := pctx.ProgramFiles
		if pf == "" {
			pf = `C:\Program Files`
		}
		return Target{BaseDir: filepath.Join(pf, "Zulu"), Scope: ScopeSystem}
	case platform.MacOS:
		if pctx.Elevated {
			return Target{BaseDir: "/Library/Java/JavaVirtualMachines", Scope: ScopeSystem}
		}
		return Target{
			BaseDir: filepath.Join(pctx.Home, "Library", "Java", "JavaVirtualMachines"),
			Scope:   ScopeUser,
		}
	default: // linux
		if pctx.Elevated {
			return Target{BaseDir: "/usr/local/lib/jvm", Scope: ScopeSystem}
		}
		return Target{
			BaseDir: filepath.Join(pctx.Home, ".local", "share", "java"),
			Scope:   ScopeUser,
		}
	}
}
