// Package bootstrap sequences the install pipeline: check for an existing
// runtime, resolve a package, download it, install or unpack+relocate it,
// wire the environment, and verify the result.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/zulutools/zulusetup/internal/envwire"
	"github.com/zulutools/zulusetup/internal/fetch"
	"github.com/zulutools/zulusetup/internal/install"
	"github.com/zulutools/zulusetup/internal/jdk"
	"github.com/zulutools/zulusetup/internal/metadata"
	"github.com/zulutools/zulusetup/internal/platform"
)

// Pipeline states, reported through debug logging as the run advances.
type State string

const (
	StateCheckExisting State = "check_existing"
	StateResolving     State = "resolving"
	StateDownloading   State = "downloading"
	StateInstaller     State = "installer"
	StateArchive       State = "archive"
	StateVerifying     State = "verifying"
	StateDone          State = "done"
)

// Mode says how the runtime came to be available.
type Mode string

const (
	ModeExisting        Mode = "existing"
	ModeNativeInstaller Mode = "native_installer"
	ModePortable        Mode = "portable"
)

// Result is the structured outcome the orchestrator reports to its caller.
type Result struct {
	ExecPath       string            `json:"exec_path"`
	RuntimeRoot    string            `json:"runtime_root,omitempty"`
	Mode           Mode              `json:"install_mode"`
	Platform       platform.Identity `json:"platform"`
	Version        string            `json:"version,omitempty"`
	EnvIntegrated  bool              `json:"env_integrated"`
	Verified       bool              `json:"verified"`
	ReusedExisting bool              `json:"reused_existing,omitempty"`
	Note           string            `json:"note,omitempty"`
}

// Collaborator contracts, injected so tests can fake every side effect.
type (
	// Resolver picks the package to download.
	Resolver interface {
		Resolve(ctx context.Context, major int, id platform.Identity) (*metadata.Package, error)
	}

	// Fetcher streams a URL to a local file.
	Fetcher interface {
		Fetch(ctx context.Context, url, dest string) error
	}

	// Unpacker extracts an archive into a directory.
	Unpacker interface {
		Unpack(archivePath, destDir string) error
	}

	// Runner invokes a process and reports its exit status and combined
	// output. A non-nil error means the process could not be started.
	Runner interface {
		Run(ctx context.Context, name string, args ...string) (int, string, error)
	}
)

// InstallerError is a fatal native-installer failure, typically a privilege
// problem.
type InstallerError struct {
	Output string
	Err    error
}

func (e *InstallerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("running native installer: %v", e.Err)
	}
	return fmt.Sprintf("native installer failed: %s", e.Output)
}

func (e *InstallerError) Unwrap() error { return e.Err }

// Orchestrator runs the bootstrap pipeline for one platform context.
type Orchestrator struct {
	Platform   *platform.Context
	Resolver   Resolver
	Fetcher    Fetcher
	Unpacker   Unpacker
	Runner     Runner
	Integrator envwire.Integrator // defaults to envwire.For(Platform)

	// Force skips the existing-runtime short circuit.
	Force bool
}

// New wires an Orchestrator with the real collaborators. apiBase may be
// empty for the public Azul endpoint.
func New(pctx *platform.Context, apiBase string) *Orchestrator {
	return &Orchestrator{
		Platform: pctx,
		Resolver: metadata.NewResolver(apiBase),
		Fetcher:  fetch.NewClient(),
		Unpacker: archiveUnpacker{},
		Runner:   execRunner{},
	}
}

// Run executes the pipeline. Scratch directories are removed on every exit
// path. Environment persistence and verification failures do not abort; they
// degrade the Result instead.
func (o *Orchestrator) Run(ctx context.Context, major int) (*Result, error) {
	log := logrus.WithField("platform", o.Platform.Identity)

	log.WithField("state", StateCheckExisting).Debug("checking for existing runtime")
	if !o.Force {
		if res := o.checkExisting(ctx); res != nil {
			return res, nil
		}
	}

	log.WithField("state", StateResolving).Debug("resolving package")
	pkg, err := o.Resolver.Resolve(ctx, major, o.Platform.Identity)
	if err != nil {
		return nil, err
	}
	log.WithField("package", pkg.Name).Info("resolved package")

	scratch, err := os.MkdirTemp("", "zulusetup-dl-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	log.WithField("state", StateDownloading).Debug("downloading package")
	archivePath := filepath.Join(scratch, pkg.Name)
	if err := o.Fetcher.Fetch(ctx, pkg.DownloadURL, archivePath); err != nil {
		return nil, err
	}

	if pkg.Kind == metadata.KindInstaller {
		log.WithField("state", StateInstaller).Debug("running native installer")
		return o.runInstaller(ctx, archivePath)
	}

	log.WithField("state", StateArchive).Debug("unpacking archive")
	return o.installPortable(ctx, archivePath)
}

// checkExisting probes `java -version` on PATH; a responding runtime short
// circuits the whole pipeline.
func (o *Orchestrator) checkExisting(ctx context.Context) *Result {
	code, out, err := o.Runner.Run(ctx, "java", "-version")
	if err != nil || code != 0 {
		return nil
	}
	version, _ := jdk.ParseVersion(out)
	return &Result{
		ExecPath:      "java",
		Mode:          ModeExisting,
		Platform:      o.Platform.Identity,
		Version:       version,
		EnvIntegrated: true,
		Verified:      true,
	}
}

// runInstaller drives the MSI non-interactively with the vendor features
// that register JAVA_HOME and PATH. The installed root is implicit; the MSI
// owns environment integration.
func (o *Orchestrator) runInstaller(ctx context.Context, msiPath string) (*Result, error) {
	code, out, err := o.Runner.Run(ctx, "msiexec",
		"/i", msiPath, "/qn", "ADDLOCAL=FeatureJavaHome,FeatureEnvironment")
	if err != nil {
		return nil, &InstallerError{Err: err}
	}
	if code != 0 {
		return nil, &InstallerError{Output: out}
	}

	res := &Result{
		ExecPath:      "java",
		Mode:          ModeNativeInstaller,
		Platform:      o.Platform.Identity,
		EnvIntegrated: true,
		Note:          "environment changes apply to newly opened terminals only",
	}
	o.verify(ctx, res)
	return res, nil
}

// installPortable unpacks the archive, relocates it into the permanent base
// and wires the environment.
func (o *Orchestrator) installPortable(ctx context.Context, archivePath string) (*Result, error) {
	extractDir, err := os.MkdirTemp("", "zulusetup-extract-")
	if err != nil {
		return nil, fmt.Errorf("creating extraction directory: %w", err)
	}
	defer os.RemoveAll(extractDir)

	if err := o.Unpacker.Unpack(archivePath, extractDir); err != nil {
		return nil, err
	}

	target := install.ChooseBase(o.Platform)
	loc, err := install.Relocate(extractDir, target, o.Platform.Identity.OS)
	if err != nil {
		return nil, err
	}

	res := &Result{
		ExecPath:       loc.ExecPath,
		RuntimeRoot:    loc.RootDir,
		Mode:           ModePortable,
		Platform:       o.Platform.Identity,
		ReusedExisting: loc.ReusedExisting,
	}

	integrator := o.Integrator
	if integrator == nil {
		integrator = envwire.For(o.Platform)
	}
	if err := integrator.Apply(loc); err != nil {
		logrus.WithError(err).Warn("installed, but environment was not updated")
		res.EnvIntegrated = false
	} else {
		res.EnvIntegrated = true
		res.Note = integrator.Note()
	}

	o.verify(ctx, res)
	return res, nil
}

// verify invokes the installed executable; failure is reported as a warning
// because the install artifacts are already in place.
func (o *Orchestrator) verify(ctx context.Context, res *Result) {
	logrus.WithField("state", StateVerifying).Debug("verifying installed runtime")
	code, out, err := o.Runner.Run(ctx, res.ExecPath, "-version")
	if err != nil || code != 0 {
		logrus.WithField("exec", res.ExecPath).Warn("installed, but the runtime did not respond to -version")
		return
	}
	res.Verified = true
	if v, err := jdk.ParseVersion(out); err == nil {
		res.Version = v
	}
}
