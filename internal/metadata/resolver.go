package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/zulutools/zulusetup/internal/platform"
)

// DefaultBaseURL is the public Azul metadata API.
const DefaultBaseURL = "https://api.azul.com/metadata/v1"

// CRaC builds are specialized checkpoint/restore packagings and are never
// suitable for a generic install.
const cracMarker = "-crac-"

// ErrNoPackage indicates the query returned no candidates, or filtering
// removed all of them.
var ErrNoPackage = errors.New("no matching Zulu JDK package")

// Kind classifies how a package is applied to the machine.
type Kind string

const (
	KindInstaller Kind = "installer"
	KindZip       Kind = "zip"
	KindTarGz     Kind = "tar_gz"
)

// Package identifies one downloadable Zulu build.
type Package struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
	Kind        Kind   `json:"kind"`
}

// record is the subset of the service's package object the resolver needs.
type record struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

// Resolver queries the Azul metadata service for the best package matching a
// major version and platform.
type Resolver struct {
	base   string
	client *retryablehttp.Client
}

// NewResolver returns a Resolver against baseURL, or DefaultBaseURL if empty.
func NewResolver(baseURL string) *Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := retryablehttp.NewClient()
	client.Logger = nil
	return &Resolver{base: strings.TrimRight(baseURL, "/"), client: client}
}

// Resolve returns the preferred package for the given JDK major version and
// platform, or ErrNoPackage.
func (r *Resolver) Resolve(ctx context.Context, major int, id platform.Identity) (*Package, error) {
	records, err := r.query(ctx, major, id)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w for JDK %d on %s", ErrNoPackage, major, id)
	}

	// Packaging preference is a fixed per-OS policy; ties within a format
	// are broken by the service's own result ordering.
	var preference [][]string
	if id.OS == platform.Windows {
		preference = [][]string{{".msi"}, {".zip"}}
	} else {
		preference = [][]string{{".tar.gz", ".tgz"}, {".zip"}}
	}

	for _, suffixes := range preference {
		if pkg := pick(records, suffixes); pkg != nil {
			return pkg, nil
		}
	}
	return nil, fmt.Errorf("%w for JDK %d on %s", ErrNoPackage, major, id)
}

func (r *Resolver) query(ctx context.Context, major int, id platform.Identity) ([]record, error) {
	params := url.Values{
		"java_version":       {strconv.Itoa(major)},
		"os":                 {string(id.OS)},
		"arch":               {string(id.Arch)},
		"java_package_type":  {"jdk"},
		"release_status":     {"ga"},
		"availability_types": {"CA"},
		"latest":             {"true"},
		"page_size":          {"20"},
	}

	u := r.base + "/zulu/packages/?" + params.Encode()
	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying package metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("querying package metadata: HTTP %d", resp.StatusCode)
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding package metadata: %w", err)
	}
	return records, nil
}

// pick returns the first record, in service order, whose name ends with one
// of the suffixes, skipping CRaC variants.
func pick(records []record, suffixes []string) *Package {
	for _, rec := range records {
		name := strings.ToLower(rec.Name)
		if strings.Contains(name, cracMarker) {
			continue
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(name, suffix) {
				return &Package{
					Name:        rec.Name,
					DownloadURL: rec.DownloadURL,
					Kind:        kindForSuffix(suffix),
				}
			}
		}
	}
	return nil
}

func kindForSuffix(suffix string) Kind {
	switch suffix {
	case ".msi":
		return KindInstaller
	case ".zip":
		return KindZip
	default:
		return KindTarGz
	}
}
