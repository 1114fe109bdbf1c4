package metadata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zulutools/zulusetup/internal/platform"
)

func newServer(t *testing.T, records []record, gotQuery *url.Values) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.Query()
		}
		require.NoError(t, json.NewEncoder(w).Encode(records))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveQueryShape(t *testing.T) {
	var query url.Values
	srv := newServer(t, []record{
		{Name: "zulu21.30.15-ca-jdk21.0.1-linux_x64.tar.gz", DownloadURL: "https://cdn/a.tar.gz"},
	}, &query)

	r := NewResolver(srv.URL)
	_, err := r.Resolve(context.Background(), 21, platform.Identity{OS: platform.Linux, Arch: platform.X8664})
	require.NoError(t, err)

	assert.Equal(t, "21", query.Get("java_version"))
	assert.Equal(t, "linux", query.Get("os"))
	assert.Equal(t, "x86_64", query.Get("arch"))
	assert.Equal(t, "jdk", query.Get("java_package_type"))
	assert.Equal(t, "ga", query.Get("release_status"))
	assert.Equal(t, "CA", query.Get("availability_types"))
	assert.Equal(t, "true", query.Get("latest"))
	assert.Equal(t, "20", query.Get("page_size"))
}

func TestResolveLinuxPrefersTarGz(t *testing.T) {
	srv := newServer(t, []record{
		{Name: "zulu21-ca-jdk21-linux_x64.zip", DownloadURL: "https://cdn/a.zip"},
		{Name: "zulu21-ca-jdk21-linux_x64.tar.gz", DownloadURL: "https://cdn/a.tar.gz"},
	}, nil)

	pkg, err := NewResolver(srv.URL).Resolve(context.Background(), 21,
		platform.Identity{OS: platform.Linux, Arch: platform.X8664})
	require.NoError(t, err)
	assert.Equal(t, KindTarGz, pkg.Kind)
	assert.Equal(t, "https://cdn/a.tar.gz", pkg.DownloadURL)
}

func TestResolveLinuxFallsBackToZip(t *testing.T) {
	srv := newServer(t, []record{
		{Name: "zulu21-ca-jdk21-linux_x64.zip", DownloadURL: "https://cdn/a.zip"},
	}, nil)

	pkg, err := NewResolver(srv.URL).Resolve(context.Background(), 21,
		platform.Identity{OS: platform.Linux, Arch: platform.X8664})
	require.NoError(t, err)
	assert.Equal(t, KindZip, pkg.Kind)
}

func TestResolveWindowsPrefersMsi(t *testing.T) {
	srv := newServer(t, []record{
		{Name: "zulu21-ca-jdk21-win_x64.zip", DownloadURL: "https://cdn/a.zip"},
		{Name: "zulu21-ca-jdk21-win_x64.msi", DownloadURL: "https://cdn/a.msi"},
	}, nil)

	pkg, err := NewResolver(srv.URL).Resolve(context.Background(), 21,
		platform.Identity{OS: platform.Windows, Arch: platform.X8664})
	require.NoError(t, err)
	assert.Equal(t, KindInstaller, pkg.Kind)
	assert.Equal(t, "https://cdn/a.msi", pkg.DownloadURL)
}

func TestResolveServiceOrderBreaksTies(t *testing.T) {
	srv := newServer(t, []record{
		{Name: "zulu21.30-ca-jdk21-linux_x64.tar.gz", DownloadURL: "https://cdn/first.tar.gz"},
		{Name: "zulu21.28-ca-jdk21-linux_x64.tar.gz", DownloadURL: "https://cdn/second.tar.gz"},
	}, nil)

	pkg, err := NewResolver(srv.URL).Resolve(context.Background(), 21,
		platform.Identity{OS: platform.Linux, Arch: platform.X8664})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/first.tar.gz", pkg.DownloadURL)
}

func TestResolveExcludesCracBuilds(t *testing.T) {
	srv := newServer(t, []record{
		{Name: "zulu21.30-ca-crac-jdk21-linux_x64.tar.gz", DownloadURL: "https://cdn/crac.tar.gz"},
		{Name: "zulu21.28-ca-jdk21-linux_x64.tar.gz", DownloadURL: "https://cdn/plain.tar.gz"},
	}, nil)

	pkg, err := NewResolver(srv.URL).Resolve(context.Background(), 21,
		platform.Identity{OS: platform.Linux, Arch: platform.X8664})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/plain.tar.gz", pkg.DownloadURL)
}

func TestResolveCracOnlyIsNotFound(t *testing.T) {
	srv := newServer(t, []record{
		{Name: "zulu21.30-ca-crac-jdk21-linux_x64.tar.gz", DownloadURL: "https://cdn/crac.tar.gz"},
	}, nil)

	_, err := NewResolver(srv.URL).Resolve(context.Background(), 21,
		platform.Identity{OS: platform.Linux, Arch: platform.X8664})
	require.ErrorIs(t, err, ErrNoPackage)
}

func TestResolveEmptyResultIsNotFound(t *testing.T) {
	srv := newServer(t, nil, nil)

	_, err := NewResolver(srv.URL).Resolve(context.Background(), 21,
		platform.Identity{OS: platform.Linux, Arch: platform.X8664})
	require.ErrorIs(t, err, ErrNoPackage)
}
