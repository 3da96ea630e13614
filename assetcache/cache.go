// Package assetcache keeps a versioned offline copy of the dashboard's
// static assets.
//
// The lifecycle follows the usual offline-worker contract: Install
// pre-fetches a fixed asset list under a named cache, Activate deletes the
// caches of prior versions, and Fetch serves the cached copy when present,
// forwarding to the network otherwise. Bumping the cache name is the only
// invalidation mechanism; there is no partial invalidation.
package assetcache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Cache is one named, versioned asset cache rooted at Dir/Name.
type Cache struct {
	// Name is the versioned cache name, e.g. "gestore-conti-cache-v5".
	Name string
	// Dir is the directory holding all cache versions.
	Dir string
	// Client is the HTTP client for network fetches, http.DefaultClient
	// when nil.
	Client *http.Client
}

// New creates a cache handle. Nothing touches the disk until Install.
func New(name, dir string) *Cache {
	return &Cache{Name: name, Dir: dir}
}

func (c *Cache) client() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

func (c *Cache) root() string { return filepath.Join(c.Dir, c.Name) }

// assetFile maps an asset path to its file inside the cache directory.
func (c *Cache) assetFile(asset string) string {
	return filepath.Join(c.root(), url.PathEscape(strings.TrimPrefix(asset, "./")))
}

// Install pre-fetches every asset from baseURL into the cache. It is
// all-or-nothing: assets are downloaded into a staging directory that only
// replaces the cache once every fetch succeeded.
func (c *Cache) Install(ctx context.Context, baseURL string, assets []string) error {
	staging := c.root() + ".staging"
	if err := os.MkdirAll(staging, 0755); err != nil {
		return fmt.Errorf("cannot create staging dir %q: %w", staging, err)
	}
	defer os.RemoveAll(staging)

	for _, asset := range assets {
		body, err := c.download(ctx, baseURL, asset)
		if err != nil {
			return fmt.Errorf("install of %q failed: %w", c.Name, err)
		}
		file := filepath.Join(staging, url.PathEscape(strings.TrimPrefix(asset, "./")))
		if err := os.WriteFile(file, body, 0644); err != nil {
			return fmt.Errorf("cannot store asset %q: %w", asset, err)
		}
	}

	if err := os.RemoveAll(c.root()); err != nil {
		return fmt.Errorf("cannot replace cache %q: %w", c.Name, err)
	}
	if err := os.Rename(staging, c.root()); err != nil {
		return fmt.Errorf("cannot activate staged cache %q: %w", c.Name, err)
	}
	slog.Info("asset cache installed", "cache", c.Name, "assets", len(assets))
	return nil
}

// Activate deletes every cache version in Dir other than this one.
func (c *Cache) Activate() error {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot list caches in %q: %w", c.Dir, err)
	}
	for _, e := range entries {
		if !e.IsDir() || e.Name() == c.Name {
			continue
		}
		old := filepath.Join(c.Dir, e.Name())
		if err := os.RemoveAll(old); err != nil {
			return fmt.Errorf("cannot delete old cache %q: %w", e.Name(), err)
		}
		slog.Info("old asset cache deleted", "cache", e.Name())
	}
	return nil
}

// Fetch returns the asset content: the cached copy when present, the network
// response otherwise. A cache miss does not populate the cache; only Install
// writes it.
func (c *Cache) Fetch(ctx context.Context, baseURL, asset string) ([]byte, error) {
	if body, err := os.ReadFile(c.assetFile(asset)); err == nil {
		return body, nil
	}
	slog.Debug("asset cache miss, forwarding to network", "cache", c.Name, "asset", asset)
	return c.download(ctx, baseURL, asset)
}

func (c *Cache) download(ctx context.Context, baseURL, asset string) ([]byte, error) {
	addr := strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(asset, "./")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid asset URL %q: %w", addr, err)
	}
	resp, err := c.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch asset %q: %w", addr, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot fetch asset %q: %s", addr, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
