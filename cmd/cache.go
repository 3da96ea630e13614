package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/successione/assetcache"
	"github.com/google/subcommands"
)

// cacheName is the current asset cache version. Bumping it and activating
// drops every asset fetched under the previous versions.
const cacheName = "gestore-conti-cache-v5"

// defaultAssets are the dashboard assets installed for offline use.
var defaultAssets = []string{
	"index.html",
	"dashboard_successione.html",
	"dashboard_immobili.html",
	"dashboard_completa.html",
	"manifest.json",
	"favicon.png",
	"icon-192.png",
	"icon-512.png",
	"css/common.css",
	"css/tema_completa.css",
	"css/tema_immobili.css",
	"css/tema_successione.css",
	"js/dashboard.js",
}

// cacheCmd holds the flags for the 'cache' subcommand.
type cacheCmd struct {
	base     string
	dir      string
	install  bool
	activate bool
}

func (*cacheCmd) Name() string     { return "cache" }
func (*cacheCmd) Synopsis() string { return "manage the offline asset cache" }
func (*cacheCmd) Usage() string {
	return `scs cache -install -base <url> [-dir <dir>] [asset ...]
scs cache -activate [-dir <dir>]

  Installs the dashboard assets for offline use, or activates the current
  cache version and deletes the older ones. Install is all or nothing: if
  any asset fails to download, nothing is kept.
`
}

func (c *cacheCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", "", "Base URL the assets are downloaded from.")
	f.StringVar(&c.dir, "dir", "", "Cache directory. Defaults to the user cache directory.")
	f.BoolVar(&c.install, "install", false, "Download all assets into the cache.")
	f.BoolVar(&c.activate, "activate", false, "Delete caches of older versions.")
}

func (c *cacheCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.install && !c.activate {
		fmt.Fprintln(os.Stderr, "Expected -install or -activate")
		return subcommands.ExitUsageError
	}

	dir := c.dir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error locating the user cache directory: %v\n", err)
			return subcommands.ExitFailure
		}
		dir = filepath.Join(base, "successione")
	}
	cache := assetcache.New(cacheName, dir)

	if c.install {
		if c.base == "" {
			fmt.Fprintln(os.Stderr, "Missing -base flag")
			return subcommands.ExitUsageError
		}
		assets := f.Args()
		if len(assets) == 0 {
			assets = defaultAssets
		}
		if err := cache.Install(ctx, c.base, assets); err != nil {
			fmt.Fprintf(os.Stderr, "Error installing cache: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Installed %d assets into %s\n", len(assets), dir)
	}

	if c.activate {
		if err := cache.Activate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error activating cache: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Activated cache %s\n", cacheName)
	}

	return subcommands.ExitSuccess
}
