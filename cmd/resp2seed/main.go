// Command resp2seed converts RESP instrument response files into SEED groups.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/resp2seed/internal/adapters/driven/config/file"
	"github.com/custodia-labs/resp2seed/internal/adapters/driven/schema"
	"github.com/custodia-labs/resp2seed/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/resp2seed/internal/adapters/driving/cli"
	"github.com/custodia-labs/resp2seed/internal/core/ports/driven"
	"github.com/custodia-labs/resp2seed/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "resp2seed: loading config: %v\n", err)
		return err
	}
	settings := cfg.Settings()

	registry := schema.Builtin()
	if err := registry.LoadFiles(settings.SchemaPaths...); err != nil {
		fmt.Fprintf(os.Stderr, "resp2seed: loading templates: %v\n", err)
		return err
	}

	// Conversion works without the archive; only --save and documents need it.
	var docStore driven.DocumentStore
	store, err := sqlite.NewStore(settings.StorageDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resp2seed: document archive unavailable: %v\n", err)
	} else {
		defer store.Close()
		docStore = store.DocumentStore()
	}

	cli.SetVersion(version)
	cli.SetServices(services.NewConversionService(registry, docStore), cfg)
	return cli.Execute()
}
