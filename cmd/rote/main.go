// Command rote drills you on a plain-text question file.
package main

import (
	"os"

	"github.com/custodia-labs/rote-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rote-cli/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/rote-cli/internal/adapters/driven/random"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/rote-cli/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(buildServices)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the file-backed adapters into the core services.
func buildServices(opts cli.Options) (*cli.Services, error) {
	config, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	rnd := random.New()
	return &cli.Services{
		Deck:     services.NewDeckService(filesystem.NewReader(), rnd),
		Session:  services.NewStudySession(rnd),
		Settings: services.NewSettingsService(config),
		Watch:    services.NewWatchService(filesystem.NewWatcher(filesystem.DefaultInterval)),
	}, nil
}
