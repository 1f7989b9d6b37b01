/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/

// init_engine.go handles search engine initialisation.
//
// Separated from root.go to isolate the initialisation logic that loads
// config, opens the history store, builds the engine, and loads the catalog.
//
// Design: The engine is created once per process and shared by all commands.
// sync.Once guarantees exactly one initialisation even if multiple commands
// somehow trigger it. Commands that need products call requireCatalog, so a
// missing catalog fails with guidance at the point of use rather than at
// startup.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/mnl-au/glint/internal/catalog"
	"github.com/mnl-au/glint/internal/config"
	"github.com/mnl-au/glint/internal/log"
	"github.com/mnl-au/glint/internal/search"
	"github.com/mnl-au/glint/internal/store"
)

var (
	engine     *search.Engine
	histStore  *store.SQLiteStore
	catLoaded  string // path the catalog was loaded from, "" if none
	initOnce   sync.Once
	initError  error
)

// initEngine loads config, opens the history store, and builds the engine.
// Loading the catalog is best-effort here: a missing catalog only fails the
// commands that need one.
func initEngine() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initError = err
			return
		}

		hs, err := store.OpenDefault()
		if err != nil {
			initError = fmt.Errorf("opening history store: %w", err)
			return
		}

		eng, err := search.New(cfg.SearchConfig(), hs)
		if err != nil {
			hs.Close()
			initError = err
			return
		}

		histStore = hs
		engine = eng

		path := Catalog()
		if path == "" {
			path = cfg.CatalogPath()
		}
		if path != "" {
			products, err := catalog.LoadFile(path)
			if err != nil {
				initError = fmt.Errorf("loading catalog %s: %w", path, err)
				return
			}
			if err := catalog.Validate(products); err != nil {
				initError = fmt.Errorf("catalog %s: %w", path, err)
				return
			}
			eng.UpdateProducts(products)
			catLoaded = path
			log.SetCatalog(path)
		}
	})
	return initError
}

// closeEngine shuts down the engine and history store if they were created.
func closeEngine() {
	if engine != nil {
		engine.Close()
		engine = nil
	}
	if histStore != nil {
		if err := histStore.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: closing history store: %v\n", err)
		}
		histStore = nil
	}
}

// requireCatalog returns an error when no catalog has been loaded.
// Commands that search or list products call this first.
func requireCatalog() error {
	if catLoaded == "" {
		return errors.New("no catalog loaded\n\nRun: glint config catalog.path products.json\n\nOr pass --catalog / set GLINT_CATALOG.")
	}
	return nil
}
