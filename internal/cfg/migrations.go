package cfg

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/blang/semver"
	"github.com/toss-sync/toss-desktop/internal/autostart"
)

// migrations is a map of version to migration function.
// Warning: RunMigrations() runs the migrations in arbitrary order.
var migrations = map[string]func(c *Config) error{
	"v0.2.0": func(c *Config) error {
		// Early releases wrote the auto-start launch command with extra
		// flags. Rewrite the record so it points at the bare executable.
		manager := autostart.Manager{}
		if enabled, err := manager.IsEnabled(); err != nil {
			return fmt.Errorf("check enabled: %w", err)
		} else if enabled {
			if err := manager.Disable(); err != nil {
				return fmt.Errorf("disable autostart: %w", err)
			}
			if err := manager.Enable(""); err != nil {
				return fmt.Errorf("enable autostart: %w", err)
			}
			log.Println("v0.2.0 migration: rewrote auto-start record")
		}
		return nil
	},
	"v0.4.0": func(c *Config) error {
		c.Lock()
		defer c.Unlock()

		// File sync shipped with a 100 MB default, which overwhelmed the
		// relay. Clamp pre-existing configs to the new default.
		if c.Sync.MaxFileSizeMB > 25 {
			c.Sync.MaxFileSizeMB = 25
			log.Println("v0.4.0 migration: clamping max file size to 25 MB")
		}
		if err := c.Save(); err != nil {
			return fmt.Errorf("save config: %v", err)
		}
		return nil
	},
}

// RunMigrations runs the version-to-version migrations.
func (c *Config) RunMigrations() {
	if Version == "development" {
		log.Println("skipping migrations in development mode")
		return
	}

	var lastMigration string
	lastMigrationFile := filepath.Join(c.ConfigDir, "last_migration")
	if c.firstLaunch {
		lastMigration = Version
	} else {
		if _, err := os.Stat(lastMigrationFile); !os.IsNotExist(err) {
			lastMigrationData, err := os.ReadFile(lastMigrationFile)
			if err != nil {
				log.Printf("error reading last migration file: %v", err)
				return
			}
			lastMigration = string(lastMigrationData)
		} else {
			// Triggers when updating from a release that predates migrations.
			lastMigration = "v0.0.0"
		}
	}

	lastMigrationV, err := semver.ParseTolerant(lastMigration)
	if err != nil {
		log.Printf("error parsing last migration(%s): %v\n", lastMigration, err)
		return
	}

	for version, migration := range migrations {
		versionV, err := semver.ParseTolerant(version)
		if err != nil {
			log.Printf("error parsing migration version(%s): %v\n", version, err)
			continue
		}

		if lastMigrationV.LT(versionV) {
			if err := migration(c); err != nil {
				log.Printf("error running migration(%s): %v\n", version, err)
			} else {
				log.Printf("ran migration %s\n", version)
			}
		}
	}

	if err := os.WriteFile(lastMigrationFile, []byte(Version), 0644); err != nil {
		log.Printf("error writing last migration file: %v", err)
	}
}
