// Package config holds the viper-backed configuration singleton.
//
// Precedence: environment variables (MDTASKS_*) > config file > defaults.
// The config file is .mdtasks/config.yaml, found by walking up from the
// working directory, with a user-level fallback under os.UserConfigDir().
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/crooy/mdtasks/internal/debug"
)

var v *viper.Viper

// Initialize sets up the configuration singleton. Called once at startup,
// before any command runs.
func Initialize() error {
	v = viper.New()
	v.SetConfigType("yaml")

	configFileSet := false

	// 1. Walk up from CWD to find a project .mdtasks/config.yaml, so commands
	//    work from subdirectories of the project.
	if cwd, err := os.Getwd(); err == nil {
		for dir := cwd; dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
			configPath := filepath.Join(dir, ".mdtasks", "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
				break
			}
		}
	}

	// 2. User config directory (~/.config/mdtasks/config.yaml).
	if !configFileSet {
		if configDir, err := os.UserConfigDir(); err == nil {
			configPath := filepath.Join(configDir, "mdtasks", "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
			}
		}
	}

	// Environment variable binding: MDTASKS_GIT_TRUNK maps to "git.trunk",
	// MDTASKS_TASKS_DIR to "tasks.dir", and so on.
	v.SetEnvPrefix("MDTASKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("git.trunk", "main")
	v.SetDefault("git.branch-prefix", "feature/")
	v.SetDefault("git.remote", "origin")
	v.SetDefault("tasks.dir", "tasks")
	v.SetDefault("tasks.extension", ".md")

	if configFileSet {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		debug.Logf("loaded config from %s", v.ConfigFileUsed())
	} else {
		debug.Logf("no config.yaml found; using defaults and environment variables")
	}

	return nil
}

// ResetForTesting clears the config state so Initialize can run again.
// WARNING: not thread-safe; only call from single-threaded test contexts.
func ResetForTesting() {
	v = nil
}

func getString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// TrunkBranch returns the mainline branch task branches fork from and merge
// back into.
func TrunkBranch() string { return getString("git.trunk") }

// BranchPrefix returns the prefix for task branch names.
func BranchPrefix() string { return getString("git.branch-prefix") }

// Remote returns the git remote the trunk syncs with.
func Remote() string { return getString("git.remote") }

// TasksDir returns the storage root holding task files.
func TasksDir() string { return getString("tasks.dir") }

// TaskExtension returns the file extension task files are scanned by.
func TaskExtension() string { return getString("tasks.extension") }
