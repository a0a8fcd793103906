package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetUserConfigDir(t *testing.T) {
	tests := []struct {
		name        string
		xdgConfig   string
		expectXDG   bool
		expectMacOS bool
	}{
		{
			name:      "XDG_CONFIG_HOME set",
			xdgConfig: "/custom/config",
			expectXDG: true,
		},
		{
			name:        "without XDG",
			xdgConfig:   "",
			expectMacOS: runtime.GOOS == "darwin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)

			dir, err := getUserConfigDir()
			if err != nil {
				t.Fatalf("getUserConfigDir() error = %v", err)
			}

			if tt.expectXDG {
				expected := filepath.Join(tt.xdgConfig, appDirName)
				if dir != expected {
					t.Errorf("getUserConfigDir() = %q, want %q", dir, expected)
				}
				return
			}
			if !filepath.IsAbs(dir) {
				t.Errorf("getUserConfigDir() returned non-absolute path: %q", dir)
			}
			if filepath.Base(dir) != appDirName {
				t.Errorf("getUserConfigDir() = %q, want basename %q", dir, appDirName)
			}
		})
	}
}

func TestGetUserCacheDir(t *testing.T) {
	tests := []struct {
		name      string
		xdgCache  string
		expectXDG bool
	}{
		{
			name:      "XDG_CACHE_HOME set",
			xdgCache:  "/custom/cache",
			expectXDG: true,
		},
		{
			name:     "without XDG",
			xdgCache: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", tt.xdgCache)

			dir, err := getUserCacheDir()
			if err != nil {
				t.Fatalf("getUserCacheDir() error = %v", err)
			}

			if tt.expectXDG {
				expected := filepath.Join(tt.xdgCache, appDirName)
				if dir != expected {
					t.Errorf("getUserCacheDir() = %q, want %q", dir, expected)
				}
				return
			}
			if !filepath.IsAbs(dir) {
				t.Errorf("getUserCacheDir() returned non-absolute path: %q", dir)
			}
			if filepath.Base(dir) != appDirName {
				t.Errorf("getUserCacheDir() = %q, want basename %q", dir, appDirName)
			}
		})
	}
}

func TestGetUserDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")

	dir, err := getUserDataDir()
	if err != nil {
		t.Fatalf("getUserDataDir() error = %v", err)
	}
	if want := filepath.Join("/custom/data", appDirName); dir != want {
		t.Errorf("getUserDataDir() = %q, want %q", dir, want)
	}
}

func TestPathManagerPaths(t *testing.T) {
	pm, err := newPathManager()
	if err != nil {
		t.Fatalf("newPathManager() error = %v", err)
	}

	tests := []struct {
		name   string
		getter func() string
	}{
		{"ConfigDir", pm.ConfigDir},
		{"CacheDir", pm.CacheDir},
		{"DataDir", pm.DataDir},
		{"ConfigFile", pm.ConfigFile},
		{"StorageFile", pm.StorageFile},
		{"LogFile", pm.LogFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.getter()
			if result == "" {
				t.Errorf("%s() returned empty string", tt.name)
			}
			if !filepath.IsAbs(result) {
				t.Errorf("%s() = %q, want absolute path", tt.name, result)
			}
		})
	}

	if filepath.Dir(pm.StorageFile()) != pm.DataDir() {
		t.Errorf("StorageFile() = %q, want it inside %q", pm.StorageFile(), pm.DataDir())
	}
	if filepath.Dir(pm.LogFile()) != pm.CacheDir() {
		t.Errorf("LogFile() = %q, want it inside %q", pm.LogFile(), pm.CacheDir())
	}
}

func TestPathManagerEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	pm := &PathManager{
		configDir: filepath.Join(tmpDir, "config"),
		cacheDir:  filepath.Join(tmpDir, "cache"),
		dataDir:   filepath.Join(tmpDir, "data"),
	}

	if err := pm.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs() error = %v", err)
	}

	for _, dir := range []string{pm.ConfigDir(), pm.CacheDir(), pm.DataDir()} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("directory %q was not created: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%q is not a directory", dir)
		}
		if info.Mode().Perm() != 0755 {
			t.Errorf("directory %q has permissions %o, want 0755", dir, info.Mode().Perm())
		}
	}
}

func TestInitPaths(t *testing.T) {
	ResetPathManager()
	defer ResetPathManager()

	if err := InitPaths(); err != nil {
		t.Fatalf("InitPaths() error = %v", err)
	}

	if GetConfigDir() == "" {
		t.Error("GetConfigDir() returned empty after InitPaths()")
	}
	if GetDefaultStorageFile() == "" {
		t.Error("GetDefaultStorageFile() returned empty after InitPaths()")
	}
}

func TestResetPathManager(t *testing.T) {
	defer ResetPathManager()

	ResetPathManager()
	t.Setenv("XDG_CONFIG_HOME", "/first/config")
	if err := InitPaths(); err != nil {
		t.Fatalf("first InitPaths() error = %v", err)
	}
	first := GetConfigDir()
	if want := filepath.Join("/first/config", appDirName); first != want {
		t.Errorf("first GetConfigDir() = %q, want %q", first, want)
	}

	ResetPathManager()
	t.Setenv("XDG_CONFIG_HOME", "/second/config")
	if err := InitPaths(); err != nil {
		t.Fatalf("second InitPaths() error = %v", err)
	}
	second := GetConfigDir()
	if want := filepath.Join("/second/config", appDirName); second != want {
		t.Errorf("second GetConfigDir() = %q, want %q", second, want)
	}
}
