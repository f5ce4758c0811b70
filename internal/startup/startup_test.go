package startup

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	if info.Version == "" {
		t.Error("Expected Version to be set")
	}
	if info.GoVersion == "" {
		t.Error("Expected GoVersion to be set")
	}
	if info.OS == "" {
		t.Error("Expected OS to be set")
	}
	if info.Arch == "" {
		t.Error("Expected Arch to be set")
	}

	if info.GoVersion != GoVersion {
		t.Errorf("Expected GoVersion=%s, got %s", GoVersion, info.GoVersion)
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		want         string
		setEnv       bool
	}{
		{
			name:         "Returns default when env var not set",
			key:          "TEST_UNSET_VAR",
			defaultValue: "default",
			want:         "default",
			setEnv:       false,
		},
		{
			name:         "Returns env value when set",
			key:          "TEST_SET_VAR",
			defaultValue: "default",
			envValue:     "custom",
			want:         "custom",
			setEnv:       true,
		},
		{
			name:         "Returns default when env var is empty",
			key:          "TEST_EMPTY_VAR",
			defaultValue: "default",
			envValue:     "",
			want:         "default",
			setEnv:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			got := getEnv(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv(%q, %q) = %q, want %q", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		envValue     string
		defaultValue bool
		want         bool
		setEnv       bool
	}{
		{
			name:         "Returns default when env var not set",
			key:          "TEST_BOOL_UNSET",
			defaultValue: true,
			want:         true,
			setEnv:       false,
		},
		{
			name:         "Returns true when env var is 'true'",
			key:          "TEST_BOOL_TRUE",
			envValue:     "true",
			defaultValue: false,
			want:         true,
			setEnv:       true,
		},
		{
			name:         "Returns false when env var is 'false'",
			key:          "TEST_BOOL_FALSE",
			envValue:     "false",
			defaultValue: true,
			want:         false,
			setEnv:       true,
		},
		{
			name:         "Returns true when env var is '1'",
			key:          "TEST_BOOL_ONE",
			envValue:     "1",
			defaultValue: false,
			want:         true,
			setEnv:       true,
		},
		{
			name:         "Returns default on invalid value",
			key:          "TEST_BOOL_INVALID",
			envValue:     "maybe",
			defaultValue: true,
			want:         true,
			setEnv:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			got := getEnvBool(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvBool(%q, %v) = %v, want %v", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		envValue     string
		defaultValue int
		want         int
		setEnv       bool
	}{
		{
			name:         "Returns default when env var not set",
			key:          "TEST_INT_UNSET",
			defaultValue: 256,
			want:         256,
			setEnv:       false,
		},
		{
			name:         "Returns parsed value",
			key:          "TEST_INT_SET",
			envValue:     "128",
			defaultValue: 256,
			want:         128,
			setEnv:       true,
		},
		{
			name:         "Returns default on non-numeric value",
			key:          "TEST_INT_INVALID",
			envValue:     "big",
			defaultValue: 256,
			want:         256,
			setEnv:       true,
		},
		{
			name:         "Returns default on non-positive value",
			key:          "TEST_INT_ZERO",
			envValue:     "0",
			defaultValue: 256,
			want:         256,
			setEnv:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			got := getEnvInt(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvInt(%q, %d) = %d, want %d", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestSetupOptionalDir(t *testing.T) {
	t.Run("Creates and accepts writable directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "thumbs")
		if !setupOptionalDir(dir, "test") {
			t.Error("Expected writable directory to be accepted")
		}
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("Expected directory to exist: %v", err)
		}
	})

	t.Run("Rejects uncreatable directory", func(t *testing.T) {
		// A file where the parent directory should be.
		parent := filepath.Join(t.TempDir(), "blocker")
		if err := os.WriteFile(parent, []byte("x"), 0o644); err != nil {
			t.Fatalf("write blocker: %v", err)
		}
		if setupOptionalDir(filepath.Join(parent, "thumbs"), "test") {
			t.Error("Expected directory under a file to be rejected")
		}
	})
}

func TestEnsureDirectory(t *testing.T) {
	t.Run("Creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "books")
		if err := ensureDirectory(dir, "books"); err != nil {
			t.Errorf("ensureDirectory() error: %v", err)
		}
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("Expected directory to exist: %v", err)
		}
	})

	t.Run("Accepts existing directory", func(t *testing.T) {
		if err := ensureDirectory(t.TempDir(), "books"); err != nil {
			t.Errorf("ensureDirectory() error: %v", err)
		}
	})

	t.Run("Rejects file at path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notadir")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
		if err := ensureDirectory(path, "books"); err == nil {
			t.Error("Expected error for file at directory path")
		}
	})
}

func TestGetRouteGroup(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/thumbnail/{path}", "api/thumbnail"},
		{"/api/cache/stats", "api/cache"},
		{"/healthz", "healthz"},
		{"/", ""},
	}

	for _, tt := range tests {
		if got := getRouteGroup(tt.path); got != tt.want {
			t.Errorf("getRouteGroup(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	booksDir := t.TempDir()
	cacheDir := t.TempDir()

	t.Setenv("BOOKS_DIR", booksDir)
	t.Setenv("CACHE_DIR", cacheDir)
	t.Setenv("PORT", "9999")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("DEFAULT_SIZE", "128")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if config.BooksDir != booksDir {
		t.Errorf("BooksDir = %q, want %q", config.BooksDir, booksDir)
	}
	if config.Port != "9999" {
		t.Errorf("Port = %q, want 9999", config.Port)
	}
	if config.MetricsEnabled {
		t.Error("Expected MetricsEnabled to be false")
	}
	if config.DefaultSize != 128 {
		t.Errorf("DefaultSize = %d, want 128", config.DefaultSize)
	}
	if config.ThumbnailDir != filepath.Join(cacheDir, "thumbnails") {
		t.Errorf("ThumbnailDir = %q, want under cache dir", config.ThumbnailDir)
	}
	if !config.CacheEnabled {
		t.Error("Expected cache to be enabled for a writable temp dir")
	}
	if _, err := os.Stat(config.ThumbnailDir); err != nil {
		t.Errorf("Expected thumbnail directory to be created: %v", err)
	}
}
