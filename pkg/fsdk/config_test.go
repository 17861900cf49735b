package fsdk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_ProjectConfig(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	projectConfig := `
baseUrl: http://example.com:9000
apiVersion: v2
`
	os.WriteFile("fintrack.yaml", []byte(projectConfig), 0644)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.BaseURL != "http://example.com:9000" {
		t.Errorf("Expected baseUrl http://example.com:9000, got %s", cfg.BaseURL)
	}
	if cfg.APIVersion != "v2" {
		t.Errorf("Expected apiVersion v2, got %s", cfg.APIVersion)
	}
}

func TestLoadConfig_LocalOverride(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	projectConfig := `
baseUrl: http://example.com:9000
`
	os.WriteFile("fintrack.yaml", []byte(projectConfig), 0644)

	os.MkdirAll(ConfigRoot, 0755)
	localConfig := `
baseUrl: http://localhost:8000
exportDir: /tmp/fintrack-exports
`
	os.WriteFile(filepath.Join(ConfigRoot, "config.yaml"), []byte(localConfig), 0644)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Local override should win
	if cfg.BaseURL != "http://localhost:8000" {
		t.Errorf("Expected baseUrl from local override, got %s", cfg.BaseURL)
	}
	if cfg.ExportDir != "/tmp/fintrack-exports" {
		t.Errorf("Expected exportDir from local override, got %s", cfg.ExportDir)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("Expected default baseUrl %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.APIVersion != "v1" {
		t.Errorf("Expected default apiVersion v1, got %s", cfg.APIVersion)
	}
}

func TestLoadConfig_TrimsTrailingSlash(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	os.WriteFile("fintrack.yaml", []byte("baseUrl: http://example.com:9000/\n"), 0644)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.BaseURL != "http://example.com:9000" {
		t.Errorf("Expected trailing slash trimmed, got %s", cfg.BaseURL)
	}
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	tempDir := t.TempDir()

	customPath := filepath.Join(tempDir, "custom-config.yaml")
	os.WriteFile(customPath, []byte("baseUrl: http://custom.com:9000\n"), 0644)

	cfg, err := LoadConfig(customPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.BaseURL != "http://custom.com:9000" {
		t.Errorf("Expected baseUrl http://custom.com:9000, got %s", cfg.BaseURL)
	}
	if cfg.ConfigFileUsed() != customPath {
		t.Errorf("Expected config file %s, got %s", customPath, cfg.ConfigFileUsed())
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	t.Setenv("FINTRACK_BASEURL", "http://env.example.com:8000")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.BaseURL != "http://env.example.com:8000" {
		t.Errorf("Expected env override, got %s", cfg.BaseURL)
	}
}
