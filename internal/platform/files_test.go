package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestDataDir(t *testing.T) {
	dir := DataDir("juice-tracker")

	if dir == "" {
		t.Fatal("Data directory is empty")
	}
	if filepath.Base(dir) != "juice-tracker" {
		t.Errorf("Expected directory to end with 'juice-tracker', got: %s", dir)
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	path := DefaultDatabasePath("juice-tracker")

	if filepath.Base(path) != DatabaseFileName {
		t.Errorf("Expected file name %s, got: %s", DatabaseFileName, filepath.Base(path))
	}
	if filepath.Dir(path) != DataDir("juice-tracker") {
		t.Errorf("Expected database inside data dir, got: %s", path)
	}
}

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", DatabaseFileName)

	if err := EnsureParentDir(path); err != nil {
		t.Fatalf("EnsureParentDir failed: %v", err)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Fatalf("Parent directory was not created for %s", path)
	}
}
