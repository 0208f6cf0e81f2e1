package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/frogermcs/codebase-digest/internal/utils"
)

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}

func TestLoadApplicationConfigurationMergesGlobalAndLocal(t *testing.T) {
	homeDirectory := t.TempDir()
	workingDirectory := t.TempDir()

	globalConfigDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
	if mkdirError := os.MkdirAll(globalConfigDirectory, 0o755); mkdirError != nil {
		t.Fatalf("create global config dir: %v", mkdirError)
	}
	globalContent := "digest:\n" +
		"  format: markdown\n" +
		"  show_size: true\n" +
		"  max_size: 2048\n" +
		"  paths:\n" +
		"    exclude:\n" +
		"      - '*.log'\n"
	if writeError := os.WriteFile(filepath.Join(globalConfigDirectory, utils.ConfigFileName), []byte(globalContent), 0o600); writeError != nil {
		t.Fatalf("write global config: %v", writeError)
	}

	localContent := "digest:\n" +
		"  format: json\n" +
		"  tokens:\n" +
		"    enabled: true\n" +
		"    model: gpt-4o\n" +
		"  paths:\n" +
		"    use_gitignore: false\n"
	if writeError := os.WriteFile(filepath.Join(workingDirectory, utils.ConfigFileName), []byte(localContent), 0o600); writeError != nil {
		t.Fatalf("write local config: %v", writeError)
	}

	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	loadedConfiguration, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}

	digestConfiguration := loadedConfiguration.Digest
	if digestConfiguration.Format != "json" {
		t.Errorf("Format = %q, expected local override json", digestConfiguration.Format)
	}
	if digestConfiguration.ShowSize == nil || !*digestConfiguration.ShowSize {
		t.Error("ShowSize from the global configuration must survive the merge")
	}
	if digestConfiguration.MaxSizeKilobytes == nil || *digestConfiguration.MaxSizeKilobytes != 2048 {
		t.Error("MaxSizeKilobytes from the global configuration must survive the merge")
	}
	if digestConfiguration.Tokens.Enabled == nil || !*digestConfiguration.Tokens.Enabled {
		t.Error("Tokens.Enabled from the local configuration must be set")
	}
	if digestConfiguration.Tokens.Model != "gpt-4o" {
		t.Errorf("Tokens.Model = %q, expected gpt-4o", digestConfiguration.Tokens.Model)
	}
	if digestConfiguration.Paths.UseGitignore == nil || *digestConfiguration.Paths.UseGitignore {
		t.Error("Paths.UseGitignore from the local configuration must be false")
	}
	if !reflect.DeepEqual(digestConfiguration.Paths.Exclude, []string{"*.log"}) {
		t.Errorf("Paths.Exclude = %v, expected [*.log]", digestConfiguration.Paths.Exclude)
	}
}

func TestLoadApplicationConfigurationMissingFiles(t *testing.T) {
	homeDirectory := t.TempDir()
	workingDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	loadedConfiguration, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		t.Fatalf("missing configuration files must not error: %v", loadError)
	}
	if loadedConfiguration.Digest.Format != "" {
		t.Errorf("expected zero configuration, got format %q", loadedConfiguration.Digest.Format)
	}
}

func TestLoadApplicationConfigurationExplicitPath(t *testing.T) {
	homeDirectory := t.TempDir()
	workingDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	explicitContent := "digest:\n  format: xml\n"
	if writeError := os.WriteFile(filepath.Join(workingDirectory, "custom.yaml"), []byte(explicitContent), 0o600); writeError != nil {
		t.Fatalf("write explicit config: %v", writeError)
	}

	loadedConfiguration, loadError := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: "custom.yaml",
	})
	if loadError != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if loadedConfiguration.Digest.Format != "xml" {
		t.Errorf("Format = %q, expected xml from explicit file", loadedConfiguration.Digest.Format)
	}
}

func TestDigestConfigurationMerge(t *testing.T) {
	base := DigestConfiguration{
		Format:   "text",
		ShowSize: boolPointer(true),
		MaxDepth: func() *int { depth := 2; return &depth }(),
	}
	override := DigestConfiguration{
		Format:      "html",
		ShowIgnored: boolPointer(true),
	}

	merged := base.merge(override)
	if merged.Format != "html" {
		t.Errorf("Format = %q, expected html", merged.Format)
	}
	if merged.ShowSize == nil || !*merged.ShowSize {
		t.Error("ShowSize must survive when the override leaves it unset")
	}
	if merged.ShowIgnored == nil || !*merged.ShowIgnored {
		t.Error("ShowIgnored must come from the override")
	}
	if merged.MaxDepth == nil || *merged.MaxDepth != 2 {
		t.Error("MaxDepth must survive when the override leaves it unset")
	}
}
