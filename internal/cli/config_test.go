package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid minimal", Config{Pattern: "cat"}, false},
		{"missing pattern", Config{}, true},
		{"fixed and pcre", Config{Pattern: "cat", Fixed: true, PCRE: true}, true},
		{"count and files-only", Config{Pattern: "cat", CountOnly: true, FileNamesOnly: true}, true},
		{"negative workers", Config{Pattern: "cat", Workers: -1}, true},
		{"all the compatible flags", Config{Pattern: "cat", Fixed: true, Recursive: true, LineNumbers: true, Hidden: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"sometimes", ColorAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadConfigArgs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "litgreprc")
	content := "# default flags\n-n\n\n--color=never\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LITGREP_CONFIG_PATH", path)

	args := LoadConfigArgs()
	if len(args) != 2 || args[0] != "-n" || args[1] != "--color=never" {
		t.Errorf("LoadConfigArgs() = %v, want [-n --color=never]", args)
	}
}

func TestLoadConfigArgs_Missing(t *testing.T) {
	t.Setenv("LITGREP_CONFIG_PATH", filepath.Join(t.TempDir(), "absent"))
	if args := LoadConfigArgs(); args != nil {
		t.Errorf("LoadConfigArgs() = %v, want nil for missing file", args)
	}
}
