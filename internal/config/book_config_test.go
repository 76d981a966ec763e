package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dvogt23/book-summary/internal/book"
)

func writeConfigFile(t *testing.T, projectDirectory string, fileName string, content string) {
	t.Helper()
	configPath := filepath.Join(projectDirectory, fileName)
	if writeError := os.WriteFile(configPath, []byte(content), 0o600); writeError != nil {
		t.Fatalf("write %s: %v", fileName, writeError)
	}
}

func TestLoadBookConfiguration(t *testing.T) {
	testCases := []struct {
		name           string
		dialect        book.Dialect
		files          map[string]string
		expectedTitle  string
		expectedSource string
	}{
		{
			name:    "mdbook toml",
			dialect: book.DialectMdBook,
			files: map[string]string{
				MdBookConfigFileName: "[book]\ntitle = \"MyMDBook\"\nsrc = \"src\"\n",
			},
			expectedTitle:  "MyMDBook",
			expectedSource: "src",
		},
		{
			name:    "gitbook json",
			dialect: book.DialectGitBook,
			files: map[string]string{
				GitBookConfigFileName: "{\"title\": \"My title\", \"root\": \"book\"}\n",
			},
			expectedTitle:  "My title",
			expectedSource: "book",
		},
		{
			name:    "gitbook falls back to book.js",
			dialect: book.DialectGitBook,
			files: map[string]string{
				GitBookLegacyConfigFileName: "{\"title\": \"Legacy\"}\n",
			},
			expectedTitle: "Legacy",
		},
		{
			name:    "gitbook ignores mdbook file",
			dialect: book.DialectGitBook,
			files: map[string]string{
				MdBookConfigFileName: "[book]\ntitle = \"MyMDBook\"\n",
			},
		},
		{
			name:    "missing files yield empty configuration",
			dialect: book.DialectMdBook,
			files:   map[string]string{},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			projectDirectory := t.TempDir()
			for fileName, content := range testCase.files {
				writeConfigFile(t, projectDirectory, fileName, content)
			}

			configuration, loadError := LoadBookConfiguration(projectDirectory, testCase.dialect)
			if loadError != nil {
				t.Fatalf("unexpected error: %v", loadError)
			}
			if configuration.Title != testCase.expectedTitle {
				t.Fatalf("expected title %q, got %q", testCase.expectedTitle, configuration.Title)
			}
			if configuration.Source != testCase.expectedSource {
				t.Fatalf("expected source %q, got %q", testCase.expectedSource, configuration.Source)
			}
		})
	}
}

func TestLoadBookConfigurationUnparsableFile(t *testing.T) {
	projectDirectory := t.TempDir()
	writeConfigFile(t, projectDirectory, MdBookConfigFileName, "not = [valid toml\n")
	if _, loadError := LoadBookConfiguration(projectDirectory, book.DialectMdBook); loadError == nil {
		t.Fatalf("expected error for unparsable configuration")
	}
}
