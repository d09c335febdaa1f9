package adapter

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

// LoadSentences reads input sentences from a YAML/JSON list or from a plain
// text file with one sentence per line. Blank lines are skipped.
func LoadSentences(path m.Path) ([]string, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read sentences: %w", err)
	}

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml", ".json":
		var sentences []string
		if err := yaml.Unmarshal(content, &sentences); err != nil {
			return nil, fmt.Errorf("decode sentences %s: %w", path, err)
		}

		return dropBlank(sentences), nil
	}

	var sentences []string

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		sentences = append(sentences, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan sentences %s: %w", path, err)
	}

	return dropBlank(sentences), nil
}

func dropBlank(sentences []string) []string {
	result := make([]string, 0, len(sentences))

	for _, sentence := range sentences {
		if trimmed := strings.TrimSpace(sentence); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
