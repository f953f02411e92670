package storeconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/contactbook/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// DefaultStoreName names the single store used when no configuration is given.
const DefaultStoreName = "default"

var (
	// ErrEmptyStoreName indicates a configured store without a name.
	ErrEmptyStoreName = errors.New("store name cannot be empty")
	// ErrDuplicateStore indicates two configured stores sharing a name.
	ErrDuplicateStore = errors.New("duplicate store name")
)

type file struct {
	Stores []ports.StoreConfig `yaml:"stores"`
}

// YAMLProvider implements the StoreConfigProvider interface
// by reading the store layout and seed contacts from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// An empty filePath is allowed and yields the default configuration.
func NewYAMLProvider(filePath string) ports.StoreConfigProvider {
	return &YAMLProvider{filePath: filePath}
}

// DefaultConfigs returns the configuration used when no file is available:
// one store using substring matching and no contacts.
func DefaultConfigs() []ports.StoreConfig {
	return []ports.StoreConfig{{Name: DefaultStoreName, Match: "substring"}}
}

// GetStoreConfigs reads and validates the configured stores.
// If the path is empty, the file does not exist, or it declares no stores,
// the default configuration is returned.
func (p *YAMLProvider) GetStoreConfigs() ([]ports.StoreConfig, error) {
	if p.filePath == "" {
		return DefaultConfigs(), nil
	}

	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfigs(), nil
		}
		return nil, fmt.Errorf("failed to read store config file %s: %w", p.filePath, err)
	}

	cfg, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store config %s: %w", p.filePath, err)
	}
	if len(cfg.Stores) == 0 {
		return DefaultConfigs(), nil
	}
	if err := validate(cfg.Stores); err != nil {
		return nil, fmt.Errorf("invalid store config %s: %w", p.filePath, err)
	}
	return cfg.Stores, nil
}

func decode(data []byte) (file, error) {
	var cfg file
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	// A document with only comments or "---" decodes to io.EOF.
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return file{}, err
	}
	return cfg, nil
}

// validate trims every store name in place and rejects empty or repeated names.
func validate(stores []ports.StoreConfig) error {
	seen := make(map[string]bool, len(stores))
	for i := range stores {
		name := strings.TrimSpace(stores[i].Name)
		stores[i].Name = name
		if name == "" {
			return fmt.Errorf("store #%d: %w", i+1, ErrEmptyStoreName)
		}
		if seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateStore, name)
		}
		seen[name] = true
	}
	return nil
}
