package prove

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/seqprove/formatter"
	"github.com/gnolang/seqprove/internal/logic"
	"github.com/gnolang/seqprove/internal/search"
)

// DefaultConfigPath is where init writes, and where a missing file is not
// an error.
const DefaultConfigPath = ".seqprove.yaml"

// Config represents the prover configuration file.
type Config struct {
	Name string `yaml:"name"`
	// Order lists rule names in priority order. Empty means the default.
	Order     []string `yaml:"order,omitempty"`
	Parallel  bool     `yaml:"parallel"`
	Format    string   `yaml:"format,omitempty"`
	Classical bool     `yaml:"classical"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Name:   "seqprove",
		Order:  search.OrderNames(search.DefaultOrder),
		Format: formatter.KindLaTeX.String(),
	}
}

// LoadConfig reads a YAML configuration. An empty path, or the default path
// when the file does not exist, yields DefaultConfig.
func LoadConfig(configurationPath string) (Config, error) {
	config := DefaultConfig()
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && configurationPath == DefaultConfigPath {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing %s: %w", configurationPath, err)
	}

	if _, err := config.RuleOrder(); err != nil {
		return config, fmt.Errorf("error in %s: %w", configurationPath, err)
	}
	if _, err := formatter.ParseKind(config.Format); err != nil {
		return config, fmt.Errorf("error in %s: %w", configurationPath, err)
	}
	return config, nil
}

// RuleOrder parses and validates Order.
func (c Config) RuleOrder() ([]logic.Rule, error) {
	if len(c.Order) == 0 {
		return append([]logic.Rule(nil), search.DefaultOrder...), nil
	}
	return search.ParseOrder(c.Order)
}

// Searcher builds the searcher described by the configuration.
func (c Config) Searcher(logger *zap.Logger) (*search.Searcher, error) {
	order, err := c.RuleOrder()
	if err != nil {
		return nil, err
	}
	return search.New(
		search.WithOrder(order),
		search.WithParallel(c.Parallel),
		search.WithLogger(logger),
	), nil
}

// WriteConfig writes config as YAML to path, replacing any existing file.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
