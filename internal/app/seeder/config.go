package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings.
type Config struct {
	// ContentPath points at a YAML list of educational content. Empty means
	// the built-in starter set.
	ContentPath  string `yaml:"content_path"  env:"SEEDER_CONTENT_PATH"`
	DemoName     string `yaml:"demo_name"     env:"SEEDER_DEMO_NAME"     env-default:"Demo Citizen"`
	DemoEmail    string `yaml:"demo_email"    env:"SEEDER_DEMO_EMAIL"    env-default:"demo@gramaconnect.in"`
	DemoPhone    string `yaml:"demo_phone"    env:"SEEDER_DEMO_PHONE"    env-default:"9876543210"`
	DemoPassword string `yaml:"demo_password" env:"SEEDER_DEMO_PASSWORD" env-default:"demo123"`
	DemoVillage  string `yaml:"demo_village"  env:"SEEDER_DEMO_VILLAGE"  env-default:"Rampur"`
	BcryptCost   int    `yaml:"bcrypt_cost"   env:"SEEDER_BCRYPT_COST"   env-default:"10"`
	DryRun       bool   `yaml:"dry_run"       env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
