package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

// Settings contains everything that can be configured for the jump pads.
type Settings struct {
	Storage struct {
		// Path is the file that jump pads are saved to.
		Path string `toml:"path"`
	} `toml:"storage"`
	Rules struct {
		// Command is the name of the command that shows the rules and grants access to jump pads.
		Command string `toml:"command"`
		// Lines are the rules shown by the rules command.
		Lines []string `toml:"lines"`
	} `toml:"rules"`
	Messages struct {
		// ReadRules is sent the first time a player steps on a jump pad without having read the rules.
		ReadRules string `toml:"read_rules"`
		// PermissionGranted is sent after the rules were read.
		PermissionGranted string `toml:"permission_granted"`
	} `toml:"messages"`
	// Operators are the names of players that may manage jump pads.
	Operators []string `toml:"operators"`
	Sentry    struct {
		// DSN enables error reporting to Sentry if not empty.
		DSN string `toml:"dsn"`
	} `toml:"sentry"`
	Debug struct {
		StatsView     bool   `toml:"stats_view"`
		StatsViewAddr string `toml:"stats_view_addr"`
	} `toml:"debug"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Storage.Path = "jumppads.yaml"
	s.Rules.Command = "rules"
	s.Rules.Lines = []string{
		"1. Be respectful to other players.",
		"2. Do not grief or steal.",
		"3. Have fun!",
	}
	s.Messages.ReadRules = text.Colourf("<yellow>Please read the global rules (/rules) to get access to the jump pads.</yellow>")
	s.Messages.PermissionGranted = text.Colourf("<green>You may now use the jump pads.</green>")
	s.Operators = []string{}
	s.Debug.StatsViewAddr = "localhost:8080"
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	} else if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	s := DefaultSettings()
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	return s, nil
}

// LoadOrCreate loads the settings file at the path passed, writing the defaults to it first if it does
// not yet exist.
func LoadOrCreate(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
	}
	return Load(path)
}
