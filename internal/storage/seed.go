package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSeed reads fixture accounts from a YAML (or JSON) document shaped like
// the storage file: a mapping of username to account record.
func LoadSeed(path string) (Accounts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	accounts := Accounts{}
	if err := yaml.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode seed file %q: %w", path, err)
	}

	for username, acc := range accounts {
		if username == "" {
			return nil, fmt.Errorf("seed file %q: empty username", path)
		}
		if acc.FavouriteNumber == "" {
			continue
		}
		if !isJSONNumber(acc.FavouriteNumber) {
			return nil, fmt.Errorf("seed file %q: favouriteNumber of %q is not a number", path, username)
		}
	}

	return accounts, nil
}

// isJSONNumber reports whether the storage file encoder accepts n as a number
// literal.
func isJSONNumber(n json.Number) bool {
	_, err := json.Marshal(n)
	return err == nil
}
