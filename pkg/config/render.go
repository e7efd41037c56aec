package config

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/velar/brewbump/pkg/errors"
)

// Render encodes cfg as TOML, in the same shape as the defaults file
func Render(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}
