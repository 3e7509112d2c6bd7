package envconfig

import (
	"github.com/zndrme19-del/soda-pop-pos/pkg/jsonstore"
)

// LoadStoreConfig loads JSON store configuration from environment variables
func LoadStoreConfig() jsonstore.Config {
	config := jsonstore.DefaultConfig()

	// Override with environment variables if they exist
	if path := GetEnv("STORE_PATH", ""); path != "" {
		config.Path = path
	}

	return config
}
