package errfs

import (
	"sync/atomic"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// When true, an Error's own message omits the underlying cause; the
	// cause stays reachable through errors.Unwrap for consumers that
	// already print the chain.
	ExposeOriginalError bool `env:"ERRFS_EXPOSE_ORIGINAL_ERROR,default:false"`

	// Label used in place of the path for files adopted from handles
	// that were opened without one.
	UnknownPathLabel string `env:"ERRFS_UNKNOWN_PATH_LABEL,default:<unknown>"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	exposeOriginalError atomic.Bool
	unknownPathLabel    atomic.Value // string
)

func init() {
	unknownPathLabel.Store("<unknown>")
	cfg, err := GetConfig()
	if err != nil {
		return
	}
	exposeOriginalError.Store(cfg.ExposeOriginalError)
	if cfg.UnknownPathLabel != "" {
		unknownPathLabel.Store(cfg.UnknownPathLabel)
	}
}

// SetExposeOriginalError switches error rendering between embedding the
// underlying cause in the message (default) and leaving it to the error
// chain. It overrides the value loaded from the environment.
func SetExposeOriginalError(expose bool) {
	exposeOriginalError.Store(expose)
}

// ExposeOriginalError reports the currently active rendering mode.
func ExposeOriginalError() bool {
	return exposeOriginalError.Load()
}

// UnknownPathLabel returns the sentinel used when a file's path is not known.
func UnknownPathLabel() string {
	return unknownPathLabel.Load().(string)
}
