package eqpaste

import (
	"sync"

	"github.com/riverfjs/eqpaste-go/internal/types"
)

// 导出类型别名
type Config = types.Config

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default translation configuration (singleton).
//
// The returned value is shared; copy it before changing fields.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}
