package topology

import (
	"math/rand"

	"github.com/katalvlaran/igris/builder"
)

// Option configures a single Generate call.
type Option func(*genConfig)

type genConfig struct {
	rng    *rand.Rand
	policy builder.RewirePolicy
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source. The caller must not share r between
// concurrent Generate calls. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *genConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithRewirePolicy selects what happens when a shortcut draw lands on its
// own source cell. The default is builder.RewireDrop.
func WithRewirePolicy(p builder.RewirePolicy) Option {
	return func(c *genConfig) {
		c.policy = p
	}
}
