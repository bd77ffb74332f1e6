package sparsebitset

import (
	"github.com/go-faster/sparsebitset/block"
)

// Option configures a Container at construction time.
type Option[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]] func(*Container[L0, L1, D])

// WithLogger attaches a diagnostic logger. The default is a no-op logger.
func WithLogger[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](logger *Logger) Option[L0, L1, D] {
	return func(c *Container[L0, L1, D]) {
		if logger == nil {
			logger = NoopLogger()
		}
		c.logger = logger
	}
}

// WithCapacityHint pre-grows the Level1 and data pools to reduce
// reallocation during an initial bulk load of approximately n elements
// spread over distinct Level1 slots.
func WithCapacityHint[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](n int) Option[L0, L1, D] {
	return func(c *Container[L0, L1, D]) {
		c.capacityHint = n
	}
}
