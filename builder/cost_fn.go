package builder

import (
	"fmt"
	"math/rand"
)

// CostFn produces a link cost from an optional random source.
type CostFn func(rng *rand.Rand) int64

// ConstantCostFn always yields cost. Panics if cost < 0.
func ConstantCostFn(cost int64) CostFn {
	if cost < 0 {
		panic(fmt.Sprintf("ConstantCostFn: cost must be ≥ 0, got %d", cost))
	}
	return func(*rand.Rand) int64 { return cost }
}

// UniformCostFn samples integers uniformly from [min, max]. Without a random
// source it yields min. Panics unless 0 ≤ min ≤ max.
func UniformCostFn(min, max int64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
