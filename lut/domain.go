// seehuhn.de/go/colour - a library for colour science computations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lut

import (
	"math"

	"github.com/aclements/go-moremath/vec"
	"golang.org/x/exp/slices"
)

// Domain describes the input range of a lookup table.  A domain either
// gives per-channel lower and upper bounds, with table samples spaced
// evenly between them, or lists the sample positions of each channel
// explicitly.  Per-channel sample counts of an explicit domain may
// differ.
type Domain struct {
	bounds   [][2]float64
	explicit [][]float64
}

// DomainBounds returns a domain with one [low, high] bound per channel.
func DomainBounds(bounds ...[2]float64) Domain {
	return Domain{bounds: slices.Clone(bounds)}
}

// DomainExplicit returns a domain which lists the sample positions of
// each channel explicitly.  Positions must be strictly increasing.
func DomainExplicit(grids ...[]float64) Domain {
	d := Domain{explicit: make([][]float64, len(grids))}
	for i, g := range grids {
		d.explicit[i] = slices.Clone(g)
	}
	return d
}

func domainBoundsUniform(low, high float64, channels int) Domain {
	bounds := make([][2]float64, channels)
	for i := range bounds {
		bounds[i] = [2]float64{low, high}
	}
	return Domain{bounds: bounds}
}

// IsZero reports whether d is the zero domain.
func (d Domain) IsZero() bool {
	return d.bounds == nil && d.explicit == nil
}

// IsExplicit reports whether the domain lists sample positions
// explicitly.
func (d Domain) IsExplicit() bool {
	return d.explicit != nil
}

// Channels returns the number of channels the domain describes.
func (d Domain) Channels() int {
	if d.explicit != nil {
		return len(d.explicit)
	}
	return len(d.bounds)
}

// LowHigh returns the lower and upper bound of channel c.
func (d Domain) LowHigh(c int) (low, high float64) {
	if d.explicit != nil {
		g := d.explicit[c]
		return g[0], g[len(g)-1]
	}
	return d.bounds[c][0], d.bounds[c][1]
}

// Grid returns the sample positions of channel c.  For a bounds domain,
// size evenly spaced positions are generated; for an explicit domain the
// stored positions are returned and size is ignored.
func (d Domain) Grid(c, size int) []float64 {
	if d.explicit != nil {
		return slices.Clone(d.explicit[c])
	}
	return vec.Linspace(d.bounds[c][0], d.bounds[c][1], size)
}

// GridLen returns the number of stored sample positions of channel c, or
// 0 for a bounds domain.
func (d Domain) GridLen(c int) int {
	if d.explicit != nil {
		return len(d.explicit[c])
	}
	return 0
}

func (d Domain) validate(op string, channels int) error {
	if d.Channels() != channels {
		return newUsageError(op, "domain has %d channels, expected %d",
			d.Channels(), channels)
	}
	if d.explicit != nil {
		for c, g := range d.explicit {
			if len(g) < 2 {
				return newUsageError(op,
					"explicit domain channel %d has %d samples", c, len(g))
			}
			for i := 1; i < len(g); i++ {
				if !(g[i] > g[i-1]) {
					return newUsageError(op,
						"explicit domain channel %d is not increasing", c)
				}
			}
		}
		return nil
	}
	for c, b := range d.bounds {
		if !(b[1] > b[0]) || math.IsNaN(b[0]) || math.IsNaN(b[1]) {
			return newUsageError(op, "invalid bounds [%g, %g] for channel %d",
				b[0], b[1], c)
		}
	}
	return nil
}

// isUniform reports whether the sample positions of channel c are evenly
// spaced.  Bounds domains are always uniform.
func (d Domain) isUniform(c int) bool {
	if d.explicit == nil {
		return true
	}
	g := d.explicit[c]
	step := (g[len(g)-1] - g[0]) / float64(len(g)-1)
	for i := 1; i < len(g); i++ {
		if math.Abs(g[i]-g[i-1]-step) > 1e-10*math.Max(1, math.Abs(step)) {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of the domain.
func (d Domain) Copy() Domain {
	if d.explicit != nil {
		return DomainExplicit(d.explicit...)
	}
	return DomainBounds(d.bounds...)
}

// Equal reports whether two domains describe the same input range.
func (d Domain) Equal(other Domain) bool {
	if d.IsExplicit() != other.IsExplicit() {
		return false
	}
	if d.explicit != nil {
		if len(d.explicit) != len(other.explicit) {
			return false
		}
		for c := range d.explicit {
			if !slices.Equal(d.explicit[c], other.explicit[c]) {
				return false
			}
		}
		return true
	}
	return slices.Equal(d.bounds, other.bounds)
}
