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

package continuous

import (
	"fmt"

	"seehuhn.de/go/colour/algebra"
)

// MultiSignals bundles several signals sharing a single domain, one per
// channel.  The range values are stored sample-major: Values()[i][c] is the
// value of channel c at the i-th domain sample.
type MultiSignals struct {
	name    string
	labels  []string
	signals []*Signal
}

// MultiSignalsOptions configures a new [MultiSignals].
type MultiSignalsOptions struct {
	Name         string
	Labels       []string
	Interpolator *InterpolatorSpec
	Extrapolator *ExtrapolatorSpec
}

// NewMultiSignals creates a MultiSignals from sample-major range values and
// a shared domain.  A nil domain defaults to 0, 1, ..., len(rng)-1.  All
// rows of rng must have the same number of channels.  Nil labels default to
// "0", "1", ....
func NewMultiSignals(rng [][]float64, domain []float64, opts *MultiSignalsOptions) (*MultiSignals, error) {
	const op = "NewMultiSignals"
	if len(rng) == 0 {
		return nil, newUsageError(op, "no samples given")
	}
	channels := len(rng[0])
	if channels == 0 {
		return nil, newUsageError(op, "no channels given")
	}
	for i, row := range rng {
		if len(row) != channels {
			return nil, newUsageError(op,
				"row %d has %d channels, expected %d", i, len(row), channels)
		}
	}

	var sOpts SignalOptions
	var labels []string
	if opts != nil {
		sOpts.Interpolator = opts.Interpolator
		sOpts.Extrapolator = opts.Extrapolator
		labels = opts.Labels
	}
	if labels == nil {
		labels = make([]string, channels)
		for c := range labels {
			labels[c] = fmt.Sprint(c)
		}
	}
	if len(labels) != channels {
		return nil, newUsageError(op,
			"%d labels for %d channels", len(labels), channels)
	}

	ms := &MultiSignals{
		labels:  make([]string, channels),
		signals: make([]*Signal, channels),
	}
	copy(ms.labels, labels)
	if opts != nil {
		ms.name = opts.Name
	}
	column := make([]float64, len(rng))
	for c := 0; c < channels; c++ {
		for i := range rng {
			column[i] = rng[i][c]
		}
		sig, err := NewSignal(column, domain, &sOpts)
		if err != nil {
			return nil, err
		}
		sig.SetName(ms.labels[c])
		ms.signals[c] = sig
	}

	// All channels must agree on the domain after sorting.
	for c := 1; c < channels; c++ {
		if !sameFloats(ms.signals[0].x, ms.signals[c].x) {
			return nil, newUsageError(op, "channel domains do not match")
		}
	}
	return ms, nil
}

// Name returns the name of the signal collection.
func (ms *MultiSignals) Name() string { return ms.name }

// SetName sets the name of the signal collection.
func (ms *MultiSignals) SetName(name string) { ms.name = name }

// Labels returns a copy of the channel labels.
func (ms *MultiSignals) Labels() []string {
	res := make([]string, len(ms.labels))
	copy(res, ms.labels)
	return res
}

// Channels returns the number of channels.
func (ms *MultiSignals) Channels() int { return len(ms.signals) }

// Len returns the number of domain samples.
func (ms *MultiSignals) Len() int { return ms.signals[0].Len() }

// Domain returns a copy of the shared domain values.
func (ms *MultiSignals) Domain() []float64 { return ms.signals[0].Domain() }

// Signal returns the signal of channel c.  The signal shares no state with
// the receiver.
func (ms *MultiSignals) Signal(c int) *Signal {
	return ms.signals[c].Copy()
}

// Values returns the range values, sample-major.
func (ms *MultiSignals) Values() [][]float64 {
	res := make([][]float64, ms.Len())
	for i := range res {
		res[i] = make([]float64, len(ms.signals))
		for c, sig := range ms.signals {
			res[i][c] = sig.y[i]
		}
	}
	return res
}

// EvaluateAt returns the value of every channel at x.
func (ms *MultiSignals) EvaluateAt(x float64) ([]float64, error) {
	res := make([]float64, len(ms.signals))
	for c, sig := range ms.signals {
		v, err := sig.EvaluateAt(x)
		if err != nil {
			return nil, err
		}
		res[c] = v
	}
	return res, nil
}

// Evaluate returns the values of every channel at every element of xs,
// sample-major.
func (ms *MultiSignals) Evaluate(xs []float64) ([][]float64, error) {
	res := make([][]float64, len(xs))
	for i, x := range xs {
		row, err := ms.EvaluateAt(x)
		if err != nil {
			return nil, err
		}
		res[i] = row
	}
	return res, nil
}

// SetDomain replaces the shared domain values of all channels.
func (ms *MultiSignals) SetDomain(domain []float64) error {
	for _, sig := range ms.signals {
		if err := sig.SetDomain(domain); err != nil {
			return err
		}
	}
	return nil
}

// SetInterpolator replaces the interpolator selection of all channels.
func (ms *MultiSignals) SetInterpolator(spec InterpolatorSpec) error {
	for _, sig := range ms.signals {
		if err := sig.SetInterpolator(spec); err != nil {
			return err
		}
	}
	return nil
}

// SetExtrapolator replaces the extrapolator selection of all channels.
func (ms *MultiSignals) SetExtrapolator(spec ExtrapolatorSpec) error {
	for _, sig := range ms.signals {
		if err := sig.SetExtrapolator(spec); err != nil {
			return err
		}
	}
	return nil
}

// ArithmeticalOperation applies "ms op value" element-wise to every
// channel.  The value may be a float64 scalar, a []float64 with one value
// per channel, or another *MultiSignals with identical domain and channel
// count.
func (ms *MultiSignals) ArithmeticalOperation(value any, op algebra.Operation, inPlace bool) (*MultiSignals, error) {
	const fn = "ArithmeticalOperation"
	target := ms
	if !inPlace {
		target = ms.Copy()
	}

	switch v := value.(type) {
	case float64:
		for _, sig := range target.signals {
			if _, err := sig.ArithmeticalOperation(v, op, true); err != nil {
				return nil, err
			}
		}
	case []float64:
		if len(v) != len(target.signals) {
			return nil, newUsageError(fn,
				"expected %d values, got %d", len(target.signals), len(v))
		}
		for c, sig := range target.signals {
			if _, err := sig.ArithmeticalOperation(v[c], op, true); err != nil {
				return nil, err
			}
		}
	case *MultiSignals:
		if len(v.signals) != len(target.signals) {
			return nil, newUsageError(fn, "channel counts do not match")
		}
		for c, sig := range target.signals {
			if _, err := sig.ArithmeticalOperation(v.signals[c], op, true); err != nil {
				return nil, err
			}
		}
	default:
		return nil, newUsageError(fn, "unsupported operand type %T", value)
	}
	return target, nil
}

// Copy returns a deep copy.
func (ms *MultiSignals) Copy() *MultiSignals {
	cp := &MultiSignals{
		name:    ms.name,
		labels:  make([]string, len(ms.labels)),
		signals: make([]*Signal, len(ms.signals)),
	}
	copy(cp.labels, ms.labels)
	for c, sig := range ms.signals {
		cp.signals[c] = sig.Copy()
	}
	return cp
}

// Equal reports whether two signal collections have the same samples,
// labels, and interpolator and extrapolator selections.  Names are
// ignored.
func (ms *MultiSignals) Equal(other *MultiSignals) bool {
	if other == nil || len(ms.signals) != len(other.signals) {
		return false
	}
	for c := range ms.labels {
		if ms.labels[c] != other.labels[c] {
			return false
		}
	}
	for c := range ms.signals {
		if !ms.signals[c].Equal(other.signals[c]) {
			return false
		}
	}
	return true
}
