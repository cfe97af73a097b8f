package filter

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/signal"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
)

// Set applies an ordered list of child filters in sequence.
//
// Every structural mutation emits exactly one change event, and change
// events from children are re-emitted by the set.
type Set struct {
	Base
	children []Filter
	cancels  []func()
}

// NewSet returns a Set holding children in order.
func NewSet(sampleRate float64, children ...Filter) (*Set, error) {
	b, err := newBase(sampleRate)
	if err != nil {
		return nil, err
	}
	s := &Set{Base: b}
	for _, f := range children {
		if err := s.check(f); err != nil {
			return nil, err
		}
		s.children = append(s.children, f)
		s.cancels = append(s.cancels, s.watch(f))
	}
	return s, nil
}

// Len returns the number of children.
func (s *Set) Len() int { return len(s.children) }

// At returns the child at index i.
func (s *Set) At(i int) Filter { return s.children[i] }

// Filters returns a copy of the child list.
func (s *Set) Filters() []Filter { return slices.Clone(s.children) }

// Add appends f.
func (s *Set) Add(f Filter) error {
	return s.Insert(len(s.children), f)
}

// Insert places f at index i, shifting later children back.
func (s *Set) Insert(i int, f Filter) error {
	if i < 0 || i > len(s.children) {
		return fmt.Errorf("%w: insert at %d of %d", ErrIndexOutOfRange, i, len(s.children))
	}
	if err := s.check(f); err != nil {
		return err
	}
	s.children = slices.Insert(s.children, i, f)
	s.cancels = slices.Insert(s.cancels, i, s.watch(f))
	s.changed()
	return nil
}

// Remove detaches and returns the child at index i.
func (s *Set) Remove(i int) (Filter, error) {
	if i < 0 || i >= len(s.children) {
		return nil, fmt.Errorf("%w: remove %d of %d", ErrIndexOutOfRange, i, len(s.children))
	}
	f := s.children[i]
	s.cancels[i]()
	s.children = slices.Delete(s.children, i, i+1)
	s.cancels = slices.Delete(s.cancels, i, i+1)
	s.changed()
	return f, nil
}

// Move relocates the child at index from to index to.
func (s *Set) Move(from, to int) error {
	n := len(s.children)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d to %d of %d", ErrIndexOutOfRange, from, to, n)
	}
	if from == to {
		return nil
	}
	f, cancel := s.children[from], s.cancels[from]
	s.children = slices.Insert(slices.Delete(s.children, from, from+1), to, f)
	s.cancels = slices.Insert(slices.Delete(s.cancels, from, from+1), to, cancel)
	s.changed()
	return nil
}

// Clear removes all children.
func (s *Set) Clear() {
	if len(s.children) == 0 {
		return
	}
	for _, cancel := range s.cancels {
		cancel()
	}
	s.children = nil
	s.cancels = nil
	s.changed()
}

func (s *Set) check(f Filter) error {
	if f == nil {
		return ErrNilFilter
	}
	if f.SampleRate() != s.sampleRate {
		return fmt.Errorf("%w: set %v Hz, child %v Hz", ErrSampleRateMismatch, s.sampleRate, f.SampleRate())
	}
	return nil
}

func (s *Set) watch(f Filter) func() {
	return f.Subscribe(s.changed)
}

// HasEffect reports whether the set is enabled and any child has an effect.
func (s *Set) HasEffect() bool {
	if !s.enabled {
		return false
	}
	for _, f := range s.children {
		if f.HasEffect() {
			return true
		}
	}
	return false
}

// HasInfiniteImpulseResponse reports whether any child is recursive.
func (s *Set) HasInfiniteImpulseResponse() bool {
	for _, f := range s.children {
		if f.HasInfiniteImpulseResponse() {
			return true
		}
	}
	return false
}

// Process pipes x through the children in order.
func (s *Set) Process(x signal.Signal) (signal.Signal, error) {
	if !s.HasEffect() {
		return x, nil
	}
	if err := s.checkRate(x); err != nil {
		return nil, err
	}
	var err error
	for i, f := range s.children {
		if x, err = f.Process(x); err != nil {
			return nil, fmt.Errorf("filter: set child %d: %w", i, err)
		}
	}
	return x, nil
}

// ImpulseResponse returns the first length samples of the impulse response.
func (s *Set) ImpulseResponse(length int) (*signal.FiniteSignal, error) {
	return s.impulseResponse(s, length)
}

// FrequencyResponse returns the product of the children's responses.
func (s *Set) FrequencyResponse(freqs series.Series) (*spectrum.Spectrum, error) {
	out, err := flatResponse(freqs)
	if err != nil || !s.HasEffect() {
		return out, err
	}
	for i, f := range s.children {
		h, err := f.FrequencyResponse(freqs)
		if err != nil {
			return nil, fmt.Errorf("filter: set child %d: %w", i, err)
		}
		if out, err = out.Multiply(h); err != nil {
			return nil, err
		}
	}
	return out, nil
}
