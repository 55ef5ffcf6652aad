// Package crowd aggregates section-level enthusiasm into stadium noise.
//
// Sections live in a dense arena updated by straight iteration: cheer
// and decay passes touch every section once per call, no per-section
// allocation or lifetime tracking.
package crowd

import (
	"math"

	"github.com/okian/huddle/internal/domain/model"
)

// Default crowd configuration constants.
const (
	defaultBaseNoise      = 30.0  // ambient stadium murmur, dB-flavored
	defaultMaxNoise       = 110.0 // full-throat roar
	defaultCheerGain      = 0.08  // enthusiasm added per unit of intensity
	defaultBooAsymmetry   = 0.5   // crowds quiet down slower than they cheer up
	defaultDecayRate      = 0.02  // fraction of distance-to-baseline shed per second
	defaultLoudThreshold  = 90.0
	defaultQuietThreshold = 45.0
	defaultIntensityScale = 12.0 // resolved impact that counts as full intensity
	neutralBaseline       = 0.5
)

// Section is one block of seats with a team affinity. Enthusiasm stays
// in [0, 1]; noise contribution is weighted by how full the section is.
type Section struct {
	Capacity   int
	Attendance int
	Enthusiasm float64
	Affinity   model.Side
}

// Baseline supplies the record-dependent enthusiasm resting point for a
// side's sections. A struggling team's crowd settles lower than neutral,
// a winning team's higher.
type Baseline interface {
	EnthusiasmBaseline(side model.Side) float64
}

// fixedBaseline relaxes everyone toward neutral when no game state is wired.
type fixedBaseline struct{}

func (fixedBaseline) EnthusiasmBaseline(model.Side) float64 { return neutralBaseline }

// Model aggregates per-section enthusiasm into overall noise.
type Model struct {
	sections []Section

	baseNoise      float64
	maxNoise       float64
	cheerGain      float64
	booAsymmetry   float64
	decayRate      float64
	loudThreshold  float64
	quietThreshold float64
	intensityScale float64
	baseline       Baseline
}

// New creates an empty crowd model with configuration options.
func New(opts ...Option) *Model {
	m := &Model{
		baseNoise:      defaultBaseNoise,
		maxNoise:       defaultMaxNoise,
		cheerGain:      defaultCheerGain,
		booAsymmetry:   defaultBooAsymmetry,
		decayRate:      defaultDecayRate,
		loudThreshold:  defaultLoudThreshold,
		quietThreshold: defaultQuietThreshold,
		intensityScale: defaultIntensityScale,
		baseline:       fixedBaseline{},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// AddSection appends a section to the arena. Attendance is clamped to
// capacity; enthusiasm starts at the neutral baseline.
func (m *Model) AddSection(affinity model.Side, capacity, attendance int) {
	if capacity <= 0 {
		return
	}
	if attendance < 0 {
		attendance = 0
	}
	if attendance > capacity {
		attendance = capacity
	}
	m.sections = append(m.sections, Section{
		Capacity:   capacity,
		Attendance: attendance,
		Enthusiasm: neutralBaseline,
		Affinity:   affinity,
	})
}

// OnEvent adjusts section enthusiasm for a resolved event. Sections
// sharing the acting team's affinity cheer proportionally to the
// event's impact; opposing sections deflate by a smaller, asymmetric
// step.
func (m *Model) OnEvent(e model.GameEvent, acting model.Side) {
	intensity := math.Abs(e.Impact) / m.intensityScale
	if intensity > 1 {
		intensity = 1
	}
	if intensity <= 0 || math.IsNaN(intensity) {
		return
	}

	for i := range m.sections {
		if m.sections[i].Affinity == acting {
			m.sections[i].Enthusiasm = clamp01(m.sections[i].Enthusiasm + m.cheerGain*intensity)
		} else {
			m.sections[i].Enthusiasm = clamp01(m.sections[i].Enthusiasm - m.cheerGain*m.booAsymmetry*intensity)
		}
	}
}

// Decay relaxes each section toward its side's record-dependent
// baseline rather than a fixed constant.
func (m *Model) Decay(dt float64) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}
	fraction := m.decayRate * dt
	if fraction > 1 {
		fraction = 1
	}

	for i := range m.sections {
		target := clamp01(m.baseline.EnthusiasmBaseline(m.sections[i].Affinity))
		m.sections[i].Enthusiasm += (target - m.sections[i].Enthusiasm) * fraction
	}
}

// NoiseLevel computes the aggregate noise: base plus the attendance-
// weighted average enthusiasm scaled into [baseNoise, maxNoise].
func (m *Model) NoiseLevel() float64 {
	return m.baseNoise + (m.maxNoise-m.baseNoise)*m.Enthusiasm()
}

// Enthusiasm returns the attendance-weighted average section
// enthusiasm, in [0, 1]. Empty crowds read zero.
func (m *Model) Enthusiasm() float64 {
	var weighted, totalWeight float64
	for i := range m.sections {
		weight := float64(m.sections[i].Attendance) / float64(m.sections[i].Capacity)
		weighted += m.sections[i].Enthusiasm * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}
	return weighted / totalWeight
}

// IsLoud reports whether noise exceeds the loud threshold.
func (m *Model) IsLoud() bool {
	return m.NoiseLevel() >= m.loudThreshold
}

// IsQuiet reports whether noise sits below the quiet threshold.
func (m *Model) IsQuiet() bool {
	return m.NoiseLevel() <= m.quietThreshold
}

// SectionCount returns the number of sections in the arena.
func (m *Model) SectionCount() int {
	return len(m.sections)
}

// Sections returns a copy of the section arena for observers.
func (m *Model) Sections() []Section {
	out := make([]Section, len(m.sections))
	copy(out, m.sections)
	return out
}

// Reset returns every section to the neutral baseline.
func (m *Model) Reset() {
	for i := range m.sections {
		m.sections[i].Enthusiasm = neutralBaseline
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
