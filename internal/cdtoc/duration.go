package cdtoc

import (
	"fmt"
	"time"
)

const (
	// SectorsPerSecond is the CDDA frame rate.
	SectorsPerSecond = 75

	// SamplesPerSector is the number of 16-bit stereo samples in one
	// CDDA sector.
	SamplesPerSector = 588
)

// Duration is a CDDA length counted in whole sectors. The 64-bit count
// keeps the math exact out to multi-day magnitudes; convert at the edges
// with Seconds or Std when lossiness is acceptable.
type Duration uint64

// FromCDDASamples derives a Duration from a total CDDA sample count. The
// count must divide evenly into 588-sample sectors.
func FromCDDASamples(samples uint64) (Duration, error) {
	if samples%SamplesPerSector != 0 {
		return 0, ErrSampleCount
	}
	return Duration(samples / SamplesPerSector), nil
}

// FromSamples derives the nearest equivalent Duration for audio with an
// arbitrary sample rate. The rescale may be off by up to one frame; for
// true CDDA tracks use FromCDDASamples instead.
func FromSamples(samples uint64, sampleRate uint32) Duration {
	if sampleRate == 0 {
		return 0
	}
	// samples/rate seconds at 75 sectors per second, rounded.
	sectors := (samples*SectorsPerSecond + uint64(sampleRate)/2) / uint64(sampleRate)
	return Duration(sectors)
}

// Sectors returns the raw sector count.
func (d Duration) Sectors() uint64 { return uint64(d) }

// Samples returns the equivalent CDDA sample count.
func (d Duration) Samples() uint64 { return uint64(d) * SamplesPerSector }

// SecondsFrames splits the duration into whole seconds and leftover
// frames (0-74).
func (d Duration) SecondsFrames() (seconds uint64, frames uint8) {
	return uint64(d) / SectorsPerSecond, uint8(uint64(d) % SectorsPerSecond)
}

// DHMSF breaks the duration into days, hours, minutes, seconds, and
// frames.
func (d Duration) DHMSF() (days uint64, hours, minutes, seconds, frames uint8) {
	total, f := d.SecondsFrames()
	return total / 86_400,
		uint8(total / 3_600 % 24),
		uint8(total / 60 % 60),
		uint8(total % 60),
		f
}

// Seconds returns the duration as fractional seconds. Lossy.
func (d Duration) Seconds() float64 { return float64(d) / SectorsPerSecond }

// Std returns the nearest time.Duration. Lossy for extreme values.
func (d Duration) Std() time.Duration {
	return time.Duration(uint64(d)) * time.Second / SectorsPerSecond
}

// String renders the duration as "HH:MM:SS+FF", with a leading "Nd " day
// count when non-zero.
func (d Duration) String() string {
	days, h, m, s, f := d.DHMSF()
	if days == 0 {
		return fmt.Sprintf("%02d:%02d:%02d+%02d", h, m, s, f)
	}
	return fmt.Sprintf("%dd %02d:%02d:%02d+%02d", days, h, m, s, f)
}
