package audio

import (
	"io"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	frameBytes = 8 // two float32 channels
)

// pcmReader streams a pre-rendered buffer once.
type pcmReader struct {
	data []byte
	pos  int
}

func (r *pcmReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putMono writes a [-1,1] sample as float32 LE to both channels of frame i.
func putMono(buf []byte, i int, sample float64) {
	putStereo(buf, i, sample, sample)
}

func putStereo(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	o := i * frameBytes
	buf[o] = byte(lv)
	buf[o+1] = byte(lv >> 8)
	buf[o+2] = byte(lv >> 16)
	buf[o+3] = byte(lv >> 24)
	buf[o+4] = byte(rv)
	buf[o+5] = byte(rv >> 8)
	buf[o+6] = byte(rv >> 16)
	buf[o+7] = byte(rv >> 24)
}

// softSat is a gentle cubic saturator with soft tails beyond ±1.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1]. attack, decay and
// release are fractions of the whole duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm is a two-operator FM sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// noise advances an LCG and returns a sample in [-1,1].
func noise(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func frames(seconds float64) int { return int(seconds * SampleRate) }

func makeBuf(n int) []byte { return make([]byte, n*frameBytes) }

// render turns a mono mix into a saturated stereo buffer.
func render(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putMono(buf, i, softSat(s))
	}
	return buf
}
