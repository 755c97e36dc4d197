package audio

import "math"

// Music selects the looping background track.
type Music int

const (
	MusicMenu  Music = iota // calm pad loop behind the start and game-over screens
	MusicDrive              // four-on-the-floor loop while a run is active
)

var (
	menuChords = [][]float64{
		{261.6, 329.6, 392.0, 493.9}, // Cmaj7
		{220.0, 261.6, 329.6, 392.0}, // Am7
		{174.6, 220.0, 261.6, 349.2}, // Fmaj7
		{196.0, 246.9, 293.7, 392.0}, // G
	}
	driveChords = [][]float64{
		{220.0, 261.6, 329.6}, // Am
		{174.6, 220.0, 261.6}, // F
		{130.8, 164.8, 196.0}, // C
		{196.0, 246.9, 293.7}, // G
	}
)

// musicReader synthesises an endless track on demand.
type musicReader struct {
	mode  Music
	t     float64
	seed  uint64
	tempo float64 // beats per second
}

func newMusicReader(mode Music, seed uint64) *musicReader {
	tempo := 1.8
	if mode == MusicDrive {
		tempo = 2.2
	}
	return &musicReader{mode: mode, seed: seed | 1, tempo: tempo}
}

func (m *musicReader) Read(p []byte) (int, error) {
	n := len(p) / frameBytes
	for i := 0; i < n; i++ {
		m.t += 1.0 / SampleRate
		var s float64
		if m.mode == MusicDrive {
			s = m.drive()
		} else {
			s = m.menu()
		}
		pan := 0.09 * math.Sin(2*math.Pi*0.11*m.t)
		putStereo(p, i, softSat(s*(1-pan)), softSat(s*(1+pan)))
	}
	return n * frameBytes, nil
}

func (m *musicReader) drive() float64 {
	beatLen := 1.0 / m.tempo
	trig := math.Mod(m.t, beatLen)
	beatPos := trig / beatLen
	beat := int(m.t * m.tempo)
	chord := driveChords[(beat/4)%len(driveChords)]

	s := fmPad(m.t, chord, 0.8) * 0.6

	step8 := int(m.t*m.tempo*2) % 8
	bassFreq := chord[0] / 2
	if step8 == 3 || step8 == 7 {
		bassFreq = chord[0]
	}
	bassEnv := adsr(math.Mod(m.t*m.tempo*2, 1.0), 0.01, 0.35, 0.16, 0.16)
	s += fmBass(m.t, bassFreq, bassEnv) * 0.85

	s += kick(trig) * 0.9
	if beat%2 == 1 {
		s += snare(trig, &m.seed) * 0.8
	}
	hhTrig := math.Mod(m.t*m.tempo*4, 1.0) / (m.tempo * 4)
	s += hihat(hhTrig, beat%8 == 7, &m.seed) * 0.9

	arpIdx := int(m.t*m.tempo*4) % len(chord)
	arpEnv := adsr(math.Mod(m.t*m.tempo*4, 1.0), 0.008, 0.28, 0.12, 0.10)
	s += fmArp(m.t, chord[arpIdx]*2, arpEnv) * 0.6

	scale := [8]float64{1.0, 1.25, 1.5, 1.25, 1.667, 1.5, 1.25, 1.125}
	leadEnv := adsr(beatPos, 0.02, 0.35, 0.20, 0.15)
	s += fmLead(m.t, chord[0]*2*scale[beat%8], leadEnv) * 0.45

	duck := 1.0 - 0.16*math.Exp(-trig*20.0)
	return s * duck * 0.85
}

func (m *musicReader) menu() float64 {
	beatLen := 1.0 / m.tempo
	trig := math.Mod(m.t, beatLen)
	beat := int(m.t * m.tempo)
	chord := menuChords[(beat/4)%len(menuChords)]
	prog := math.Mod(m.t*m.tempo, 4) / 4

	s := fmPad(m.t, chord, 0.55+0.45*math.Min(1, prog*1.2)) * 0.8

	arpIdx := int(m.t*m.tempo*2) % len(chord)
	arpEnv := adsr(math.Mod(m.t*m.tempo*2, 1.0), 0.01, 0.34, 0.14, 0.2)
	s += fmArp(m.t, chord[arpIdx], arpEnv) * 0.5

	if beat%2 == 0 {
		s += kick(trig) * 0.45
	}
	return s * 0.7
}

// ---- instruments, stateless apart from the noise seed ----

// kick is a pitch-swept sine with a click, trig seconds after the hit.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.24
	return softSat(body + click)
}

func snare(trig float64, seed *uint64) float64 {
	if trig > 0.2 {
		return 0
	}
	env := math.Exp(-trig * 26.0)
	body := (math.Sin(2*math.Pi*188*trig)*0.24 + math.Sin(2*math.Pi*356*trig)*0.10) * env
	band := (noise(seed) - noise(seed)*0.55) * env * (0.55 + 0.25*math.Exp(-trig*8.0))
	return softSat(body + band)
}

func hihat(trig float64, open bool, seed *uint64) float64 {
	decay, limit := 42.0, 0.06
	if open {
		decay, limit = 15.0, 0.18
	}
	if trig > limit {
		return 0
	}
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	return softSat((noise(seed)*0.8 + metal*0.2) * math.Exp(-trig*decay) * 0.07)
}

func fmBass(t, freq, env float64) float64 {
	b := fm(t, freq, 0.5, 1.25*env) * env * 0.48
	b += math.Sin(2*math.Pi*freq*t) * env * 0.26
	return softSat(b)
}

// fmPad detunes four FM voices per chord note.
func fmPad(t float64, chord []float64, env float64) float64 {
	s := 0.0
	detunes := [4]float64{-0.004, -0.001, 0.002, 0.005}
	for _, freq := range chord {
		for _, d := range detunes {
			f := freq * (1 + d)
			s += fm(t, f, 1.45, 0.75*env) * 0.048
		}
	}
	return softSat(s)
}

func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}

func fmLead(t, freq, env float64) float64 {
	vib := 1 + 0.01*math.Sin(2*math.Pi*5.4*t)
	s := fm(t, freq*vib, 1.55, 2.7*env) * env * 0.26
	return softSat(s)
}
