package audio

import "math"

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundCoin Sound = iota
	SoundJump
	SoundPass
	SoundSwish
	SoundCrash
	SoundGameOver
	SoundNewBest
	SoundMenuSelect
)

func (s Sound) String() string {
	switch s {
	case SoundCoin:
		return "coin"
	case SoundJump:
		return "jump"
	case SoundPass:
		return "pass"
	case SoundSwish:
		return "swish"
	case SoundCrash:
		return "crash"
	case SoundGameOver:
		return "game-over"
	case SoundNewBest:
		return "new-best"
	case SoundMenuSelect:
		return "menu-select"
	}
	return "unknown"
}

// generate renders a sound. seed varies noisy effects between plays.
func generate(kind Sound, seed uint64) []byte {
	switch kind {
	case SoundCoin:
		return genCoin()
	case SoundJump:
		return genJump()
	case SoundPass:
		return genPass()
	case SoundSwish:
		return genSwish(seed)
	case SoundCrash:
		return genCrash(seed)
	case SoundGameOver:
		return genGameOver()
	case SoundNewBest:
		return genNewBest()
	case SoundMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// arpeggio stacks bell notes that start step apart and ring to the end.
func arpeggio(notes []float64, step, tail, ratio, index, gain float64) []float64 {
	noteLen := frames(step)
	total := len(notes)*noteLen + frames(tail)
	mix := make([]float64, total)
	for ni, freq := range notes {
		start := ni * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.004, 0.6, 0.05, 0.32)
			s := fm(t, freq, ratio, index*env) * env * gain
			s += math.Sin(2*math.Pi*freq*2*t) * env * gain * 0.25
			mix[start+j] += s
		}
	}
	return mix
}

// genCoin: quick major arpeggio, C6 E6 G6.
func genCoin() []byte {
	return render(arpeggio([]float64{1046.5, 1318.5, 1568.0}, 0.05, 0.14, 2.756, 4.5, 0.34))
}

// genNewBest: longer rising staircase.
func genNewBest() []byte {
	return render(arpeggio([]float64{440, 554.37, 659.25, 880, 1108.73}, 0.09, 0.25, 3.5, 5.5, 0.28))
}

// genJump: upward FM chirp.
func genJump() []byte {
	n := frames(0.14)
	mix := make([]float64, n)
	phase := 0.0
	for i := range mix {
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.5, 0.2, 0.3)
		freq := 260 + 540*p*p
		phase += 2 * math.Pi * freq / SampleRate
		mix[i] = (math.Sin(phase+1.4*env*math.Sin(phase*2)) * 0.42) * env
	}
	return render(mix)
}

// genPass: short bright pop.
func genPass() []byte {
	n := frames(0.07)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 620 + 680*p
		mix[i] = fm(t, freq, 2.0, 3.0*env)*env*0.32 + math.Sin(2*math.Pi*freq*3*t)*env*0.05
	}
	return render(mix)
}

// genSwish: filtered noise sweep for lane changes.
func genSwish(seed uint64) []byte {
	n := frames(0.12)
	mix := make([]float64, n)
	lp := 0.0
	for i := range mix {
		p := float64(i) / float64(n)
		k := 0.15 + 0.5*p
		lp = lp*(1-k) + noise(&seed)*k
		mix[i] = lp * math.Sin(math.Pi*p) * 0.3
	}
	return render(mix)
}

// genCrash: sub boom, transient crack and a band-passed metal body.
func genCrash(seed uint64) []byte {
	n := frames(0.7)
	mix := make([]float64, n)
	lp1, lp2, rum := 0.0, 0.0, 0.0
	subPhase := 0.0
	for i := range mix {
		p := float64(i) / float64(n)

		subFreq := 120 * math.Pow(28.0/120.0, p*2.4)
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*4.6) * 0.62

		crack := 0.0
		if p < 0.03 {
			crack = noise(&seed) * (1 - p/0.03) * 0.7
		}

		raw := noise(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*4.5) * 0.4

		rum = rum*0.95 + noise(&seed)*0.05
		rumble := rum * math.Exp(-p*2.2) * 0.2

		clang := fm(float64(i)/SampleRate, 410, 1.41, 3*math.Exp(-p*9)) * math.Exp(-p*10) * 0.12

		mix[i] = (sub + crack + body + rumble + clang) * 0.86
	}
	return render(mix)
}

// genGameOver: staggered descending minor chord.
func genGameOver() []byte {
	n := frames(0.75)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := frames(note.onset)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			mix[i] += fm(t, freq, 2.0, 2.0*env)*env*0.32 + math.Sin(2*math.Pi*freq*0.5*t)*env*0.1
		}
	}
	return render(mix)
}

// genMenuSelect: crisp click with a falling tone.
func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		mix[i] = fm(t, 1400-700*p, 1.0, 0.6) * env * 0.38
	}
	return render(mix)
}
