package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeVisual struct {
	kind    VisualKind
	x, y, z float64
	visible bool
	opacity float64
	label   string
}

func (v *fakeVisual) SetPosition(x, y, z float64) { v.x, v.y, v.z = x, y, z }
func (v *fakeVisual) SetRotation(x, y, z float64) {}
func (v *fakeVisual) SetVisible(b bool)           { v.visible = b }
func (v *fakeVisual) SetOpacity(a float64)        { v.opacity = a }
func (v *fakeVisual) SetScale(x, y, z float64)    {}
func (v *fakeVisual) SetLabel(text string)        { v.label = text }

type fakeScene struct {
	live map[*fakeVisual]bool
}

func newFakeScene() *fakeScene {
	return &fakeScene{live: make(map[*fakeVisual]bool)}
}

func (f *fakeScene) Add(kind VisualKind) Visual {
	v := &fakeVisual{kind: kind, visible: true, opacity: 1}
	f.live[v] = true
	return v
}

func (f *fakeScene) Remove(v Visual) {
	if fv, ok := v.(*fakeVisual); ok {
		delete(f.live, fv)
	}
}

func (f *fakeScene) count(kind VisualKind) int {
	n := 0
	for v := range f.live {
		if v.kind == kind {
			n++
		}
	}
	return n
}

type fakeHUD struct {
	scores, bests, speeds []int
}

func (h *fakeHUD) SetScore(v int) { h.scores = append(h.scores, v) }
func (h *fakeHUD) SetBest(v int)  { h.bests = append(h.bests, v) }
func (h *fakeHUD) SetSpeed(v int) { h.speeds = append(h.speeds, v) }

var errStoreDown = errors.New("store down")

type fakeStore struct {
	best    map[string]float64
	loadErr error
	saveErr error
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{best: make(map[string]float64)}
}

func (f *fakeStore) LoadBest(key string) (float64, error) {
	if f.loadErr != nil {
		return 0, f.loadErr
	}
	return f.best[key], nil
}

func (f *fakeStore) SaveBest(key string, v float64) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.best[key] = v
	return nil
}

func newTestSim(t *testing.T, opts ...Option) *Sim {
	t.Helper()
	s, err := New(append([]Option{WithRand(NewRand(7))}, opts...)...)
	require.NoError(t, err)
	return s
}

// runningSim returns a sim on the normal tier with a run just started.
func runningSim(t *testing.T, opts ...Option) *Sim {
	t.Helper()
	s := newTestSim(t, opts...)
	require.NoError(t, s.SelectTier("normal"))
	s.Start()
	require.Equal(t, PhaseRunning, s.Phase)
	return s
}

func countEvents(s *Sim, typ EventType) *int {
	n := new(int)
	s.Events().Subscribe(typ, func(Event) { *n++ })
	return n
}
