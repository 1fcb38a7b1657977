package hal

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/clock"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/logging"
)

type call struct {
	op       string
	hintID   int32
	duration time.Duration
	table    Table
}

type recorder struct {
	mu    sync.Mutex
	calls []call
}

func (r *recorder) Interaction(duration time.Duration, table Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{op: "interaction", duration: duration, table: table})
}

func (r *recorder) Perform(hintID int32, table Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{op: "perform", hintID: hintID, table: table})
}

func (r *recorder) Undo(hintID int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{op: "undo", hintID: hintID})
}

func (r *recorder) snapshot() []call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]call(nil), r.calls...)
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.snapshot() {
		if c.op == op {
			n++
		}
	}
	return n
}

// governors maps CPUs to their governor; missing CPUs are offline.
type governors struct {
	byCPU  map[int]string
	probed []int
}

func (g *governors) Governor(cpu int) (string, error) {
	g.probed = append(g.probed, cpu)
	if governor, ok := g.byCPU[cpu]; ok {
		return governor, nil
	}
	return "", fmt.Errorf("cpu%d offline", cpu)
}

type socID struct {
	id    int
	err   error
	calls int
}

func (s *socID) SocID() (int, error) {
	s.calls++
	return s.id, s.err
}

// nodes accepts writes only to paths listed in writable.
type nodes struct {
	writable map[string]bool
	attempts []string
	values   map[string]string
}

func (n *nodes) Write(path, value string) error {
	n.attempts = append(n.attempts, path)
	if !n.writable[path] {
		return errors.New("permission denied")
	}
	if n.values == nil {
		n.values = map[string]string{}
	}
	n.values[path] = value
	return nil
}

type fixture struct {
	hal       *HAL
	runtime   *recorder
	governors *governors
	soc       *socID
	sysfs     *nodes
	clock     *clock.FakeClock
}

func newFixture(t *testing.T, chipName string, opts ...Option) *fixture {
	t.Helper()
	chip, err := LookupChip(chipName)
	if err != nil {
		t.Fatalf("LookupChip(%q): %v", chipName, err)
	}
	f := &fixture{
		runtime:   &recorder{},
		governors: &governors{byCPU: map[int]string{0: "interactive", 1: "interactive", 2: "interactive", 3: "interactive"}},
		soc:       &socID{},
		sysfs:     &nodes{writable: map[string]bool{}},
		clock:     clock.Fake(time.Unix(1000, 0)),
	}
	platform := Platform{
		Chip:     f.soc,
		Governor: f.governors,
		Sysfs:    f.sysfs,
		Runtime:  f.runtime,
	}
	opts = append([]Option{WithClock(f.clock)}, opts...)
	f.hal, err = New(chip, platform, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = f.hal.Close() })
	return f
}

// captureErrors counts error lines logged while the test runs.
func captureErrors(t *testing.T) *int {
	t.Helper()
	errorsLogged := new(int)
	var mu sync.Mutex
	restore := logging.SetSink(func(prio logging.Priority, msg string) {
		if prio == logging.LogError {
			mu.Lock()
			*errorsLogged++
			mu.Unlock()
		}
	})
	t.Cleanup(restore)
	return errorsLogged
}

func encodeStart(id int32) Request {
	return HintWithMetadata(HintVideoEncode, fmt.Sprintf("state=1;hint_id=%#x", id))
}

func encodeStop(id int32) Request {
	return HintWithMetadata(HintVideoEncode, fmt.Sprintf("state=0;hint_id=%#x", id))
}
