package hal

import (
	"testing"
	"time"
)

func TestSyncEncodeIsOneShot(t *testing.T) {
	f := newFixture(t, "msm8952")

	f.hal.PowerHint(encodeStart(0x104))
	f.hal.PowerHint(encodeStart(0x104))
	f.hal.PowerHint(encodeStart(0x105))

	calls := f.runtime.snapshot()
	if len(calls) != 1 {
		t.Fatalf("expected exactly one submission, got %d: %+v", len(calls), calls)
	}
	if calls[0].op != "perform" || calls[0].hintID != 0x104 || !calls[0].table.Equal(msm8952VideoEncode) {
		t.Fatalf("unexpected submission: %+v", calls[0])
	}

	// Stop undoes the id that was applied, not the one in the stop blob.
	f.hal.PowerHint(encodeStop(0x105))
	calls = f.runtime.snapshot()
	if len(calls) != 2 || calls[1].op != "undo" || calls[1].hintID != 0x104 {
		t.Fatalf("expected undo of 0x104, got %+v", calls)
	}

	f.hal.PowerHint(encodeStop(0x105))
	if n := f.runtime.count("undo"); n != 1 {
		t.Fatalf("stop while idle submitted an undo: %d undos", n)
	}

	// Idle again, so a new start goes through.
	f.hal.PowerHint(encodeStart(0x106))
	if n := f.runtime.count("perform"); n != 2 {
		t.Fatalf("restart after stop was suppressed: %d performs", n)
	}
}

func TestStopWithoutStartSubmitsNothing(t *testing.T) {
	for _, chip := range []string{"msm8952", "msm8992", "sdm660"} {
		f := newFixture(t, chip)
		if r := f.hal.PowerHint(encodeStop(DefaultVideoEncodeHintID)); r != Handled {
			t.Fatalf("%s: stop returned %v", chip, r)
		}
		if n := len(f.runtime.snapshot()); n != 0 {
			t.Fatalf("%s: stop while idle submitted %d calls", chip, n)
		}
	}
}

func TestEncodeIgnoredOnNonInteractiveGovernor(t *testing.T) {
	f := newFixture(t, "sdm660")
	f.governors.byCPU = map[int]string{0: "schedutil"}

	if r := f.hal.PowerHint(encodeStart(0x104)); r != Handled {
		t.Fatalf("start returned %v", r)
	}
	if n := len(f.runtime.snapshot()); n != 0 {
		t.Fatalf("non-interactive governor got %d submissions", n)
	}
	if f.hal.EncodeState().Enabled {
		t.Fatal("session enabled under schedutil")
	}
}

func TestEncodeInteractiveGovernorOverride(t *testing.T) {
	f := newFixture(t, "msm8952", WithInteractiveGovernors("schedutil"))
	f.governors.byCPU = map[int]string{0: "schedutil"}

	f.hal.PowerHint(encodeStart(0x104))
	if n := f.runtime.count("perform"); n != 1 {
		t.Fatalf("configured governor not treated as interactive: %d performs", n)
	}
}

func TestEncodeMetadataFailures(t *testing.T) {
	f := newFixture(t, "msm8952")
	errorsLogged := captureErrors(t)

	if r := f.hal.PowerHint(HintWithMetadata(HintVideoEncode, "state=on")); r != Handled {
		t.Fatalf("malformed metadata returned %v", r)
	}
	if *errorsLogged != 1 {
		t.Fatalf("expected one error line, got %d", *errorsLogged)
	}

	if r := f.hal.PowerHint(Hint(HintVideoEncode)); r != Handled {
		t.Fatalf("missing metadata returned %v", r)
	}
	if r := f.hal.PowerHint(HintWithMetadata(HintVideoEncode, "hint_id=0x104")); r != Handled {
		t.Fatalf("stateless metadata returned %v", r)
	}
	if n := len(f.runtime.snapshot()); n != 0 {
		t.Fatalf("bad metadata reached the runtime: %d calls", n)
	}
	if *errorsLogged != 1 {
		t.Fatalf("missing metadata should not log errors, got %d", *errorsLogged)
	}
}

func TestEncodeGovernorFailure(t *testing.T) {
	f := newFixture(t, "msm8952")
	f.governors.byCPU = nil
	errorsLogged := captureErrors(t)

	if r := f.hal.PowerHint(encodeStart(0x104)); r != NotHandled {
		t.Fatalf("governor failure returned %v", r)
	}
	if *errorsLogged != 1 {
		t.Fatalf("expected exactly one error line, got %d", *errorsLogged)
	}
	if got := f.governors.probed; len(got) != 4 || got[0] != 0 || got[3] != 3 {
		t.Fatalf("cores probed out of order: %v", got)
	}
	if n := len(f.runtime.snapshot()); n != 0 {
		t.Fatalf("governor failure reached the runtime: %d calls", n)
	}
}

func TestEncodeNoOpOn8916(t *testing.T) {
	f := newFixture(t, "msm8916")
	f.governors.byCPU = nil

	for _, kind := range []Kind{HintVideoEncode, HintVideoDecode} {
		if r := f.hal.PowerHint(HintWithMetadata(kind, "state=1")); r != Handled {
			t.Fatalf("%s returned %v", kind, r)
		}
	}
	if len(f.governors.probed) != 0 || len(f.runtime.snapshot()) != 0 {
		t.Fatal("no-op encode touched the platform")
	}
}

func TestSDM630EncodeTable(t *testing.T) {
	cases := []struct {
		soc  int
		want Table
	}{
		{318, sdm630VideoEncode},
		{327, sdm630VideoEncode},
		{317, sdm660VideoEncode},
	}
	for _, tc := range cases {
		f := newFixture(t, "sdm660")
		f.soc.id = tc.soc

		f.hal.PowerHint(encodeStart(0x104))
		f.hal.PowerHint(encodeStop(0x104))
		f.hal.PowerHint(encodeStart(0x104))

		calls := f.runtime.snapshot()
		if len(calls) != 3 || !calls[0].table.Equal(tc.want) || !calls[2].table.Equal(tc.want) {
			t.Fatalf("soc %d: unexpected calls %+v", tc.soc, calls)
		}
		if f.soc.calls != 1 {
			t.Fatalf("soc %d: SoC id read %d times, want once", tc.soc, f.soc.calls)
		}
	}
}

func TestDelayedEncodeAppliesAfterDelay(t *testing.T) {
	f := newFixture(t, "msm8992")

	f.hal.PowerHint(encodeStart(0x104))
	if n := len(f.runtime.snapshot()); n != 0 {
		t.Fatalf("delayed enable applied immediately: %d calls", n)
	}
	if !f.hal.EncodeState().Pending {
		t.Fatal("session not pending after start")
	}

	f.clock.Advance(DefaultVideoEncodeDelay - time.Millisecond)
	if n := len(f.runtime.snapshot()); n != 0 {
		t.Fatalf("delayed enable fired early: %d calls", n)
	}
	f.clock.Advance(time.Millisecond)

	calls := f.runtime.snapshot()
	if len(calls) != 1 || calls[0].op != "perform" || calls[0].hintID != 0x104 || !calls[0].table.Equal(msm8992VideoEncode) {
		t.Fatalf("unexpected calls after delay: %+v", calls)
	}
	state := f.hal.EncodeState()
	if !state.Enabled || state.Pending || state.CurrentHintID != 0x104 {
		t.Fatalf("unexpected state after enable: %+v", state)
	}

	f.hal.PowerHint(encodeStop(0x104))
	calls = f.runtime.snapshot()
	if len(calls) != 2 || calls[1].op != "undo" || calls[1].hintID != 0x104 {
		t.Fatalf("stop did not undo the applied hint: %+v", calls)
	}
}

func TestDelayedEncodeNewestStartWins(t *testing.T) {
	f := newFixture(t, "msm8992")

	f.hal.PowerHint(encodeStart(0x104))
	f.clock.Advance(time.Second)
	f.hal.PowerHint(encodeStart(0x105))
	f.clock.Advance(time.Second)
	if n := len(f.runtime.snapshot()); n != 0 {
		t.Fatalf("superseded start fired: %d calls", n)
	}
	f.clock.Advance(time.Second)

	calls := f.runtime.snapshot()
	if len(calls) != 1 || calls[0].hintID != 0x105 {
		t.Fatalf("expected a single enable of 0x105, got %+v", calls)
	}

	// Enabled: further starts are no-ops even after the delay.
	f.hal.PowerHint(encodeStart(0x106))
	f.clock.Advance(DefaultVideoEncodeDelay)
	if n := f.runtime.count("perform"); n != 1 {
		t.Fatalf("start while enabled re-applied: %d performs", n)
	}
}

func TestDelayedEncodeCancelledByStop(t *testing.T) {
	f := newFixture(t, "msm8992")

	f.hal.PowerHint(encodeStart(0x104))
	f.clock.Advance(500 * time.Millisecond)
	f.hal.PowerHint(encodeStop(0x104))
	f.clock.Advance(DefaultVideoEncodeDelay)

	if n := len(f.runtime.snapshot()); n != 0 {
		t.Fatalf("cancelled enable submitted %d calls", n)
	}
	if state := f.hal.EncodeState(); state.Enabled || state.Pending {
		t.Fatalf("unexpected state after cancel: %+v", state)
	}
	if f.clock.Pending() != 0 {
		t.Fatalf("cancelled timer still armed")
	}
}

func TestDelayedEncodeStaleWorker(t *testing.T) {
	f := newFixture(t, "msm8992")

	f.hal.PowerHint(encodeStart(0x104))
	first := f.hal.EncodeState().Counter
	f.hal.PowerHint(encodeStart(0x105))

	// A worker that escaped cancellation still finds itself superseded.
	f.hal.delayedEncode(first)
	if n := len(f.runtime.snapshot()); n != 0 {
		t.Fatalf("stale worker applied: %d calls", n)
	}

	f.hal.delayedEncode(f.hal.EncodeState().Counter)
	calls := f.runtime.snapshot()
	if len(calls) != 1 || calls[0].hintID != 0x105 {
		t.Fatalf("current worker did not apply 0x105: %+v", calls)
	}
}

func TestDelayedEncodeCounterWraps(t *testing.T) {
	f := newFixture(t, "msm8992")
	f.hal.encode.counter = 65535
	beforeWrap := f.hal.encode.counter

	f.hal.PowerHint(encodeStart(0x104))
	if got := f.hal.EncodeState().Counter; got != 0 {
		t.Fatalf("counter after 65535 = %d, want 0", got)
	}

	f.hal.delayedEncode(beforeWrap)
	if n := len(f.runtime.snapshot()); n != 0 {
		t.Fatalf("pre-wrap snapshot treated as current: %d calls", n)
	}

	f.clock.Advance(DefaultVideoEncodeDelay)
	if n := f.runtime.count("perform"); n != 1 {
		t.Fatalf("post-wrap worker did not apply: %d performs", n)
	}
}

func TestDelayedEncodeAfterClose(t *testing.T) {
	f := newFixture(t, "msm8992")
	errorsLogged := captureErrors(t)

	f.hal.PowerHint(encodeStart(0x104))
	if err := f.hal.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	f.clock.Advance(DefaultVideoEncodeDelay)
	if n := len(f.runtime.snapshot()); n != 0 {
		t.Fatalf("enable fired after Close: %d calls", n)
	}

	before := f.hal.EncodeState().Counter
	f.hal.PowerHint(encodeStart(0x105))
	if got := f.hal.EncodeState().Counter; got != before {
		t.Fatalf("refused start moved the counter from %d to %d", before, got)
	}
	if *errorsLogged != 1 {
		t.Fatalf("expected one error for the refused start, got %d", *errorsLogged)
	}
	if f.hal.EncodeState().Pending {
		t.Fatal("refused start left the session pending")
	}
}

func TestDelayedEncodeCustomDelay(t *testing.T) {
	f := newFixture(t, "msm8992", WithVideoEncodeDelay(500*time.Millisecond))

	f.hal.PowerHint(encodeStart(0x104))
	f.clock.Advance(500 * time.Millisecond)
	if n := f.runtime.count("perform"); n != 1 {
		t.Fatalf("custom delay not honoured: %d performs", n)
	}
}
