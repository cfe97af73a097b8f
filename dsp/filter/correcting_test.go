package filter

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/series"
)

func TestCorrecting_Unconfigured(t *testing.T) {
	c, err := NewCorrecting(fs)
	if err != nil {
		t.Fatal(err)
	}
	if c.HasEffect() {
		t.Fatal("correcting filter without sources must not have an effect")
	}
	x := finite(t, 0, 1, 2)
	out, err := c.Process(x)
	if err != nil || out == nil {
		t.Fatalf("Process: %v", err)
	}
	if err := c.Update(); err != nil {
		t.Fatalf("Update without sources: %v", err)
	}
}

func TestCorrecting_NotImplemented(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	c, _ := NewCorrecting(fs, WithCorrectingLogger(logger), WithUpdateMode(UpdateManual))
	if err := c.SetTarget(mustGain(t, 2)); err != nil {
		t.Fatal(err)
	}
	if len(hook.AllEntries()) != 0 {
		t.Fatal("manual mode must not update on source change")
	}

	if err := c.Update(); !errors.Is(err, core.ErrNotImplemented) {
		t.Fatalf("Update: err=%v, want ErrNotImplemented", err)
	}
	if _, err := c.Process(finite(t, 0, 1)); !errors.Is(err, core.ErrNotImplemented) {
		t.Fatalf("Process: err=%v, want ErrNotImplemented", err)
	}
	if _, err := c.FrequencyResponse(series.New([]float64{1}, false)); !errors.Is(err, ErrCorrectionNotImplemented) {
		t.Fatalf("FrequencyResponse: err=%v", err)
	}
	if _, err := c.ImpulseResponse(4); !errors.Is(err, core.ErrNotImplemented) {
		t.Fatalf("ImpulseResponse: err=%v", err)
	}
}

func TestCorrecting_AutomaticUpdateLogsFailure(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	c, _ := NewCorrecting(fs, WithCorrectingLogger(logger))
	if c.UpdateMode() != UpdateAutomatic {
		t.Fatalf("default mode=%v", c.UpdateMode())
	}

	ref := mustGain(t, 2)
	if err := c.SetReference(ref); err != nil {
		t.Fatal(err)
	}
	if n := len(hook.AllEntries()); n != 1 {
		t.Fatalf("entries=%d after SetReference, want 1", n)
	}
	ref.SetFactor(3)
	if n := len(hook.AllEntries()); n != 2 {
		t.Fatalf("entries=%d after source change, want 2", n)
	}
	entry := hook.LastEntry()
	if entry.Level != logrus.WarnLevel {
		t.Fatalf("level=%v, want warn", entry.Level)
	}
	if err, _ := entry.Data[logrus.ErrorKey].(error); !errors.Is(err, core.ErrNotImplemented) {
		t.Fatalf("logged error=%v", entry.Data[logrus.ErrorKey])
	}

	if err := c.SetReference(nil); err != nil {
		t.Fatal(err)
	}
	hook.Reset()
	ref.SetFactor(4)
	if len(hook.AllEntries()) != 0 {
		t.Fatal("detached source still triggers updates")
	}
}

func TestCorrecting_Parameters(t *testing.T) {
	c, _ := NewCorrecting(fs, WithUpdateMode(UpdateManual))
	events := counter(c)

	c.SetMaximumBoost(6)
	c.SetMaximumCut(18)
	c.SetBoostThreshold(-3)
	c.SetCutThreshold(3)
	c.SetBoostRatio(2)
	c.SetCutRatio(4)
	c.SetLength(2048)
	c.SetUpdateMode(UpdateAutomatic)
	if *events != 8 {
		t.Fatalf("events=%d, want 8", *events)
	}

	got := []float64{c.MaximumBoost(), c.MaximumCut(), c.BoostThreshold(), c.CutThreshold(), c.BoostRatio(), c.CutRatio()}
	want := []float64{6, 18, -3, 3, 2, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parameter %d=%v, want %v", i, got[i], want[i])
		}
	}
	if c.Length() != 2048 || c.UpdateMode() != UpdateAutomatic {
		t.Fatalf("Length=%d UpdateMode=%v", c.Length(), c.UpdateMode())
	}

	c.SetLength(2048)
	if *events != 8 {
		t.Fatal("unchanged parameter emitted")
	}

	other, _ := NewGain(2*fs, 2)
	if err := c.SetTarget(other); !errors.Is(err, ErrSampleRateMismatch) {
		t.Fatalf("err=%v, want ErrSampleRateMismatch", err)
	}
}
