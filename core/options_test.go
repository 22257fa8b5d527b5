package core

import "testing"

func TestApplyStreamOptions(t *testing.T) {
	cfg := ApplyStreamOptions(WithSampleRate(240))
	if cfg.SampleRate != 240 {
		t.Fatalf("sample rate = %v, want 240", cfg.SampleRate)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyStreamOptions(WithSampleRate(0), nil)
	def := DefaultStreamConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
