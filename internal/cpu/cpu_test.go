package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
}

func TestForcedFeatures(t *testing.T) {
	t.Cleanup(ResetDetection)

	SetForcedFeatures(Features{ForceGeneric: true, HasAVX2: true})
	f := DetectFeatures()
	if f.HasSIMD() {
		t.Fatal("forced generic features must not report SIMD")
	}
	if got := f.Level(); got != "generic (forced)" {
		t.Fatalf("Level() = %q", got)
	}

	SetForcedFeatures(Features{HasNEON: true})
	if !DetectFeatures().HasSIMD() {
		t.Fatal("NEON features must report SIMD")
	}

	ResetDetection()
	if DetectFeatures().ForceGeneric {
		t.Fatal("ResetDetection must drop the forced set")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		f    Features
		want string
	}{
		{Features{}, "generic"},
		{Features{HasSSE2: true}, "SSE2"},
		{Features{HasSSE2: true, HasAVX2: true}, "AVX2"},
		{Features{HasNEON: true}, "NEON"},
	}
	for _, tt := range tests {
		if got := tt.f.Level(); got != tt.want {
			t.Errorf("%+v.Level() = %q, want %q", tt.f, got, tt.want)
		}
	}
}
