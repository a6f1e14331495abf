// Package cpu reports the SIMD capabilities that decide how Chebyshev node
// products are evaluated.
//
// Detection runs once and is cached. Tests may pin a feature set with
// SetForcedFeatures and undo it with ResetDetection.
package cpu

import "sync"

// Features describes the vector units available to the node-product kernels.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables every vectorized kernel.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// HasSIMD reports whether any vector kernel may be used.
func (f Features) HasSIMD() bool {
	if f.ForceGeneric {
		return false
	}
	return f.HasSSE2 || f.HasAVX2 || f.HasNEON
}

// Level returns a short name of the widest vector extension.
func (f Features) Level() string {
	switch {
	case f.ForceGeneric:
		return "generic (forced)"
	case f.HasAVX2:
		return "AVX2"
	case f.HasSSE2:
		return "SSE2"
	case f.HasNEON:
		return "NEON"
	default:
		return "generic"
	}
}

var (
	detectOnce sync.Once
	detected   Features

	forcedMu sync.RWMutex
	forced   *Features
)

// DetectFeatures returns the cached features of the running CPU, or the
// forced set when one is installed.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()
	if f != nil {
		return *f
	}

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	return detected
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	pinned := f
	forced = &pinned
}

// ResetDetection removes a forced feature set.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()
}
