//go:build !(goexperiment.simd && amd64)

package simdcsv

// useSIMDClassify is always false outside the archsimd-accelerated
// build (vector_amd64.go); classifyChunk falls back to the portable
// scalar path in vector.go.
const useSIMDClassify = false

// classifyLane16SIMD is unreachable outside the accelerated build
// (useSIMDClassify is always false here) but must exist so
// classifyChunk type-checks under every build configuration.
func classifyLane16SIMD(chunk lane16) lane16 {
	return classifyLane16Scalar(chunk)
}
