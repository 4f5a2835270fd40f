package simdcsv

import "testing"

func TestClassifyLane16ScalarBasic(t *testing.T) {
	var chunk lane16
	copy(chunk[:], []byte("a,b,c\nf,\"g\"\x00\x00\x00\x00\x00"))

	got := classifyLane16Scalar(chunk)
	want := lane16{
		0, classComma, 0, classComma,
		0, classNewline, 0, classComma,
		classQuotation, 0, classQuotation, 0,
		0, 0, 0, 0,
	}

	if got != want {
		t.Errorf("classifyLane16Scalar(%q) = %v, want %v", chunk, got, want)
	}
}

func TestClassifyLane16ScalarMatchesSIMD(t *testing.T) {
	if !useSIMDClassify {
		t.Skip("SIMD classify path not enabled in this build")
	}

	inputs := []string{
		"a,b,c\nf,\"g\"\x00\x00\x00\x00\x00",
		",,,,,,,,,,,,,,,,",
		"\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n",
		"\"\"\"\"\"\"\"\"\"\"\"\"\"\"\"\"",
		"aaaaaaaaaaaaaaaa",
	}

	for _, in := range inputs {
		var chunk lane16
		copy(chunk[:], []byte(in))

		scalar := classifyLane16Scalar(chunk)
		simd := classifyLane16SIMD(chunk)
		if scalar != simd {
			t.Errorf("classify(%q): scalar = %v, simd = %v", in, scalar, simd)
		}
	}
}

func TestLane16ToBitsOrder(t *testing.T) {
	v := lane16{0xFF, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xFF}
	got := v.toBits()
	want := uint16(1<<15 | 1<<0)
	if got != want {
		t.Errorf("toBits() = %016b, want %016b", got, want)
	}
}
