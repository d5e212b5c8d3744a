package text

import "testing"

func TestSpanValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		span  Span
		valid bool
	}{
		"valid":                  {span: Span{Start: 0, End: 1}, valid: true},
		"empty valid":            {span: Span{Start: 3, End: 3}, valid: true},
		"negative start invalid": {span: Span{Start: -1, End: 1}, valid: false},
		"negative end invalid":   {span: Span{Start: 0, End: -1}, valid: false},
		"end before start":       {span: Span{Start: 5, End: 4}, valid: false},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := tc.span.IsValid(); got != tc.valid {
				t.Fatalf("IsValid() = %v, want %v", got, tc.valid)
			}
			err := tc.span.Validate()
			if (err == nil) != tc.valid {
				t.Fatalf("Validate() error = %v, valid=%v", err, tc.valid)
			}
		})
	}
}

func TestSpanContainsSpan(t *testing.T) {
	t.Parallel()

	base := Span{Start: 10, End: 20}
	inside := Span{Start: 12, End: 18}
	touchLeft := Span{Start: 5, End: 10}
	touchRight := Span{Start: 20, End: 25}
	overlap := Span{Start: 19, End: 25}

	if !base.ContainsSpan(inside) {
		t.Fatal("expected contained span")
	}
	if base.ContainsSpan(touchLeft) {
		t.Fatal("did not expect touchLeft to be contained")
	}
	if base.ContainsSpan(touchRight) {
		t.Fatal("did not expect touchRight to be contained")
	}
	if base.ContainsSpan(overlap) {
		t.Fatal("did not expect a partially overlapping span to be contained")
	}
	if !base.ContainsSpan(base) {
		t.Fatal("expected a span to contain itself")
	}
}
