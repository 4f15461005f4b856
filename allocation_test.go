package nivesh

import "testing"

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		in   []Percent
		want []Percent
	}{
		{
			name: "already normalized is unchanged",
			in:   weights(30, 20, 20, 20, 10),
			want: weights(30, 20, 20, 20, 10),
		},
		{
			name: "all zero gets equal shares",
			in:   weights(0, 0, 0, 0, 0),
			want: weights(20, 20, 20, 20, 20),
		},
		{
			name: "residue goes to the first largest",
			in:   weights(10, 10, 10),
			want: weights(33.34, 33.33, 33.33),
		},
		{
			name: "proportional rescale",
			in:   weights(1, 1),
			want: weights(50, 50),
		},
		{
			name: "overweighted input is scaled down",
			in:   weights(60, 60, 80),
			want: weights(30, 30, 40),
		},
		{
			name: "single entry takes everything",
			in:   weights(7),
			want: weights(100),
		},
		{
			// each share rounds up to 14.29, so the residue is negative and
			// the first entry absorbs it
			name: "negative residue is absorbed too",
			in:   weights(0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01),
			want: weights(14.26, 14.29, 14.29, 14.29, 14.29, 14.29, 14.29),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if len(got) != len(tc.in) {
				t.Fatalf("Normalize() returned %d weights, want %d", len(got), len(tc.in))
			}
			if !Sum(got).Equal(PC(100)) {
				t.Errorf("Normalize() sums to %s, want 100.00%%", Sum(got))
			}
			for i := range got {
				if !got[i].Equal(tc.want[i]) {
					t.Errorf("Normalize()[%d] = %s, want %s", i, got[i], tc.want[i])
				}
			}
		})
	}
}

// The residue of 100/7 shares is not split evenly: check it lands on exactly
// one entry and nowhere else.
func TestNormalizeResidueOnSingleEntry(t *testing.T) {
	got := Normalize(weights(10, 10, 10))
	bumped := 0
	for _, w := range got {
		if w.Equal(PC(33.34)) {
			bumped++
		} else if !w.Equal(PC(33.33)) {
			t.Errorf("unexpected weight %s", w)
		}
	}
	if bumped != 1 {
		t.Errorf("residue assigned to %d entries, want exactly 1", bumped)
	}
	if !got[0].Equal(PC(33.34)) {
		t.Errorf("residue assigned to %s, want the first entry on ties", got[0])
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := [][]Percent{
		weights(10, 10, 10),
		weights(0, 0, 0),
		weights(13.7, 22.1, 5, 41, 3.3),
		weights(30, 20, 20, 20, 10),
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		for i := range once {
			if !once[i].Equal(twice[i]) {
				t.Errorf("Normalize(Normalize(%v))[%d] = %s, want %s", in, i, twice[i], once[i])
			}
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(nil); got != nil {
		t.Errorf("Normalize(nil) = %v, want nil", got)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(weights(30, 20, 20, 20, 10)) {
		t.Error("IsValid(30,20,20,20,10) = false, want true")
	}
	if IsValid(weights(30, 20, 20, 20, 5)) {
		t.Error("IsValid(30,20,20,20,5) = true, want false")
	}
	// within the 1e-6 display tolerance
	if !IsValid(weights(50, 49.9999999)) {
		t.Error("IsValid(50, 49.9999999) = false, want true")
	}
}

func TestParseWeight(t *testing.T) {
	testCases := []struct {
		in   string
		want Percent
	}{
		{"30", PC(30)},
		{" 12.5 ", PC(12.5)},
		{"abc", PC(0)},
		{"", PC(0)},
		{"-4", PC(0)},
		{"250", PC(100)},
	}
	for _, tc := range testCases {
		if got := ParseWeight(tc.in); !got.Equal(tc.want) {
			t.Errorf("ParseWeight(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
