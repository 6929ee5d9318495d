package clean

import "testing"

func TestPrice(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil is zero", nil, 0},
		{"euro sign applies multiplier", "€10", 12},
		{"dollar sign stripped", "$10", 10},
		{"plain decimal", "15.50", 15.5},
		{"surrounding junk stripped", " USD 8.25 ", 8.25},
		{"no digits", "free", 0},
		{"empty string", "", 0},
		{"numeric cell", 7.5, 7.5},
		{"multiple dots do not parse", "1.234.56", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Price(tc.in); got != tc.want {
				t.Fatalf("Price(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"1 P.M.", "1 PM"},
		{"1 A.M.", "1 AM"},
		{"10.M. 2020", "10M 2020"},
		{"  2024-01-02  ", "2024-01-02"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := DateString(tc.in); got != tc.want {
			t.Fatalf("DateString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDateStringIdempotent(t *testing.T) {
	inputs := []string{"1 P.M.", "10.M. 2020", "2024-01-02 5 A.M."}
	for _, in := range inputs {
		once := DateString(in)
		if twice := DateString(once); twice != once {
			t.Fatalf("DateString not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestStringifyFloats(t *testing.T) {
	if got := Stringify(42.0); got != "42" {
		t.Fatalf("Stringify(42.0) = %q, want %q", got, "42")
	}
	if got := Stringify(int64(7)); got != "7" {
		t.Fatalf("Stringify(7) = %q, want %q", got, "7")
	}
	if got := Stringify(nil); got != "" {
		t.Fatalf("Stringify(nil) = %q, want empty", got)
	}
}

func TestNumber(t *testing.T) {
	if got := Number(nil); got != 0 {
		t.Fatalf("Number(nil) = %v, want 0", got)
	}
	if got := Number(int64(3)); got != 3 {
		t.Fatalf("Number(3) = %v, want 3", got)
	}
	if got := Number("2.5"); got != 2.5 {
		t.Fatalf("Number(\"2.5\") = %v, want 2.5", got)
	}
	if got := Number("many"); got != 0 {
		t.Fatalf("Number(\"many\") = %v, want 0", got)
	}
}
