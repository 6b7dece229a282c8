package devclass

import "testing"

func TestValid(t *testing.T) {
	cases := []struct {
		c    Class
		want bool
	}{
		{Clock, true},
		{Alarm, true},
		{Disk, true},
		{Term, true},
		{LowPri, false},
		{Class(200), false},
	}
	for _, tc := range cases {
		if got := tc.c.Valid(); got != tc.want {
			t.Errorf("Class(%d).Valid() = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	cases := map[Class]string{
		Clock:      "CLOCK",
		Alarm:      "ALARM",
		Disk:       "DISK",
		Term:       "TERM",
		LowPri:     "LOW_PRI",
		Class(200): "UNKNOWN",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("Class(%d).String() = %q, want %q", c, got, want)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Class
		ok   bool
	}{
		{"DISK", Disk, true},
		{"disk", Disk, true},
		{"Disk", Disk, true},
		{"CLOCK", Clock, true},
		{"ALARM", Alarm, true},
		{"TERM", Term, true},
		{"BOGUS", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("Parse(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
