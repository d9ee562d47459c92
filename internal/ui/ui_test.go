package ui

import (
	"reflect"
	"testing"
)

func TestFormatItems(t *testing.T) {
	got := formatItems([]string{"DAZN", "M+\tLaLiga", "line\nbreak"})
	want := "0\tDAZN\n1\tM+ LaLiga\n2\tline break\n"
	if got != want {
		t.Errorf("formatItems() = %q, want %q", got, want)
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		n       int
		want    []int
		wantErr bool
	}{
		{"single", "1\tESPN\n", 3, []int{1}, false},
		{"multiple", "0\tDAZN\n2\tSKY\n", 3, []int{0, 2}, false},
		{"empty", "\n", 3, nil, true},
		{"out of range", "5\tX\n", 3, nil, true},
		{"negative", "-1\tX\n", 3, nil, true},
		{"garbage", "abc\n", 3, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSelection(tt.out, tt.n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSelection() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSelection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectNoItems(t *testing.T) {
	if _, err := Select("pick", nil); err == nil {
		t.Error("Select() with no items should fail")
	}
	if _, err := SelectMany("pick", nil); err == nil {
		t.Error("SelectMany() with no items should fail")
	}
}
