package idgen_test

import (
	"testing"
	"time"

	"github.com/campusnest/backend/utils/idgen"
)

func TestGenerate(t *testing.T) {
	at := time.Date(2025, time.March, 7, 9, 5, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "two word name",
			input: "Rahul Sharma",
			want:  "RS090520250703",
		},
		{
			name:  "single word name padded",
			input: "Priya",
			want:  "PX090520250703",
		},
		{
			name:  "extra tokens ignored",
			input: "Anna Maria Lopez",
			want:  "AM090520250703",
		},
		{
			name:  "lowercase initials uppercased",
			input: "dev patel",
			want:  "DP090520250703",
		},
		{
			name:  "surrounding whitespace",
			input: "  Sam   Lee  ",
			want:  "SL090520250703",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := idgen.Generate(tt.input, at)
			if got != tt.want {
				t.Fatalf("Generate() = %s, want %s", got, tt.want)
			}
			if len(got) != 14 {
				t.Fatalf("Generate() length = %d, want 14", len(got))
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	at := time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)

	first := idgen.Generate("Rahul Sharma", at)
	second := idgen.Generate("Rahul Sharma", at)
	if first != second {
		t.Fatalf("same inputs produced %s and %s", first, second)
	}

	if got, want := first, "RS235920243112"; got != want {
		t.Fatalf("Generate() = %s, want %s", got, want)
	}
}
