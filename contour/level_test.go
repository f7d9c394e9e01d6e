package contour

import "testing"

func TestValidateLevels(t *testing.T) {
	cases := []struct {
		name    string
		levels  []float32
		wantDir Direction
		wantErr bool
	}{
		{"empty", nil, Increasing, false},
		{"single", []float32{1}, Increasing, false},
		{"increasing", []float32{1, 2, 3}, Increasing, false},
		{"decreasing", []float32{3, 2, 1}, Decreasing, false},
		{"flat", []float32{2, 2, 2}, Increasing, false},
		{"increasing then decreasing", []float32{0.1, 0.2, 0.1}, 0, true},
		{"decreasing then increasing", []float32{5, 4, 6}, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir, err := validateLevels(tc.levels)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dir != tc.wantDir {
				t.Errorf("direction: want %v, got %v", tc.wantDir, dir)
			}
		})
	}
}
