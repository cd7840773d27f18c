package annotate

import "testing"

func TestCountLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 faces found"},
		{1, "1 face found"},
		{2, "2 faces found"},
		{7, "7 faces found"},
	}

	for _, tt := range tests {
		got := CountLabel(tt.n)
		if got != tt.want {
			t.Errorf("CountLabel(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFaceLabel(t *testing.T) {
	tests := []struct {
		name       string
		index      int
		distanceCM float64
		want       string
	}{
		{
			name:       "first face, whole distance",
			index:      0,
			distanceCM: 112.0,
			want:       "Face 1 Dist: 112.00 cm",
		},
		{
			name:       "third face",
			index:      2,
			distanceCM: 56.0,
			want:       "Face 3 Dist: 56.00 cm",
		},
		{
			name:       "fractional distance rounds to two decimals",
			index:      1,
			distanceCM: 33.3333,
			want:       "Face 2 Dist: 33.33 cm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FaceLabel(tt.index, tt.distanceCM)
			if got != tt.want {
				t.Errorf("FaceLabel(%d, %v) = %q, want %q", tt.index, tt.distanceCM, got, tt.want)
			}
		})
	}
}
