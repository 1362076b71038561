package judge

import "testing"

func TestOutputsEqual(t *testing.T) {
	tests := []struct {
		name     string
		actual   string
		expected string
		want     bool
	}{
		{
			name:     "identical",
			actual:   "Hello World",
			expected: "Hello World",
			want:     true,
		},
		{
			name:     "trailing newline on expected",
			actual:   "42",
			expected: "42\n",
			want:     true,
		},
		{
			name:     "surrounding whitespace on actual",
			actual:   " 42 \n",
			expected: "42",
			want:     true,
		},
		{
			name:     "different value",
			actual:   "43",
			expected: "42",
			want:     false,
		},
		{
			name:     "interior whitespace is significant",
			actual:   "Hello  World",
			expected: "Hello World",
			want:     false,
		},
		{
			name:     "both empty",
			actual:   "",
			expected: "",
			want:     true,
		},
		{
			name:     "multiline",
			actual:   "1\n2\n3\n",
			expected: "1\n2\n3",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputsEqual(tt.actual, tt.expected); got != tt.want {
				t.Errorf("outputsEqual(%q, %q) = %v, want %v", tt.actual, tt.expected, got, tt.want)
			}
		})
	}
}
