package crypto

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestSecretChecker_Check covers matching and non-matching candidates.
func TestSecretChecker_Check(t *testing.T) {
	checker := NewSecretChecker("s3cret-admin")

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "exact match", candidate: "s3cret-admin", want: true},
		{name: "empty", candidate: "", want: false},
		{name: "prefix", candidate: "s3cret", want: false},
		{name: "longer", candidate: "s3cret-admin!", want: false},
		{name: "different case", candidate: "S3CRET-ADMIN", want: false},
		{name: "last byte differs", candidate: "s3cret-admiN", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checker.Check(tt.candidate))
		})
	}
}

func medianCheckDuration(checker SecretChecker, candidate string, rounds int) time.Duration {
	samples := make([]time.Duration, rounds)
	for i := range samples {
		start := time.Now()
		for range 200 {
			checker.Check(candidate)
		}
		samples[i] = time.Since(start)
	}
	slices.Sort(samples)
	return samples[len(samples)/2]
}

// TestSecretChecker_TimingIndependentOfMismatchPosition compares the median
// cost of candidates differing at the first and at the last byte. The bound
// is loose so scheduler noise does not fail the test; a short-circuiting
// comparison over a long secret would still exceed it.
func TestSecretChecker_TimingIndependentOfMismatchPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test skipped in short mode")
	}

	secret := strings.Repeat("a", 4096)
	checker := NewSecretChecker(secret)
	firstDiffers := "b" + secret[1:]
	lastDiffers := secret[:len(secret)-1] + "b"

	// warm up
	medianCheckDuration(checker, firstDiffers, 5)

	early := medianCheckDuration(checker, firstDiffers, 51)
	late := medianCheckDuration(checker, lastDiffers, 51)

	ratio := float64(late) / float64(early)
	assert.InDelta(t, 1.0, ratio, 0.5, "early=%s late=%s", early, late)
}
