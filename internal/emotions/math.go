package emotions

import "math"

// cosineSimilarity returns the cosine of the angle between two vectors.
// Zero-norm vectors carry no direction, so their similarity is 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// centroid is the coordinate-wise mean of the given vectors. Vectors
// shorter than the first one contribute zeros to the missing tail.
func centroid(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}
	dim := len(vectors[0])
	sums := make([]float64, dim)
	for _, vec := range vectors {
		for i, v := range vec {
			if i >= dim {
				break
			}
			sums[i] += float64(v)
		}
	}
	out := make([]float32, dim)
	for i, sum := range sums {
		out[i] = float32(sum / float64(len(vectors)))
	}
	return out
}

// round4 rounds to 4 decimal places, the precision every reported
// similarity uses.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
