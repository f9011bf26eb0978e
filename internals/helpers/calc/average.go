// Package calc menghitung angka turunan (rata-rata, persentase kehadiran, status santri)
// dari baris yang sudah diambil dari database.
package calc

import (
	"math"

	"santri_backend/internals/constants"
)

// Batas status santri berdasarkan rata-rata nilai
const (
	MutqinMinScore      = 85.0
	MutawassithMinScore = 70.0
)

// Average: rata-rata aritmetika; himpunan kosong → 0.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// ScoreAverage: rata-rata tiga dimensi penilaian (adab, disiplin, setoran).
func ScoreAverage(adab, disiplin, setoran float64) float64 {
	return Average([]float64{adab, disiplin, setoran})
}

// Round2 membulatkan ke dua desimal untuk ditampilkan/disimpan.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percent: part/total dibulatkan ke bilangan bulat terdekat; total 0 → 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

// StatusFor memetakan rata-rata nilai ke tingkat Mutqin/Mutawassith/Dhaif.
func StatusFor(avg float64) string {
	switch {
	case avg >= MutqinMinScore:
		return constants.StatusMutqin
	case avg >= MutawassithMinScore:
		return constants.StatusMutawassith
	default:
		return constants.StatusDhaif
	}
}
