package indicator

// volumeWindow is the latest sample plus the nine preceding it.
const volumeWindow = 10

// VolumeRatio compares the latest volume sample against the mean of the nine
// samples immediately preceding it. With fewer than ten samples, or a
// non-positive trailing mean, the ratio stays at the neutral 1.
func VolumeRatio(vols []float64) float64 {
	if len(vols) < volumeWindow {
		return 1
	}
	last := vols[len(vols)-1]
	sum := 0.0
	for _, v := range vols[len(vols)-volumeWindow : len(vols)-1] {
		sum += v
	}
	avg := sum / float64(volumeWindow-1)
	if avg <= 0 {
		return 1
	}
	return last / avg
}
