package bagit

import "fmt"

// FormatSize renders a byte count as the human-readable Bag-Size
// value: plain bytes below 1024, otherwise scaled through KB..PB at
// 1024 steps with two decimal places.
func FormatSize(numBytes int64) string {
	if numBytes < 1024 {
		return fmt.Sprintf("%d B", numBytes)
	}

	size := float64(numBytes)
	units := []string{"KB", "MB", "GB", "TB", "PB"}
	for _, unit := range units {
		size /= 1024.0
		if size < 1024.0 || unit == "PB" {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
	}
	return fmt.Sprintf("%.2f PB", size)
}
