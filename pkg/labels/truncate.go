package labels

// Ellipsis is appended to truncated labels.
const Ellipsis = "..."

// TruncateText shortens text so that it fits in maxWidth pixels.
//
// Text that already fits is returned unchanged. Otherwise the result is the
// longest rune prefix followed by Ellipsis whose width is at most maxWidth,
// found by binary search over the prefix length. When not even the bare
// ellipsis fits, text is returned unchanged.
func TruncateText(m TextMeasurer, text string, maxWidth float64, font Font) string {
	if EstimateTextWidth(m, text, font) <= maxWidth {
		return text
	}

	runes := []rune(text)
	result := text
	low, high := 0, len(runes)-1
	for low <= high {
		mid := (low + high) / 2
		candidate := string(runes[:mid]) + Ellipsis
		if EstimateTextWidth(m, candidate, font) <= maxWidth {
			result = candidate
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return result
}
