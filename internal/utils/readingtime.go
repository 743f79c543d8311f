package utils

import "strings"

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

// EstimateReadingMinutes estimates reading time in whole minutes for the
// given content: word count over 200 wpm, rounded up, minimum 1.
func EstimateReadingMinutes(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
