package eqpaste

import "unicode/utf8"

// SplitText splits text into chunks of at most maxRunes runes.
//
// Tries to split right after a newline; falls back to a hard split on a rune
// boundary. Concatenating the chunks gives back text.
func SplitText(text string, maxRunes int) []string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return []string{text}
	}

	offsets := buildRuneOffsetTable(text)
	splitPoints := findNewlinePositions(text)

	var chunks []string
	byteStart := 0
	for byteStart < len(text) {
		budget := offsets[byteStart] + maxRunes
		if offsets[len(text)] <= budget {
			// Remaining text fits
			chunks = append(chunks, text[byteStart:])
			break
		}

		// Find the last split point that fits within budget
		bestSplit := -1
		for _, sp := range splitPoints {
			if sp <= byteStart {
				continue
			}
			if offsets[sp] > budget {
				break
			}
			bestSplit = sp
		}

		if bestSplit == -1 {
			// No newline split fits -- hard split at the rune budget
			bestSplit = byteStart
			for bestSplit < len(text) && offsets[bestSplit] < budget {
				_, size := utf8.DecodeRuneInString(text[bestSplit:])
				bestSplit += size
			}
		}

		chunks = append(chunks, text[byteStart:bestSplit])
		byteStart = bestSplit
	}
	return chunks
}

// findNewlinePositions returns the byte index right after each newline.
func findNewlinePositions(text string) []int {
	var points []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			points = append(points, i+1)
		}
	}
	return points
}

// buildRuneOffsetTable returns, for every byte position that starts a rune
// (and len(text)), the number of runes before it.
func buildRuneOffsetTable(text string) []int {
	offsets := make([]int, len(text)+1)
	count := 0
	for i := range text {
		offsets[i] = count
		count++
	}
	offsets[len(text)] = count
	return offsets
}
