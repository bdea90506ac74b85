package preset

import "regexp"

const (
	graphicFrequency = `\d+(?:,\d+)*(?:\.\d+)?`
	graphicGain      = `[+-]?\d+(?:\.\d+)?`
	graphicBand      = graphicFrequency + `\s+` + graphicGain
)

var (
	reGraphicEQ = regexp.MustCompile(
		`(?i)^\s*graphiceq\s*:\s*(` + graphicBand + `(?:\s*;\s*` + graphicBand + `)*)\s*;?\s*$`)
	reGraphicBand   = regexp.MustCompile(`(` + graphicFrequency + `)\s+(` + graphicGain + `)`)
	reGraphicHeader = regexp.MustCompile(`(?i)^\s*graphiceq\s*:`)
)

// ImportGraphicEQ parses a GraphicEQ config text.
//
// The first line of the form "GraphicEQ: <f> <g>; <f> <g>; ..." yields one
// generic band per frequency/gain pair, in order, with the default quality.
// Scanning stops at that line; later GraphicEQ lines are never read. A text
// without such a line yields an empty result.
func ImportGraphicEQ(text string) Result {
	res := newResult()

	for _, line := range splitLines(text) {
		if isComment(line) {
			continue
		}

		m := reGraphicEQ.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		for _, pair := range reGraphicBand.FindAllStringSubmatch(m[1], -1) {
			band := DefaultBand()
			if freq, ok := parseNumber(stripThousands(pair[1])); ok {
				band.Frequency = freq
			}
			if gain, ok := parseNumber(pair[2]); ok {
				band.Gain = gain
			}
			res.Bands = append(res.Bands, band)
		}

		return res
	}

	return res
}
