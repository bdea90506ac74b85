package preset

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	reComment   = regexp.MustCompile(`^[ \t]*#`)
	reFilterOff = regexp.MustCompile(`(?i)filter\s*\d*\s*:\s*off(?:\s|$)`)
	reFilterOn  = regexp.MustCompile(`(?i)filter\s*\d*\s*:\s*on\s+([a-z]+(?:\s+(?:6|12)db)?)`)
	reFrequency = regexp.MustCompile(`(?i)fc\s+(\d+(?:,\d+)*(?:\.\d+)?)\s*hz`)
	reGain      = regexp.MustCompile(`(?i)gain\s+([+-]?\d+(?:\.\d+)?)\s*db`)
	reQuality   = regexp.MustCompile(`(?i)\bq\s+(\d+(?:\.\d+)?)`)
	rePreamp    = regexp.MustCompile(`(?i)preamp\s*:\s*([+-]?\d+(?:\.\d+)?)\s*db`)
)

// Quality and frequency factors used for the shelf and fixed-Q filter types.
// They reproduce the APO import of the LSP parametric equalizer.
const (
	shelfQuality     = 2.0 / 3.0
	shelf6dBQuality  = math.Sqrt2 / 3.0
	notchQuality     = 100.0 / 3.0
	allpassQuality   = 0.0
	lowShelf6dBScale = 2.0 / 3.0
	lowShelf12Scale  = 3.0 / 2.0
	invSqrt2         = 1 / math.Sqrt2
)

// ImportAPO parses an Equalizer APO config text.
//
// Every "Filter N: ON|OFF ..." line becomes one band, in line order. Comment
// lines starting with '#' are skipped. Lines that are not filter lines are
// checked for a "Preamp: <g> dB" clause; the last one in the text wins.
// Everything else is ignored.
func ImportAPO(text string) Result {
	res := newResult()

	for _, line := range splitLines(text) {
		if isComment(line) {
			continue
		}

		if band, ok := parseFilterLine(line); ok {
			res.Bands = append(res.Bands, band)
			continue
		}

		if preamp, ok := parsePreamp(line); ok {
			res.Preamp = preamp
		}
	}

	return res
}

// parseFilterLine builds a band from one APO filter line. It reports false
// when the line declares no filter.
func parseFilterLine(line string) (Band, bool) {
	typ, ok := parseFilterType(line)
	if !ok {
		return Band{}, false
	}

	band := DefaultBand()
	band.Type = typ

	// Fc is read first so the per-type derivations below scale the parsed
	// value.
	if freq, ok := parseFrequency(line); ok {
		band.Frequency = freq
	}

	gain, hasGain := parseGain(line)
	quality, hasQuality := parseQuality(line)

	switch typ.Kind {
	case KindOff, KindPK, KindModal, KindPEQ:
		band.Gain = pick(gain, hasGain, band.Gain)
		band.Quality = pick(quality, hasQuality, band.Quality)
	case KindLP, KindLPQ, KindHP, KindHPQ, KindBP:
		band.Quality = pick(quality, hasQuality, band.Quality)
	case KindLS, KindLSC, KindHS, KindHSC:
		band.Gain = pick(gain, hasGain, band.Gain)
		band.Quality = shelfQuality
	case KindLS6dB:
		band.Gain = pick(gain, hasGain, band.Gain)
		band.Frequency *= lowShelf6dBScale
		band.Quality = shelf6dBQuality
	case KindLS12dB:
		band.Gain = pick(gain, hasGain, band.Gain)
		band.Frequency *= lowShelf12Scale
		band.Quality = pick(quality, hasQuality, band.Quality)
	case KindHS6dB:
		band.Gain = pick(gain, hasGain, band.Gain)
		band.Frequency /= invSqrt2
		band.Quality = shelf6dBQuality
	case KindHS12dB:
		band.Gain = pick(gain, hasGain, band.Gain)
		band.Frequency *= invSqrt2
		band.Quality = pick(quality, hasQuality, band.Quality)
	case KindNO:
		band.Quality = notchQuality
	case KindAP:
		band.Quality = allpassQuality
	}

	// The shelf scalings can overflow a huge but finite Fc.
	if math.IsInf(band.Frequency, 0) {
		band.Frequency = DefaultFrequency
	}

	return band, true
}

func parseFilterType(line string) (FilterType, bool) {
	if reFilterOff.MatchString(line) {
		return FilterType{Kind: KindOff}, true
	}

	m := reFilterOn.FindStringSubmatch(line)
	if m == nil {
		return FilterType{}, false
	}

	typ := ParseFilterType(m[1])

	return typ, !typ.IsGeneric()
}

func parseFrequency(line string) (float64, bool) {
	m := reFrequency.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return parseNumber(stripThousands(m[1]))
}

func parseGain(line string) (float64, bool) {
	return parseClause(reGain, line)
}

func parseQuality(line string) (float64, bool) {
	return parseClause(reQuality, line)
}

func parsePreamp(line string) (float64, bool) {
	return parseClause(rePreamp, line)
}

func parseClause(re *regexp.Regexp, line string) (float64, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return parseNumber(m[1])
}

// parseNumber converts s to a finite float64. Out-of-range values are
// reported as unparseable.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func stripThousands(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

func pick(v float64, ok bool, fallback float64) float64 {
	if ok {
		return v
	}
	return fallback
}

// splitLines splits text on '\n' and drops empty lines. Whitespace-only
// lines are kept; they simply match nothing.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := raw[:0]
	for _, l := range raw {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func isComment(line string) bool {
	return reComment.MatchString(line)
}
