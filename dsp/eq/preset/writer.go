package preset

import (
	"fmt"
	"strconv"
	"strings"
)

// WriteAPO writes r as Equalizer APO config text: a preamp line followed by
// one numbered filter line per band. Generic bands are written as PK, and
// OFF bands are written disabled with their parameters kept.
func WriteAPO(r Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Preamp: %s dB\n", formatNumber(r.Preamp))

	for i, b := range r.Bands {
		fmt.Fprintf(&sb, "Filter %d: ", i+1)

		switch b.Type.Kind {
		case KindOff:
			sb.WriteString("OFF")
		case KindGeneric:
			sb.WriteString("ON PK")
		default:
			sb.WriteString("ON ")
			sb.WriteString(b.Type.String())
		}

		fmt.Fprintf(&sb, " Fc %s Hz Gain %s dB Q %s\n",
			formatNumber(b.Frequency), formatNumber(b.Gain), formatNumber(b.Quality))
	}

	return sb.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
