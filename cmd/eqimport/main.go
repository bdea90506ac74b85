// Command eqimport reads an Equalizer APO or GraphicEQ preset and prints the
// equalizer bands it loads to.
//
// Usage:
//
//	eqimport [flags] file
//
// A file name of "-" reads standard input.
//
// Examples:
//
//	eqimport headphones.txt
//	eqimport -format graphiceq -sort wavelet.txt
//	eqimport -response -points 20 -rate 44100 headphones.txt
//	eqimport -response -smooth 6 headphones.txt
//	eqimport -export headphones.txt > equalized.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/eq/preset"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
)

const measureSize = 16384

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("eqimport", flag.ContinueOnError)
	fs.SetOutput(stderr)

	formatName := fs.String("format", "auto", "preset format: auto, apo or graphiceq")
	rate := fs.Float64("rate", 48000, "sample rate in Hz used for -response")
	response := fs.Bool("response", false, "print the magnitude response instead of the bands")
	points := fs.Int("points", 10, "number of log-spaced response points, 20 Hz to 20 kHz")
	smooth := fs.Int("smooth", 0, "with -response, measure via FFT and apply 1/N-octave smoothing (0 = analytic)")
	export := fs.Bool("export", false, "print the loaded bands as Equalizer APO text")
	sorted := fs.Bool("sort", false, "sort bands by frequency")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: eqimport [flags] file\n\n")
		fmt.Fprintf(stderr, "Imports an Equalizer APO or GraphicEQ preset and prints the equalizer bands.\n")
		fmt.Fprintf(stderr, "A file name of \"-\" reads standard input.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	format, err := preset.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	res, err := readPreset(fs.Arg(0), stdin, format)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	s := eq.Load(res)
	if *sorted {
		s = s.Sorted()
	}

	switch {
	case *export:
		fmt.Fprint(stdout, preset.WriteAPO(s.Preset()))
	case *response:
		if err := printResponse(stdout, s, *rate, *points, *smooth); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	default:
		printBands(stdout, res, s)
	}

	return 0
}

func readPreset(name string, stdin io.Reader, format preset.Format) (preset.Result, error) {
	if name == "-" {
		return preset.ImportReader(stdin, format)
	}

	f, err := os.Open(name)
	if err != nil {
		return preset.Result{}, err
	}
	defer f.Close()

	return preset.ImportReader(f, format)
}

func printBands(w io.Writer, res preset.Result, s eq.Settings) {
	fmt.Fprintf(w, "Imported %d band(s), %d loaded, %d active. Input gain %+.2f dB\n\n",
		len(res.Bands), len(s.Bands), s.Active(), s.InputGain)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "#\tKind\tFreq (Hz)\tGain (dB)\tQ\t\n")
	fmt.Fprintf(tw, "-\t----\t---------\t---------\t-\t\n")
	for i, b := range s.Bands {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%+.2f\t%.3f\t\n", i+1, b.Kind, b.Frequency, b.Gain, b.Q)
	}
	tw.Flush()
}

func printResponse(w io.Writer, s eq.Settings, rate float64, points, smooth int) error {
	if points < 2 {
		return fmt.Errorf("points must be >= 2: %d", points)
	}

	freqs := spectrum.LogFrequencies(20, min(20000, rate/2*0.999), points)
	if freqs == nil {
		return fmt.Errorf("rate too low: %g", rate)
	}

	var (
		mags []float64
		err  error
	)
	if smooth > 0 {
		mags, err = s.MeasuredDB(freqs, rate, measureSize, smooth)
	} else {
		mags, err = s.MagnitudeDB(freqs, rate)
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Freq (Hz)\tLevel (dB)\t\n")
	fmt.Fprintf(tw, "---------\t----------\t\n")
	for i, f := range freqs {
		fmt.Fprintf(tw, "%.1f\t%+.2f\t\n", f, mags[i])
	}
	return tw.Flush()
}
