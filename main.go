package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/aprate/b"
	"github.com/optakt/aprate/rate"
	"github.com/optakt/aprate/ray"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {

	var (
		precision uint32
		verify    bool
		level     string
	)

	flags := pflag.NewFlagSet("aprate", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		_, _ = io.WriteString(stderr, "Usage: aprate [flags] <apr>\n")
		flags.PrintDefaults()
	}

	flags.Uint32VarP(&precision, "precision", "p", rate.MinPrecision, "working precision in significant decimal digits")
	flags.BoolVar(&verify, "verify", false, "compound the fixed-point rate over one year and log the effective APR")
	flags.StringVarP(&level, "log-level", "l", "info", "log output level")

	noColor := true
	if f, ok := stderr.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: noColor}).With().Timestamp().Logger()

	err := flags.Parse(positional(args))
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Error().Err(err).Msg("could not parse flags")
		flags.Usage()
		return 1
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Error().Err(err).Str("level", level).Msg("could not parse log level")
		return 1
	}
	log = log.Level(lvl)

	if flags.NArg() < 1 {
		log.Error().Err(rate.ErrInvalidArgument).Msg("missing apr argument")
		flags.Usage()
		return 1
	}
	input := flags.Arg(0)

	converter, err := rate.NewConverter(precision)
	if err != nil {
		log.Error().Err(err).Uint32("precision", precision).Msg("could not initialize converter")
		return 1
	}

	log.Debug().
		Str("apr", input).
		Str("ticks", humanize.Comma(b.TPY.Int64())).
		Uint32("precision", precision).
		Msg("converting apr")

	result, err := converter.ConvertString(input)
	switch {
	case errors.Is(err, rate.ErrInvalidArgument):
		log.Error().Err(err).Str("apr", input).Msg("invalid apr")
		return 1
	case errors.Is(err, rate.ErrDomainError):
		log.Error().Err(err).Str("apr", input).Msg("apr below -100%")
		return 1
	case err != nil:
		log.Error().Err(err).Str("apr", input).Msg("could not convert apr")
		return 1
	}

	err = result.Print(stdout)
	if err != nil {
		log.Error().Err(err).Msg("could not write result")
		return 1
	}

	if verify {
		effective := ray.EffectiveAPR(result.Scaled)
		approximate := ray.ApproximateAPR(result.Scaled)
		log.Info().
			Str("apr", result.APR.String()+"%").
			Str("effective", humanize.FtoaWithDigits(effective, 12)+"%").
			Str("approximate", humanize.FtoaWithDigits(approximate, 12)+"%").
			Str("rate", humanize.BigComma(result.Scaled)).
			Msg("compounded fixed-point rate over one year")
	}

	return 0
}

// positional moves negative numbers behind the flag terminator so they are
// not mistaken for shorthand flags.
func positional(args []string) []string {

	var flags, values []string
	for i, arg := range args {
		if arg == "--" {
			values = append(values, args[i+1:]...)
			break
		}
		if isNegativeNumber(arg) {
			values = append(values, arg)
			continue
		}
		flags = append(flags, arg)
	}

	if len(values) == 0 {
		return flags
	}

	out := append(flags, "--")
	return append(out, values...)
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") || len(arg) < 2 {
		return false
	}
	c := arg[1]
	return (c >= '0' && c <= '9') || c == '.'
}
