package ft8token

/*------------------------------------------------------------------
 *
 * Purpose:   	Show how the fields of FT8 messages are classified.
 *
 * Description:	Tokens come from the command line or, if there are
 *		none, from stdin.  Each line of stdin is split on white
 *		space and every field is looked at on its own, so the
 *		output of a decoder can be piped straight in:
 *
 *			KK5JY N5OSL EM16
 *			N5OSL KK5JY R-05
 *
 *		There is no attempt to understand a line as a whole
 *		message.
 *
 *---------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Sample tokens for --self-test.
var selfTestTokens = []string{
	// Grids and calls.
	"kk5jy", "n5osl", "n7ul", "rr73", "rr7a", "em16", "FO33",
	// Acknowledgements and reports.
	"+13", "-05", "R+03", "r-3", "RRR", "RR73", "RR72", "73",
	// Compound calls.
	"kk5jy/r", "n5osl/3", "n7ul/qrp", "ve3/ab0cd", "<ab0cd>", "<ab0cd/33>", "<...>",
}

type TokenReport struct {
	Time       string   `yaml:"time,omitempty"`
	Token      string   `yaml:"token"`
	Kind       Kind     `yaml:"kind"`
	BaseCall   string   `yaml:"base_call,omitempty"`
	Latitude   *float64 `yaml:"latitude,omitempty"`
	Longitude  *float64 `yaml:"longitude,omitempty"`
	DistanceKm *float64 `yaml:"distance_km,omitempty"`
	BearingDeg *float64 `yaml:"bearing_deg,omitempty"`
}

/*------------------------------------------------------------------
 *
 * Name:        DescribeToken
 *
 * Purpose:     Gather everything we know about one token.
 *
 * Inputs:	token		- Field from a message.
 *		homeGrid	- Our locator, or empty.  Assumed valid.
 *
 * Description:	Position is filled in for grids only.  IsGrid accepts
 *		any letters but the first pair of a locator only goes
 *		from A to R, so something like ZZ11 is a grid by shape
 *		but has no position.
 *
 *----------------------------------------------------------------*/

func DescribeToken(token string, homeGrid string) TokenReport {
	var r = TokenReport{ //nolint:exhaustruct
		Token: token,
		Kind:  Classify(token),
	}

	if base, ok := BaseCall(token); ok {
		r.BaseCall = base
	}

	if !r.Kind.Has(KindGrid) {
		return r
	}

	var lat, lon, err = GridToLatLong(token)
	if err != nil {
		logger.Debug("Grid has no position", "token", token, "err", err)
		return r
	}

	r.Latitude = &lat
	r.Longitude = &lon

	if homeGrid != "" {
		var dist, distErr = GridDistanceKm(homeGrid, token)
		var brg, brgErr = GridBearingDeg(homeGrid, token)

		if distErr == nil && brgErr == nil {
			r.DistanceKm = &dist
			r.BearingDeg = &brg
		}
	}

	return r
}

func (r TokenReport) writeText(w io.Writer) error {
	var line strings.Builder

	if r.Time != "" {
		line.WriteString(r.Time)
		line.WriteString(" ")
	}

	fmt.Fprintf(&line, "%-12s %-14s", r.Token, r.Kind)

	if r.BaseCall != "" {
		fmt.Fprintf(&line, " base %s", r.BaseCall)
	}

	if r.Latitude != nil && r.Longitude != nil {
		fmt.Fprintf(&line, " %.2f %.2f", *r.Latitude, *r.Longitude)
	}

	if r.DistanceKm != nil && r.BearingDeg != nil {
		fmt.Fprintf(&line, " %.0f km %.0f deg", *r.DistanceKm, *r.BearingDeg)
	}

	var _, err = fmt.Fprintln(w, strings.TrimRight(line.String(), " "))

	return err
}

/*------------------------------------------------------------------
 *
 * Name:        ft8tokenRun
 *
 * Purpose:     Classify tokens and write the results.
 *
 * Inputs:	cfg	- Already validated.
 *		tokens	- From the command line.  If empty, read "in".
 *		in	- Lines of white space separated tokens.
 *		out	- Where results go.
 *
 *----------------------------------------------------------------*/

func ft8tokenRun(cfg *Config, tokens []string, in io.Reader, out io.Writer) error {
	var stamp *strftime.Strftime
	if cfg.TimestampFormat != "" {
		var err error
		stamp, err = strftime.New(cfg.TimestampFormat)
		if err != nil {
			return fmt.Errorf("timestamp format %q: %w", cfg.TimestampFormat, err)
		}
	}

	var enc *yaml.Encoder
	if cfg.Format == "yaml" {
		enc = yaml.NewEncoder(out)
		enc.SetIndent(2)
	}

	var emit = func(token string) error {
		var r = DescribeToken(token, cfg.HomeGrid)

		if r.Kind == KindNone {
			logger.Debug("Token not recognised", "token", token)
		}

		if stamp != nil {
			r.Time = stamp.FormatString(time.Now())
		}

		if enc != nil {
			return enc.Encode(r)
		}

		return r.writeText(out)
	}

	var err = eachToken(tokens, in, emit)

	if enc != nil {
		if closeErr := enc.Close(); err == nil {
			err = closeErr
		}
	}

	return err
}

func eachToken(tokens []string, in io.Reader, fn func(string) error) error {
	if len(tokens) > 0 {
		for _, t := range tokens {
			if err := fn(t); err != nil {
				return err
			}
		}

		return nil
	}

	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		for _, t := range strings.Fields(scanner.Text()) {
			if err := fn(t); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return nil
}

func Ft8TokenMain() {
	var configFile = pflag.StringP("config", "c", "", "YAML configuration file.")
	pflag.StringP("format", "f", "text", "Output format, text or yaml.")
	pflag.StringP("home-grid", "g", "", "Home Maidenhead locator.  Adds distance and bearing to grids.")
	pflag.StringP("timestamp-format", "T", "", "Precede each result with 'strftime' format time stamp.")
	var verbose = pflag.BoolP("verbose", "v", false, "Show debug messages.")
	var selfTest = pflag.Bool("self-test", false, "Classify a built in list of sample tokens.")
	var showVersion = pflag.Bool("version", false, "Print version and exit.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Classify the fields of FT8 / FT4 messages.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [token ...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "With no tokens, lines are read from stdin.\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Settings may also come from the --config file or %s* environment variables.\n", ENV_PREFIX)
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		printVersion(*verbose)
		return
	}

	var cfg, cfgErr = LoadConfig(*configFile)
	if cfgErr != nil {
		logger.Error("Could not load configuration", "err", cfgErr)
		os.Exit(1)
	}

	cfg.applyFlags(pflag.CommandLine)

	if err := log_init(nil, cfg.LogLevel); err != nil {
		logger.Error("Bad log level", "err", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}

	var tokens = pflag.Args()
	if *selfTest {
		tokens = selfTestTokens
	}

	logger.Debug("Starting", "format", cfg.Format, "home_grid", cfg.HomeGrid, "tokens", len(tokens))

	if err := ft8tokenRun(cfg, tokens, os.Stdin, os.Stdout); err != nil {
		logger.Error("Failed", "err", err)
		os.Exit(1)
	}
}
