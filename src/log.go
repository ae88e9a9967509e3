package ft8token

/*------------------------------------------------------------------
 *
 * Purpose:	Diagnostic messages for the command line tool.
 *
 * Description: Results go to stdout.  Anything about the run itself,
 *		bad configuration, unreadable input, tokens that look
 *		odd, goes to stderr through this logger so the two
 *		never get mixed up in a pipeline.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ //nolint:exhaustruct
	Prefix: "ft8token",
	Level:  log.InfoLevel,
})

/*------------------------------------------------------------------
 *
 * Function:	log_init
 *
 * Purpose:	Set where diagnostics go and how much detail.
 *
 * Inputs:	w	- Destination.  nil means leave it alone.
 *
 *		level	- "debug", "info", "warn", "error".
 *			  Empty string means info.
 *
 *------------------------------------------------------------------*/

func log_init(w io.Writer, level string) error {
	if w != nil {
		logger.SetOutput(w)
	}

	if level == "" {
		level = "info"
	}

	var lvl, err = log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}

	logger.SetLevel(lvl)

	return nil
}
