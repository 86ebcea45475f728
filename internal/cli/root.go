// Package cli implements the tuvi terminal client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/client"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/config"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/render"
)

const version = "0.1.0"

// Options replaces the process defaults, mostly for tests.
type Options struct {
	Out        io.Writer
	Err        io.Writer
	HTTPClient *http.Client
	Ask        Asker
	Now        func() time.Time
}

type runner struct {
	opts   Options
	server string
	rawLng string
	lang   domain.Lang
	api    *client.Client
}

// NewRootCommand builds the command tree. Flag defaults come from
// TUVI_SERVER and TUVI_LANG.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Ask == nil {
		opts.Ask = surveyAsker{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	r := &runner{opts: opts}
	defaults := config.LoadClient()

	root := &cobra.Command{
		Use:     "tuvi",
		Short:   "Vietnamese horoscope, oracle sticks and talismans in the terminal",
		Version: version,
		Long: `tuvi talks to a tuvid server and renders lifetime horoscope readings,
oracle stick divinations, auspicious dates and talismans, or opens a chat
with the master Thiện Giác.`,
		Example: `  # Lifetime horoscope in English
  $ tuvi horoscope --date 1990-01-01 --time 12:00 --gender male --lang en

  # Draw an oracle stick
  $ tuvi divination

  # Chat
  $ tuvi chat`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			r.lang = domain.ParseLang(r.rawLng)
			r.api = client.New(r.server, r.opts.HTTPClient)
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	root.PersistentFlags().StringVarP(&r.server, "server", "s", defaults.Server, "tuvid base URL")
	root.PersistentFlags().StringVarP(&r.rawLng, "lang", "l", defaults.Lang, "language: vi or en")

	root.AddCommand(
		r.horoscopeCmd(),
		r.divinationCmd(),
		r.datesCmd(),
		r.talismanCmd(),
		r.chatCmd(),
		r.quoteCmd(),
	)
	for _, sub := range root.Commands() {
		run := sub.RunE
		sub.RunE = func(cmd *cobra.Command, args []string) error {
			return r.localize(run(cmd, args))
		}
	}
	return root
}

// localize swaps client-side sentinel errors for the user's sentence.
func (r *runner) localize(err error) error {
	if errors.Is(err, domain.ErrBusy) {
		return errors.New(i18n.For(r.lang).Errors.Busy)
	}
	return err
}

// Execute runs tuvi with process defaults.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCommand(Options{})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, render.Error(err))
		return err
	}
	return nil
}

func (r *runner) println(s string) { fmt.Fprintln(r.opts.Out, s) }

// status prints progress text that is not part of the result.
func (r *runner) status(s string) { fmt.Fprintln(r.opts.Err, s) }
