package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/render"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/session"
)

func (r *runner) horoscopeCmd() *cobra.Command {
	var (
		data   domain.BirthData
		gender string
		export string
		reader session.Feature[domain.AnalysisResult]
	)
	cmd := &cobra.Command{
		Use:   "horoscope",
		Short: "lifetime horoscope reading",
		Example: `  $ tuvi horoscope --date 1990-01-01 --time 12:00 --gender female
  $ tuvi horoscope --date 1990-01-01 --time 12:00 --gender male --export reading.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := i18n.For(r.lang)
			if err := askIfEmpty(r.opts.Ask, &data.Date, m.Horoscope.DateLabel+" (YYYY-MM-DD)"); err != nil {
				return err
			}
			if err := askIfEmpty(r.opts.Ask, &data.Time, m.Horoscope.TimeLabel+" (HH:MM)"); err != nil {
				return err
			}
			if err := askIfEmpty(r.opts.Ask, &gender, m.Horoscope.GenderLabel+" (male/female)"); err != nil {
				return err
			}
			data.Gender = domain.Gender(strings.ToLower(gender))

			r.status(m.Horoscope.Loading)
			res, err := reader.Run(cmd.Context(), func(ctx context.Context) (domain.AnalysisResult, error) {
				return r.api.Horoscope(ctx, data, r.lang)
			})
			if err != nil {
				return err
			}
			r.println(render.Horoscope(res, data, r.lang))

			if export != "" {
				return r.export(export, res, data)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&data.Date, "date", "", "birth date, YYYY-MM-DD")
	cmd.Flags().StringVar(&data.Time, "time", "", "birth time, HH:MM")
	cmd.Flags().StringVar(&gender, "gender", "", "male or female")
	cmd.Flags().StringVar(&export, "export", "", "also write the reading to a .md or .html file")
	return cmd
}

func (r *runner) export(path string, res domain.AnalysisResult, data domain.BirthData) error {
	year := r.opts.Now().Year()
	var (
		doc []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		doc, err = render.HoroscopeHTML(res, data, r.lang, year)
		if err != nil {
			return err
		}
	default:
		doc = []byte(render.HoroscopeMarkdown(res, data, r.lang, year))
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	r.status(path)
	return nil
}

func (r *runner) divinationCmd() *cobra.Command {
	var reader session.Feature[domain.DivinationResult]
	return &cobra.Command{
		Use:   "divination",
		Short: "shake the container and interpret one oracle stick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r.status(i18n.For(r.lang).Divination.Loading)
			res, err := reader.Run(cmd.Context(), func(ctx context.Context) (domain.DivinationResult, error) {
				return r.api.Divination(ctx, r.lang)
			})
			if err != nil {
				return err
			}
			r.println(render.Divination(res, r.lang))
			return nil
		},
	}
}

func (r *runner) datesCmd() *cobra.Command {
	var (
		data   domain.DateSelectionData
		event  string
		finder session.Feature[[]domain.AuspiciousDate]
	)
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "find auspicious days in a month",
		Example: `  $ tuvi dates --event wedding --birth 1990-01-01 --month 3 --year 2026
  $ tuvi dates --event "open a tea shop" --birth 1990-01-01 --month 10 --year 2026`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := i18n.For(r.lang)
			var err error
			if data.EventType, err = resolvePreset(r.opts.Ask, event, m.Dates.Title, m.Dates.EventTypes); err != nil {
				return err
			}
			if err := askIfEmpty(r.opts.Ask, &data.BirthDate, m.Horoscope.DateLabel+" (YYYY-MM-DD)"); err != nil {
				return err
			}
			now := r.opts.Now()
			if data.TargetMonth == 0 {
				data.TargetMonth = int(now.Month())
			}
			if data.TargetYear == 0 {
				data.TargetYear = now.Year()
			}

			r.status(m.Dates.Loading)
			dates, err := finder.Run(cmd.Context(), func(ctx context.Context) ([]domain.AuspiciousDate, error) {
				return r.api.SelectDates(ctx, data, r.lang)
			})
			if err != nil {
				return err
			}
			r.println(render.Dates(dates, r.lang))
			return nil
		},
	}
	cmd.Flags().StringVar(&event, "event", "", "event preset key or free text")
	cmd.Flags().StringVar(&data.BirthDate, "birth", "", "birth date, YYYY-MM-DD")
	cmd.Flags().IntVar(&data.TargetMonth, "month", 0, "target month, defaults to the current one")
	cmd.Flags().IntVar(&data.TargetYear, "year", 0, "target year, defaults to the current one")
	return cmd
}

func (r *runner) quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "print one saying",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			qs, err := r.api.Quotes(cmd.Context(), r.lang)
			if err != nil {
				return err
			}
			if len(qs) == 0 {
				return nil
			}
			r.println(render.Quote(qs[rand.IntN(len(qs))]))
			return nil
		},
	}
}
