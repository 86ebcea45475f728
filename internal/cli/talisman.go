package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/render"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/session"
)

func (r *runner) talismanCmd() *cobra.Command {
	var (
		data  domain.TalismanRequest
		wish  string
		out   string
		maker session.Feature[domain.TalismanResult]
	)
	cmd := &cobra.Command{
		Use:   "talisman",
		Short: "draw a personal talisman and save its image",
		Example: `  $ tuvi talisman --name "Nguyễn Văn A" --birth 1990-01-01 --wish wealth
  $ tuvi talisman --name Lan --birth 1995-05-20 --wish "pass the exam" --out lan`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := i18n.For(r.lang)
			if err := askIfEmpty(r.opts.Ask, &data.Name, m.Errors.NameRequired); err != nil {
				return err
			}
			if strings.TrimSpace(data.Name) == "" {
				return fmt.Errorf("%s", m.Errors.NameRequired)
			}
			if err := askIfEmpty(r.opts.Ask, &data.BirthDate, m.Horoscope.DateLabel+" (YYYY-MM-DD)"); err != nil {
				return err
			}
			var err error
			if data.Wish, err = resolvePreset(r.opts.Ask, wish, m.Talisman.Title, m.Talisman.WishTypes); err != nil {
				return err
			}

			r.status(m.Talisman.Loading)
			res, err := maker.Run(cmd.Context(), func(ctx context.Context) (domain.TalismanResult, error) {
				return r.api.Talisman(ctx, data, r.lang)
			})
			if err != nil {
				return err
			}

			path, err := saveImage(out, res, m)
			if err != nil {
				return err
			}
			r.println(render.Talisman(res, path, r.lang))
			return nil
		},
	}
	cmd.Flags().StringVar(&data.Name, "name", "", "full name")
	cmd.Flags().StringVar(&data.BirthDate, "birth", "", "birth date, YYYY-MM-DD")
	cmd.Flags().StringVar(&wish, "wish", "", "wish preset key or free text")
	cmd.Flags().StringVarP(&out, "out", "o", "talisman", "image file name; the extension follows the image type")
	return cmd
}

// imageExt picks the file extension for a talisman image.
func imageExt(mime string) string {
	switch mime {
	case domain.MimeSVG:
		return ".svg"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	}
	return ".png"
}

func saveImage(base string, res domain.TalismanResult, m *i18n.Messages) (string, error) {
	img, err := base64.StdEncoding.DecodeString(res.ImageData)
	if err != nil || len(img) == 0 {
		return "", fmt.Errorf("%s", m.Errors.ImageFailed)
	}
	path := strings.TrimSuffix(base, filepath.Ext(base)) + imageExt(res.MimeType)
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return "", fmt.Errorf("write talisman image: %w", err)
	}
	return path, nil
}
