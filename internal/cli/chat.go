package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/render"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/session"
)

func (r *runner) chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "talk with the master Thiện Giác",
		Long: `Start an interactive chat. Replies stream as they are written.

Commands inside the chat:
  /lang vi|en   switch language and start over
  /quit         leave`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chat := session.NewChat(r.lang)
			r.println(render.ChatMessage(chat.Messages()[0]))

			for {
				line, err := r.opts.Ask.Input(i18n.For(chat.Lang()).Chat.Placeholder, "")
				if errors.Is(err, errAborted) {
					return nil
				}
				if err != nil {
					return err
				}
				line = strings.TrimSpace(line)

				switch {
				case line == "":
					continue
				case line == "/quit" || line == "/exit":
					return nil
				case strings.HasPrefix(line, "/lang"):
					chat.SetLang(domain.ParseLang(strings.TrimSpace(strings.TrimPrefix(line, "/lang"))))
					r.println(render.ChatMessage(chat.Messages()[0]))
					continue
				}

				r.status(i18n.For(chat.Lang()).Chat.Thinking)
				fmt.Fprint(r.opts.Out, render.BotPrefix())
				var shown strings.Builder
				err = chat.Converse(cmd.Context(), r.api, line, func(chunk string) {
					shown.WriteString(chunk)
					fmt.Fprint(r.opts.Out, chunk)
				})
				switch {
				case err == nil:
				case cmd.Context().Err() != nil:
					fmt.Fprintln(r.opts.Out)
					return nil
				case errors.Is(err, domain.ErrBusy):
					fmt.Fprint(r.opts.Out, r.localize(err).Error())
				default:
					// the transcript already holds the failure; print what the
					// stream has not shown yet
					msgs := chat.Messages()
					fmt.Fprint(r.opts.Out, strings.TrimPrefix(msgs[len(msgs)-1].Text, shown.String()))
				}
				fmt.Fprintln(r.opts.Out)
			}
		},
	}
}
