package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zhubert/replywriter/internal/clipboard"
	"github.com/zhubert/replywriter/internal/config"
	perrors "github.com/zhubert/replywriter/internal/errors"
	"github.com/zhubert/replywriter/internal/logger"
	"github.com/zhubert/replywriter/internal/mailsource"
)

// generateOptions selects where the email comes from and what happens to
// the reply.
type generateOptions struct {
	tone          string
	file          string
	eml           string
	mbox          string
	index         int
	fromClipboard bool
	copy          bool
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a reply without the TUI",
	Long: `Reads an email, asks the generation service for a reply and prints it.

The email is read from stdin unless one of --file, --eml, --mbox or
--clipboard is given. The exit status is non-zero when the email is blank
or the service fails.`,
	Example: `  pbpaste | replywriter generate --tone friendly
  replywriter generate --eml ~/Downloads/invite.eml --copy
  replywriter generate --mbox ~/mail/inbox.mbox --index 3`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genOpts.tone, "tone", "", "Reply tone: professional, casual, friendly, formal, enthusiastic")
	f.StringVar(&genOpts.file, "file", "", "Read the email as plain text from a file")
	f.StringVar(&genOpts.eml, "eml", "", "Read the email from an .eml file")
	f.StringVar(&genOpts.mbox, "mbox", "", "Read the email from an mbox mailbox")
	f.IntVar(&genOpts.index, "index", 0, "Message index within --mbox (0 is the first)")
	f.BoolVar(&genOpts.fromClipboard, "clipboard", false, "Read the email from the clipboard")
	f.BoolVar(&genOpts.copy, "copy", false, "Also copy the reply to the clipboard")
	generateCmd.MarkFlagsMutuallyExclusive("file", "eml", "mbox", "clipboard")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger.SetupConsole(debugMode && !quietMode)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return generateReply(cmd.Context(), cfg, genOpts, cmd.InOrStdin(), cmd.OutOrStdout())
}

// generateReply runs one submit through a session and writes the reply to out.
func generateReply(ctx context.Context, cfg *config.Config, opts generateOptions, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.ComponentLogger("Generate")

	content, err := readEmail(opts, in)
	if err != nil {
		return err
	}

	sess := newSession(cfg, log)
	sess.UpdateContent(content)
	if opts.tone != "" {
		sess.UpdateTone(opts.tone)
	}

	task, err := sess.Submit(ctx)
	if err != nil {
		log.Debug("submit rejected", "error", err)
		return errors.New(sess.Snapshot().ErrorMessage)
	}

	outcome := task.Wait()
	if outcome.Err != nil {
		log.Error("generation failed", "error", outcome.Err)
		return errors.New(sess.Snapshot().ErrorMessage)
	}

	fmt.Fprintln(out, outcome.Result)

	if opts.copy {
		if !sess.CopyResult() {
			return fmt.Errorf("nothing to copy")
		}
		log.Info("clipboard copy requested", "chars", len(outcome.Result))
	}
	return nil
}

// readEmail returns the email text from the selected source.
func readEmail(opts generateOptions, in io.Reader) (string, error) {
	switch {
	case opts.file != "":
		data, err := os.ReadFile(mailsource.ExpandHome(opts.file))
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", opts.file, err)
		}
		return string(data), nil

	case opts.eml != "":
		msg, err := mailsource.LoadEML(mailsource.ExpandHome(opts.eml))
		if err != nil {
			return "", err
		}
		return msg.Text(), nil

	case opts.mbox != "":
		path := mailsource.ExpandHome(opts.mbox)
		msg, err := mailsource.LoadMbox(path, opts.index)
		if perrors.Is(err, perrors.KindNotFound) {
			if n, cerr := mailsource.Count(path); cerr == nil {
				return "", fmt.Errorf("%s holds %d message(s): %w", opts.mbox, n, err)
			}
		}
		if err != nil {
			return "", err
		}
		return msg.Text(), nil

	case opts.fromClipboard:
		return clipboard.ReadText()
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
