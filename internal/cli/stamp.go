package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/orgstamp/internal/editor"
	"github.com/faizmokh/orgstamp/internal/files"
	"github.com/faizmokh/orgstamp/internal/timestamp"
)

func newStampCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var (
		link     bool
		dateFlag string
		timeFlag string
		fileFlag string
		row      int
		col      int
	)

	cmd := &cobra.Command{
		Use:   "stamp",
		Short: "Print a timestamp or insert one into a file.",
		Long:  "stamp prints <YYYY-MM-DD Ddd HH:MM> for the current time. With --file it inserts the stamp at --row/--col instead.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			at, err := resolveTime(date, timeFlag)
			if err != nil {
				return err
			}
			stamper := timestamp.NewStamperAt(func() time.Time { return at })

			if fileFlag == "" {
				fmt.Fprintln(cmd.OutOrStdout(), stamper.Stamp(link))
				return nil
			}

			h, p, err := loadHost(ctx, manager, stamper)
			if err != nil {
				return err
			}
			defer p.Unload()

			id := editor.InsertTimestampID
			if link {
				id = editor.InsertLinkedTimestampID
			}
			insert, err := h.command(id)
			if err != nil {
				return err
			}

			buf, format, err := openAt(fileFlag, row, col)
			if err != nil {
				return err
			}
			insert.Run(buf)
			if err := files.WriteLinesFormat(fileFlag, buf.Lines(), format); err != nil {
				return fmt.Errorf("write %s: %w", fileFlag, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %s at %s:%d\n", stamper.Stamp(link), fileFlag, row)
			return nil
		},
	}

	cmd.Flags().BoolVar(&link, "link", false, "Wrap the date in a [[day]] link")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Stamp date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&timeFlag, "time", "", "Stamp time in HH:MM (default: current time)")
	cmd.Flags().StringVar(&fileFlag, "file", "", "Insert into this file instead of printing")
	cmd.Flags().IntVar(&row, "row", 1, "Line to insert on, starting at 1")
	cmd.Flags().IntVar(&col, "col", -1, "Characters before the insertion point (default: end of line)")

	return cmd
}
