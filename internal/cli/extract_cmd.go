package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mom-planner/internal/intake"
	"mom-planner/pkg/pdftext"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract FILE.pdf",
		Short: "Print the text MOM reads from a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return err
			}

			text, err := pdftext.Extract(f, info.Size())
			if err != nil {
				fmt.Fprintln(errOut(cmd), intake.PDFFallbackText)
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
