package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	appver "tmenu/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tmenu version",
		Run: func(cmd *cobra.Command, args []string) {
			// keep output simple for scripting
			fmt.Println(appver.AppVersion)
		},
	}
}
