package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/sasswave-labs/sasswave-create/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

type versionInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

func currentVersion() versionInfo {
	return versionInfo{
		Version:  buildVersion,
		Commit:   buildCommit,
		Date:     buildDate,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		info := currentVersion()

		switch {
		case versionShort:
			fmt.Fprintln(out, info.Version)
		case versionJSON:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				return fmt.Errorf("encoding version info: %w", err)
			}
		default:
			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s, %s %s)\n",
				branding.CLIName(), info.Version, info.Commit, info.Date, info.Go, info.Platform)
		}
		return nil
	},
}
