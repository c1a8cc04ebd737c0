package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexusmind/nexus/alert"
	"github.com/nexusmind/nexus/logging"
)

var (
	alertEnergy  float64
	alertVerbose bool
)

var alertCmd = &cobra.Command{
	Use:   "alert",
	Short: "Run the two-stage alert pipeline and print the notification record",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.Logger(logging.NoOpLogger{})
		if alertVerbose {
			logger = logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
		}

		o := alert.NewOrchestrator(func(o *alert.Options) { o.Logger = logger })
		notif, err := o.Activate(alertEnergy)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(notif, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	alertCmd.Flags().Float64Var(&alertEnergy, "energy", 100.0, "raw signal energy for the analysis stage")
	alertCmd.Flags().BoolVarP(&alertVerbose, "verbose", "v", false, "debug logging to stderr")
}
