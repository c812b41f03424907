package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var optinCmd = &cobra.Command{
	Use:       "optin [on|off]",
	Short:     "Show or change peer comparison consent",
	Long:      "Peer comparison is off until the learner opts in. Opting out removes them from the peer pool on the next refresh.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveUser(cmd)
		if err != nil {
			return err
		}
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		if len(args) == 1 {
			var on bool
			switch args[0] {
			case "on":
				on = true
			case "off":
				on = false
			default:
				return fmt.Errorf("invalid value %q: must be on or off", args[0])
			}
			if err := rt.engine.SetPeerOptIn(ctx, userID, on); err != nil {
				return err
			}
		}

		optedIn, err := rt.engine.PeerOptedIn(ctx, userID)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return printJSON(out, map[string]any{"userId": userID, "optedIn": optedIn})
		}
		if optedIn {
			fmt.Fprintln(out, "Peer comparison: on")
		} else {
			fmt.Fprintln(out, "Peer comparison: off")
		}
		return nil
	},
}
