package cli

import (
	"fmt"
	"strings"

	"github.com/amirulhakim/waktu-solat/internal/display"
	"github.com/amirulhakim/waktu-solat/internal/zones"
	"github.com/spf13/cobra"
)

func newZonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List all JAKIM prayer-time zones",
		Long:  "Print the full JAKIM zone gazetteer. Pass a search term to filter,\ne.g. `waktu-solat zones johor`.",
		RunE:  runZones,
	}
}

func runZones(cmd *cobra.Command, args []string) error {
	filter := strings.ToLower(strings.Join(args, " "))

	table := display.NewTable("Kod", "Negeri", "Kawasan")
	matched := 0
	for _, z := range zones.All() {
		areas := strings.Join(z.Areas, ", ")
		if filter != "" {
			hay := strings.ToLower(z.Code + " " + z.State + " " + areas)
			if !strings.Contains(hay, filter) {
				continue
			}
		}
		table.AddRow(z.Code, z.State, areas)
		matched++
	}

	if matched == 0 {
		return fmt.Errorf("no zones match %q", filter)
	}

	fmt.Println()
	fmt.Print(table.Render())
	fmt.Println()
	return nil
}
