package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typomap/typomap/pkg/distance"
	"github.com/typomap/typomap/pkg/kybd"
)

// newInfoCmd creates the info command, which decodes an existing KYBD
// file and summarizes its contents. Useful for sanity-checking files
// shipped inside an app bundle.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Decode and summarize a KYBD layout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	info, err := os.Stat(path)
	if err == nil && info.Size() != kybd.FileSize {
		printDetail("size %d bytes (expected %d)", info.Size(), kybd.FileSize)
	}

	m, err := kybd.ReadFile(path)
	if err != nil {
		return err
	}

	hist := m.Histogram()
	onLayout := 0
	for letter := 'a'; letter <= 'z'; letter++ {
		if len(m.Neighbors(letter)) > 0 {
			onLayout++
		}
	}

	printSuccess("%s", path)
	printKeyValue("size", fmt.Sprintf("%d bytes", kybd.FileSize))
	printKeyValue("version", fmt.Sprintf("%d", kybd.Version))
	printKeyValue("letters", fmt.Sprintf("%d with neighbors", onLayout))
	printKeyValue("same", fmt.Sprintf("%d cells", hist[distance.Same]))
	printKeyValue("adjacent", fmt.Sprintf("%d cells", hist[distance.Adjacent]))
	printKeyValue("near", fmt.Sprintf("%d cells", hist[distance.Near]))
	printKeyValue("unrelated", fmt.Sprintf("%d cells", hist[distance.Unrelated]))

	if !m.Symmetric() {
		printError("matrix is not symmetric")
	}
	for class := range hist {
		switch class {
		case distance.Same, distance.Adjacent, distance.Near, distance.Unrelated:
		default:
			printError("unexpected class value %d in matrix", class)
		}
	}
	return nil
}
