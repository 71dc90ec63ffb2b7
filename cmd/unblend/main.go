package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	unblend "github.com/unblend/unblend-go"
)

var showStats bool

var rootCmd = &cobra.Command{
	Use:   "unblend <input_image_path> <output_image_path>",
	Short: "Restore the transparency of an image flattened onto a white background",
	Long: `unblend reverses alpha compositing over white for a single image.

Each pixel's distance from pure white estimates how transparent it originally
was; the original color is recovered by undoing the white blend. The output
format follows the output extension: .png, .webp or .tiff (all lossless with
a full alpha channel). Input can be any of png, jpeg, gif, webp, bmp or tiff.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := unblend.ConvertFile(args[0], args[1]); err != nil {
			return err
		}

		fmt.Printf("Conversion completed. Output saved as: %s\n", args[1])

		if showStats {
			printStats(args[1])
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "Print an alpha coverage summary of the output")
}

func printStats(path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stats: open output: %v\n", err)
		return
	}
	defer f.Close()

	img, _, err := unblend.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stats: decode output: %v\n", err)
		return
	}

	cov := unblend.AlphaCoverage(img)
	fmt.Printf("Alpha coverage: %d transparent, %d partial, %d opaque of %d pixels (mean alpha %.1f)\n",
		cov.Transparent, cov.Partial, cov.Opaque, cov.Pixels(), cov.MeanAlpha)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
