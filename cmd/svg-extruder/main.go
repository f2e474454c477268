package main

import (
	"fmt"
	"os"

	svgextruder "github.com/hellenic-development/svg-extruder"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = svgextruder.Version

var (
	inputDir  string
	outputDir string
	format    string
	extrude   float64
	mode      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "svg-extruder",
		Short: "Convert SVG outlines into extruded 3D mesh assets",
		Long:  "A batch tool that converts a directory of SVG glyph/logo outlines into extruded glTF meshes for signage-style 3D assets",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&inputDir, "in", "i", "", "Input directory of .svg files (required)")
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", "meshes", "Output directory for mesh artifacts (created if absent)")
	rootCmd.Flags().StringVar(&format, "format", "glb", "Export format: glb (binary) or gltf (separate with .bin side-car)")
	rootCmd.Flags().Float64Var(&extrude, "extrude", 0.01, "Extrusion depth in meters (non-negative; 0 gives a flat solid)")
	rootCmd.Flags().StringVar(&mode, "mode", "curve", "Import mode: curve, gp (stroke-path) or auto")

	rootCmd.MarkFlagRequired("in")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("svg-extruder version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🔤 SVG Mesh Extruder")
	cyan.Println("====================")
	cyan.Println()

	opts := svgextruder.Options{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Format:    format,
		Extrude:   extrude,
		Mode:      mode,
		Logger:    &cliLogger{},
	}

	result, err := svgextruder.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cyan.Println("\n📊 Batch Summary:")
	fmt.Printf("  • Files: %d\n", len(result.Files))
	fmt.Printf("  • Exported: %d\n", result.Exported)
	if result.Skipped > 0 {
		fmt.Printf("  • Skipped: %d\n", result.Skipped)
	}
	if result.Failed > 0 {
		fmt.Printf("  • Failed: %d\n", result.Failed)
	}

	green.Printf("\n✨ Wrote %d mesh artifact(s) to %s\n\n", result.Exported, outputDir)
}

// cliLogger implements svgextruder.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
