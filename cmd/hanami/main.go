// Command hanami runs the interactive installation: a procedural cherry
// tree built from particles that disperses into a galaxy of stars and back
// under gesture control, with framed photos hanging in the crown.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hanami/anim"
	"hanami/io"
)

const defaultConfigPath = "hanami.json"

var rootCmd = &cobra.Command{
	Use:   "hanami",
	Short: "Interactive cherry-blossom particle installation",
	Long: `hanami grows a fractal cherry tree out of particles and lets hand
gestures disperse it into a galaxy. Without a camera-based classifier the
keyboard stands in for the hand: hold F for a fist, O for an open hand,
1-4 for finger counts, and steer the orbit camera with the cursor.

Settings come from a JSON config file; any flag set on the command line
overrides the file for this run.`,
	SilenceUsage: true,
	RunE:         runInstallation,
}

func init() {
	def := io.DefaultConfig()
	f := rootCmd.Flags()
	f.String("config", defaultConfigPath, "installation config file (missing file = defaults)")
	f.Int("depth", def.Depth, "branch recursion depth")
	f.Float32("branch-length", def.BranchLength, "trunk length in world units")
	f.Int64("seed", def.Seed, "generation seed (0 = fresh tree every run)")
	f.Int("photos", def.PhotoCount, "number of photo cards hanging in the crown")
	f.String("photos-dir", def.PhotosDir, "directory of photos (empty = procedural placeholders)")
	f.String("frame-model", def.FrameModel, "glTF picture-frame model (empty = procedural frame)")
	f.String("palette", def.Palette, "mood palette ("+strings.Join(anim.PaletteNames(), ", ")+")")
	f.Int("width", def.Width, "window width in screen points")
	f.Int("height", def.Height, "window height in screen points")
	f.Bool("no-bloom", false, "disable the HDR bloom pass")
	f.Bool("mute", false, "start with the ambience muted")
}

func runInstallation(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()

	path, _ := f.GetString("config")
	cfg, err := io.LoadConfig(path)
	if err != nil {
		return err
	}

	// Flags the user actually set override the file.
	if f.Changed("depth") {
		cfg.Depth, _ = f.GetInt("depth")
	}
	if f.Changed("branch-length") {
		cfg.BranchLength, _ = f.GetFloat32("branch-length")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("photos") {
		cfg.PhotoCount, _ = f.GetInt("photos")
	}
	if f.Changed("photos-dir") {
		cfg.PhotosDir, _ = f.GetString("photos-dir")
	}
	if f.Changed("frame-model") {
		cfg.FrameModel, _ = f.GetString("frame-model")
	}
	if f.Changed("palette") {
		cfg.Palette, _ = f.GetString("palette")
	}
	if f.Changed("width") {
		cfg.Width, _ = f.GetInt("width")
	}
	if f.Changed("height") {
		cfg.Height, _ = f.GetInt("height")
	}
	if f.Changed("no-bloom") {
		cfg.Bloom = false
	}

	// Validation runs before any GL work so bad parameters fail in the
	// terminal, not in a black window.
	if err := cfg.Validate(); err != nil {
		return err
	}
	pal, err := anim.PaletteByName(cfg.Palette)
	if err != nil {
		return err
	}

	mute, _ := f.GetBool("mute")
	return launch(cfg, pal, mute)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
