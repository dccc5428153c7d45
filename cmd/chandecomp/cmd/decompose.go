package cmd

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arl/go-chandecomp/router"
	"github.com/arl/go-chandecomp/tile"
)

// decomposeCmd represents the decompose command
var decomposeCmd = &cobra.Command{
	Use:   "decompose DESIGN",
	Short: "decompose a routing area into channels",
	Long: `Decompose the free space of a routing area into channels.

DESIGN is a YAML file giving the routing area and the bounding boxes of
the placed subcells. The channel list is printed on standard output and
the channel structure can be rendered to a PNG image.`,
	Run: doDecompose,
}

var (
	cfgVal   string
	outVal   string
	scaleVal int
	quietVal bool
)

func init() {
	RootCmd.AddCommand(decomposeCmd)

	decomposeCmd.Flags().StringVar(&cfgVal, "config", "chandecomp.yml", "grid settings")
	decomposeCmd.Flags().StringVar(&outVal, "out", "", "render the channel structure to this PNG file")
	decomposeCmd.Flags().IntVar(&scaleVal, "scale", 4, "pixels per routing unit in the rendered image")
	decomposeCmd.Flags().BoolVar(&quietVal, "quiet", false, "do not dump the decomposition log")
}

// design is the YAML description of a routing problem. Rectangles are
// given as [xbot, ybot, xtop, ytop].
type design struct {
	Area         [4]int32 `yaml:"area"`
	Obstructions []struct {
		Bbox [4]int32 `yaml:"bbox"`
		NX   int32    `yaml:"nx"`
		NY   int32    `yaml:"ny"`
		DX   int32    `yaml:"dx"`
		DY   int32    `yaml:"dy"`
	} `yaml:"obstructions"`
}

func doDecompose(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("no design file provided")
		cmd.Usage()
		return
	}
	check(fileExists(args[0]))

	cfg := router.NewConfig()
	if err := fileExists(cfgVal); err == nil {
		check(unmarshalYAMLFile(cfgVal, &cfg))
	} else {
		fmt.Printf("no settings file '%s', using defaults\n", cfgVal)
	}

	var dsn design
	check(unmarshalYAMLFile(args[0], &dsn))

	area := tile.NewRect(dsn.Area[0], dsn.Area[1], dsn.Area[2], dsn.Area[3])
	obs := make([]router.Obstruction, len(dsn.Obstructions))
	for i, o := range dsn.Obstructions {
		obs[i] = router.Obstruction{
			Bbox: tile.NewRect(o.Bbox[0], o.Bbox[1], o.Bbox[2], o.Bbox[3]),
			NX:   o.NX, NY: o.NY,
			DX: o.DX, DY: o.DY,
		}
	}

	ctx := router.NewBuildContext(true)
	start := time.Now()
	dec, err := router.Decompose(ctx, cfg, obs, area)
	check(err)

	if dec.Empty() {
		fmt.Println("routing area too small to be useful")
		return
	}
	if err := dec.Plane.Verify(dec.Area); err != nil {
		check(fmt.Errorf("inconsistent result plane: %v", err))
	}

	for _, ch := range dec.Channels() {
		fmt.Printf("channel %3d: (%d,%d)-(%d,%d)\n",
			ch.ID, ch.Area.XBot, ch.Area.YBot, ch.Area.XTop, ch.Area.YTop)
	}
	if !quietVal {
		router.LogDecomposeTimes(ctx, time.Since(start))
		ctx.DumpLog(fmt.Sprintf("decomposition of '%s'", args[0]))
	}

	if outVal != "" {
		f, err := os.Create(outVal)
		check(err)
		defer f.Close()
		check(png.Encode(f, dec.Image(scaleVal)))
		fmt.Printf("channel structure written to '%s'\n", outVal)
	}
}
