package app

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/reorder/board"
	"github.com/lixenwraith/reorder/config"
	"github.com/lixenwraith/reorder/observability"
)

// Version is the application version, set at build time with
// -ldflags "-X github.com/lixenwraith/reorder/app.Version=1.0.0"
var Version = "dev"

// screenFactory creates the terminal screen, replaced in tests
var screenFactory = tcell.NewScreen

// NewRootCmd builds the command tree with fresh flag state
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		noAudio bool
	)

	root := &cobra.Command{
		Use:           "reorder-board",
		Short:         "Drag cards between columns of a terminal board",
		Long:          "Long-press a card to pick it up, drag it within or across columns, release to drop.\nEsc cancels a drag, q quits.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cfgFile)
			if err != nil {
				return err
			}
			for key, flag := range map[string]string{
				"board.file":      "board",
				"board.paged":     "paged",
				"logger.log_file": "log-file",
				"ui.fps":          "fps",
			} {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
			if noAudio {
				v.Set("audio.enabled", false)
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				return err
			}

			observability.InitializeLogger(cfg.Logger)
			defer observability.Sync()
			logger := observability.GetLogger()
			logger.Info("starting reorder-board", zap.String("version", Version))

			b, err := loadBoard(cfg.Board.File)
			if err != nil {
				return err
			}

			screen, err := screenFactory()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			a, err := New(cfg, b, screen, WithLogger(logger))
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}

	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := root.Flags()
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./reorder.toml)")
	flags.StringP("board", "b", "", "board TOML file (default is the sample board)")
	flags.Bool("paged", false, "show one column per page")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.Int("fps", 60, "frame rate")
	flags.BoolVar(&noAudio, "no-audio", false, "disable pick-up and drop sounds")

	root.AddCommand(newVersionCmd(), newSampleCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

func newSampleCmd() *cobra.Command {
	var (
		out  string
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the sample board as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			b := board.Sample(rand.New(rand.NewSource(seed)))
			if out == "" {
				return b.Encode(cmd.OutOrStdout())
			}
			return b.Save(out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "colour seed (default random)")
	return cmd
}

// loadBoard reads path, or builds the sample board when path is empty
func loadBoard(path string) (*board.Board, error) {
	if path == "" {
		return board.Sample(rand.New(rand.NewSource(time.Now().UnixNano()))), nil
	}
	return board.Load(path)
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
