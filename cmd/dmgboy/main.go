package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thelolagemann/dmg/internal/gameboy"
	"github.com/thelolagemann/dmg/pkg/log"
	"github.com/thelolagemann/dmg/pkg/utils"
)

func main() {
	root := &cobra.Command{
		Use:          "dmgboy",
		Short:        "A Game Boy (DMG) emulator core",
		SilenceUsage: true,
	}
	root.AddCommand(runCmd(), infoCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		frames int
		debug  bool
		serial bool
	)
	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Run a ROM headlessly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}

			opts := []gameboy.GameBoyOpt{gameboy.WithLogger(log.New())}
			if debug {
				opts = append(opts, gameboy.Debug())
			}
			if serial {
				opts = append(opts, gameboy.SerialDebugger(os.Stdout))
			}
			gb, err := gameboy.NewGameBoy(rom, opts...)
			if err != nil {
				return err
			}
			fmt.Println(gb.MMU.Cart.Header())

			for frame := 0; frames == 0 || frame < frames; frame++ {
				gb.Frame()
				if gb.CPU.DebugBreakpoint {
					break
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 0, "number of frames to run, 0 to run until a debug breakpoint")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "treat LD B, B as a breakpoint")
	cmd.Flags().BoolVarP(&serial, "serial", "s", false, "echo serial output to stdout")
	return cmd
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <rom>",
		Short: "Print the cartridge header of a ROM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}
			gb, err := gameboy.NewGameBoy(rom, gameboy.WithLogger(log.NewNullLogger()))
			if err != nil {
				return err
			}

			h := gb.MMU.Cart.Header()
			fmt.Printf("Title:       %s\n", h.Title)
			fmt.Printf("Type:        %s\n", h.CartridgeType)
			fmt.Printf("ROM size:    %d kB\n", h.ROMSize/1024)
			fmt.Printf("RAM size:    %d kB\n", h.RAMSize/1024)
			fmt.Printf("Checksum:    0x%02X\n", h.HeaderChecksum)
			fmt.Printf("Fingerprint: %016x\n", h.Fingerprint)
			return nil
		},
	}
}
