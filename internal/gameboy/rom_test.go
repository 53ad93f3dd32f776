package gameboy

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thelolagemann/dmg/pkg/log"
)

const (
	romPath = "roms"
	// test ROMs report over the link cable and hit the debug
	// breakpoint when done. 30 emulated seconds is enough for the
	// slowest of the cpu_instrs ROMs.
	maxTestFrames = 30 * 60
)

// runTestROM runs the ROM until it hits the debug breakpoint and
// returns everything it wrote to the serial port.
func runTestROM(t *testing.T, rom []byte) string {
	t.Helper()

	var output bytes.Buffer
	gb, err := NewGameBoy(rom,
		Debug(),
		SerialDebugger(&output),
		WithLogger(log.NewNullLogger()),
	)
	if err != nil {
		t.Fatalf("creating gameboy: %v", err)
	}

	for frame := 0; frame < maxTestFrames && !gb.CPU.DebugBreakpoint; frame++ {
		gb.Frame()
		if s := output.String(); strings.Contains(s, "Passed") || strings.Contains(s, "Failed") {
			break
		}
	}

	return output.String()
}

// Test_ROMs runs every .gb file under roms/, expecting each to report
// "Passed" over the serial port. The directory is not checked in; the
// test is skipped when it is absent.
func Test_ROMs(t *testing.T) {
	if _, err := os.Stat(romPath); os.IsNotExist(err) {
		t.Skipf("%s directory not present", romPath)
	}

	err := filepath.Walk(romPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".gb" {
			return nil
		}

		t.Run(strings.TrimSuffix(filepath.Base(path), ".gb"), func(t *testing.T) {
			rom, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}

			output := runTestROM(t, rom)
			if strings.Contains(output, "Failed") || !strings.Contains(output, "Passed") {
				t.Errorf("expecting output to contain 'Passed', got %q", output)
			}
		})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
