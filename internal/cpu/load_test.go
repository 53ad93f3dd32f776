package cpu

import "testing"

func TestLoadImmediate(t *testing.T) {
	c := newTestCPU()
	c.load(0x06, 0x42, 0x01, 0x34, 0x12) // LD B, 42h; LD BC, 1234h
	if cycles := c.Step(); cycles != 8 {
		t.Errorf("expected 8 cycles, got %d", cycles)
	}
	if c.B != 0x42 {
		t.Errorf("expected B to be 0x42, got %#02x", c.B)
	}
	if cycles := c.Step(); cycles != 12 {
		t.Errorf("expected 12 cycles, got %d", cycles)
	}
	if c.BC.Uint16() != 0x1234 {
		t.Errorf("expected BC to be 0x1234, got %#04x", c.BC.Uint16())
	}
}

func TestLoadRegisterToRegister(t *testing.T) {
	c := newTestCPU()
	c.H = 0x42
	c.load(0x7C, 0x41) // LD A, H; LD B, C
	c.run(2)
	if c.A != 0x42 {
		t.Errorf("expected A to be 0x42, got %#02x", c.A)
	}
	if c.B != c.C {
		t.Errorf("expected B to equal C, got %#02x and %#02x", c.B, c.C)
	}
}

func TestLoadMemory(t *testing.T) {
	c := newTestCPU()
	c.A = 0x99
	c.HL.SetUint16(0xC800)
	c.load(0x77, 0x46) // LD (HL), A; LD B, (HL)
	c.run(2)
	if v := c.mmu.Read(0xC800); v != 0x99 {
		t.Errorf("expected (HL) to be 0x99, got %#02x", v)
	}
	if c.B != 0x99 {
		t.Errorf("expected B to be 0x99, got %#02x", c.B)
	}
}

func TestLoadIncrementDecrement(t *testing.T) {
	c := newTestCPU()
	c.A = 0x11
	c.HL.SetUint16(0xC800)
	c.load(0x22, 0x32) // LD (HL+), A; LD (HL-), A
	c.Step()
	if c.HL.Uint16() != 0xC801 {
		t.Errorf("expected HL to be 0xC801, got %#04x", c.HL.Uint16())
	}
	c.Step()
	if c.HL.Uint16() != 0xC800 {
		t.Errorf("expected HL to be 0xC800, got %#04x", c.HL.Uint16())
	}
	if v := c.mmu.Read(0xC800); v != 0x11 {
		t.Errorf("expected 0xC800 to be 0x11, got %#02x", v)
	}
	if v := c.mmu.Read(0xC801); v != 0x11 {
		t.Errorf("expected 0xC801 to be 0x11, got %#02x", v)
	}
}

func TestLoadHardware(t *testing.T) {
	c := newTestCPU()
	c.A = 0x5F
	c.load(0xE0, 0x80, 0xF0, 0x80) // LDH (80h), A; LDH A, (80h)
	c.Step()
	if v := c.mmu.Read(0xFF80); v != 0x5F {
		t.Errorf("expected 0xFF80 to be 0x5F, got %#02x", v)
	}
	c.A = 0x00
	c.Step()
	if c.A != 0x5F {
		t.Errorf("expected A to be 0x5F, got %#02x", c.A)
	}
}

func TestLoadAbsolute(t *testing.T) {
	c := newTestCPU()
	c.A = 0x7B
	c.load(0xEA, 0x00, 0xC8, 0x3E, 0x00, 0xFA, 0x00, 0xC8) // LD (C800h), A; LD A, 0; LD A, (C800h)
	c.run(3)
	if c.A != 0x7B {
		t.Errorf("expected A to be 0x7B, got %#02x", c.A)
	}
}

func TestLoadStackPointer(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xFFF8
	c.load(0x08, 0x00, 0xC8) // LD (C800h), SP
	if cycles := c.Step(); cycles != 20 {
		t.Errorf("expected 20 cycles, got %d", cycles)
	}
	if lo := c.mmu.Read(0xC800); lo != 0xF8 {
		t.Errorf("expected the low byte first, got %#02x", lo)
	}
	if hi := c.mmu.Read(0xC801); hi != 0xFF {
		t.Errorf("expected the high byte second, got %#02x", hi)
	}
}

func TestLoadHLSPOffset(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xFFF8
	c.load(0xF8, 0x08, 0xF9) // LD HL, SP+8; LD SP, HL
	if cycles := c.Step(); cycles != 12 {
		t.Errorf("expected 12 cycles, got %d", cycles)
	}
	if c.HL.Uint16() != 0x0000 {
		t.Errorf("expected HL to be 0x0000, got %#04x", c.HL.Uint16())
	}
	assertFlags(t, c, false, false, true, true)
	c.Step()
	if c.SP != 0x0000 {
		t.Errorf("expected SP to be 0x0000, got %#04x", c.SP)
	}
}

func TestPushPop(t *testing.T) {
	c := newTestCPU()
	c.BC.SetUint16(0x1234)
	c.load(0xC5, 0xD1) // PUSH BC; POP DE
	sp := c.SP
	if cycles := c.Step(); cycles != 16 {
		t.Errorf("expected 16 cycles, got %d", cycles)
	}
	// the high byte lands at the higher address
	if hi := c.mmu.Read(sp - 1); hi != 0x12 {
		t.Errorf("expected 0x12 at SP-1, got %#02x", hi)
	}
	if lo := c.mmu.Read(sp - 2); lo != 0x34 {
		t.Errorf("expected 0x34 at SP-2, got %#02x", lo)
	}
	if cycles := c.Step(); cycles != 12 {
		t.Errorf("expected 12 cycles, got %d", cycles)
	}
	if c.DE.Uint16() != 0x1234 {
		t.Errorf("expected DE to be 0x1234, got %#04x", c.DE.Uint16())
	}
	if c.SP != sp {
		t.Errorf("expected SP to be restored, got %#04x", c.SP)
	}
}

func TestPopAF_MasksLowNibble(t *testing.T) {
	c := newTestCPU()
	c.BC.SetUint16(0x12FF)
	c.load(0xC5, 0xF1) // PUSH BC; POP AF
	c.run(2)
	if c.A != 0x12 {
		t.Errorf("expected A to be 0x12, got %#02x", c.A)
	}
	if c.F != 0xF0 {
		t.Errorf("expected the low nibble of F to read as 0, got %#02x", c.F)
	}
}
