package cpu

import "testing"

func TestAdd(t *testing.T) {
	t.Run("carry and half carry", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x3A
		c.load(0xC6, 0xC6) // ADD A, C6h
		if cycles := c.Step(); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if c.A != 0x00 {
			t.Errorf("expected A to be 0x00, got %#02x", c.A)
		}
		assertFlags(t, c, true, false, true, true)
	})
	t.Run("half carry only", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x0F
		c.load(0xC6, 0x01)
		c.Step()
		if c.A != 0x10 {
			t.Errorf("expected A to be 0x10, got %#02x", c.A)
		}
		assertFlags(t, c, false, false, true, false)
	})
}

func TestAdc(t *testing.T) {
	c := newTestCPU()
	c.A = 0xE1
	c.setFlags(false, false, false, true)
	c.load(0xCE, 0x1E) // ADC A, 1Eh
	c.Step()
	if c.A != 0x00 {
		t.Errorf("expected A to be 0x00, got %#02x", c.A)
	}
	assertFlags(t, c, true, false, true, true)
}

func TestSub(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x3E
		c.load(0xD6, 0x3E) // SUB A, 3Eh
		c.Step()
		if c.A != 0x00 {
			t.Errorf("expected A to be 0x00, got %#02x", c.A)
		}
		assertFlags(t, c, true, true, false, false)
	})
	t.Run("half borrow", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x3E
		c.load(0xD6, 0x0F)
		c.Step()
		if c.A != 0x2F {
			t.Errorf("expected A to be 0x2F, got %#02x", c.A)
		}
		assertFlags(t, c, false, true, true, false)
	})
	t.Run("borrow", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x3E
		c.load(0xD6, 0x40)
		c.Step()
		if c.A != 0xFE {
			t.Errorf("expected A to be 0xFE, got %#02x", c.A)
		}
		assertFlags(t, c, false, true, false, true)
	})
}

func TestSbc(t *testing.T) {
	c := newTestCPU()
	c.A = 0x3B
	c.setFlags(false, false, false, true)
	c.load(0xDE, 0x3A) // SBC A, 3Ah
	c.Step()
	if c.A != 0x00 {
		t.Errorf("expected A to be 0x00, got %#02x", c.A)
	}
	assertFlags(t, c, true, true, false, false)
}

func TestInc_PreservesCarry(t *testing.T) {
	c := newTestCPU()
	c.A = 0x0F
	c.setFlags(false, false, false, true)
	c.load(0x3C) // INC A
	c.Step()
	if c.A != 0x10 {
		t.Errorf("expected A to be 0x10, got %#02x", c.A)
	}
	assertFlags(t, c, false, false, true, true)
}

func TestDec(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		c := newTestCPU()
		c.B = 0x01
		c.setFlags(false, false, false, true)
		c.load(0x05) // DEC B
		c.Step()
		if c.B != 0x00 {
			t.Errorf("expected B to be 0x00, got %#02x", c.B)
		}
		assertFlags(t, c, true, true, false, true)
	})
	t.Run("half borrow", func(t *testing.T) {
		c := newTestCPU()
		c.B = 0x10
		c.setFlags(false, false, false, false)
		c.load(0x05)
		c.Step()
		if c.B != 0x0F {
			t.Errorf("expected B to be 0x0F, got %#02x", c.B)
		}
		assertFlags(t, c, false, true, true, false)
	})
}

func TestIncDec16_NoFlags(t *testing.T) {
	c := newTestCPU()
	c.BC.SetUint16(0xFFFF)
	f := c.F
	c.load(0x03, 0x0B) // INC BC, DEC BC
	c.Step()
	if c.BC.Uint16() != 0x0000 {
		t.Errorf("expected BC to wrap to 0x0000, got %#04x", c.BC.Uint16())
	}
	c.Step()
	if c.BC.Uint16() != 0xFFFF {
		t.Errorf("expected BC to be 0xFFFF, got %#04x", c.BC.Uint16())
	}
	if c.F != f {
		t.Errorf("expected flags to be untouched, F went from %#02x to %#02x", f, c.F)
	}
}

func TestIncDec_Memory(t *testing.T) {
	c := newTestCPU()
	c.HL.SetUint16(0xC800)
	c.mmu.Write(0xC800, 0xFF)
	c.setFlags(false, false, false, false)
	c.load(0x34, 0x35) // INC (HL), DEC (HL)
	if cycles := c.Step(); cycles != 12 {
		t.Errorf("expected 12 cycles, got %d", cycles)
	}
	if v := c.mmu.Read(0xC800); v != 0x00 {
		t.Errorf("expected (HL) to be 0x00, got %#02x", v)
	}
	assertFlags(t, c, true, false, true, false)
	c.Step()
	if v := c.mmu.Read(0xC800); v != 0xFF {
		t.Errorf("expected (HL) to be 0xFF, got %#02x", v)
	}
}

func TestAddHL(t *testing.T) {
	c := newTestCPU()
	c.HL.SetUint16(0x8A23)
	c.BC.SetUint16(0x0605)
	c.setFlags(true, true, false, false)
	c.load(0x09) // ADD HL, BC
	if cycles := c.Step(); cycles != 8 {
		t.Errorf("expected 8 cycles, got %d", cycles)
	}
	if c.HL.Uint16() != 0x9028 {
		t.Errorf("expected HL to be 0x9028, got %#04x", c.HL.Uint16())
	}
	// the zero flag is preserved
	assertFlags(t, c, true, false, true, false)
}

func TestAddSP(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xFFF8
	c.load(0xE8, 0x08) // ADD SP, 8
	if cycles := c.Step(); cycles != 16 {
		t.Errorf("expected 16 cycles, got %d", cycles)
	}
	if c.SP != 0x0000 {
		t.Errorf("expected SP to be 0x0000, got %#04x", c.SP)
	}
	assertFlags(t, c, false, false, true, true)
}

func TestAddSP_Negative(t *testing.T) {
	c := newTestCPU()
	c.SP = 0xC000
	c.load(0xE8, 0xFE) // ADD SP, -2
	c.Step()
	if c.SP != 0xBFFE {
		t.Errorf("expected SP to be 0xBFFE, got %#04x", c.SP)
	}
}

func TestDAA(t *testing.T) {
	t.Run("after addition", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x45
		c.load(0xC6, 0x38, 0x27) // ADD A, 38h; DAA
		c.run(2)
		if c.A != 0x83 {
			t.Errorf("expected A to be 0x83, got %#02x", c.A)
		}
		assertFlags(t, c, false, false, false, false)
	})
	t.Run("addition with carry out", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x99
		c.load(0xC6, 0x01, 0x27)
		c.run(2)
		if c.A != 0x00 {
			t.Errorf("expected A to be 0x00, got %#02x", c.A)
		}
		assertFlags(t, c, true, false, false, true)
	})
	t.Run("after subtraction", func(t *testing.T) {
		c := newTestCPU()
		c.A = 0x45
		c.load(0xD6, 0x38, 0x27) // SUB A, 38h; DAA
		c.run(2)
		if c.A != 0x07 {
			t.Errorf("expected A to be 0x07, got %#02x", c.A)
		}
		assertFlags(t, c, false, true, false, false)
	})
}

func TestCPL(t *testing.T) {
	c := newTestCPU()
	c.A = 0x35
	c.setFlags(true, false, false, true)
	c.load(0x2F) // CPL
	c.Step()
	if c.A != 0xCA {
		t.Errorf("expected A to be 0xCA, got %#02x", c.A)
	}
	assertFlags(t, c, true, true, true, true)
}

func TestSCF_CCF(t *testing.T) {
	c := newTestCPU()
	c.setFlags(true, true, true, false)
	c.load(0x37, 0x3F) // SCF, CCF
	c.Step()
	assertFlags(t, c, true, false, false, true)
	c.Step()
	assertFlags(t, c, true, false, false, false)
}
