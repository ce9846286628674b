// Package si5351 controls a Si5351A clock generator via I²C.
//
// The Si5351A synthesizes up to three square-wave outputs from a single
// crystal reference. This driver keeps PLLA at a fixed multiple of the
// crystal and sets each output with its fractional multisynth divider, which
// is enough to tune an output from 4kHz to 112MHz in sub-hertz steps.
//
// # Hardware Connection
//
// Connect the Si5351A breakout to your system via I²C:
//
//	Breakout Pin → System Pin
//	GND          → GND
//	VIN          → 3.3V
//	SCL          → I²C Clock (SCL)
//	SDA          → I²C Data (SDA)
//	CLK0         → RF output
//
// The device answers at address 0x60. The I²C bus can be shared with an OLED
// display.
//
// # Basic Usage
//
//	b, _ := i2creg.Open("")
//	defer b.Close()
//
//	dev, _ := si5351.NewI2C(b, &si5351.Opts{
//		Crystal:    25 * physic.MegaHertz,
//		Load:       si5351.Load0pF,
//		Correction: -4000,
//	})
//	defer dev.Halt()
//
//	dev.SetFrequency(si5351.CLK0, 7100*physic.KiloHertz)
//	dev.Enable(si5351.CLK0, si5351.Drive2mA)
//
// # Crystal Correction
//
// Crystals are rarely exactly on frequency. Measure the output against a
// reference and set Correction to the error of the crystal in parts per
// billion; a crystal running 100Hz low at 25MHz has a correction of -4000.
// The correction is applied once, when the device is created.
//
// # Datasheet
//
// https://www.skyworksinc.com/-/media/Skyworks/SL/documents/public/data-sheets/Si5351-B.pdf
//
// Register map (AN619):
// https://www.skyworksinc.com/-/media/Skyworks/SL/documents/public/application-notes/AN619.pdf
package si5351
