// refs: github.com/fogleman/nes
package famines

import (
	"image"
	"io"
)

// Console is the outer structure owning every subsystem. The master
// clock lives here: one Clock call advances the PPU one dot, and every
// third tick steps the APU and either a DMA sub-step or one CPU cycle.
type Console struct {
	CPU         *CPU
	PPU         *PPU
	APU         *APU
	Cartridge   *Cartridge
	Controller1 *Controller
	Controller2 *Controller
	Bus         *Bus

	masterTicks uint64
	prevNMILine bool
}

func NewConsole(path string) (*Console, error) {
	cartridge, err := LoadNESFile(path)
	if err != nil {
		return nil, err
	}
	return newConsoleWithCartridge(cartridge), nil
}

// NewConsoleFromReader builds a console from iNES data without touching
// the filesystem; battery saves are kept in memory only.
func NewConsoleFromReader(r io.Reader) (*Console, error) {
	cartridge, err := LoadNESFromReader(r, "")
	if err != nil {
		return nil, err
	}
	return newConsoleWithCartridge(cartridge), nil
}

func newConsoleWithCartridge(cartridge *Cartridge) *Console {
	cpu := NewCPU()
	ppu := NewPPU()
	apu := NewAPU(cpu.IRQLineFor(IRQ_FRAME_COUNTER), cpu.IRQLineFor(IRQ_DMC))
	controller1 := NewController()
	controller2 := NewController()

	console := &Console{
		CPU:         cpu,
		PPU:         ppu,
		APU:         apu,
		Cartridge:   cartridge,
		Controller1: controller1,
		Controller2: controller2,
	}
	console.Bus = NewBus(cpu, ppu, apu, controller1, controller2, cartridge)

	console.Reset()
	return console
}

// Reset re-initializes register state without reallocating anything.
func (console *Console) Reset() {
	console.PPU.Reset()
	console.APU.Reset()
	console.Cartridge.Mapper.Reset()
	console.CPU.Reset(console.Bus)
	console.masterTicks = 0
	console.prevNMILine = false
}

// Close releases cartridge resources (battery saves).
func (console *Console) Close() {
	console.Cartridge.Close()
}

// Clock advances the system by one master tick (one PPU dot).
func (console *Console) Clock() {
	console.PPU.Clock(console.Cartridge)

	if console.masterTicks%3 == 0 {
		console.APU.Step(console.Bus)
		if console.Bus.DMAActive() {
			console.Bus.StepDMA()
		} else {
			console.CPU.Clock(console.Bus)
		}
		console.Cartridge.Mapper.Step()
	}

	// edge-detect the PPU's NMI output
	nmiLine := console.PPU.NMILine()
	if nmiLine && !console.prevNMILine {
		console.CPU.TriggerNMI()
	}
	console.prevNMILine = nmiLine

	console.masterTicks++
}

// StepFrame clocks the system until the PPU finishes the current frame
// and returns the number of master ticks consumed.
func (console *Console) StepFrame() uint64 {
	start := console.masterTicks
	frame := console.PPU.Frame
	for frame == console.PPU.Frame {
		console.Clock()
	}
	return console.masterTicks - start
}

// StepSeconds emulates the given wall-clock duration.
func (console *Console) StepSeconds(seconds float64) {
	ticks := int(3 * CPUFrequency * seconds)
	for i := 0; i < ticks; i++ {
		console.Clock()
	}
}

// Buffer returns the last completed frame.
func (console *Console) Buffer() *image.RGBA {
	return console.PPU.Buffer()
}

// FrameComplete reports whether a frame finished since the last
// AckFrame, for hosts that poll instead of counting frames.
func (console *Console) FrameComplete() bool {
	return console.PPU.FrameComplete()
}

func (console *Console) AckFrame() {
	console.PPU.AckFrame()
}

func (console *Console) SetButtons1(buttons [8]bool) {
	console.Controller1.SetButtons(buttons)
}

func (console *Console) SetButtons2(buttons [8]bool) {
	console.Controller2.SetButtons(buttons)
}

// SampleQueue exposes the APU's output ring for the host audio thread.
func (console *Console) SampleQueue() *SampleQueue {
	return console.APU.SampleQueue()
}

func (console *Console) SetAudioSampleRate(sampleRate float64) {
	console.APU.SetSampleRate(sampleRate)
}

// SetStrictOpcodes makes the CPU panic on jam opcodes instead of
// treating them as NOPs.
func (console *Console) SetStrictOpcodes(strict bool) {
	console.CPU.strict = strict
}
