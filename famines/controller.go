// refs: github.com/fogleman/nes
package famines

const (
	ButtonA = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller models one standard joypad: a latch strobed by $4016
// writes and an 8-bit shift register read LSB-first in the order
// A, B, Select, Start, Up, Down, Left, Right.
type Controller struct {
	buttons [8]bool
	index   byte
	strobe  byte
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) SetButtons(buttons [8]bool) {
	c.buttons = buttons
}

func (c *Controller) SetButton(index int, pressed bool) {
	c.buttons[index] = pressed
}

// Read returns the next bit of the shift register. Once all eight
// buttons have been shifted out the controller returns 1s.
func (c *Controller) Read() byte {
	value := byte(1)
	if c.index < 8 {
		value = 0
		if c.buttons[c.index] {
			value = 1
		}
	}
	if c.strobe&1 == 0 && c.index < 8 {
		c.index++
	}
	return value
}

// Write sets the strobe; while bit 0 is high the shift register is
// continuously reloaded from the current button state.
func (c *Controller) Write(value byte) {
	c.strobe = value
	if c.strobe&1 == 1 {
		c.index = 0
	}
}
