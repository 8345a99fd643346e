package texture

// Slot is one of the shader's four fixed texture channels.
type Slot int

const (
	SlotDay Slot = iota
	SlotNight
	SlotNormal
	SlotSpecular

	SlotCount = 4
)

var slotNames = [SlotCount]string{"day", "night", "normal", "specular"}

func (s Slot) String() string {
	if s < 0 || s >= SlotCount {
		return "unknown"
	}
	return slotNames[s]
}

// Slots lists every slot in shader channel order.
var Slots = [SlotCount]Slot{SlotDay, SlotNight, SlotNormal, SlotSpecular}
