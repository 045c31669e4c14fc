package hw

// Device is one discovered instance of a device type in the object
// model. Index is assigned in discovery (pre-order) encounter order and
// is what downstream naming and array ordering use; it is unrelated to
// tree depth or position.
//
// All instances of a type are assumed to share one register layout;
// shared macros are emitted from instance 0 only. Instances that
// redefine a register differently surface as extraction conflicts, but
// an instance simply carrying extra registers goes unnoticed.
type Device struct {
	Name          string
	Index         int
	Base          int64
	BaseInterrupt int64
	Registers     []*Register
	Interrupts    []*Interrupt
}
