package shader

// NotFound is the location GL reports for an unknown name.
const NotFound int32 = -1

// AttribHandle is a vertex attribute location inside one linked program.
type AttribHandle struct {
	program  uint32
	location int32
}

// UniformHandle is a uniform location inside one linked program.
type UniformHandle struct {
	program  uint32
	location int32
}

var (
	NoAttrib  = AttribHandle{location: NotFound}
	NoUniform = UniformHandle{location: NotFound}
)

func (h AttribHandle) Location() int32 { return h.location }

// Index is the location in the unsigned form the attribute calls take.
func (h AttribHandle) Index() uint32 { return uint32(h.location) }

func (h AttribHandle) Program() uint32 { return h.program }

// Valid reports whether the handle names a location in a live program.
// Handles taken from a LineShader before Release keep their old values.
func (h AttribHandle) Valid() bool { return h.program != 0 && h.location != NotFound }

func (h UniformHandle) Location() int32 { return h.location }

func (h UniformHandle) Program() uint32 { return h.program }

func (h UniformHandle) Valid() bool { return h.program != 0 && h.location != NotFound }
