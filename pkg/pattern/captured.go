package pattern

// Stream names for captured output.
const (
	StreamStdout = "STDOUT"
	StreamStderr = "STDERR"
)

// Captured is output a unit wrote to one of its standard streams.
type Captured struct {
	Stream string
	Data   []byte
}

func (c *Captured) Type() PatternType { return PatternTypeCaptured }
