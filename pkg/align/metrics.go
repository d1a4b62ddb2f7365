package align

// Default card metrics, in pixels.
const (
	DefaultCardWidth      = 160.0
	DefaultCardGap        = 16.0
	DefaultConnectorWidth = 24.0
	DefaultLaneSpacing    = 4.0
)

// Metrics holds the pixel constants used for alignment.
type Metrics struct {
	CardWidth      float64
	CardGap        float64
	ConnectorWidth float64
	LaneSpacing    float64
}

// DefaultMetrics returns the default card metrics.
func DefaultMetrics() Metrics {
	return Metrics{
		CardWidth:      DefaultCardWidth,
		CardGap:        DefaultCardGap,
		ConnectorWidth: DefaultConnectorWidth,
		LaneSpacing:    DefaultLaneSpacing,
	}
}

// Step is the horizontal distance between two adjacent card positions.
func (m Metrics) Step() float64 {
	return m.CardWidth + m.CardGap + m.ConnectorWidth
}

// CardCenter returns the x coordinate of the centre of the card at pos in a
// cluster shifted by offset.
func (m Metrics) CardCenter(offset float64, pos int) float64 {
	return offset + float64(pos)*m.Step() + m.CardWidth/2
}
