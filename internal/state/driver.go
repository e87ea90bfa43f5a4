package state

import "fmt"

// Driver identifies one of the eight motivation drivers.
type Driver int

const (
	Meaning Driver = iota
	Creativity
	SocialInfluence
	Unpredictability
	Avoidance
	Scarcity
	Ownership
	Accomplishment
)

// DriverCount is the number of drivers and therefore the number of chart axes.
const DriverCount = 8

// Drivers lists every driver in axis order: index 0 is drawn at the top and
// the following ones proceed clockwise. Sliders and notes use the same order.
var Drivers = [DriverCount]Driver{
	Meaning,
	Creativity,
	SocialInfluence,
	Unpredictability,
	Avoidance,
	Scarcity,
	Ownership,
	Accomplishment,
}

var driverKeys = [DriverCount]string{
	"meaning",
	"creativity",
	"socialInfluence",
	"unpredictability",
	"avoidance",
	"scarcity",
	"ownership",
	"accomplishment",
}

// Key returns the stable identifier used in storage and translation keys.
func (d Driver) Key() string {
	if !d.Valid() {
		return fmt.Sprintf("driver(%d)", int(d))
	}
	return driverKeys[d]
}

func (d Driver) String() string { return d.Key() }

// Index is the axis position of the driver.
func (d Driver) Index() int { return int(d) }

func (d Driver) Valid() bool { return d >= 0 && int(d) < DriverCount }

// LabelKey is the i18n key for the driver's display name.
func (d Driver) LabelKey() string { return "drivers." + d.Key() }

// ParseDriver resolves a driver from its key. Matching is exact.
func ParseDriver(key string) (Driver, error) {
	for i, k := range driverKeys {
		if k == key {
			return Driver(i), nil
		}
	}
	return 0, fmt.Errorf("unknown driver %q", key)
}
