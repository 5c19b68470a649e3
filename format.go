package ccachestats

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// timeLayout is the wall-clock layout used for the pretty header and for
// timestamp-formatted fields.
const timeLayout = "2006-01-02 15:04:05"

// Size rendering switches unit once a value reaches 10 units of the next
// magnitude, always with two decimals. Matches ccache's display rules.
const sizeUnitThreshold = 10

// FormatValue renders a counter value according to the field's format
// policy. It is total: every value of every field formats to something.
func FormatValue(f Field, v uint64) string {
	switch f.Meta().Format {
	case FormatTimestamp:
		return formatTimestamp(v)
	case FormatSizeTimes1024:
		return formatSize(v)
	default:
		return strconv.FormatUint(v, 10)
	}
}

func formatTimestamp(v uint64) string {
	if v > math.MaxInt64 {
		// Not representable as a timestamp; show the raw value tagged
		// so it can't be mistaken for a plain counter.
		return fmt.Sprintf("%d (ts)", v)
	}
	return time.Unix(int64(v), 0).Local().Format(timeLayout)
}

// formatSize renders a kibibyte count, scaling to Mb past 10*1024 Kb and
// to Gb past 10*1024*1024 Kb.
func formatSize(v uint64) string {
	kb := float64(v)
	switch {
	case kb < sizeUnitThreshold*1024:
		return fmt.Sprintf("%d Kb", v)
	case kb < sizeUnitThreshold*1024*1024:
		return fmt.Sprintf("%.2f Mb", kb/1024)
	default:
		return fmt.Sprintf("%.2f Gb", kb/1024/1024)
	}
}
