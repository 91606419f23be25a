package wallet

import (
	"strconv"
	"time"
)

// timeDerivedID mints wallet ids and transaction numbers: unix seconds plus
// the current millisecond component. Not cryptographically unique; the
// collision probability is accepted as negligible.
func timeDerivedID(now time.Time) string {
	return strconv.FormatInt(now.Unix()+int64(now.Nanosecond()/int(time.Millisecond)), 10)
}
