package schedule

import "time"

const displayLayout = "02 Jan 2006, 03:04 pm"

// DisplayRunDate renders an epoch-millisecond run time for people, e.g.
// "05 Mar 2025, 09:30 am". It is applied when schedules are read and never stored.
func DisplayRunDate(ms int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(ms).In(loc).Format(displayLayout)
}
