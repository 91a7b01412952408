package daily_sheet_warmup

import "time"

func (d *DailySheetWarmup) SetClock(now func() time.Time) {
	d.now = now
}
