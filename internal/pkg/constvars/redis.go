package constvars

const (
	RedisKeyMonthAvailabilityFormat = "month-availability:%s:%04d-%02d:%d:%s"
	RedisKeyOccurrenceLockFormat    = "occurrence-lock:%s:%s"
)
