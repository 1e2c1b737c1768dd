package arrow

// Date32Type / Date64Type, Time32Type / Time64Type, TimestampType and the
// Duration types together cover the storage/unit combinations fixed by
// §4.3.3: i32 storage for the "32" family (Date32 days, Time32 s/ms,
// Duration32 s/ms) and i64 storage for the "64" family (Date64 ms, Time64
// us/ns, Timestamp any unit, Duration64 us/ns). The unit field on Time32/64
// and Duration32/64 pins down which of the two valid units a given array
// uses; Date32/Date64 have only one valid unit each so carry none.

type Date32Type struct{}
type Date64Type struct{}

func (*Date32Type) ID() Type       { return DATE32 }
func (*Date32Type) Name() string   { return "date32" }
func (*Date32Type) String() string { return "date32[day]" }

func (*Date64Type) ID() Type       { return DATE64 }
func (*Date64Type) Name() string   { return "date64" }
func (*Date64Type) String() string { return "date64[ms]" }

// Time32Type holds wall-clock time-of-day in Seconds or Milliseconds,
// stored as i32.
type Time32Type struct{ Unit TimeUnit }

func (*Time32Type) ID() Type     { return TIME32 }
func (*Time32Type) Name() string { return "time32" }
func (t *Time32Type) String() string { return "time32[" + t.Unit.String() + "]" }

// Time64Type holds wall-clock time-of-day in Microseconds or Nanoseconds,
// stored as i64.
type Time64Type struct{ Unit TimeUnit }

func (*Time64Type) ID() Type     { return TIME64 }
func (*Time64Type) Name() string { return "time64" }
func (t *Time64Type) String() string { return "time64[" + t.Unit.String() + "]" }

// TimestampType holds an i64 count of Unit since the Unix epoch, with an
// optional IANA timezone name (empty string means naive/no timezone).
type TimestampType struct {
	Unit     TimeUnit
	TimeZone string
}

func (*TimestampType) ID() Type     { return TIMESTAMP }
func (*TimestampType) Name() string { return "timestamp" }
func (t *TimestampType) String() string {
	if t.TimeZone == "" {
		return "timestamp[" + t.Unit.String() + "]"
	}
	return "timestamp[" + t.Unit.String() + ", tz=" + t.TimeZone + "]"
}

// Duration32Type / Duration64Type mirror Time32/Time64's storage split but
// carry no epoch semantics — they measure an elapsed span.
type Duration32Type struct{ Unit TimeUnit }
type Duration64Type struct{ Unit TimeUnit }

func (*Duration32Type) ID() Type     { return DURATION }
func (*Duration32Type) Name() string { return "duration32" }
func (t *Duration32Type) String() string { return "duration32[" + t.Unit.String() + "]" }

func (*Duration64Type) ID() Type     { return DURATION }
func (*Duration64Type) Name() string { return "duration64" }
func (t *Duration64Type) String() string { return "duration64[" + t.Unit.String() + "]" }

var (
	_ DataType = (*Date32Type)(nil)
	_ DataType = (*Date64Type)(nil)
	_ DataType = (*Time32Type)(nil)
	_ DataType = (*Time64Type)(nil)
	_ DataType = (*TimestampType)(nil)
	_ DataType = (*Duration32Type)(nil)
	_ DataType = (*Duration64Type)(nil)
)
