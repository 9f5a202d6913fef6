package msw

import (
	"surfmap/lib/restyutil"
	"surfmap/lib/telemetry"
)

var tracer = telemetry.Tracer("surfmap.lib.scrapers.msw")

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput dumps the http messages of clients created
// after the call to `out`.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
