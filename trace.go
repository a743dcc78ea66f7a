package optkit

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'optkit.types'
func tracer() tracing.Trace {
	return tracing.Select("optkit.types")
}
