package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/unkn0wn-root/chaincodec"
)

var _ chaincodec.Logger = Logger{}

type Logger struct{ L zerolog.Logger }

func (z Logger) Debug(msg string, f chaincodec.Fields) { emit(z.L.Debug(), msg, f) }
func (z Logger) Info(msg string, f chaincodec.Fields)  { emit(z.L.Info(), msg, f) }
func (z Logger) Warn(msg string, f chaincodec.Fields)  { emit(z.L.Warn(), msg, f) }
func (z Logger) Error(msg string, f chaincodec.Fields) { emit(z.L.Error(), msg, f) }

func emit(e *zerolog.Event, msg string, f chaincodec.Fields) {
	if e == nil {
		return // level disabled
	}
	for k, v := range f {
		if err, ok := v.(error); ok {
			e = e.AnErr(k, err)
			continue
		}
		e = e.Interface(k, v)
	}
	e.Msg(msg)
}
