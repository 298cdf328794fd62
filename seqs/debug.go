package seqs

import "github.com/rs/zerolog"

// Log taps the stream, emitting one trace event per item flowing
// through this stage. The sequence itself stays untouched; nothing is
// logged until a terminal call pulls items through.
func (s *Sequence[T]) Log(logger *zerolog.Logger, label string) *Sequence[T] {
	return derive(s, func(up Cursor[T]) func() (T, bool) {
		count := 0
		return func() (T, bool) {
			if !up.Advance() {
				logger.Trace().Str("stage", label).Int("items", count).Msg("exhausted")
				var zero T
				return zero, false
			}
			logger.Trace().
				Str("stage", label).
				Int("index", count).
				Interface("item", up.Current()).
				Msg("yield")
			count++
			return up.Current(), true
		}
	})
}
