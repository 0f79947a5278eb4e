package update

import "github.com/sandeepkv93/clockd/internal/model"

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

func toggledFormat(f model.ClockFormat) model.ClockFormat {
	if f == model.ClockFormat12h {
		return model.ClockFormat24h
	}
	return model.ClockFormat12h
}
