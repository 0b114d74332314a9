package service

import "time"

// Business-hours status strings shown next to the WhatsApp button.
const (
	StatusOpen   = "🟢 Atendimento Online - Resposta Imediata"
	StatusClosed = "🟡 Fora do Horário - Responderemos em Breve"
)

// IsBusinessHours reports whether the shop is open at the given local time.
// Monday to Friday 8h-18h, Saturday 8h-14h, Sunday closed. Hour boundaries
// are half-open: at exactly 18h on a weekday the shop is already closed.
func IsBusinessHours(now time.Time) bool {
	hour := now.Hour()
	switch day := now.Weekday(); {
	case day >= time.Monday && day <= time.Friday:
		return hour >= 8 && hour < 18
	case day == time.Saturday:
		return hour >= 8 && hour < 14
	}
	return false
}

// BusinessHoursStatus returns the status badge text for the given time.
func BusinessHoursStatus(now time.Time) string {
	if IsBusinessHours(now) {
		return StatusOpen
	}
	return StatusClosed
}
