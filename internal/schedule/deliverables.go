package schedule

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gestiondeo/internal/domain"
)

var (
	ErrFechaInicio = errors.New("fecha de inicio invalida")
	ErrDuracion    = errors.New("duracion invalida")
	ErrEntregables = errors.New("numero de entregables invalido")
	ErrFrecuencia  = errors.New("frecuencia invalida")
)

// EndDate derives the contract end: start + durationDays calendar days.
func EndDate(start time.Time, durationDays int) time.Time {
	return AddDays(start, durationDays)
}

// ByCount distributes count deliverables evenly between start and end, the
// last one forced onto the end date exactly so fractional-day rounding never
// drifts it. count == 1 puts the sole deliverable on the end date.
func ByCount(start time.Time, durationDays, count int) (domain.Entregables, error) {
	var out domain.Entregables
	if durationDays <= 0 {
		return out, ErrDuracion
	}
	if count < 1 || count > domain.MaxEntregables {
		return out, ErrEntregables
	}

	end := EndDate(start, durationDays)
	step := float64(durationDays) / float64(count)
	for i := 1; i < count; i++ {
		out[i-1] = FormatDate(AddDays(start, int(math.Round(float64(i)*step))))
	}
	out[count-1] = FormatDate(end)
	return out, nil
}

// ByFrequency places deliverable i at start + i*frequencyDays, stopping once
// the cadence runs past the duration or all slots are used. Dates are not
// snapped to the contract end in this mode.
func ByFrequency(start time.Time, durationDays, frequencyDays int) (domain.Entregables, error) {
	var out domain.Entregables
	if durationDays <= 0 {
		return out, ErrDuracion
	}
	if frequencyDays <= 0 {
		return out, ErrFrecuencia
	}

	for i := 1; i <= domain.MaxEntregables && i*frequencyDays <= durationDays; i++ {
		out[i-1] = FormatDate(AddDays(start, i*frequencyDays))
	}
	return out, nil
}

// Auto picks the cadence from the duration: 60+ days runs monthly, 30+ days
// biweekly, anything shorter gets a single deliverable on the end date. A
// computed date past the contract end is a warning, not an error.
func Auto(start time.Time, durationDays int) (domain.Entregables, []string, error) {
	var out domain.Entregables
	if durationDays <= 0 {
		return out, nil, ErrDuracion
	}

	var frequency int
	switch {
	case durationDays >= 60:
		frequency = 30
	case durationDays >= 30:
		frequency = 15
	default:
		out[0] = FormatDate(EndDate(start, durationDays))
		return out, nil, nil
	}

	out, err := ByFrequency(start, durationDays, frequency)
	if err != nil {
		return out, nil, err
	}

	var warnings []string
	end := EndDate(start, durationDays)
	for i, d := range out {
		if d == "" {
			continue
		}
		if t := ParseDate(d); t != nil && t.After(end) {
			warnings = append(warnings, fmt.Sprintf("entregable %d (%s) cae despues del fin de contrato %s", i+1, d, FormatDate(end)))
		}
	}
	return out, warnings, nil
}
