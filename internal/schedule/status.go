package schedule

import (
	"math"
	"time"

	"gestiondeo/internal/domain"
)

// WarningWindowDays is the single warning-tier threshold: 0..7 days remaining
// (inclusive on both ends) is "por vencer". Older views used <5 in places;
// that variant is intentionally not preserved.
const WarningWindowDays = 7

type Categoria string

const (
	EstadoIndefinido Categoria = "Indefinido"
	EstadoVigente    Categoria = "Vigente"
	EstadoPorVencer  Categoria = "Por Vencer"
	EstadoFinalizada Categoria = "Finalizada"
)

// Variant is the badge tier the SPA maps to a color.
type Variant string

const (
	VariantSecondary   Variant = "secondary"
	VariantSuccess     Variant = "success"
	VariantWarning     Variant = "warning"
	VariantDestructive Variant = "destructive"
)

type Estado struct {
	Categoria Categoria `json:"categoria"`
	Variant   Variant   `json:"variant"`
}

// DaysRemaining counts whole calendar days from today until target:
// ceil((target - today) / 24h) with both ends at midnight. A target of today
// yields 0, past targets go negative. Nil target stays nil.
func DaysRemaining(today time.Time, target *time.Time) *int {
	if target == nil {
		return nil
	}
	// Re-anchor both midnights in UTC so a DST transition between them
	// cannot stretch the difference past a whole day.
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	until := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	d := int(math.Ceil(until.Sub(from).Hours() / 24))
	return &d
}

// Classify turns a remaining-day count into the status badge. CAS contracts
// have no end date and count as vigente regardless of the date math.
func Classify(dias *int, tipo domain.ContractType) Estado {
	if tipo == domain.ContractCAS {
		return Estado{Categoria: EstadoVigente, Variant: VariantSuccess}
	}
	if dias == nil {
		return Estado{Categoria: EstadoIndefinido, Variant: VariantSecondary}
	}
	switch {
	case *dias < 0:
		return Estado{Categoria: EstadoFinalizada, Variant: VariantDestructive}
	case *dias <= WarningWindowDays:
		return Estado{Categoria: EstadoPorVencer, Variant: VariantWarning}
	default:
		return Estado{Categoria: EstadoVigente, Variant: VariantSuccess}
	}
}
