package schedule

import (
	"testing"

	"gestiondeo/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndDate(t *testing.T) {
	assert.Equal(t, "31/03/2024", FormatDate(EndDate(day("2024-01-01"), 90)))
	assert.Equal(t, "30/06/2024", FormatDate(EndDate(day("2024-01-02"), 180)))
	assert.Equal(t, "02/01/2024", FormatDate(EndDate(day("2024-01-01"), 1)))
}

func TestByCount_SingleDeliverableIsEndDate(t *testing.T) {
	got, err := ByCount(day("2024-01-01"), 90, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Entregables{"31/03/2024", "", "", ""}, got)
}

func TestByCount_LastAlwaysEqualsEndDate(t *testing.T) {
	// 100 no es divisible por 3: el redondeo no debe desplazar el último.
	got, err := ByCount(day("2024-01-01"), 100, 3)
	require.NoError(t, err)
	end := FormatDate(EndDate(day("2024-01-01"), 100))
	assert.Equal(t, end, got[2])
	assert.Equal(t, "", got[3])

	got, err = ByCount(day("2024-01-01"), 91, 4)
	require.NoError(t, err)
	assert.Equal(t, FormatDate(EndDate(day("2024-01-01"), 91)), got[3])
}

func TestByCount_EvenSpacing(t *testing.T) {
	got, err := ByCount(day("2024-01-01"), 90, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.Entregables{"31/01/2024", "01/03/2024", "31/03/2024", ""}, got)
}

func TestByCount_Invalid(t *testing.T) {
	_, err := ByCount(day("2024-01-01"), 0, 2)
	assert.ErrorIs(t, err, ErrDuracion)

	_, err = ByCount(day("2024-01-01"), -5, 2)
	assert.ErrorIs(t, err, ErrDuracion)

	_, err = ByCount(day("2024-01-01"), 90, 0)
	assert.ErrorIs(t, err, ErrEntregables)

	_, err = ByCount(day("2024-01-01"), 90, domain.MaxEntregables+1)
	assert.ErrorIs(t, err, ErrEntregables)
}

func TestByFrequency_Mensual90Dias(t *testing.T) {
	got, err := ByFrequency(day("2024-01-01"), 90, 30)
	require.NoError(t, err)
	assert.Equal(t, domain.Entregables{"31/01/2024", "01/03/2024", "31/03/2024", ""}, got)
	assert.Equal(t, 3, got.Count())
}

func TestByFrequency_StopsPastDuration(t *testing.T) {
	got, err := ByFrequency(day("2024-01-01"), 70, 30)
	require.NoError(t, err)
	assert.Equal(t, domain.Entregables{"31/01/2024", "01/03/2024", "", ""}, got)
}

func TestByFrequency_CapsAtFourSlots(t *testing.T) {
	got, err := ByFrequency(day("2024-01-01"), 365, 30)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Count())
	assert.Equal(t, "30/04/2024", got[3])
}

func TestByFrequency_NoEndDateSnap(t *testing.T) {
	// 80/30: el último entregable queda en el día 60, no en el fin (día 80).
	got, err := ByFrequency(day("2024-01-01"), 80, 30)
	require.NoError(t, err)
	assert.Equal(t, "01/03/2024", got[1])
	assert.Equal(t, "", got[2])
}

func TestByFrequency_Invalid(t *testing.T) {
	_, err := ByFrequency(day("2024-01-01"), 0, 30)
	assert.ErrorIs(t, err, ErrDuracion)

	_, err = ByFrequency(day("2024-01-01"), 90, 0)
	assert.ErrorIs(t, err, ErrFrecuencia)
}

func TestAuto_MonthlyCadence(t *testing.T) {
	got, warnings, err := Auto(day("2024-01-01"), 90)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, domain.Entregables{"31/01/2024", "01/03/2024", "31/03/2024", ""}, got)
}

func TestAuto_BiweeklyCadence(t *testing.T) {
	got, warnings, err := Auto(day("2024-01-01"), 45)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, domain.Entregables{"16/01/2024", "31/01/2024", "15/02/2024", ""}, got)
}

func TestAuto_ShortContractSingleDeliverable(t *testing.T) {
	got, warnings, err := Auto(day("2024-01-01"), 20)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, domain.Entregables{"21/01/2024", "", "", ""}, got)
}

func TestAuto_InvalidDuration(t *testing.T) {
	_, _, err := Auto(day("2024-01-01"), 0)
	assert.ErrorIs(t, err, ErrDuracion)
}

func TestEntregables_SlotsAlwaysOverwritten(t *testing.T) {
	// Recompute con menos entregables: los slots sobrantes deben quedar vacíos.
	first, err := ByFrequency(day("2024-01-01"), 365, 90)
	require.NoError(t, err)
	assert.Equal(t, 4, first.Count())

	second, err := ByFrequency(day("2024-01-01"), 90, 30)
	require.NoError(t, err)
	assert.Equal(t, 3, second.Count())
	assert.Equal(t, "", second[3])
}
