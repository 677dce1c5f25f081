package stock

import (
	"time"

	"github.com/scges/scges-api/internal/domain"
)

const bareDateLayout = "2006-01-02"

// EffectiveDate normaliza a data efetiva de uma movimentação.
//
// Data "nua" (yyyy-mm-dd) é fixada ao meio-dia local: versões antigas
// gravavam meia-noite e o dia renderizado escorregava em fusos com DST.
// Strings com componente de hora (RFC 3339) são usadas como estão.
// Vazio cai no fallback (normalmente time.Now()).
func EffectiveDate(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	if d, err := time.ParseInLocation(bareDateLayout, raw, time.Local); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidInput
}

// EndOfDay estende um limite de data ao fim do dia-calendário
// (23:59:59.999...), para que um filtro de mesmo dia capture o dia inteiro
// independentemente da hora gravada.
func EndOfDay(t time.Time) time.Time {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start.Add(24*time.Hour - time.Nanosecond)
}

// TruncateToDay zera o componente de hora mantendo o dia-calendário.
// Relatórios truncam antes de ordenar para que movimentações do mesmo dia
// (todas normalizadas ao meio-dia) não se intercalem imprevisivelmente.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
