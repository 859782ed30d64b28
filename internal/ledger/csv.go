// Package ledger owns the read side of the two append-only logs: the
// CSV projections handed to the export dialog. Rows are built by hand
// rather than with encoding/csv because the wire contract always
// quotes the free-text and multi-value fields, while encoding/csv
// quotes conditionally and would change the emitted bytes.
package ledger

import (
	"strconv"
	"strings"

	"github.com/osse101/InkGacha_Go/internal/domain"
)

// Column headers, in the fixed wire order.
const (
	PointsCSVHeader = "id,timestamp,action,points_delta,tickets_delta,pity_before,pity_after,note,related_gacha_id"
	GachaCSVHeader  = "gacha_id,timestamp,mode,cost_type,cost_amount,result_card_ids,result_rarities,has_ssr,pity_triggered,pity_before,pity_after"
)

// timestampFormat matches the upstream ISO-8601 millisecond form.
const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// PointsCSV renders the resource-movement log newest-first.
func PointsCSV(history domain.History) string {
	lines := make([]string, 0, len(history.Points)+1)
	lines = append(lines, PointsCSVHeader)
	for _, e := range history.Points {
		related := ""
		if e.RelatedGachaID != nil {
			related = *e.RelatedGachaID
		}
		lines = append(lines, strings.Join([]string{
			e.ID,
			e.Timestamp.UTC().Format(timestampFormat),
			e.Action,
			strconv.Itoa(e.PointsDelta),
			strconv.Itoa(e.TicketsDelta),
			strconv.Itoa(e.PityBefore),
			strconv.Itoa(e.PityAfter),
			quote(e.Note),
			related,
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// GachaCSV renders the draw-outcome log newest-first. Multi-card
// result fields stay pipe-delimited inside one quoted field.
func GachaCSV(history domain.History) string {
	lines := make([]string, 0, len(history.Gacha)+1)
	lines = append(lines, GachaCSVHeader)
	for _, e := range history.Gacha {
		lines = append(lines, strings.Join([]string{
			e.GachaID,
			e.Timestamp.UTC().Format(timestampFormat),
			string(e.Mode),
			string(e.CostType),
			strconv.Itoa(e.CostAmount),
			quote(e.JoinedCardIDs()),
			quote(e.JoinedRarities()),
			strconv.FormatBool(e.HasSSR),
			strconv.FormatBool(e.PityTriggered),
			strconv.Itoa(e.PityBefore),
			strconv.Itoa(e.PityAfter),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// quote wraps a free-text field, doubling embedded quote characters.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
