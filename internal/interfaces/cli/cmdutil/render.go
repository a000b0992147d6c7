package cmdutil

import (
	"io"
	"strconv"

	commondto "skylink/internal/application/common/dto"
)

// Plans prints plan cards as a table.
func Plans(out io.Writer, plans []commondto.PlanDTO) error {
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			p.PriceLabel,
			strconv.Itoa(p.DurationInDays) + " days",
			strconv.FormatFloat(p.DataLimitGB, 'f', -1, 64) + " GB",
			strconv.Itoa(p.SpeedMbps) + " Mbps",
			p.StatusLabel,
		})
	}
	return Table(out, []string{"ID", "NAME", "PRICE", "VALIDITY", "DATA", "SPEED", "STATUS"}, rows)
}

// Complaints prints complaint rows as a table.
func Complaints(out io.Writer, complaints []commondto.ComplaintDTO) error {
	rows := make([][]string, 0, len(complaints))
	for _, c := range complaints {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(c.ID), 10),
			c.Subject,
			c.Priority,
			c.StatusLabel,
			c.CreatedOn,
		})
	}
	return Table(out, []string{"ID", "SUBJECT", "PRIORITY", "STATUS", "CREATED"}, rows)
}
