package plan

import (
	"encoding/csv"
	"io"

	"nutriplan/structs"
)

var csvHeader = []string{"Tag", "Mahlzeit", "Gericht", "Von", "Bis"}

// WriteCSV writes the header and one line per plan row.
func WriteCSV(w io.Writer, rows []structs.PlanRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writer.Write([]string{r.Weekday, r.Meal, r.Dish, r.StartDate, r.EndDate}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
