package db

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"parasport/games-api/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Import loads the region and event CSV files from the source dataset
// into the database. Existing rows with the same key are overwritten so
// the importer can be re-run after a dataset update.
func Import(d *gorm.DB, regionsPath, eventsPath string) error {
	regions, err := readCSV(regionsPath)
	if err != nil {
		return fmt.Errorf("failed to read regions file, %w", err)
	}

	for _, row := range regions {
		r := model.Region{
			NOC:    row["NOC"],
			Region: row["region"],
			Notes:  optStr(row["notes"]),
		}

		err = d.Clauses(clause.OnConflict{UpdateAll: true}).Create(&r).Error
		if err != nil {
			return fmt.Errorf("failed to import region %q, %w", r.NOC, err)
		}
	}

	events, err := readCSV(eventsPath)
	if err != nil {
		return fmt.Errorf("failed to read events file, %w", err)
	}

	for _, row := range events {
		year, err := strconv.Atoi(row["year"])
		if err != nil {
			return fmt.Errorf("bad year %q in events file, %w", row["year"], err)
		}

		e := model.Event{
			Type:                 row["type"],
			Year:                 year,
			Country:              row["country"],
			Host:                 row["host"],
			NOC:                  row["NOC"],
			Start:                optStr(row["start"]),
			End:                  optStr(row["end"]),
			Duration:             optInt(row["duration"]),
			DisabilitiesIncluded: optStr(row["disabilities_included"]),
			Countries:            optInt(row["countries"]),
			Events:               optInt(row["events"]),
			Sports:               optInt(row["sports"]),
			ParticipantsM:        optInt(row["participants_m"]),
			ParticipantsF:        optInt(row["participants_f"]),
			Participants:         optInt(row["participants"]),
			Highlights:           optStr(row["highlights"]),
		}

		err = d.Create(&e).Error
		if err != nil {
			return fmt.Errorf("failed to import event %d %s, %w", e.Year, e.Host, err)
		}
	}

	return nil
}

// readCSV returns every record keyed by the header row
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, err
	}

	var rows []map[string]string

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt(s string) *int {
	if s == "" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &n
}
