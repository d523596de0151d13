package feeds

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"storadag/config"
	"storadag/models"
)

// Record holds the text of each direct child of the feed's record element,
// keyed by element name. Only the first occurrence of a name is kept.
type Record map[string]string

// ParseRecord reads the first element named element at any depth. A
// document without that element gives a nil Record and no error.
func ParseRecord(data []byte, element string) (Record, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var (
		record   Record
		elements int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		elements++
		if record != nil || start.Name.Local != element {
			continue
		}
		if record, err = readRecord(dec); err != nil {
			return nil, err
		}
	}

	if elements == 0 {
		return nil, errors.New("no root element")
	}
	return record, nil
}

// readRecord consumes tokens up to the end of the record element
func readRecord(dec *xml.Decoder) (Record, error) {
	record := Record{}

	var (
		field string
		text  strings.Builder
		depth int
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				field = t.Name.Local
				text.Reset()
			}
		case xml.CharData:
			if depth > 0 {
				text.Write(t)
			}
		case xml.EndElement:
			if depth == 0 {
				return record, nil
			}
			if depth == 1 {
				if _, seen := record[field]; !seen {
					record[field] = text.String()
				}
			}
			depth--
		}
	}
}

// Menu collects each day's dishes from the numbered fields
// <prefix><index><suffix>, index running from 1 to the day's MaxIndex.
// Absent and blank fields are skipped.
func (r Record) Menu(days []config.Day, suffixes []string) models.WeeklyMenu {
	menu := models.NewWeeklyMenu()
	for _, day := range days {
		for i := 1; i <= day.MaxIndex; i++ {
			if dish, ok := r.dish(day.Prefix, i, suffixes); ok {
				menu.Add(day.Weekday, dish)
			}
		}
	}
	return menu
}

func (r Record) dish(prefix string, index int, suffixes []string) (string, bool) {
	for _, suffix := range suffixes {
		text, ok := r[fmt.Sprintf("%s%d%s", prefix, index, suffix)]
		if !ok {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			return text, true
		}
	}
	return "", false
}

// Extract parses a feed document into a weekly menu. On error the returned
// menu is empty and the error wraps ErrParse.
func Extract(data []byte, cfg *config.Config) (models.WeeklyMenu, error) {
	record, err := ParseRecord(data, cfg.RecordElement)
	if err != nil {
		return models.NewWeeklyMenu(), fmt.Errorf("%w: %w", ErrParse, err)
	}
	return record.Menu(cfg.Days, cfg.FieldSuffixes), nil
}
