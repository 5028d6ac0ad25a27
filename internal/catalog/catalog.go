package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Panel groups catalog entries under a titled section of the service panel.
type Panel struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

// LoadPanels reads a user-defined catalog from a JSON file. An empty path
// returns the built-in defaults.
func LoadPanels(path string) ([]Panel, error) {
	if path == "" {
		return DefaultPanels(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var panels []Panel
	if err := json.Unmarshal(data, &panels); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i := range panels {
		for j := range panels[i].Entries {
			if panels[i].Entries[j].Panel == "" {
				panels[i].Entries[j].Panel = panels[i].Title
			}
		}
	}
	return panels, nil
}

// DefaultPanels returns the built-in service panel used when no catalog file
// is configured.
func DefaultPanels() []Panel {
	return []Panel{
		{
			Title: "골프",
			Entries: []Entry{
				{Type: "골프", Name: "Long Thanh Golf Club", UnitPrice: 95, Currency: "USD", Panel: "골프"},
				{Type: "골프", Name: "Tan Son Nhat Golf Course", UnitPrice: 110, Currency: "USD", Panel: "골프"},
				{Type: "골프", Name: "Vung Tau Paradise Golf", UnitPrice: 85, Currency: "USD", Panel: "골프"},
			},
		},
		{
			Title: "숙소",
			Entries: []Entry{
				{Type: "아파트", Name: "Landmark 81 Residence", UnitPrice: 70, Currency: "USD", Panel: "숙소"},
				{Type: "호텔", Name: "Rex Hotel Saigon", UnitPrice: 120, Currency: "USD", Panel: "숙소"},
				{Icon: "🏘️", Name: "Riverside Villa", UnitPrice: 150, Currency: "USD", Panel: "숙소"},
			},
		},
		{
			Title: "차량",
			Entries: []Entry{
				{Type: "차량", Name: "7-seat van, full day", UnitPrice: 60, Currency: "USD", Panel: "차량"},
				{Type: "차량", Name: "Airport pickup", UnitPrice: 25, Currency: "USD", Panel: "차량"},
			},
		},
		{
			Title: "기타 서비스",
			Entries: []Entry{
				{Name: "Saigon river cruise dinner", Icon: "🛳️", UnitPrice: 45, Currency: "USD", Panel: "기타 서비스"},
				{Name: "City tour guide", UnitPrice: 40, Currency: "USD", Panel: "기타 서비스"},
				{Name: "Karaoke room", Icon: "🎤", UnitPrice: 30, Currency: "USD", Panel: "기타 서비스"},
			},
		},
	}
}

// Flatten returns the entries of all panels in presentation order.
func Flatten(panels []Panel) []Entry {
	var entries []Entry
	for _, p := range panels {
		entries = append(entries, p.Entries...)
	}
	return entries
}
