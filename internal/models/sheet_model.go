package models

import "encoding/json"

// SheetTimestamp is the wire shape of a timestamp returned by the sheet API.
type SheetTimestamp struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

// SheetItem is one row of a financial sheet as returned by the sheet API.
// Fields are kept raw so that whatever the API sends is passed on as is.
type SheetItem map[string]json.RawMessage

// Timestamp decodes the item's date. It reports false when the date is
// missing or not a timestamp.
func (i SheetItem) Timestamp() (SheetTimestamp, bool) {
	raw, ok := i["date"]
	if !ok {
		return SheetTimestamp{}, false
	}
	var ts SheetTimestamp
	if err := json.Unmarshal(raw, &ts); err != nil {
		return SheetTimestamp{}, false
	}
	return ts, true
}
