package model

import "strconv"

const (
	EntityName = "bike"

	FieldID   = "bike_id"
	FieldSize = "size"
	FieldName = "name"
)

// Bike is a cargo bike of the fleet. Ids are assigned by whoever registers the bike.
type Bike struct {
	ID   int64  `csv:"bike_id,primary" json:"id"   yaml:"id"`
	Size string `csv:"size"            json:"size" yaml:"size"`
	Name string `csv:"name"            json:"name" yaml:"name"`
}

// Label is the text shown on the bike selection button.
func (b Bike) Label() string {
	return strconv.FormatInt(b.ID, 10) + " - " + b.Name + " (" + b.Size + ")"
}
