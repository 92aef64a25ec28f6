package fontdb

import (
	"font-catalog/core/catalog"
)

// FontFace is one registered face row. Faces of one family share the Family
// column; face order within a family is the primary key order, which Replace
// assigns from the snapshot's enumeration order.
type FontFace struct {
	ID       uint   `gorm:"primaryKey"`
	Family   string `gorm:"size:255;index"`
	Name     string `gorm:"size:255"`
	Weight   int
	Style    string `gorm:"size:16"`
	Stretch  int
	Filename string `gorm:"size:1024"`

	Properties []FontProperty `gorm:"foreignKey:FaceID;constraint:OnDelete:CASCADE"`
}

// FontProperty is one informational string of a registered face.
type FontProperty struct {
	ID         uint `gorm:"primaryKey"`
	FaceID     uint `gorm:"index"`
	PropertyID int
	Value      string `gorm:"size:2048"`
}

func (f FontFace) faceInfo() catalog.FaceInfo {
	style, err := catalog.ParseStyle(f.Style)
	if err != nil {
		style = catalog.StyleNormal
	}
	face := catalog.FaceInfo{
		Name:     f.Name,
		Weight:   catalog.Weight(f.Weight),
		Style:    style,
		Stretch:  catalog.Stretch(f.Stretch),
		Filename: f.Filename,
	}
	for _, p := range f.Properties {
		face.Properties = append(face.Properties, catalog.Property{
			ID:    catalog.PropertyID(p.PropertyID),
			Value: p.Value,
		})
	}
	return face
}

func faceRow(family string, face catalog.FaceInfo) FontFace {
	row := FontFace{
		Family:   family,
		Name:     face.Name,
		Weight:   int(face.Weight),
		Style:    face.Style.String(),
		Stretch:  int(face.Stretch),
		Filename: face.Filename,
	}
	for _, p := range face.Properties {
		row.Properties = append(row.Properties, FontProperty{
			PropertyID: int(p.ID),
			Value:      p.Value,
		})
	}
	return row
}
