package beatmap

import (
	"exusiai.dev/beatmap/internal/model"
	v2 "exusiai.dev/beatmap/internal/model/v2"
	v3 "exusiai.dev/beatmap/internal/model/v3"
)

// Document is the shape a difficulty text was accepted as. It is one of V3Document,
// V2Document or EmptyDocument.
type Document interface {
	// Schema is the accepted schema, SchemaUnrecognized for EmptyDocument.
	Schema() model.Schema
	document()
}

type V3Document struct {
	*v3.Difficulty
}

type V2Document struct {
	*v2.Difficulty
}

// EmptyDocument means neither shape could be read from the text.
type EmptyDocument struct{}

func (V3Document) Schema() model.Schema    { return model.SchemaV3 }
func (V2Document) Schema() model.Schema    { return model.SchemaV2 }
func (EmptyDocument) Schema() model.Schema { return model.SchemaUnrecognized }

func (V3Document) document()    {}
func (V2Document) document()    {}
func (EmptyDocument) document() {}
