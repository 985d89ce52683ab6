package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gameswap/internal/domain/entity"
)

// GameModel is the games-collection document. The catalog is written by
// an out-of-core seeding process; this shape mirrors what it produces.
type GameModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Publisher   string             `bson:"publisher"`
	Released    string             `bson:"released"`
	Description string             `bson:"description"`
	Image       string             `bson:"image,omitempty"`
	Available   bool               `bson:"available"`
}

// ToEntity maps the document onto the domain entity.
func (m *GameModel) ToEntity() entity.Game {
	return entity.Game{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Publisher:   m.Publisher,
		Released:    m.Released,
		Description: m.Description,
		Image:       m.Image,
		Available:   m.Available,
	}
}
