// Package model holds the BSON document shapes and their mapping to and
// from domain entities.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gameswap/internal/domain/entity"
)

// UserModel is the users-collection document.
type UserModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Username   string             `bson:"username"`
	Email      string             `bson:"email"`
	Password   string             `bson:"password"`
	SavedGames []RentalModel      `bson:"saved_games"`
}

// RentalModel is one embedded entry of a user's rental set.
type RentalModel struct {
	GameID     primitive.ObjectID `bson:"game_id"`
	ReturnDate string             `bson:"return_date"`
}

// ToEntity maps the document onto the domain entity.
func (m *UserModel) ToEntity() *entity.User {
	saved := make([]entity.RentalRecord, 0, len(m.SavedGames))
	for _, r := range m.SavedGames {
		saved = append(saved, entity.RentalRecord{
			GameID:     r.GameID.Hex(),
			ReturnDate: r.ReturnDate,
		})
	}

	return &entity.User{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
		SavedGames:   saved,
	}
}

// UserFromEntity maps a domain user onto its document shape. A zero or
// unparseable id yields a fresh ObjectID (insert case).
func UserFromEntity(user *entity.User) *UserModel {
	id, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		id = primitive.NewObjectID()
	}

	saved := make([]RentalModel, 0, len(user.SavedGames))
	for _, r := range user.SavedGames {
		gameID, err := primitive.ObjectIDFromHex(r.GameID)
		if err != nil {
			continue
		}
		saved = append(saved, RentalModel{GameID: gameID, ReturnDate: r.ReturnDate})
	}

	return &UserModel{
		ID:         id,
		Username:   user.Username,
		Email:      user.Email,
		Password:   user.PasswordHash,
		SavedGames: saved,
	}
}
