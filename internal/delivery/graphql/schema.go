package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"

	"gameswap/internal/domain/entity"
)

// NewSchema assembles the executable schema around the resolver.
//
// Scalar object fields without an explicit Resolve fall through to the
// library's default resolver, which matches field names against the
// entity struct fields case-insensitively.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	gameType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Game",
		Fields: graphql.Fields{
			"_id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID), Resolve: resolveGameID},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"publisher":   &graphql.Field{Type: graphql.String},
			"released":    &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"image":       &graphql.Field{Type: graphql.String},
			"available":   &graphql.Field{Type: graphql.Boolean},
		},
	})

	rentalGameType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RentalGame",
		Fields: graphql.Fields{
			// Null when the game has left the catalog since it was rented.
			"game":       &graphql.Field{Type: gameType},
			"returnDate": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"_id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID), Resolve: resolveUserID},
			"username":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"savedGames": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(rentalGameType))},
			"gameCount":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int), Resolve: resolveGameCount},
		},
	})

	authType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Auth",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	externalResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ExternalSearchResult",
		Fields: graphql.Fields{
			"slug": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	externalDetailType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ExternalGameDetail",
		Fields: graphql.Fields{
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"publisher":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"released":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"image":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	titleArg := graphql.FieldConfigArgument{
		"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}
	gameIDArg := graphql.FieldConfigArgument{
		"gameId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.me,
			},
			"library": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(gameType)),
				Resolve: r.library,
			},
			"search": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(gameType)),
				Args:    titleArg,
				Resolve: r.search,
			},
			"externalSearch": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(externalResultType)),
				Args:    titleArg,
				Resolve: r.externalSearch,
			},
			"externalDetail": &graphql.Field{
				Type: externalDetailType,
				Args: graphql.FieldConfigArgument{
					"slug": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.externalDetail,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"loginUser": &graphql.Field{
				Type: graphql.NewNonNull(authType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.loginUser,
			},
			"addUser": &graphql.Field{
				Type: graphql.NewNonNull(authType),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.addUser,
			},
			"saveGame": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(rentalGameType)),
				Args:    gameIDArg,
				Resolve: r.saveGame,
			},
			"removeGame": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(rentalGameType)),
				Args:    gameIDArg,
				Resolve: r.removeGame,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
	if err != nil {
		return graphql.Schema{}, errors.Wrap(err, "failed to build schema")
	}

	return schema, nil
}

// resolveGameID reads the id off either a Game value or pointer; list
// fields resolve values, the rental's game field resolves a pointer.
func resolveGameID(p graphql.ResolveParams) (any, error) {
	switch game := p.Source.(type) {
	case entity.Game:
		return game.ID, nil
	case *entity.Game:
		if game == nil {
			return nil, nil
		}

		return game.ID, nil
	}

	return nil, nil
}

func resolveUserID(p graphql.ResolveParams) (any, error) {
	if user, ok := p.Source.(*entity.User); ok {
		return user.ID, nil
	}

	return nil, nil
}

func resolveGameCount(p graphql.ResolveParams) (any, error) {
	if user, ok := p.Source.(*entity.User); ok {
		return user.GameCount(), nil
	}

	return 0, nil
}
