// Package catalog provides the read-only character and weapon catalog
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/chpatton013/dnd-tools/internal/repositories/catalog Repository

import (
	"context"

	"github.com/chpatton013/dnd-tools/internal/entities/dnd5e"
)

// Repository defines read access to the catalog
type Repository interface {
	// GetCharacter retrieves a character with its weapons
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if the character is not in the catalog
	GetCharacter(ctx context.Context, input GetCharacterInput) (*GetCharacterOutput, error)

	// ListCharacters returns the character names in catalog order
	ListCharacters(ctx context.Context, input ListCharactersInput) (*ListCharactersOutput, error)
}

// GetCharacterInput defines the input for getting a character
type GetCharacterInput struct {
	Name string
}

// GetCharacterOutput defines the output for getting a character
type GetCharacterOutput struct {
	Character *dnd5e.Paladin
}

// ListCharactersInput defines the input for listing characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the output for listing characters
type ListCharactersOutput struct {
	Names []string
}
