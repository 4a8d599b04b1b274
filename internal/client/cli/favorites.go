package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
)

func parseCharacterID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid character id: %q", arg)
	}
	return id, nil
}

// Fav marks a character as a favorite and reports how the change was
// applied.
func (a *App) Fav(ctx context.Context, arg string) error {
	id, err := parseCharacterID(arg)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	result, err := a.favoriteService.Add(ctx, id)
	if err != nil {
		log.Printf("Adding favorite unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Favorite %d: %s\n", id, result)
	return nil
}

// Unfav unmarks a favorite.
func (a *App) Unfav(ctx context.Context, arg string) error {
	id, err := parseCharacterID(arg)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	result, err := a.favoriteService.Remove(ctx, id)
	if err != nil {
		log.Printf("Removing favorite unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Favorite %d removed: %s\n", id, result)
	return nil
}

// Favs lists the favorite character ids, served from the cache when the
// server is unreachable.
func (a *App) Favs(ctx context.Context) error {
	ids, err := a.favoriteService.List(ctx)
	if err != nil {
		log.Printf("Listing favorites unsuccessful: %s", err.Error())
		return err
	}

	if len(ids) == 0 {
		fmt.Println("No favorites yet")
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

// Check reports whether a character is currently a favorite.
func (a *App) Check(ctx context.Context, arg string) error {
	id, err := parseCharacterID(arg)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	exists, err := a.favoriteService.Check(ctx, id)
	if err != nil {
		log.Printf("Checking favorite unsuccessful: %s", err.Error())
		return err
	}

	if exists {
		fmt.Printf("%d is a favorite\n", id)
	} else {
		fmt.Printf("%d is not a favorite\n", id)
	}
	return nil
}
