package cli

import (
	"context"
	"fmt"
	"log"
)

// Characters lists the catalog as "id  name (element, rarity★)".
func (a *App) Characters(ctx context.Context) error {
	chars, err := a.catalogService.Characters(ctx)
	if err != nil {
		log.Printf("Listing characters unsuccessful: %s", err.Error())
		return err
	}

	for _, ch := range chars {
		fmt.Printf("%4d  %s (%s, %d★)\n", ch.ID, ch.Name, ch.Element, ch.Rarity)
	}
	return nil
}

// Character shows one catalog entry in full.
func (a *App) Character(ctx context.Context, arg string) error {
	id, err := parseCharacterID(arg)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	ch, err := a.catalogService.Character(ctx, id)
	if err != nil {
		log.Printf("Fetching character unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("%s (%d)\n", ch.Name, ch.ID)
	fmt.Printf("  element: %s, weapon: %s, rarity: %d, region: %s\n", ch.Element, ch.Weapon, ch.Rarity, ch.Region)
	if ch.Description != "" {
		fmt.Printf("  %s\n", ch.Description)
	}
	fmt.Printf("  base stats: HP %d / ATK %d / DEF %d\n", ch.BaseHP, ch.BaseATK, ch.BaseDEF)
	return nil
}

// Portrait prints a presigned URL for the character's portrait.
func (a *App) Portrait(ctx context.Context, arg string) error {
	id, err := parseCharacterID(arg)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	url, err := a.catalogService.PortraitURL(ctx, id)
	if err != nil {
		log.Printf("Fetching portrait URL unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println(url)
	return nil
}
