// Package characters provides the PostgreSQL-backed character catalog.
package characters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/teyvatdex/teyvatdex/internal/common"
	"github.com/teyvatdex/teyvatdex/internal/dbx"
	"github.com/teyvatdex/teyvatdex/internal/server/models"
)

const characterColumns = `
	id, name, element, weapon, rarity, region, description, image,
	normal_attack, elemental_skill, elemental_burst,
	ascension_materials, talent_materials,
	base_hp, base_atk, base_def,
	character_story, constellations, passive_talents,
	voice_actor_cn, voice_actor_jp
`

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanCharacter(row interface{ Scan(dest ...any) error }) (*models.Character, error) {
	ch := &models.Character{}
	err := row.Scan(
		&ch.ID, &ch.Name, &ch.Element, &ch.Weapon, &ch.Rarity, &ch.Region,
		&ch.Description, &ch.Image,
		&ch.NormalAttack, &ch.ElementalSkill, &ch.ElementalBurst,
		&ch.AscensionMaterials, &ch.TalentMaterials,
		&ch.BaseHP, &ch.BaseATK, &ch.BaseDEF,
		&ch.CharacterStory, &ch.Constellations, &ch.PassiveTalents,
		&ch.VoiceActorCN, &ch.VoiceActorJP,
	)
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// List returns the whole catalog ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Character, 0)
	for rows.Next() {
		ch, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetByID returns a single catalog entry or common.ErrNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters WHERE id = $1`

	ch, err := scanCharacter(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ch, nil
}

// Upsert inserts a character or, when a row with the same name exists,
// updates it in place. Used by the import tool to make re-imports safe.
func (r *PostgresRepository) Upsert(ctx context.Context, ch *models.Character) (int64, error) {
	query := `
		INSERT INTO characters (
			name, element, weapon, rarity, region, description, image,
			normal_attack, elemental_skill, elemental_burst,
			ascension_materials, talent_materials,
			base_hp, base_atk, base_def,
			character_story, constellations, passive_talents,
			voice_actor_cn, voice_actor_jp
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (name) DO UPDATE SET
			element = EXCLUDED.element,
			weapon = EXCLUDED.weapon,
			rarity = EXCLUDED.rarity,
			region = EXCLUDED.region,
			description = EXCLUDED.description,
			image = EXCLUDED.image,
			normal_attack = EXCLUDED.normal_attack,
			elemental_skill = EXCLUDED.elemental_skill,
			elemental_burst = EXCLUDED.elemental_burst,
			ascension_materials = EXCLUDED.ascension_materials,
			talent_materials = EXCLUDED.talent_materials,
			base_hp = EXCLUDED.base_hp,
			base_atk = EXCLUDED.base_atk,
			base_def = EXCLUDED.base_def,
			character_story = EXCLUDED.character_story,
			constellations = EXCLUDED.constellations,
			passive_talents = EXCLUDED.passive_talents,
			voice_actor_cn = EXCLUDED.voice_actor_cn,
			voice_actor_jp = EXCLUDED.voice_actor_jp
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		ch.Name, ch.Element, ch.Weapon, ch.Rarity, ch.Region, ch.Description, ch.Image,
		ch.NormalAttack, ch.ElementalSkill, ch.ElementalBurst,
		ch.AscensionMaterials, ch.TalentMaterials,
		ch.BaseHP, ch.BaseATK, ch.BaseDEF,
		ch.CharacterStory, ch.Constellations, ch.PassiveTalents,
		ch.VoiceActorCN, ch.VoiceActorJP,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}
