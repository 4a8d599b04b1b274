package models

// Character is a read-only catalog entry. Rows are written by the import
// tool, never by the API.
type Character struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Element            string  `json:"element"`
	Weapon             string  `json:"weapon"`
	Rarity             int     `json:"rarity"`
	Region             string  `json:"region"`
	Description        string  `json:"description"`
	Image              string  `json:"image"`
	NormalAttack       string  `json:"normal_attack"`
	ElementalSkill     string  `json:"elemental_skill"`
	ElementalBurst     string  `json:"elemental_burst"`
	AscensionMaterials string  `json:"ascension_materials"`
	TalentMaterials    string  `json:"talent_materials"`
	BaseHP             int     `json:"base_hp"`
	BaseATK            int     `json:"base_atk"`
	BaseDEF            int     `json:"base_def"`
	CharacterStory     string  `json:"character_story"`
	Constellations     string  `json:"constellations"`
	PassiveTalents     string  `json:"passive_talents"`
	VoiceActorCN       string  `json:"voice_actor_cn"`
	VoiceActorJP       string  `json:"voice_actor_jp"`
}
