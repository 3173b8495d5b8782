package model

// Admin entities are straight mirrors of the backend's responses; the
// frontend only lists, creates and deletes them.

type Universe struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UniverseCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type World struct {
	UID         string  `json:"uid"`
	UniverseUID string  `json:"universe_uid"`
	RealOrigin  *string `json:"real_origin"`
	WorldOrigin *string `json:"world_origin"`
	TimeScale   float64 `json:"time_scale"`
	Timezone    string  `json:"timezone"`
}

type WorldCreate struct {
	UniverseUID string   `json:"universe_uid"`
	RealOrigin  *string  `json:"real_origin,omitempty"`
	WorldOrigin *string  `json:"world_origin,omitempty"`
	TimeScale   *float64 `json:"time_scale,omitempty"`
	Timezone    string   `json:"timezone,omitempty"`
}

type Character struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Personality string `json:"personality"`
}

type CharacterCreate struct {
	Name        string `json:"name"`
	Personality string `json:"personality"`
}

type CharacterUpdate struct {
	Name        *string `json:"name,omitempty"`
	Personality *string `json:"personality,omitempty"`
}

type Life struct {
	UID          string         `json:"uid"`
	CharacterUID string         `json:"character_uid"`
	WorldUID     string         `json:"world_uid"`
	MemoryUID    string         `json:"memory_uid"`
	ProfileUID   string         `json:"profile_uid"`
	Profile      *Profile       `json:"profile,omitempty"`
	LatestAction map[string]any `json:"latest_action,omitempty"`
}

type LifeDeployRequest struct {
	CharacterUID string `json:"character_uid"`
	WorldUID     string `json:"world_uid"`
}

type Relationship struct {
	SourceUID string `json:"source_uid"`
	TargetUID string `json:"target_uid"`
	MemoryUID string `json:"memory_uid"`
	Following bool   `json:"following"`
}

type Memory struct {
	UID        string              `json:"uid"`
	ShortTerm  string              `json:"short_term"`
	MemoItems  []map[string]string `json:"memo_items"`
	Monologues []map[string]string `json:"monologues"`
}

type MemoryUpdate struct {
	ShortTerm *string `json:"short_term,omitempty"`
}
