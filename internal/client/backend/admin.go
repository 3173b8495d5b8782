package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lifeverse/dm-frontend/internal/model"
)

// Admin wrappers are straight pass-throughs over the backend's CRUD
// endpoints; all of them require an admin bearer and go through the same
// refresh-and-retry path as everything else.

func (c *Client) Universes(ctx context.Context) ([]model.Universe, error) {
	var universes []model.Universe
	if err := c.do(ctx, http.MethodGet, "admin/universe", nil, nil, &universes); err != nil {
		return nil, err
	}
	return universes, nil
}

func (c *Client) CreateUniverse(ctx context.Context, req model.UniverseCreate) (*model.Universe, error) {
	var universe model.Universe
	if err := c.do(ctx, http.MethodPost, "admin/universe", nil, req, &universe); err != nil {
		return nil, err
	}
	return &universe, nil
}

func (c *Client) Worlds(ctx context.Context, universeUID string) ([]model.World, error) {
	query := url.Values{}
	if universeUID != "" {
		query.Set("universe_uid", universeUID)
	}

	var worlds []model.World
	if err := c.do(ctx, http.MethodGet, "admin/world", query, nil, &worlds); err != nil {
		return nil, err
	}
	return worlds, nil
}

func (c *Client) CreateWorld(ctx context.Context, req model.WorldCreate) (*model.World, error) {
	var world model.World
	if err := c.do(ctx, http.MethodPost, "admin/world", nil, req, &world); err != nil {
		return nil, err
	}
	return &world, nil
}

func (c *Client) DeleteWorld(ctx context.Context, uid string) error {
	return c.do(ctx, http.MethodDelete, "admin/world/"+uid, nil, nil, nil)
}

func (c *Client) Characters(ctx context.Context) ([]model.Character, error) {
	var characters []model.Character
	if err := c.do(ctx, http.MethodGet, "admin/character", nil, nil, &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

func (c *Client) CreateCharacter(ctx context.Context, req model.CharacterCreate) (*model.Character, error) {
	var character model.Character
	if err := c.do(ctx, http.MethodPost, "admin/character", nil, req, &character); err != nil {
		return nil, err
	}
	return &character, nil
}

func (c *Client) UpdateCharacter(ctx context.Context, uid string, req model.CharacterUpdate) (*model.Character, error) {
	var character model.Character
	if err := c.do(ctx, http.MethodPatch, "admin/character/"+uid, nil, req, &character); err != nil {
		return nil, err
	}
	return &character, nil
}

func (c *Client) DeleteCharacter(ctx context.Context, uid string) error {
	return c.do(ctx, http.MethodDelete, "admin/character/"+uid, nil, nil, nil)
}

func (c *Client) Lives(ctx context.Context, worldUID string) ([]model.Life, error) {
	query := url.Values{}
	if worldUID != "" {
		query.Set("world_uid", worldUID)
	}

	var lives []model.Life
	if err := c.do(ctx, http.MethodGet, "admin/life", query, nil, &lives); err != nil {
		return nil, err
	}
	return lives, nil
}

func (c *Client) DeployLife(ctx context.Context, req model.LifeDeployRequest) (*model.Life, error) {
	var life model.Life
	if err := c.do(ctx, http.MethodPost, "admin/life/deploy", nil, req, &life); err != nil {
		return nil, err
	}
	return &life, nil
}

func (c *Client) LifeDetail(ctx context.Context, uid string) (*model.Life, error) {
	var life model.Life
	if err := c.do(ctx, http.MethodGet, "admin/life/"+uid, nil, nil, &life); err != nil {
		return nil, err
	}
	return &life, nil
}

func (c *Client) DeleteLife(ctx context.Context, uid string) error {
	return c.do(ctx, http.MethodDelete, "admin/life/"+uid, nil, nil, nil)
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "admin/user", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UserProfiles(ctx context.Context, userUID string) ([]model.Profile, error) {
	var profiles []model.Profile
	if err := c.do(ctx, http.MethodGet, "admin/user/"+userUID+"/profiles", nil, nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *Client) Relationships(ctx context.Context, sourceUID, targetUID string) ([]model.Relationship, error) {
	query := url.Values{}
	if sourceUID != "" {
		query.Set("source_uid", sourceUID)
	}
	if targetUID != "" {
		query.Set("target_uid", targetUID)
	}

	var relationships []model.Relationship
	if err := c.do(ctx, http.MethodGet, "admin/relationship", query, nil, &relationships); err != nil {
		return nil, err
	}
	return relationships, nil
}

func (c *Client) DeleteRelationship(ctx context.Context, sourceUID, targetUID string) error {
	return c.do(ctx, http.MethodDelete, "admin/relationship/"+sourceUID+"/"+targetUID, nil, nil, nil)
}

func (c *Client) GetMemory(ctx context.Context, uid string) (*model.Memory, error) {
	var memory model.Memory
	if err := c.do(ctx, http.MethodGet, "admin/memory/"+uid, nil, nil, &memory); err != nil {
		return nil, err
	}
	return &memory, nil
}

func (c *Client) UpdateMemory(ctx context.Context, uid string, req model.MemoryUpdate) (*model.Memory, error) {
	var memory model.Memory
	if err := c.do(ctx, http.MethodPatch, "admin/memory/"+uid, nil, req, &memory); err != nil {
		return nil, err
	}
	return &memory, nil
}
