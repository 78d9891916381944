package normalizer

// sampleDocument returns a fresh copy of the canonical sample Pokemon.
func sampleDocument() Document {
	return Document{
		"id":              999,
		"name":            "sample",
		"height":          200.2,
		"weight":          201.2,
		"base_experience": 200,
		"types": []any{
			map[string]any{"type": map[string]any{"name": "type_1"}},
			map[string]any{"type": map[string]any{"name": "type_2"}},
		},
		"stats": []any{
			stat("hp", 1),
			stat("attack", 2),
			stat("defense", 3),
			stat("special-attack", 4),
			stat("special-defense", 5),
			stat("speed", 6),
		},
		"abilities": []any{
			map[string]any{"ability": map[string]any{"name": "ability_1"}, "is_hidden": true},
			map[string]any{"ability": map[string]any{"name": "ability_2"}, "is_hidden": false},
		},
		"moves": []any{
			map[string]any{
				"move": map[string]any{"name": "move_1"},
				"version_group_details": []any{
					versionDetail(0, "tutor", "game_1"),
					versionDetail(5, "level-up", "game_2"),
				},
			},
		},
		"sprites": map[string]any{
			"back_default":       "default_back_url",
			"back_female":        nil,
			"back_shiny":         "shiny_back_url",
			"back_shiny_female":  nil,
			"front_default":      "default_front_url",
			"front_female":       nil,
			"front_shiny":        "front_shiny_url",
			"front_shiny_female": nil,
		},
	}
}

func stat(name string, value int) map[string]any {
	return map[string]any{"base_stat": value, "stat": map[string]any{"name": name}}
}

func versionDetail(level int, method, game string) map[string]any {
	return map[string]any{
		"level_learned_at":  level,
		"move_learn_method": map[string]any{"name": method},
		"version_group":     map[string]any{"name": game},
	}
}

const sampleJSON = `{
  "id": 999,
  "name": "sample",
  "height": 200.2,
  "weight": 201.2,
  "base_experience": 200,
  "types": [{"type": {"name": "type_1"}}, {"type": {"name": "type_2"}}],
  "stats": [
    {"base_stat": 1, "stat": {"name": "hp"}},
    {"base_stat": 2, "stat": {"name": "attack"}},
    {"base_stat": 3, "stat": {"name": "defense"}},
    {"base_stat": 4, "stat": {"name": "special-attack"}},
    {"base_stat": 5, "stat": {"name": "special-defense"}},
    {"base_stat": 6, "stat": {"name": "speed"}}
  ],
  "abilities": [
    {"ability": {"name": "ability_1"}, "is_hidden": true},
    {"ability": {"name": "ability_2"}, "is_hidden": false}
  ],
  "moves": [
    {
      "move": {"name": "move_1"},
      "version_group_details": [
        {"level_learned_at": 0, "move_learn_method": {"name": "tutor"}, "version_group": {"name": "game_1"}},
        {"level_learned_at": 5, "move_learn_method": {"name": "level-up"}, "version_group": {"name": "game_2"}}
      ]
    }
  ],
  "sprites": {
    "back_default": "default_back_url",
    "back_female": null,
    "back_shiny": "shiny_back_url",
    "back_shiny_female": null,
    "front_default": "default_front_url",
    "front_female": null,
    "front_shiny": "front_shiny_url",
    "front_shiny_female": null
  }
}`
