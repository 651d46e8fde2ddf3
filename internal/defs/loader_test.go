// internal/defs/loader_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTowerDefinitionsReplacesCatalog(t *testing.T) {
	original := TowerLibrary
	defer func() { TowerLibrary = original }()

	data := `[
		{
			"id": "TOWER_TEST", "name": "Test Tower", "cost": 33,
			"elements": ["FIRE"],
			"combat": {"damage": 9, "fire_rate": 1.5, "range": 3.5, "behavior": "PROJECTILE"},
			"upgrades": {"damage_multiplier": 2.0, "fire_rate_multiplier": 1.0, "cost_multipliers": [1.0], "max_level": 2}
		}
	]`
	path := filepath.Join(t.TempDir(), "towers.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadTowerDefinitions(path); err != nil {
		t.Fatalf("LoadTowerDefinitions: %v", err)
	}
	if len(TowerLibrary) != 1 {
		t.Fatalf("Catalog holds %d definitions, want 1", len(TowerLibrary))
	}
	def, ok := TowerLibrary["TOWER_TEST"]
	if !ok {
		t.Fatal("Loaded definition missing from the catalog")
	}
	if def.Cost != 33 || def.Combat.Damage != 9 || def.Combat.Behavior != BehaviorProjectile {
		t.Errorf("Loaded definition = %+v", def)
	}
	if !def.HasElement(ElementFire) {
		t.Error("Loaded definition lost its element set")
	}
}

func TestLoadTowerDefinitionsErrors(t *testing.T) {
	original := TowerLibrary
	defer func() { TowerLibrary = original }()

	if err := LoadTowerDefinitions("/nonexistent/towers.json"); err == nil {
		t.Error("Missing file produced no error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadTowerDefinitions(path); err == nil {
		t.Error("Malformed JSON produced no error")
	}
}

func TestLoadEnemyDefinitionsReplacesCatalog(t *testing.T) {
	original := EnemyLibrary
	defer func() { EnemyLibrary = original }()

	data := `[{"id": "ENEMY_TEST", "name": "Test Enemy", "health": 50, "speed": 2.0, "bounty": 3}]`
	path := filepath.Join(t.TempDir(), "enemies.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadEnemyDefinitions(path); err != nil {
		t.Fatalf("LoadEnemyDefinitions: %v", err)
	}
	def, ok := EnemyLibrary["ENEMY_TEST"]
	if !ok {
		t.Fatal("Loaded enemy missing from the catalog")
	}
	if def.Health != 50 || def.Speed != 2.0 || def.Bounty != 3 {
		t.Errorf("Loaded enemy = %+v", def)
	}
}
