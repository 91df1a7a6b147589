package data

// Default returns the built-in dataset: a small but complete cast that
// exercises every record kind. External YAML files overlay it by ID.
func Default() *Database {
	db := &Database{
		Actors: []*Actor{
			{ID: 1, Name: "Harold", ClassID: 1, Level: 5},
			{ID: 2, Name: "Therese", ClassID: 2, Level: 5},
		},
		Classes: []*Class{
			{
				ID:   1,
				Name: "Soldier",
				Params: [BaseParamCount][]int{
					{100, 120, 140, 160, 180, 200, 220, 240, 260, 280}, // mhp
					{20, 24, 28, 32, 36, 40, 44, 48, 52, 56},           // mmp
					{6, 7, 8, 10, 12, 14, 16, 18, 20, 22},              // atk
					{6, 7, 8, 9, 10, 11, 12, 13, 14, 15},               // def
					{4, 4, 5, 5, 6, 6, 7, 7, 8, 8},                     // mat
					{4, 5, 6, 7, 8, 9, 10, 11, 12, 13},                 // mdf
					{5, 6, 7, 8, 9, 10, 11, 12, 13, 14},                // agi
					{10, 12, 14, 16, 18, 20, 22, 24, 26, 28},           // luk
				},
			},
			{
				ID:   2,
				Name: "Mage",
				Params: [BaseParamCount][]int{
					{70, 82, 94, 106, 118, 130, 142, 154, 166, 178},
					{50, 60, 70, 80, 90, 100, 110, 120, 130, 140},
					{3, 3, 4, 4, 5, 5, 6, 6, 7, 7},
					{4, 4, 5, 5, 6, 6, 7, 7, 8, 8},
					{8, 10, 12, 14, 16, 18, 20, 22, 24, 26},
					{7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
					{6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
					{12, 14, 16, 18, 20, 22, 24, 26, 28, 30},
				},
			},
		},
		Skills: []*Skill{
			{
				ID: 1, Name: "Attack", Success: 100, Hit: HitPhysical,
				Damage: Damage{
					Kind: DamageHP, ElementID: 1, Variance: 20, Critical: true,
					Formula: "a.atk * 4 - b.def * 2",
				},
			},
			{
				ID: 2, Name: "Fireball", Success: 100, Hit: HitMagical,
				Damage: Damage{
					Kind: DamageHP, ElementID: 2, Variance: 15,
					Formula: "a.mat * 3 - b.mdf * 2 + 20",
				},
			},
			{
				ID: 3, Name: "Heal", Success: 100, Hit: HitCertain,
				Damage: Damage{
					Kind: RecoverHP, Variance: 10,
					Formula: "a.mat * 2 + 30",
				},
			},
			{
				ID: 4, Name: "Power Strike", Success: 95, Hit: HitPhysical,
				Note: "<Power Stats: atk, agi>\n<Resist Stats: def, agi>\n<Hit Mod: +5>\n<Crit Mod: 10%>",
				Damage: Damage{
					Kind: DamageHP, ElementID: 1, Variance: 20, Critical: true,
					Formula: "a.atk * 5 - b.def * 2",
				},
			},
			{
				ID: 5, Name: "Mana Drain", Success: 90, Hit: HitMagical,
				Damage: Damage{
					Kind:    DrainMP,
					Formula: "a.mat * 2",
				},
			},
		},
		Items: []*Item{
			{
				ID: 1, Name: "Potion", Success: 100, Hit: HitCertain,
				Damage: Damage{Kind: RecoverHP, Formula: "50"},
			},
			{
				ID: 2, Name: "Flash Bomb", Success: 80, Hit: HitPhysical,
				Note: "<Hit Mod: 10>",
				Damage: Damage{
					Kind: DamageHP, ElementID: 2, Variance: 25,
					Formula: "30",
				},
			},
		},
		Weapons: []*Weapon{
			{
				ID: 1, Name: "Short Sword",
				Params: [BaseParamCount]int{2: 10},
			},
			{
				ID: 2, Name: "Duelist Edge",
				Note:   "<Crit Boost: 25>",
				Params: [BaseParamCount]int{2: 14, 6: 2},
			},
		},
		Armors: []*Armor{
			{
				ID: 1, Name: "Leather Vest",
				Params: [BaseParamCount]int{3: 5},
			},
			{
				ID: 2, Name: "Lucky Charm",
				Note:   "<Crit Boost: 10>",
				Params: [BaseParamCount]int{7: 4},
			},
		},
		Enemies: []*Enemy{
			{
				ID: 1, Name: "Slime",
				Params: [BaseParamCount]int{80, 10, 7, 7, 5, 5, 3, 6},
			},
			{
				ID: 2, Name: "Will-o-Wisp",
				Params:       [BaseParamCount]int{60, 40, 5, 4, 12, 10, 9, 14},
				ElementRates: map[int]float64{2: 0}, // immune to fire
			},
		},
		States: []*State{
			{ID: 1, Name: "Poison"},
			{
				ID: 2, Name: "Berserk",
				Note: "<Crit Boost: 15>",
			},
			{
				ID: 3, Name: "Oil Soaked",
				ElementRates: map[int]float64{2: 2},
			},
		},
	}
	db.index()
	return db
}
