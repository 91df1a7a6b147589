package data

// Database aggregates the eight game-data record sets. Built once at
// startup (defaults plus optional YAML overlay) and read-only afterwards.
type Database struct {
	Actors  []*Actor  `yaml:"actors"`
	Classes []*Class  `yaml:"classes"`
	Skills  []*Skill  `yaml:"skills"`
	Items   []*Item   `yaml:"items"`
	Weapons []*Weapon `yaml:"weapons"`
	Armors  []*Armor  `yaml:"armors"`
	Enemies []*Enemy  `yaml:"enemies"`
	States  []*State  `yaml:"states"`

	actorByID  map[int]*Actor
	classByID  map[int]*Class
	skillByID  map[int]*Skill
	itemByID   map[int]*Item
	weaponByID map[int]*Weapon
	armorByID  map[int]*Armor
	enemyByID  map[int]*Enemy
	stateByID  map[int]*State
}

// index rebuilds the lookup maps from the record slices.
func (db *Database) index() {
	db.actorByID = make(map[int]*Actor, len(db.Actors))
	for _, r := range db.Actors {
		db.actorByID[r.ID] = r
	}
	db.classByID = make(map[int]*Class, len(db.Classes))
	for _, r := range db.Classes {
		db.classByID[r.ID] = r
	}
	db.skillByID = make(map[int]*Skill, len(db.Skills))
	for _, r := range db.Skills {
		db.skillByID[r.ID] = r
	}
	db.itemByID = make(map[int]*Item, len(db.Items))
	for _, r := range db.Items {
		db.itemByID[r.ID] = r
	}
	db.weaponByID = make(map[int]*Weapon, len(db.Weapons))
	for _, r := range db.Weapons {
		db.weaponByID[r.ID] = r
	}
	db.armorByID = make(map[int]*Armor, len(db.Armors))
	for _, r := range db.Armors {
		db.armorByID[r.ID] = r
	}
	db.enemyByID = make(map[int]*Enemy, len(db.Enemies))
	for _, r := range db.Enemies {
		db.enemyByID[r.ID] = r
	}
	db.stateByID = make(map[int]*State, len(db.States))
	for _, r := range db.States {
		db.stateByID[r.ID] = r
	}
}

// Accessors return nil for unknown IDs.

func (db *Database) Actor(id int) *Actor   { return db.actorByID[id] }
func (db *Database) Class(id int) *Class   { return db.classByID[id] }
func (db *Database) Skill(id int) *Skill   { return db.skillByID[id] }
func (db *Database) Item(id int) *Item     { return db.itemByID[id] }
func (db *Database) Weapon(id int) *Weapon { return db.weaponByID[id] }
func (db *Database) Armor(id int) *Armor   { return db.armorByID[id] }
func (db *Database) Enemy(id int) *Enemy   { return db.enemyByID[id] }
func (db *Database) State(id int) *State   { return db.stateByID[id] }
