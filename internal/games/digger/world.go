package digger

import (
	"math/rand"

	"github.com/vovakirdan/tui-digger/internal/config"
)

// RoundState is the top-level state of a round.
type RoundState int

const (
	RoundMenu RoundState = iota
	RoundPlaying
	RoundPaused
	RoundGameOver
)

func (s RoundState) String() string {
	switch s {
	case RoundMenu:
		return "menu"
	case RoundPlaying:
		return "playing"
	case RoundPaused:
		return "paused"
	case RoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Intents is the abstract input for one tick: at most one direction and any
// number of discrete actions.
type Intents struct {
	Dir     Direction
	Fire    bool
	Pause   bool // Toggles pause
	Confirm bool // Starts the round from the menu, picks a pause menu entry
	Restart bool // Starts a new round after game over
	Quit    bool // Pauses while playing; exits from menu, pause or game over
}

// PauseOption is an entry of the pause menu.
type PauseOption int

const (
	PauseResume PauseOption = iota
	PauseQuit
)

func (o PauseOption) String() string {
	if o == PauseQuit {
		return "quit"
	}
	return "resume"
}

// World owns the grid and every entity, and advances them in a fixed order
// once per tick. It does no I/O.
type World struct {
	cfg        config.DiggerConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	scoring    Scoring

	grid      *Grid
	player    Player
	bags      []*Bag
	creatures []*Creature
	shots     []*Shot
	emeralds  map[Coord]bool
	start     Coord
	spawn     Coord
	bonusAt   Coord

	bonusVisible bool // Bonus item waiting at bonusAt
	bonusUsed    bool // Bonus item already collected on this level

	round       RoundState
	pauseOption PauseOption
	quit        bool
	score    int
	lives    int
	level    int
	nextLife int

	bonusOn       bool
	bonusLeft     float64
	bonusDuration float64
	chain         int
	streak        int

	spawnTimer    float64
	spawned       int
	killed        int
	quota         int
	interval      float64
	creatureSpeed float64
	shotDelay     float64

	clearTimer float64
	died       bool // Player already died this tick
	tick       uint64
	nextID     int
	events     []Event
}

// NewWorld creates a world in the menu state with a generated first level.
// All randomness is drawn from rng.
func NewWorld(cfg config.DiggerConfig, rng *rand.Rand) *World {
	if rng == nil {
		panic("digger: NewWorld needs a random source")
	}
	w := &World{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		scoring:    NewScoring(cfg.Scoring, cfg.Bonus),
	}
	w.resetRound()
	w.LoadLevel(GenerateLevel(rng, cfg))
	return w
}

func (w *World) resetRound() {
	w.round = RoundMenu
	w.quit = false
	w.score = 0
	w.lives = w.cfg.Player.Lives
	w.level = 1
	w.nextLife = w.scoring.FirstExtraLife()
}

// Start leaves the menu and begins play.
func (w *World) Start() {
	if w.round == RoundMenu {
		w.round = RoundPlaying
	}
}

// Restart begins a new round: score, lives and level are reset and a fresh
// level is generated.
func (w *World) Restart() {
	w.resetRound()
	w.LoadLevel(GenerateLevel(w.rng, w.cfg))
	w.round = RoundPlaying
}

// LoadLevel replaces the playfield and every per-level counter with l.
// Round state (score, lives, level number) is left alone.
func (w *World) LoadLevel(l *Level) {
	w.grid = l.Grid
	w.start = l.Start
	w.spawn = l.Spawn
	w.bonusAt = l.Bonus
	w.emeralds = make(map[Coord]bool, len(l.Emeralds))
	for c := range l.Emeralds {
		w.emeralds[c] = true
	}
	w.bags = w.bags[:0]
	for _, at := range l.Bags {
		w.nextID++
		w.bags = append(w.bags, &Bag{ID: w.nextID, Pos: at})
	}
	w.creatures = nil
	w.shots = nil

	w.player = newPlayer(w.start, w.cfg.Player.Speed)

	w.bonusVisible = false
	w.bonusUsed = false
	w.bonusOn = false
	w.bonusLeft = 0
	w.chain = 0
	w.streak = 0

	c := w.cfg.Creatures
	d := w.difficulty
	w.spawnTimer = c.FirstSpawnDelay
	w.spawned = 0
	w.killed = 0
	w.quota = d.Count(c.Quota, w.level)
	w.interval = d.Value(c.SpawnInterval, w.level)
	w.creatureSpeed = d.Value(c.Speed, w.level)
	w.shotDelay = d.Value(w.cfg.Player.ShotDelay, w.level)
	w.bonusDuration = d.Value(w.cfg.Bonus.Duration, w.level)
	w.clearTimer = 0
}

// Update advances the world by dt seconds and returns the events of the tick.
// Only the playing state runs the simulation; other states wait for an
// input transition. A tick that pauses or resumes does not simulate.
func (w *World) Update(dt float64, in Intents) []Event {
	w.events = nil

	switch w.round {
	case RoundMenu:
		if in.Quit {
			w.quit = true
		} else if in.Confirm {
			w.Start()
		}
		return w.events
	case RoundPaused:
		w.updatePauseMenu(in)
		return w.events
	case RoundGameOver:
		if in.Quit {
			w.quit = true
		} else if in.Restart {
			w.Restart()
		}
		return w.events
	}

	if in.Pause || in.Quit {
		w.round = RoundPaused
		w.pauseOption = PauseResume
		return w.events
	}

	w.tick++
	w.died = false

	w.updatePlayer(dt, in)
	w.collect()
	w.updateBags(dt)
	if w.round != RoundPlaying {
		return w.events
	}
	w.updateSpawner(dt)
	w.updateCreatures(dt)
	if w.round != RoundPlaying {
		return w.events
	}
	w.pruneCreatures()
	w.updateShots(dt)
	w.updateBonus(dt)
	w.updateLevelClear(dt)
	return w.events
}

// updatePauseMenu handles input while paused. Up and down toggle between
// the two entries, Confirm picks one, Pause resumes and Quit exits.
func (w *World) updatePauseMenu(in Intents) {
	switch {
	case in.Quit:
		w.quit = true
	case in.Pause:
		w.round = RoundPlaying
	case in.Dir == DirUp || in.Dir == DirDown:
		w.pauseOption = 1 - w.pauseOption
	case in.Confirm:
		if w.pauseOption == PauseQuit {
			w.quit = true
		} else {
			w.round = RoundPlaying
		}
	}
}

// Phase 1: intent, movement and digging.

func (w *World) updatePlayer(dt float64, in Intents) {
	p := &w.player
	p.Wanted = in.Dir
	p.Cooldown = max(0, p.Cooldown-dt)

	if p.arrived() {
		p.X, p.Y = float64(p.Target.X), float64(p.Target.Y)
		p.from = p.Target
		if d := w.chooseDirection(p.Target, in.Dir); d != DirNone {
			next := p.Target.Step(d)
			if b := w.solidBagAt(next); b != nil {
				w.pushBag(b, d)
			}
			p.Facing = d
			p.Target = next
		}
	} else if in.Dir != DirNone && in.Dir == p.Facing.Opposite() && w.solidBagAt(p.from) == nil {
		p.Target, p.from = p.from, p.Target
		p.Facing = in.Dir
	}
	p.advance(dt)
	w.dig(p.Tile())

	if in.Fire && p.Cooldown <= 0 {
		at := p.Tile()
		w.shots = append(w.shots, newShot(at, p.Facing, w.cfg.Player.ShotSpeed))
		p.Cooldown = w.shotDelay
		w.emit(Event{Kind: EventFired, At: at})
	}
}

// chooseDirection applies the movement policy at a tile boundary: turn to
// the wanted direction when it is open, otherwise keep going the way the
// player faces, otherwise wait on the tile. The player keeps moving without
// any intent.
func (w *World) chooseDirection(here Coord, want Direction) Direction {
	facing := w.player.Facing
	switch {
	case want != DirNone && want != facing && w.playerCanEnter(here, want):
		return want
	case w.playerCanEnter(here, facing):
		return facing
	default:
		return DirNone
	}
}

// playerCanEnter reports whether the player may step from here in d. The
// player digs through earth; solid bags block unless they can be pushed.
func (w *World) playerCanEnter(here Coord, d Direction) bool {
	next := here.Step(d)
	if !w.grid.InBounds(next) {
		return false
	}
	if b := w.solidBagAt(next); b != nil {
		return w.canPush(b, d)
	}
	return true
}

func (w *World) canPush(b *Bag, d Direction) bool {
	if !d.Horizontal() || b.State != BagResting {
		return false
	}
	dest := b.Pos.Step(d)
	return w.grid.InBounds(dest) && w.grid.IsTunnel(dest) &&
		w.bagAt(dest) == nil && w.creatureAt(dest) == nil
}

func (w *World) pushBag(b *Bag, d Direction) {
	b.Pos = b.Pos.Step(d)
	w.emit(Event{Kind: EventBagPushed, At: b.Pos})
}

// Phase 2: collection and scoring.

func (w *World) collect() {
	at := w.player.Tile()
	if w.emeralds[at] {
		delete(w.emeralds, at)
		w.streak++
		pts := w.scoring.Emerald()
		w.emit(Event{Kind: EventCollectedEmerald, At: at, Points: pts})
		w.addScore(pts)
		if bonus := w.scoring.StreakAward(w.streak); bonus > 0 {
			w.emit(Event{Kind: EventStreakBonus, At: at, Points: bonus})
			w.addScore(bonus)
		}
	}

	if b := w.bagAt(at); b != nil && b.State == BagTreasure {
		b.removed = true
		w.pruneBags()
		pts := w.scoring.Treasure()
		w.emit(Event{Kind: EventTreasureCollected, At: at, Points: pts})
		w.addScore(pts)
	}

	if w.bonusVisible && at == w.bonusAt {
		w.bonusVisible = false
		w.bonusUsed = true
		pts := w.scoring.BonusItem()
		w.startBonus()
		w.emit(Event{Kind: EventBonusStarted, At: at, Points: pts})
		w.addScore(pts)
	}
}

// startBonus begins bonus mode with a fresh kill chain.
func (w *World) startBonus() {
	w.bonusOn = true
	w.bonusLeft = w.bonusDuration
	w.chain = 0
}

// addScore adds points and grants any extra lives the new total earns.
func (w *World) addScore(points int) {
	if points <= 0 {
		return
	}
	w.score += points
	lives, next := w.scoring.ExtraLives(w.score, w.nextLife)
	w.nextLife = next
	for i := 0; i < lives; i++ {
		w.lives++
		w.emit(Event{Kind: EventExtraLife, At: w.player.Tile()})
	}
}

// Phase 3: bag physics.

func (w *World) updateBags(dt float64) {
	phys := bagPhysics{
		WobbleTime:  w.cfg.Bags.WobbleTime,
		FallSpeed:   w.cfg.Bags.FallSpeed,
		TreasureMin: w.cfg.Bags.TreasureMin,
	}
	// Bags are added only at level load, so indexing is stable here.
	for i := 0; i < len(w.bags); i++ {
		b := w.bags[i]
		if b.removed {
			continue
		}
		b.update(dt, w, phys)
		if w.round != RoundPlaying {
			break
		}
	}
	w.pruneBags()
}

func (w *World) pruneBags() {
	kept := w.bags[:0]
	for _, b := range w.bags {
		if !b.removed {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(w.bags); i++ {
		w.bags[i] = nil
	}
	w.bags = kept
}

// Phase 4: spawning and the bonus item.

func (w *World) updateSpawner(dt float64) {
	if w.spawned < w.quota {
		w.spawnTimer -= dt
		if w.spawnTimer <= 0 && w.roomToSpawn() && w.bagAt(w.spawn) == nil {
			w.spawnCreature()
			w.spawnTimer = w.interval
		}
	}
	if w.spawned >= w.quota && !w.bonusUsed && !w.bonusVisible {
		w.bonusVisible = true
		w.emit(Event{Kind: EventBonusAppeared, At: w.bonusAt})
	}
}

// roomToSpawn applies the optional cap on creatures alive at once.
func (w *World) roomToSpawn() bool {
	return w.cfg.Creatures.MaxAlive <= 0 || w.aliveCount() < w.cfg.Creatures.MaxAlive
}

func (w *World) spawnCreature() {
	c := w.cfg.Creatures
	transform := c.TransformMin + w.rng.Float64()*(c.TransformMax-c.TransformMin)
	w.nextID++
	w.creatures = append(w.creatures, newCreature(w.nextID, w.spawn, transform, w.tick))
	w.spawned++
	w.emit(Event{Kind: EventCreatureSpawned, At: w.spawn})
}

// Phase 5: creature movement and contact.

func (w *World) updateCreatures(dt float64) {
	for _, c := range w.creatures {
		if !c.Alive {
			continue
		}
		if c.bornTick != w.tick {
			c.update(dt, w.creatureSpeed, w)
		}
		if c.Tile() != w.player.Tile() || !w.player.Alive {
			continue
		}
		if w.bonusOn {
			w.killCreature(c, w.scoring.BonusKill(w.chain), true)
			w.chain++
		} else {
			w.killPlayer()
			if w.round != RoundPlaying {
				return
			}
		}
	}
}

func (w *World) killCreature(c *Creature, points int, byBonus bool) {
	if !c.Alive {
		return
	}
	c.Alive = false
	w.killed++
	w.emit(Event{Kind: EventCreatureKilled, At: c.Tile(), Points: points, ByBonus: byBonus})
	w.addScore(points)
}

// Phase 6.

func (w *World) pruneCreatures() {
	kept := w.creatures[:0]
	for _, c := range w.creatures {
		if c.Alive {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(w.creatures); i++ {
		w.creatures[i] = nil
	}
	w.creatures = kept
}

// Phase 7: shots.

func (w *World) updateShots(dt float64) {
	for _, s := range w.shots {
		if !s.Active {
			continue
		}
		for _, t := range s.advance(dt) {
			if !w.grid.InBounds(t) || w.grid.IsEarth(t) {
				s.Active = false
				break
			}
			if c := w.creatureAt(t); c != nil {
				w.killCreature(c, w.scoring.ShotKill(), false)
				s.Active = false
				break
			}
		}
	}

	kept := w.shots[:0]
	for _, s := range w.shots {
		if s.Active {
			kept = append(kept, s)
		}
	}
	w.shots = kept
}

// Phase 8: bonus countdown.

func (w *World) updateBonus(dt float64) {
	if !w.bonusOn {
		return
	}
	w.bonusLeft -= dt
	if w.bonusLeft <= 0 {
		w.endBonus()
	}
}

func (w *World) endBonus() {
	w.bonusOn = false
	w.bonusLeft = 0
	w.chain = 0
	w.emit(Event{Kind: EventBonusEnded, At: w.player.Tile()})
}

// Phase 9: level clear and advance.

func (w *World) updateLevelClear(dt float64) {
	if !w.levelDone() {
		w.clearTimer = 0
		return
	}
	w.clearTimer += dt
	if w.clearTimer < w.cfg.Level.ClearDelay {
		return
	}
	w.emit(Event{Kind: EventLevelCleared, At: w.player.Tile(), Points: w.level})
	w.level++
	w.LoadLevel(GenerateLevel(w.rng, w.cfg))
}

// levelDone reports whether every emerald is gone. Killing creatures never
// clears a level.
func (w *World) levelDone() bool {
	return len(w.emeralds) == 0
}

// killPlayer costs a life and sends the player back to the start tile.
// Creatures, shots and bonus mode carry on; only the emerald streak is
// lost. The last life ends the round.
func (w *World) killPlayer() {
	if w.died || !w.player.Alive {
		return
	}
	w.died = true
	w.lives--
	w.streak = 0
	w.emit(Event{Kind: EventPlayerKilled, At: w.player.Tile()})

	if w.lives <= 0 {
		w.lives = 0
		w.player.Alive = false
		w.round = RoundGameOver
		w.emit(Event{Kind: EventGameOver, At: w.player.Tile(), Points: w.score})
		return
	}
	w.player = newPlayer(w.start, w.cfg.Player.Speed)
}

// Tile lookups. Collections are small, so every query is a scan.

func (w *World) bagAt(c Coord) *Bag {
	for _, b := range w.bags {
		if !b.removed && b.Pos == c {
			return b
		}
	}
	return nil
}

func (w *World) solidBagAt(c Coord) *Bag {
	if b := w.bagAt(c); b != nil && b.Solid() {
		return b
	}
	return nil
}

func (w *World) creatureAt(c Coord) *Creature {
	for _, cr := range w.creatures {
		if cr.Alive && cr.Tile() == c {
			return cr
		}
	}
	return nil
}

func (w *World) aliveCount() int {
	n := 0
	for _, c := range w.creatures {
		if c.Alive {
			n++
		}
	}
	return n
}

// bagEnv and creatureEnv.

func (w *World) hasSupport(at Coord) bool {
	below := at.Below()
	if !w.grid.InBounds(below) || w.grid.IsEarth(below) {
		return true
	}
	return w.solidBagAt(below) != nil
}

func (w *World) dig(c Coord) {
	if w.grid.InBounds(c) && w.grid.Dig(c) {
		w.emit(Event{Kind: EventDug, At: c})
	}
}

func (w *World) crush(c Coord, by *Bag) {
	if w.player.Alive && w.player.Tile() == c {
		w.killPlayer()
		if w.round != RoundPlaying {
			return
		}
	}
	for _, cr := range w.creatures {
		if cr.Alive && cr.Tile() == c {
			w.killCreature(cr, w.scoring.ShotKill(), false)
		}
	}
	for _, b := range w.bags {
		if b != by && !b.removed && b.State == BagTreasure && b.Pos == c {
			b.removed = true
		}
	}
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) walkable(kind CreatureKind, c Coord) bool {
	if !w.grid.InBounds(c) || w.solidBagAt(c) != nil {
		return false
	}
	return kind == CreatureDigger || w.grid.IsTunnel(c)
}

func (w *World) gridSize() (int, int) { return w.grid.W, w.grid.H }

func (w *World) playerTile() Coord { return w.player.Tile() }

func (w *World) bonusActive() bool { return w.bonusOn }

func (w *World) intn(n int) int { return w.rng.Intn(n) }

// Round, score and lifecycle accessors.

// Round returns the current round state.
func (w *World) Round() RoundState { return w.round }

// PauseSelection returns the highlighted pause menu entry.
func (w *World) PauseSelection() PauseOption { return w.pauseOption }

// Quit reports whether a quit intent was accepted.
func (w *World) Quit() bool { return w.quit }

// Score returns the round score.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// Level returns the 1-based level number.
func (w *World) Level() int { return w.level }

// Tick returns the number of simulated ticks.
func (w *World) Tick() uint64 { return w.tick }

// Config returns the configuration the world was built with.
func (w *World) Config() config.DiggerConfig { return w.cfg }
