package digger

// EventKind identifies something that happened during a tick.
// Audio and render collaborators map these to cues.
type EventKind int

const (
	EventDug EventKind = iota
	EventCollectedEmerald
	EventStreakBonus
	EventBagWobbled
	EventBagDropped
	EventBagLanded
	EventBagPushed
	EventTreasureCollected
	EventCreatureSpawned
	EventCreatureTransformed
	EventCreatureKilled
	EventPlayerKilled
	EventBonusAppeared
	EventBonusStarted
	EventBonusEnded
	EventExtraLife
	EventLevelCleared
	EventFired
	EventGameOver
)

var eventNames = [...]string{
	EventDug:                 "dug",
	EventCollectedEmerald:    "collected_emerald",
	EventStreakBonus:         "streak_bonus",
	EventBagWobbled:          "bag_wobbled",
	EventBagDropped:          "bag_dropped",
	EventBagLanded:           "bag_landed",
	EventBagPushed:           "bag_pushed",
	EventTreasureCollected:   "treasure_collected",
	EventCreatureSpawned:     "creature_spawned",
	EventCreatureTransformed: "creature_transformed",
	EventCreatureKilled:      "creature_killed",
	EventPlayerKilled:        "player_killed",
	EventBonusAppeared:       "bonus_appeared",
	EventBonusStarted:        "bonus_started",
	EventBonusEnded:          "bonus_ended",
	EventExtraLife:           "extra_life",
	EventLevelCleared:        "level_cleared",
	EventFired:               "fired",
	EventGameOver:            "game_over",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is one semantic occurrence. Points is the score awarded by it, if any.
type Event struct {
	Kind     EventKind
	At       Coord
	Points   int
	ByBonus  bool // CreatureKilled only: killed by contact during bonus mode
	Treasure bool // BagLanded only: the bag broke into treasure
}

// CountEvents returns how many events of the given kind are in the list.
func CountEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
