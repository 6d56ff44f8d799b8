package gamedata

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Message keys in messages.po.
const (
	MsgWelcome            = "WELCOME"
	MsgPromptInstructions = "PROMPT_INSTRUCTIONS"
	MsgInstructions       = "INSTRUCTIONS"
	MsgPromptSavedCave    = "PROMPT_SAVED_CAVE"
	MsgCreatingCave       = "CREATING_CAVE"
	MsgDodecahedron       = "DODECAHEDRON"
	MsgInRoom             = "IN_ROOM"
	MsgFellInPit          = "FELL_IN_PIT"
	MsgEaten              = "EATEN"
	MsgBatCarries         = "BAT_CARRIES"
	MsgSmellWumpus        = "SMELL_WUMPUS"
	MsgBatsNearby         = "BATS_NEARBY"
	MsgFeelDraft          = "FEEL_DRAFT"
	MsgTunnels            = "TUNNELS"
	MsgPromptCommand      = "PROMPT_COMMAND"
	MsgWhat               = "WHAT"
	MsgWhichRoom          = "WHICH_ROOM"
	MsgNotARoom           = "NOT_A_ROOM"
	MsgHitWall            = "HIT_WALL"
	MsgWhichTunnels       = "WHICH_TUNNELS"
	MsgArrowHop           = "ARROW_HOP"
	MsgShotYourself       = "SHOT_YOURSELF"
	MsgSlewWumpus         = "SLEW_WUMPUS"
	MsgMissed             = "MISSED"
	MsgLastShot           = "LAST_SHOT"
	MsgWumpusAte          = "WUMPUS_ATE"
	MsgWumpusMovedAte     = "WUMPUS_MOVED_ATE"
	MsgDumpPlacement      = "DUMP_PLACEMENT"
	MsgDumpBats           = "DUMP_BATS"
	MsgBestShot           = "BEST_SHOT"
	MsgBestNone           = "BEST_NONE"
	MsgPromptAnother      = "PROMPT_ANOTHER"
	MsgPromptSameCave     = "PROMPT_SAME_CAVE"
	MsgBye                = "BYE"
)

// Messages is the console text catalog.
type Messages struct {
	po *gotext.Po

	// get is held as a function value so vet does not treat the keys
	// passed to Text as format strings.
	get func(key string, vars ...interface{}) string
}

// LoadMessages parses the embedded messages.po catalog.
func LoadMessages() (*Messages, error) {
	data, err := readEmbedded("messages.po")
	if err != nil {
		return nil, err
	}
	po := gotext.NewPo()
	po.Parse(data)
	if !po.IsTranslated(MsgWelcome) {
		return nil, fmt.Errorf("messages.po has no %s entry", MsgWelcome)
	}
	return &Messages{po: po, get: po.Get}, nil
}

// Text returns the message for key with args substituted. Unknown keys
// come back unchanged.
func (m *Messages) Text(key string, args ...any) string {
	return m.get(key, args...)
}

// Has reports whether the catalog holds key.
func (m *Messages) Has(key string) bool {
	return m.po.IsTranslated(key)
}
